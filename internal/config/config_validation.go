// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

const (
	maxPort       = 65535
	maxStatusCode = 599
)

var logFormats = []string{
	LogFormatTiny,
	LogFormatShort,
	LogFormatCommon,
	LogFormatCombined,
	LogFormatDev,
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Server.validate(); err != nil {
		return err
	}

	if cfg.App.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidAppConfigs)
	}

	return nil
}

func (s Server) validate() error {
	switch {
	case s.Port < 1 || s.Port > maxPort:
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, s.Port)
	case !slices.Contains(logFormats, s.LogFormat):
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidServerConfigs, s.LogFormat)
	case s.SkipBelowStatus() < 0 || s.SkipBelowStatus() > maxStatusCode:
		return fmt.Errorf("%w: skip code threshold %d out of range", ErrInvalidServerConfigs, s.SkipBelowStatus())
	case s.RequestTimeout <= 0 || s.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
