// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from
// args (without the program name). It also returns the positional arguments
// that follow the flags, i.e. the client command and its own flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := load(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, nil, err
	}

	return clientCfg, rest, nil
}
