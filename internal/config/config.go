// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Access log formats accepted by [Server.LogFormat]. They mirror the field
// sets of the well-known morgan formats.
const (
	LogFormatTiny     = "tiny"
	LogFormatShort    = "short"
	LogFormatCommon   = "common"
	LogFormatCombined = "combined"
	LogFormatDev      = "dev"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags, an optional JSON file
// and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the listener, access log and timeout settings. Its
	// variables are not prefixed (PORT, LOG_FORMAT, ...).
	Server Server

	// Adapter holds the settings the command-line client uses to reach the
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, access-log and timeout settings for the HTTP server.
type Server struct {
	// Host is the interface to listen on. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port int `env:"PORT"`

	// LogFormat selects the access log field set, one of the LogFormat*
	// constants.
	// Env: LOG_FORMAT
	LogFormat string `env:"LOG_FORMAT"`

	// LogSkipBelowStatus suppresses access log entries for responses whose
	// status code is lower than this value. Values up to 100, including an
	// explicit 0, log everything. Nil means unset; read it through
	// [Server.SkipBelowStatus].
	// Env: SKIP_CODE_THRESHOLD
	LogSkipBelowStatus *int `env:"SKIP_CODE_THRESHOLD"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// HTTPAddress returns the listen address in "host:port" form.
func (s Server) HTTPAddress() string {
	if s.Port == 0 {
		return ""
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SkipBelowStatus returns the access log threshold, falling back to the
// default when no source set one.
func (s Server) SkipBelowStatus() int {
	if s.LogSkipBelowStatus == nil {
		return defaultLogSkipBelowStatus
	}
	return *s.LogSkipBelowStatus
}

// Adapter holds settings of the HTTP client used by the command-line client.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme
	// (e.g. "localhost:3000" or "http://10.0.0.5:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the process environment and command-line arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, _, err := load(os.Args[1:])
	return cfg, err
}

func load(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.args, err
}
