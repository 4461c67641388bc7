// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
		{name: "IPv6 host", addr: NetAddress{Host: "::1", Port: 3000}, expected: "[::1]:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:3000", expected: NetAddress{Host: "localhost", Port: 3000}},
		{name: "ip", input: "127.0.0.1:8080", expected: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "all interfaces", input: ":3000", expected: NetAddress{Port: 3000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname is not an ip", input: "example.com:3000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, rest, err := parseFlags([]string{
		"-a", "127.0.0.1:4000",
		"-log-format", "combined",
		"-skip-code-threshold", "100",
		"-request-timeout", "15s",
		"-shutdown-timeout", "2s",
		"-app-version", "1.4.0",
		"-server", "localhost:4000",
		"-client-timeout", "1s",
		"-config", "/etc/registry.json",
	})

	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, Server{
		Host:               "127.0.0.1",
		Port:               4000,
		LogFormat:          LogFormatCombined,
		LogSkipBelowStatus: intPtr(100),
		RequestTimeout:     15 * time.Second,
		ShutdownTimeout:    2 * time.Second,
	}, cfg.Server)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, Adapter{HTTPAddress: "localhost:4000", RequestTimeout: time.Second}, cfg.Adapter)
	assert.Equal(t, "/etc/registry.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags_ZeroConfig(t *testing.T) {
	cfg, rest, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ExplicitZeroThreshold(t *testing.T) {
	cfg, _, err := parseFlags([]string{"-skip-code-threshold", "0"})

	require.NoError(t, err)
	require.NotNil(t, cfg.Server.LogSkipBelowStatus)
	assert.Equal(t, 0, *cfg.Server.LogSkipBelowStatus)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, _, err := parseFlags([]string{"-a", "nowhere"})

	assert.Error(t, err)
}
