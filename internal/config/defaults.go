// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultPort               = 3000
	defaultLogFormat          = LogFormatTiny
	defaultLogSkipBelowStatus = 400
	defaultRequestTimeout     = 30 * time.Second
	defaultShutdownTimeout    = 10 * time.Second
	defaultAppVersion         = "dev"
	defaultAdapterAddress     = "localhost:3000"
	defaultAdapterTimeout     = 10 * time.Second
)

func intPtr(v int) *int {
	return &v
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: defaultAppVersion,
		},
		Server: Server{
			Port:               defaultPort,
			LogFormat:          defaultLogFormat,
			LogSkipBelowStatus: intPtr(defaultLogSkipBelowStatus),
			RequestTimeout:     defaultRequestTimeout,
			ShutdownTimeout:    defaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}
