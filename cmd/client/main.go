// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/employee-registry/internal/adapter"
	"github.com/MKhiriev/employee-registry/internal/client"
	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/models"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("employee-client", os.Stderr)
	log.Logger = log.Level(zerolog.InfoLevel)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	employeeAdapter, err := adapter.NewHTTPEmployeeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app := client.NewApp(employeeAdapter, buildInfo, os.Stdout, log)

	if err = app.Run(ctx, args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
