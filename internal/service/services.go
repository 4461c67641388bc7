// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/store"
)

type Services struct {
	EmployeeService EmployeeService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		EmployeeService: NewEmployeeService(storages.EmployeeRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
