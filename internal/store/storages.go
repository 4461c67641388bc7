// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/utils"
)

// Storages aggregates every storage backend used by the service layer.
type Storages struct {
	EmployeeRepository EmployeeStorage
}

// NewStorages creates the process-wide storages. Records live only as long as
// the returned value.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		EmployeeRepository: NewMemoryEmployeeRepository(utils.NewUUIDGenerator(), logger),
	}
}
