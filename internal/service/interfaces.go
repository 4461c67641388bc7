// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/employee-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EmployeeService exposes the four employee operations to the transport
// layer. Store errors ([store.ErrEmployeeAlreadyExists],
// [store.ErrEmployeeNotFound]) are returned unchanged so that the transport
// can translate them.
type EmployeeService interface {
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)
	Update(ctx context.Context, id string, update models.EmployeeUpdate) (models.Employee, error)
	Delete(ctx context.Context, id string) (models.Employee, error)
}

// AppInfoService reports build and runtime information about the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
