// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// employee registry server.
//
// The primary abstraction is [EmployeeAdapter], which decouples the
// command-line client from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPEmployeeAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/employee-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// EmployeeAdapter defines transport-agnostic access to the employee registry
// server. Each method corresponds to one server endpoint.
type EmployeeAdapter interface {
	// List fetches all employees matching filter.
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)

	// Create stores a new employee and returns it with its assigned ID.
	// Returns [ErrConflict] (wrapped) if the ID is already taken.
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)

	// Update applies a partial update to the employee with the given ID.
	// Returns [ErrNotFound] (wrapped) if there is no such employee.
	Update(ctx context.Context, id string, update models.EmployeeUpdate) (models.Employee, error)

	// Delete removes the employee with the given ID and returns it.
	// Returns [ErrNotFound] (wrapped) if there is no such employee.
	Delete(ctx context.Context, id string) (models.Employee, error)
}
