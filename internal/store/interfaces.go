// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/employee-registry/models"
)

// EmployeeStorage owns the authoritative set of employee records and enforces
// their identity invariants: every record is stored under its own ID and no
// two records share an ID.
//
// Implementations return copies; mutating a returned [models.Employee] never
// changes stored state.
type EmployeeStorage interface {
	// Add stores e. When e.ID is empty a new identifier is generated and
	// assigned. Returns an [*EmployeeError] wrapping [ErrEmployeeAlreadyExists]
	// if a record with the same ID is already stored; the stored record is
	// left untouched.
	Add(ctx context.Context, e models.Employee) (models.Employee, error)

	// GetAll returns a snapshot of all records matching filter, in insertion
	// order. It never fails; no matches yield an empty slice.
	GetAll(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)

	// Update merges the fields present in u into the record stored under id
	// and returns the result. Returns an [*EmployeeError] wrapping
	// [ErrEmployeeNotFound] if no such record exists.
	Update(ctx context.Context, id string, u models.EmployeeUpdate) (models.Employee, error)

	// Delete removes the record stored under id and returns it. Returns an
	// [*EmployeeError] wrapping [ErrEmployeeNotFound] if no such record exists.
	Delete(ctx context.Context, id string) (models.Employee, error)

	// Len returns the number of stored records.
	Len() int
}

// IDGenerator produces identifiers for records created without one.
type IDGenerator interface {
	Generate() string
}
