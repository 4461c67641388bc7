// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in [*EmployeeError]) by [EmployeeStorage]
// methods. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmployeeAlreadyExists is returned when Add is called with an ID that
	// is already in use.
	ErrEmployeeAlreadyExists = errors.New("already exists")

	// ErrEmployeeNotFound is returned when Update or Delete targets an ID
	// that is not stored.
	ErrEmployeeNotFound = errors.New("not found")
)

// EmployeeError reports a failed operation on a specific employee record.
// It unwraps to one of the sentinel errors of this package.
type EmployeeError struct {
	ID  string
	Err error
}

func (e *EmployeeError) Error() string {
	return fmt.Sprintf("employee with id %s %v", e.ID, e.Err)
}

func (e *EmployeeError) Unwrap() error {
	return e.Err
}

func alreadyExists(id string) error {
	return &EmployeeError{ID: id, Err: ErrEmployeeAlreadyExists}
}

func notFound(id string) error {
	return &EmployeeError{ID: id, Err: ErrEmployeeNotFound}
}
