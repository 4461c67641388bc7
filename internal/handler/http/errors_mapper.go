// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/employee-registry/internal/store"
	"github.com/MKhiriev/employee-registry/models"
)

// statusFromError maps domain and decoding errors to HTTP status codes.
// Anything not listed is an internal error.
func statusFromError(err error) int {
	var typeErr *models.FieldTypeError

	switch {
	case errors.Is(err, store.ErrEmployeeAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, store.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, errInvalidJSON), errors.As(err, &typeErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
