// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/utils"
	"github.com/MKhiriev/employee-registry/models"
	"github.com/go-chi/chi/v5"
)

const (
	departmentQueryParam = "department"
	idURLParam           = "id"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	var filter models.EmployeeFilter
	// an empty department is treated the same as a missing one
	if department := r.URL.Query().Get(departmentQueryParam); department != "" {
		filter.Department = &department
	}

	employees, err := h.services.EmployeeService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, employees, http.StatusOK)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := decodeJSON(r, &employee); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.EmployeeService.Create(r.Context(), employee)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, idURLParam)

	var update models.EmployeeUpdate
	if err := decodeJSON(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.EmployeeService.Update(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, idURLParam)

	deleted, err := h.services.EmployeeService.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, deleted, http.StatusOK)
}

// decodeJSON decodes the request body, which must hold exactly one JSON
// object, into v. Field type errors are returned as is so their message
// reaches the client; any other decoding failure becomes errInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var typeErr *models.FieldTypeError
		if errors.As(err, &typeErr) {
			return typeErr
		}
		return errInvalidJSON
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errInvalidJSON
	}

	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError translates err into a status code and writes it with a JSON
// error body. Internal failures never expose the underlying error text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
		logger.FromRequest(r).Err(err).Msg("internal error handling request")
	}

	utils.WriteError(w, message, status)
}
