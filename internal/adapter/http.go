// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/utils"
	"github.com/MKhiriev/employee-registry/models"
)

const (
	employeesPath = "/api/employees"
	employeePath  = "/api/employees/{id}"
)

type httpEmployeeAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPEmployeeAdapter constructs an HTTP/REST implementation of
// [EmployeeAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPEmployeeAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (EmployeeAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpEmployeeAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [EmployeeAdapter]. It sends GET /api/employees with the
// department query parameter when the filter sets one.
func (h *httpEmployeeAdapter) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	var employees []models.Employee

	req := h.client.R().
		SetContext(ctx).
		SetResult(&employees)
	if filter.Department != nil {
		req.SetQueryParam("department", *filter.Department)
	}

	resp, err := req.Get(employeesPath)
	if err != nil {
		return nil, fmt.Errorf("list employees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(employees)).Msg("employees listed")
	return employees, nil
}

// Create implements [EmployeeAdapter]. It POSTs the employee to
// POST /api/employees.
func (h *httpEmployeeAdapter) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	var created models.Employee

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(employee).
		SetResult(&created).
		Post(employeesPath)
	if err != nil {
		return models.Employee{}, fmt.Errorf("create employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return created, nil
}

// Update implements [EmployeeAdapter]. It sends the partial employee to
// PATCH /api/employees/{id}.
func (h *httpEmployeeAdapter) Update(ctx context.Context, id string, update models.EmployeeUpdate) (models.Employee, error) {
	var updated models.Employee

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(update).
		SetResult(&updated).
		Patch(employeePath)
	if err != nil {
		return models.Employee{}, fmt.Errorf("update employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return updated, nil
}

// Delete implements [EmployeeAdapter]. It sends DELETE /api/employees/{id}.
func (h *httpEmployeeAdapter) Delete(ctx context.Context, id string) (models.Employee, error) {
	var deleted models.Employee

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&deleted).
		Delete(employeePath)
	if err != nil {
		return models.Employee{}, fmt.Errorf("delete employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return deleted, nil
}
