// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors exported by the employee
// registry on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Results recorded by EmployeeOperations.
const (
	ResultOK            = "ok"
	ResultAlreadyExists = "already_exists"
	ResultNotFound      = "not_found"
	ResultError         = "error"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_registry_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "employee_registry_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	EmployeeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_registry_employee_operations_total",
			Help: "Total number of employee store operations by outcome",
		},
		[]string{"operation", "result"},
	)

	EmployeesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "employee_registry_employees_stored",
			Help: "Number of employee records currently stored",
		},
	)
)
