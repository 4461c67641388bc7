// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/employee-registry/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const compressLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(compressLevel, "application/json"))

	// must be set before sub-routers are mounted so they inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Route("/api/employees", func(r chi.Router) {
		r.Get("/", h.listEmployees)
		r.Post("/", h.createEmployee)
		r.Patch("/{id}", h.updateEmployee)
		r.Delete("/{id}", h.deleteEmployee)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
