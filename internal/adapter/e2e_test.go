// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/employee-registry/internal/config"
	handlerhttp "github.com/MKhiriev/employee-registry/internal/handler/http"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/service"
	"github.com/MKhiriev/employee-registry/internal/store"
	"github.com/MKhiriev/employee-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdapter_AgainstRegistryServer runs the create, list, update, delete
// scenario through the adapter against the real router and in-memory store.
func TestAdapter_AgainstRegistryServer(t *testing.T) {
	log := logger.Nop()
	services, err := service.NewServices(store.NewStorages(log), config.App{Version: "e2e"}, log)
	require.NoError(t, err)

	serverCfg := config.Server{LogFormat: config.LogFormatTiny, LogSkipBelowStatus: ptr(400)}
	srv := httptest.NewServer(handlerhttp.NewHandler(services, serverCfg, log).Init())
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	created, err := a.Create(ctx, models.Employee{Name: "Ann", Department: "Sales"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Sales", created.Department)

	all, err := a.List(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.Employee{created}, all)

	hr, err := a.List(ctx, models.EmployeeFilter{Department: ptr("HR")})
	require.NoError(t, err)
	assert.Empty(t, hr)

	updated, err := a.Update(ctx, created.ID, models.EmployeeUpdate{Department: ptr("HR")})
	require.NoError(t, err)
	assert.Equal(t, "HR", updated.Department)
	assert.Equal(t, "Ann", updated.Name)

	deleted, err := a.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, deleted)

	all, err = a.List(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = a.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.Create(ctx, models.Employee{ID: "dup"})
	require.NoError(t, err)
	_, err = a.Create(ctx, models.Employee{ID: "dup"})
	assert.ErrorIs(t, err, ErrConflict)
}
