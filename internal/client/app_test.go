// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/employee-registry/internal/adapter"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/mock"
	"github.com/MKhiriev/employee-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

// newTestApp builds an App around a mocked adapter.
func newTestApp(t *testing.T) (*App, *mock.MockEmployeeAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockEmployeeAdapter(ctrl)

	var out bytes.Buffer
	app := NewApp(mockAdapter, models.NewAppBuildInfo("1.0.0", "2026-10-01", ""), &out, logger.Nop())

	return app, mockAdapter, &out
}

// ── dispatch ────────────────────────────────────────────────────────────────

func TestRun_NoCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.ErrorIs(t, app.Run(context.Background(), nil), ErrNoCommand)
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"promote"})

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"promote"`)
}

func TestRun_Version(t *testing.T) {
	app, _, out := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))

	assert.Contains(t, out.String(), "Build version: 1.0.0")
	assert.Contains(t, out.String(), "Build date: 2026-10-01")
	assert.Contains(t, out.String(), "Build commit: N/A")
}

// ── list ────────────────────────────────────────────────────────────────────

func TestRun_List_RendersTable(t *testing.T) {
	app, mockAdapter, out := newTestApp(t)
	mockAdapter.EXPECT().
		List(gomock.Any(), models.EmployeeFilter{}).
		Return([]models.Employee{
			{ID: "1", Name: "Ann", Department: "Sales", Attributes: map[string]any{"title": "Lead", "level": float64(3)}},
			{ID: "2", Name: "Bob", Department: "HR"},
		}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))

	for _, want := range []string{"ID", "NAME", "DEPARTMENT", "Ann", "Sales", "Bob", "HR", "level=3 title=Lead"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRun_List_WithDepartment(t *testing.T) {
	app, mockAdapter, out := newTestApp(t)
	mockAdapter.EXPECT().
		List(gomock.Any(), models.EmployeeFilter{Department: ptr("HR")}).
		Return([]models.Employee{}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list", "-department", "HR"}))

	assert.Contains(t, out.String(), "no employees found")
}

func TestRun_List_AdapterError(t *testing.T) {
	app, mockAdapter, _ := newTestApp(t)
	mockAdapter.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, adapter.ErrInternalServerError)

	err := app.Run(context.Background(), []string{"list"})

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

// ── create ──────────────────────────────────────────────────────────────────

func TestRun_Create(t *testing.T) {
	app, mockAdapter, out := newTestApp(t)
	mockAdapter.EXPECT().
		Create(gomock.Any(), models.Employee{
			Name:       "Ann",
			Department: "Sales",
			Attributes: map[string]any{"title": "Lead", "level": float64(3), "remote": true},
		}).
		Return(models.Employee{ID: "gen-1", Name: "Ann", Department: "Sales"}, nil)

	err := app.Run(context.Background(), []string{
		"create", "-name", "Ann", "-department", "Sales",
		"-attr", "title=Lead", "-attr", "level=3", "-attr", "remote=true",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"gen-1","name":"Ann","department":"Sales"}`, out.String())
}

func TestRun_Create_Conflict(t *testing.T) {
	app, mockAdapter, _ := newTestApp(t)
	mockAdapter.EXPECT().
		Create(gomock.Any(), models.Employee{ID: "1"}).
		Return(models.Employee{}, adapter.ErrConflict)

	err := app.Run(context.Background(), []string{"create", "-id", "1"})

	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestRun_Create_InvalidAttribute(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"create", "-attr", "novalue"})

	assert.ErrorIs(t, err, errInvalidAttribute)
}

// ── update ──────────────────────────────────────────────────────────────────

func TestRun_Update_OnlySendsGivenFlags(t *testing.T) {
	app, mockAdapter, out := newTestApp(t)
	mockAdapter.EXPECT().
		Update(gomock.Any(), "1", models.EmployeeUpdate{Department: ptr("HR")}).
		Return(models.Employee{ID: "1", Name: "Ann", Department: "HR"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", "-id", "1", "-department", "HR"}))

	assert.JSONEq(t, `{"id":"1","name":"Ann","department":"HR"}`, out.String())
}

func TestRun_Update_ExplicitEmptyName(t *testing.T) {
	app, mockAdapter, _ := newTestApp(t)
	mockAdapter.EXPECT().
		Update(gomock.Any(), "1", models.EmployeeUpdate{Name: ptr("")}).
		Return(models.Employee{ID: "1"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", "-id", "1", "-name="}))
}

func TestRun_Update_MissingID(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"update", "-name", "x"}), ErrMissingID)
}

func TestRun_Update_InvalidAttribute(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"update", "-id", "1", "-attr", "=x"})

	assert.ErrorIs(t, err, errInvalidAttribute)
}

func TestRun_Update_NotFound(t *testing.T) {
	app, mockAdapter, _ := newTestApp(t)
	mockAdapter.EXPECT().
		Update(gomock.Any(), "9", gomock.Any()).
		Return(models.Employee{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"update", "-id", "9", "-attr", "desk=A1"})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ── delete ──────────────────────────────────────────────────────────────────

func TestRun_Delete(t *testing.T) {
	app, mockAdapter, out := newTestApp(t)
	mockAdapter.EXPECT().
		Delete(gomock.Any(), "1").
		Return(models.Employee{ID: "1", Name: "Ann"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", "-id", "1"}))

	assert.JSONEq(t, `{"id":"1","name":"Ann"}`, out.String())
}

func TestRun_Delete_MissingID(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"delete"}), ErrMissingID)
}

func TestRun_Delete_UnknownFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"delete", "-force"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingID))
}
