// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h, _, appInfo := newMockedHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(want)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	const want = "3.0.0"

	h, _, appInfo := newMockedHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(want)

	rec := serve(t, h.Init(), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

func TestGetServerVersion_EmptyVersion(t *testing.T) {
	h, _, appInfo := newMockedHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("")

	rec := serve(t, h.Init(), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
