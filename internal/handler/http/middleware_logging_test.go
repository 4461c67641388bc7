// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logRequest runs a single request through withLogging with a logger in the
// request context the same way withTraceID puts it there.
func logRequest(t *testing.T, cfg config.Server, status int, prepare func(r *http.Request)) string {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{cfg: cfg}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
		}
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/employees?department=HR", nil)
	if prepare != nil {
		prepare(req)
	}
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func decodeLogEntry(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	return entry
}

func TestWithLogging_Formats(t *testing.T) {
	tests := []struct {
		format      string
		wantKeys    []string
		missingKeys []string
	}{
		{
			format:      config.LogFormatTiny,
			wantKeys:    []string{"method", "uri", "status", "size", "duration"},
			missingKeys: []string{"remote_addr", "proto", "user", "referer", "user_agent"},
		},
		{
			format:      config.LogFormatShort,
			wantKeys:    []string{"method", "uri", "status", "size", "duration", "remote_addr", "proto"},
			missingKeys: []string{"user", "referer", "user_agent"},
		},
		{
			format:      config.LogFormatCommon,
			wantKeys:    []string{"remote_addr", "proto", "user"},
			missingKeys: []string{"referer", "user_agent"},
		},
		{
			format:   config.LogFormatCombined,
			wantKeys: []string{"remote_addr", "proto", "user", "referer", "user_agent"},
		},
		{
			format:      config.LogFormatDev,
			wantKeys:    []string{"method", "uri", "status", "size", "duration"},
			missingKeys: []string{"remote_addr", "user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := logRequest(t, config.Server{LogFormat: tt.format, LogSkipBelowStatus: ptr(400)}, http.StatusNotFound, nil)
			entry := decodeLogEntry(t, out)

			for _, key := range tt.wantKeys {
				assert.Contains(t, entry, key)
			}
			for _, key := range tt.missingKeys {
				assert.NotContains(t, entry, key)
			}
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/api/employees?department=HR", entry["uri"])
			assert.Equal(t, float64(http.StatusNotFound), entry["status"])
			assert.Equal(t, float64(2), entry["size"])
		})
	}
}

func TestWithLogging_SkipThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold *int
		status    int
		wantLog   bool
	}{
		{name: "success below default threshold", threshold: ptr(400), status: http.StatusOK, wantLog: false},
		{name: "client error at default threshold", threshold: ptr(400), status: http.StatusBadRequest, wantLog: true},
		{name: "server error", threshold: ptr(400), status: http.StatusInternalServerError, wantLog: true},
		{name: "only server errors", threshold: ptr(500), status: http.StatusNotFound, wantLog: false},
		{name: "log everything", threshold: ptr(0), status: http.StatusOK, wantLog: true},
		{name: "unset threshold skips success", threshold: nil, status: http.StatusOK, wantLog: false},
		{name: "unset threshold logs client errors", threshold: nil, status: http.StatusNotFound, wantLog: true},
		{name: "implicit 200 is logged with low threshold", threshold: ptr(100), status: 0, wantLog: true},
		{name: "implicit 200 is skipped with default threshold", threshold: ptr(400), status: 0, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := logRequest(t, config.Server{LogFormat: config.LogFormatTiny, LogSkipBelowStatus: tt.threshold}, tt.status, nil)

			if tt.wantLog {
				assert.NotEmpty(t, out)
			} else {
				assert.Empty(t, out)
			}
		})
	}
}

func TestWithLogging_DevLevelByStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: "info"},
		{status: http.StatusConflict, wantLevel: "warn"},
		{status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			out := logRequest(t, config.Server{LogFormat: config.LogFormatDev}, tt.status, nil)

			assert.Equal(t, tt.wantLevel, decodeLogEntry(t, out)["level"])
		})
	}
}

func TestWithLogging_NonDevFormatsLogAtInfo(t *testing.T) {
	out := logRequest(t, config.Server{LogFormat: config.LogFormatCombined}, http.StatusInternalServerError, nil)

	assert.Equal(t, "info", decodeLogEntry(t, out)["level"])
}

func TestWithLogging_CombinedRequestDetails(t *testing.T) {
	out := logRequest(t, config.Server{LogFormat: config.LogFormatCombined}, http.StatusOK, func(r *http.Request) {
		r.SetBasicAuth("alice", "secret")
		r.Header.Set("Referer", "http://example.test/page")
		r.Header.Set("User-Agent", "registry-test/1.0")
	})
	entry := decodeLogEntry(t, out)

	assert.Equal(t, "alice", entry["user"])
	assert.Equal(t, "http://example.test/page", entry["referer"])
	assert.Equal(t, "registry-test/1.0", entry["user_agent"])
	assert.Equal(t, "HTTP/1.1", entry["proto"])
	assert.NotContains(t, out, "secret")
}

func TestRemoteUser_NoAuth(t *testing.T) {
	assert.Equal(t, "-", remoteUser(httptest.NewRequest(http.MethodGet, "/", nil)))
}
