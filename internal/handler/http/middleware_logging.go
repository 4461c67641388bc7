// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request whose status is at
// least cfg.SkipBelowStatus(). The fields of the entry depend on
// cfg.LogFormat.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.statusCode()
		if status < h.cfg.SkipBelowStatus() {
			return
		}

		log := logger.FromRequest(r)
		event := log.Info()
		if h.cfg.LogFormat == config.LogFormatDev {
			event = eventForStatus(log, status)
		}

		event.
			Str("method", method).
			Str("uri", uri).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start))

		switch h.cfg.LogFormat {
		case config.LogFormatShort, config.LogFormatCommon, config.LogFormatCombined:
			event.Str("remote_addr", r.RemoteAddr).Str("proto", r.Proto)
		}

		switch h.cfg.LogFormat {
		case config.LogFormatCommon, config.LogFormatCombined:
			event.Str("user", remoteUser(r))
		}

		if h.cfg.LogFormat == config.LogFormatCombined {
			event.Str("referer", r.Referer()).Str("user_agent", r.UserAgent())
		}

		event.Send()
	})
}

func eventForStatus(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

// remoteUser returns the basic auth user name or "-".
func remoteUser(r *http.Request) string {
	if user, _, ok := r.BasicAuth(); ok && user != "" {
		return user
	}
	return "-"
}
