package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type _ContextKey int

const _LOGGER_KEY _ContextKey = 0

const REQUEST_ID_HEADER = "X-Request-ID"

// RequestID tags every request with an id (taken from the X-Request-ID header
// or freshly generated) and attaches a logger carrying it to the context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(REQUEST_ID_HEADER, id)
		logger := slog.Default().With("request_id", id)
		ctx := context.WithValue(r.Context(), _LOGGER_KEY, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger returns the request scoped logger, or the default logger
// outside of the RequestID middleware.
func RequestLogger(r *http.Request) *slog.Logger {
	if logger, ok := r.Context().Value(_LOGGER_KEY).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
