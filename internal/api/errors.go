package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"titanic-dash/internal/domain"
)

// Error is the JSON body of every failed API response.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var unavailable *domain.DataUnavailableError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatus exposes the domain error mapping to the other HTTP surfaces.
func HTTPStatus(err error) int {
	return httpStatusFromDomainError(err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := httpStatusFromDomainError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		msg = http.StatusText(status)
	}
	writeJSON(w, status, Error{Code: int32(status), Message: msg}) //nolint:gosec // HTTP status codes are always in [100,599]
}
