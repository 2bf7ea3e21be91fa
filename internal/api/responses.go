package api

// responses.go provides helper functions for sending HTTP responses from handlers and middleware.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/information-sharing-networks/cicd-demo/internal/logger"
)

// RespondWithError sends the error response for err as a JSON payload.
//
// The full error is logged server-side, the client only gets the fixed message for the error code.
// Internal errors are logged at error level, client errors at warn level.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, body := MapErrorToResponse(err)

	reqLogger := logger.ContextRequestLogger(r.Context())
	attrs := []any{
		slog.String("error", err.Error()),
		slog.Int("status_code", statusCode),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	}
	if statusCode >= http.StatusInternalServerError {
		reqLogger.Error("Request failed", attrs...)
	} else {
		reqLogger.Warn("Request failed", attrs...)
	}

	RespondWithJSONPayload(w, statusCode, body)
}

// RespondWithJSONPayload sends a JSON response with the given status code
func RespondWithJSONPayload(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// If encoding fails, log it but don't try to send another response
			// (headers are already written)
			slog.Error("Failed to encode JSON response",
				slog.String("error", err.Error()),
			)
		}
	}
}
