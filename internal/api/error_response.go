package api

// error_response.go maps errors to the status code and the public message returned to the client

import (
	"errors"
	"net/http"
)

// Public error messages. These are the only error strings a client will ever see.
const (
	MessageNotFound        = "Route not found"
	MessageInternalError   = "Something went wrong!"
	MessageMalformedJSON   = "Invalid JSON payload"
	MessageRequestTooLarge = "Request body too large"
	MessageRateLimited     = "Too many requests"
	MessageTimeout         = "Request timed out"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error" example:"Route not found"`
}

// MapErrorToResponse returns the HTTP status code and response body for err.
//
// Errors that are not *api.Error (including nil-safe wrapping of other errors) are
// treated as internal errors.
func MapErrorToResponse(err error) (int, ErrorResponse) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError, ErrorResponse{Error: MessageInternalError}
	}

	switch apiErr.Code() {
	case ErrCodeNotFound:
		return http.StatusNotFound, ErrorResponse{Error: MessageNotFound}
	case ErrCodeMalformedJSON:
		return http.StatusBadRequest, ErrorResponse{Error: MessageMalformedJSON}
	case ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge, ErrorResponse{Error: MessageRequestTooLarge}
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, ErrorResponse{Error: MessageRateLimited}
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout, ErrorResponse{Error: MessageTimeout}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: MessageInternalError}
	}
}
