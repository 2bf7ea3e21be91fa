package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
)

// Timeout cancels the request context after timeout. Handlers are expected to watch
// r.Context().Done() and return once it is closed.
//
// When the deadline passes before anything was written the client gets a 504 with
// the standard JSON error body. A response that was already started is left alone.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				api.RespondWithError(w, r, api.NewTimeoutError("request exceeded "+timeout.String()))
			}
		})
	}
}
