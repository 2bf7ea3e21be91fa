package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
	"github.com/information-sharing-networks/cicd-demo/internal/logger"
)

// Recoverer is the last line of the error boundary: it recovers panics raised by later
// stages, logs the panic value with the stack trace and responds with the generic
// internal error body.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection. The same
// happens when the handler already started its response: appending a JSON body to a
// partial response would corrupt it, so the connection is aborted instead.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.ContextRequestLogger(r.Context()).Error("panic recovered",
				slog.String("panic", fmt.Sprint(rvr)),
				slog.String("stack", string(debug.Stack())),
				slog.Bool("response_started", ww.Status() != 0),
			)

			if ww.Status() != 0 {
				panic(http.ErrAbortHandler)
			}

			_, body := api.MapErrorToResponse(api.NewInternalError("panic"))
			api.RespondWithJSONPayload(ww, http.StatusInternalServerError, body)
		}()

		next.ServeHTTP(ww, r)
	})
}
