package logger

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type contextKey int

const (
	requestLoggerKey contextKey = iota
	logAttrsKey
)

// logAttrs collects attributes added by later pipeline stages so they can be
// included in the final request log line.
type logAttrs struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// ContextRequestLogger returns the request-scoped logger, or the default logger
// when the request did not pass through RequestLogging.
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(requestLoggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// ContextWithLogAttrs adds attributes to the final request log line.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	la, ok := ctx.Value(logAttrsKey).(*logAttrs)
	if !ok {
		return
	}
	la.mu.Lock()
	la.attrs = append(la.attrs, attrs...)
	la.mu.Unlock()
}

// RequestLogging returns a middleware that attaches a request-scoped logger to the
// request context and logs one line per completed request.
//
// It should run after middleware.RequestID so the request id is available.
func RequestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With(
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			la := &logAttrs{}
			ctx := context.WithValue(r.Context(), requestLoggerKey, reqLogger)
			ctx = context.WithValue(ctx, logAttrsKey, la)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			la.mu.Lock()
			attrs := append([]slog.Attr{
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
			}, la.attrs...)
			la.mu.Unlock()

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}
			reqLogger.LogAttrs(r.Context(), level, "request completed", attrs...)
		})
	}
}
