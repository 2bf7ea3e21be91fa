package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
)

type jsonBodyKey struct{}

// JSONBody returns a middleware that parses JSON request bodies.
//
// Only requests with an application/json (or +json) content type and a non-empty body are parsed.
// The top level value must be an object or an array. Malformed bodies are rejected with 400
// and bodies larger than maxBytes with 413, before any route handler runs.
//
// The parsed value is available to handlers via JSONBodyFromContext. r.Body is replaced
// with a reader over the original bytes so handlers can also decode into their own types.
func JSONBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !isJSONContentType(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Content-Length header for early rejection
			if r.ContentLength > maxBytes {
				api.RespondWithError(w, r, api.NewRequestTooLargeError(
					fmt.Sprintf("request body size (%d bytes) exceeds maximum allowed size (%d bytes)", r.ContentLength, maxBytes),
				))
				return
			}

			// read one byte past the limit to detect oversized bodies without a (correct) Content-Length
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
			_ = r.Body.Close()
			if err != nil {
				api.RespondWithError(w, r, api.WrapMalformedJSONError(err, "failed to read request body"))
				return
			}
			if int64(len(body)) > maxBytes {
				api.RespondWithError(w, r, api.NewRequestTooLargeError(
					fmt.Sprintf("request body exceeds maximum allowed size (%d bytes)", maxBytes),
				))
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))

			trimmed := bytes.TrimSpace(body)
			if len(trimmed) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			parsed, err := parseJSON(trimmed)
			if err != nil {
				api.RespondWithError(w, r, api.WrapMalformedJSONError(err, "invalid JSON request body"))
				return
			}

			ctx := context.WithValue(r.Context(), jsonBodyKey{}, parsed)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// JSONBodyFromContext returns the parsed request body (a map[string]any or []any).
// ok is false when the request had no JSON body.
func JSONBodyFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(jsonBodyKey{})
	return v, v != nil
}

// parseJSON decodes a single JSON object or array. Numbers are kept as json.Number.
func parseJSON(data []byte) (any, error) {
	if data[0] != '{' && data[0] != '[' {
		return nil, errors.New("JSON body must be an object or an array")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level JSON value")
	}
	return v, nil
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
