// Package server provides the HTTP server for the cicd-demo app.
//
// the server is configured through environment variables
// (see internal/config/config.go for details)
//
// Requests pass through the middleware chain (request id, logging, panic recovery,
// security headers, CORS, rate limiting, timeout, JSON body parsing, static files)
// before being routed. Requests that match neither a static file nor a route get
// the JSON not found response.
//
// middleware is in internal/server/middleware, handlers in internal/server/handlers
package server
