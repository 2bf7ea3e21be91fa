// Package handlers provides the HTTP handlers for the service routes
// (info, version, api docs) and the fallback handlers (not found, error boundary).
//
// The health routes live in internal/health and are mounted by the server.
package handlers
