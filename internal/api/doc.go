// Package api defines the JSON payloads returned by the service and the
// error types used to build error responses.
//
// Every error response has the same shape ({"error": "<message>"}). The message is
// fixed per error code so internal details never reach the client; the full
// error is logged server side.
package api
