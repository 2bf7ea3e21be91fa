package handlers

import (
	"net/http"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
)

// HandlerFunc is a handler that reports failures by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to an http.HandlerFunc. A returned error is logged and mapped to its
// fixed error response; errors that are not *api.Error become 500 "Something went wrong!".
//
// fn must not write to w before returning an error.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			api.RespondWithError(w, r, err)
		}
	}
}

// HandleNotFound responds 404 {"error": "Route not found"}.
// It is also used for requests to a known path with an unsupported method.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	api.RespondWithError(w, r, api.NewNotFoundError("no route for "+r.Method+" "+r.URL.Path))
}
