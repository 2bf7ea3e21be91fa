package handlers

import (
	"net/http"
	"time"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
)

const (
	// InfoMessage is returned in the message field of the root endpoint
	InfoMessage = "🚀 CI/CD Demo Application"

	HealthPath = "/health"
	DocsPath   = "/api-docs"

	// timestampFormat is ISO-8601 in UTC with millisecond precision
	timestampFormat = "2006-01-02T15:04:05.000Z"
)

// HandleInfo godoc
//
//	@Summary		Service information
//	@Description	Returns the service name, version, environment and the paths of the other endpoints.
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	api.InfoResponse
//	@Router			/ [get]
func HandleInfo(version, environment string, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.RespondWithJSONPayload(w, http.StatusOK, api.InfoResponse{
			Message:     InfoMessage,
			Version:     version,
			Environment: environment,
			Timestamp:   now().UTC().Format(timestampFormat),
			Endpoints: api.Endpoints{
				Health: HealthPath,
				Docs:   DocsPath,
			},
		})
	}
}
