package handlers

import (
	"net/http"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
	"github.com/information-sharing-networks/cicd-demo/internal/version"
)

// HandleVersion godoc
//
//	@Summary		Get version information
//	@Description	Returns the version and build information for the service
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	api.VersionResponse	"Version information"
//	@Router			/version [get]
func HandleVersion(v version.Info) http.HandlerFunc {
	// Pre-create the response to avoid allocating on every request
	response := api.VersionResponse{
		Version:   v.Version,
		BuildDate: v.BuildDate,
		GitCommit: v.GitCommit,
		Service:   "cicd-demo",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		api.RespondWithJSONPayload(w, http.StatusOK, response)
	}
}
