package handlers

import (
	"net/http"

	"github.com/swaggo/swag"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
	_ "github.com/information-sharing-networks/cicd-demo/internal/docs" // registers the swagger document
)

// HandleAPIDocs godoc
//
//	@Summary		OpenAPI document
//	@Description	Returns this OpenAPI document.
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	object	"swagger 2.0 document"
//	@Router			/api-docs [get]
func HandleAPIDocs(w http.ResponseWriter, r *http.Request) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return api.WrapInternalError(err, "failed to render OpenAPI document")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
	return nil
}
