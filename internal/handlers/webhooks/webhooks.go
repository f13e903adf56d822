package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopforge/shopforge/internal/dto"
	shopservice "github.com/shopforge/shopforge/internal/service/shopservice"
	"github.com/shopforge/shopforge/pkg/utils"
)

type Service interface {
	HandleDeploymentWebhook(ctx context.Context, appName, token, runID, status, message string) error
}

type WebhookHandler struct {
	shopService Service
}

func New(shopService Service) *WebhookHandler {
	return &WebhookHandler{
		shopService: shopService,
	}
}

// Deployment godoc
//
//	@Summary		Receive a deployment status callback
//	@Description	Authenticated by the per-shop webhook secret as a bearer token. Unknown app names return 404 with no detail so the endpoint is not probeable.
//	@Tags			Webhooks
//	@Accept			json
//	@Param			request	body	dto.DeploymentWebhookRequestDTO	true	"Status payload"
//	@Success		204		{string}	string			"Status recorded"
//	@Failure		400		{object}	utils.Response	"Malformed request body"
//	@Failure		401		{object}	utils.Response	"Bad webhook secret"
//	@Failure		404		{string}	string			"Unknown app"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/deployment [post]
func (h *WebhookHandler) Deployment(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	var req dto.DeploymentWebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AppName == "" || req.RunID == "" || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "app_name, run_id and status are required")
		return
	}

	err := h.shopService.HandleDeploymentWebhook(r.Context(), req.AppName, token, req.RunID, req.Status, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, shopservice.ErrShopNotFound):
			// No body so unknown app names are indistinguishable from
			// missing routes.
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shopservice.ErrWebhookAuth):
			utils.RespondWithError(w, http.StatusUnauthorized, "bad webhook secret")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
