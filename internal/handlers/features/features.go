package features

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/dto"
	featureservice "github.com/shopforge/shopforge/internal/service/featureservice"
	"github.com/shopforge/shopforge/pkg/auth"
	"github.com/shopforge/shopforge/pkg/utils"
)

type Service interface {
	EnableChatbot(ctx context.Context, userID, shopID int) (*domain.Subscription, error)
	SSOToken(ctx context.Context, userID, shopID int) (string, error)
}

type FeatureHandler struct {
	featureService Service
}

func New(featureService Service) *FeatureHandler {
	return &FeatureHandler{
		featureService: featureService,
	}
}

// EnableChatbot godoc
//
//	@Summary		Enable the chatbot feature for a shop
//	@Description	Debit the feature cost, register the shop with the chatbot platform and inject the credentials into the shop runtime. A failed enablement is fully refunded.
//	@Tags			Features
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Shop ID"
//	@Success		200	{object}	dto.SubscriptionResponseDTO	"Active subscription"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		402	{object}	dto.InsufficientCreditsResponseDTO	"Insufficient credits"
//	@Failure		404	{object}	utils.Response				"Shop not found"
//	@Failure		409	{object}	utils.Response				"Feature already enabled"
//	@Failure		422	{object}	utils.Response				"Shop is not active"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/shops/{id}/features/chatbot [post]
func (h *FeatureHandler) EnableChatbot(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	shopID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid shop id")
		return
	}

	sub, err := h.featureService.EnableChatbot(r.Context(), userID, shopID)
	if err != nil {
		var insufficient *domain.InsufficientCreditsError
		switch {
		case errors.Is(err, featureservice.ErrShopNotFound), errors.Is(err, featureservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusNotFound, "shop not found")
		case errors.Is(err, featureservice.ErrShopNotActive):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, featureservice.ErrAlreadyEnabled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.As(err, &insufficient):
			utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.InsufficientCreditsResponseDTO{
				Message: "insufficient credits",
				Need:    insufficient.Need,
				Have:    insufficient.Have,
			})
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SubscriptionResponseDTO{
		Feature:   sub.Feature,
		Status:    string(sub.Status),
		ExpiresAt: sub.ExpiresAt,
	})
}

// SSOToken godoc
//
//	@Summary		Mint a single sign-on token for the shop admin panel
//	@Tags			Features
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Shop ID"
//	@Success		200	{object}	dto.SSOTokenResponseDTO	"Short-lived SSO token"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Shop not found"
//	@Failure		409	{object}	utils.Response			"Shop has no secrets provisioned"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/shops/{id}/features/chatbot/sso [get]
func (h *FeatureHandler) SSOToken(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	shopID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid shop id")
		return
	}

	token, err := h.featureService.SSOToken(r.Context(), userID, shopID)
	if err != nil {
		switch {
		case errors.Is(err, featureservice.ErrShopNotFound), errors.Is(err, featureservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusNotFound, "shop not found")
		case errors.Is(err, featureservice.ErrNoSecret):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SSOTokenResponseDTO{Token: token})
}
