package shops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/dto"
	shopservice "github.com/shopforge/shopforge/internal/service/shopservice"
	"github.com/shopforge/shopforge/pkg/auth"
	"github.com/shopforge/shopforge/pkg/utils"
)

type Service interface {
	CreateShop(ctx context.Context, userID int, in shopservice.CreateShopInput) (*shopservice.CreateShopResult, error)
	ListShops(ctx context.Context, userID int) ([]domain.Shop, error)
	GetShop(ctx context.Context, userID, shopID int) (*domain.Shop, *domain.Deployment, error)
	DeleteShop(ctx context.Context, userID, shopID int) error
}

type ShopHandler struct {
	shopService Service
}

func New(shopService Service) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// CreateShop godoc
//
//	@Summary		Provision a new shop
//	@Description	Charge the owner (first shop is free), create the shop record and queue an asynchronous deployment. The response never carries the provisioning outcome.
//	@Tags			Shops
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateShopRequestDTO	true	"Shop creation payload"
//	@Success		202		{object}	dto.CreateShopResponseDTO	"Shop accepted for provisioning"
//	@Failure		400		{object}	utils.Response				"Malformed request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	dto.InsufficientCreditsResponseDTO	"Insufficient credits"
//	@Failure		409		{object}	utils.Response				"Slug already taken"
//	@Failure		422		{object}	utils.Response				"Invalid shop name"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/shops [post]
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateShopRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.shopService.CreateShop(r.Context(), userID, shopservice.CreateShopInput{
		ShopName:      req.ShopName,
		Plan:          req.Plan,
		CustomDomain:  req.CustomDomain,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		var insufficient *domain.InsufficientCreditsError
		switch {
		case errors.Is(err, shopservice.ErrInvalidShopName):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, shopservice.ErrSlugTaken):
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

	utils.RespondWithJSON(w, http.StatusAccepted, dto.CreateShopResponseDTO{
		Shop:         toShopDTO(result.Shop),
		DeploymentID: result.Deployment.ID,
		Charged:      result.Charged,
	})
}

// ListShops godoc
//
//	@Summary		List own shops
//	@Tags			Shops
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ShopResponseDTO	"Shops owned by the caller"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/shops [get]
func (h *ShopHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	shops, err := h.shopService.ListShops(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.ShopResponseDTO, 0, len(shops))
	for i := range shops {
		resp = append(resp, toShopDTO(&shops[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetShop godoc
//
//	@Summary		Get one shop with its latest deployment
//	@Tags			Shops
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Shop ID"
//	@Success		200	{object}	dto.ShopDetailResponseDTO	"Shop and latest deployment"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Shop not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/shops/{id} [get]
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	shopID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid shop id")
		return
	}

	shop, deployment, err := h.shopService.GetShop(r.Context(), userID, shopID)
	if err != nil {
		respondShopError(w, err)
		return
	}

	resp := dto.ShopDetailResponseDTO{Shop: toShopDTO(shop)}
	if deployment != nil {
		resp.Deployment = toDeploymentDTO(deployment)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DeleteShop godoc
//
//	@Summary		Soft-delete a shop
//	@Description	Mark the shop deleted and schedule the hard delete after the grace period. Deleting an already deleted shop is a no-op.
//	@Tags			Shops
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Shop ID"
//	@Success		204	{string}	string			"Shop deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Shop not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/shops/{id} [delete]
func (h *ShopHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	shopID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid shop id")
		return
	}

	if err := h.shopService.DeleteShop(r.Context(), userID, shopID); err != nil {
		respondShopError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// Ownership failures deliberately read as not-found so shop ids are not
// enumerable across accounts.
func respondShopError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shopservice.ErrShopNotFound), errors.Is(err, shopservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusNotFound, "shop not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toShopDTO(shop *domain.Shop) dto.ShopResponseDTO {
	return dto.ShopResponseDTO{
		ID:             shop.ID,
		ShopName:       shop.ShopName,
		Slug:           shop.Slug,
		AppName:        shop.AppName,
		Status:         string(shop.Status),
		Plan:           shop.Plan,
		MaxProducts:    shop.MaxProducts,
		MaxOrders:      shop.MaxOrders,
		CustomDomain:   shop.CustomDomain,
		ChatbotEnabled: shop.ChatbotEnabled,
		CreatedAt:      shop.CreatedAt,
		DeletedAt:      shop.DeletedAt,
	}
}

func toDeploymentDTO(d *domain.Deployment) *dto.DeploymentResponseDTO {
	events := make([]dto.DeploymentEventDTO, 0, len(d.Events))
	for _, ev := range d.Events {
		events = append(events, dto.DeploymentEventDTO{
			Type:    string(ev.Type),
			Message: ev.Message,
			At:      ev.At,
		})
	}
	return &dto.DeploymentResponseDTO{
		ID:            d.ID,
		Status:        string(d.Status),
		ExternalRunID: d.ExternalRunID,
		ErrorMessage:  d.ErrorMessage,
		Events:        events,
		CreatedAt:     d.CreatedAt,
		CompletedAt:   d.CompletedAt,
	}
}
