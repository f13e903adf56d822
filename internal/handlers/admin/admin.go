package admin

import (
	"context"
	"crypto/subtle"
	"net/http"

	cleanupservice "github.com/shopforge/shopforge/internal/service/cleanupservice"
	"github.com/shopforge/shopforge/pkg/utils"
)

// operatorActorID marks audit entries produced by the admin API rather than
// a user account.
const operatorActorID = 0

type Service interface {
	Sweep(ctx context.Context, actorID int) (*cleanupservice.SweepResult, error)
}

type AdminHandler struct {
	cleanupService Service
}

func New(cleanupService Service) *AdminHandler {
	return &AdminHandler{
		cleanupService: cleanupService,
	}
}

// TokenMiddleware guards the admin routes with a static operator token. An
// empty configured token disables the surface entirely.
func TokenMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				utils.RespondWithError(w, http.StatusForbidden, "admin api disabled")
				return
			}
			got := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				utils.RespondWithError(w, http.StatusUnauthorized, "bad admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Sweep godoc
//
//	@Summary		Run the cleanup sweep now
//	@Description	Hard-delete shops whose grace period has passed and expire overdue feature subscriptions.
//	@Tags			Admin
//	@Produce		json
//	@Param			X-Admin-Token	header		string						true	"Operator token"
//	@Success		200				{object}	cleanupservice.SweepResult	"Sweep counters"
//	@Failure		401				{object}	utils.Response				"Bad admin token"
//	@Failure		403				{object}	utils.Response				"Admin api disabled"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/cleanup/sweep [post]
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.cleanupService.Sweep(r.Context(), operatorActorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
