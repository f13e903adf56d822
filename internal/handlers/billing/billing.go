package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/dto"
	ledgerservice "github.com/shopforge/shopforge/internal/service/ledgerservice"
	"github.com/shopforge/shopforge/pkg/auth"
	"github.com/shopforge/shopforge/pkg/utils"
)

type Service interface {
	Balance(ctx context.Context, userID int) (int64, error)
	Transactions(ctx context.Context, userID int) ([]domain.CreditTransaction, error)
	Topup(ctx context.Context, userID int, voucherCode string) (int64, error)
}

type BillingHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BillingHandler {
	return &BillingHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current credit balance
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current credits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/billing/balance [get]
func (h *BillingHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	credits, err := h.ledgerService.Balance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Credits: credits})
}

// GetTransactions godoc
//
//	@Summary		List credit ledger entries
//	@Description	Every debit and credit against the account, newest first, with the balance after each entry.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Ledger entries"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/billing/transactions [get]
func (h *BillingHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txs, err := h.ledgerService.Transactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, dto.TransactionResponseDTO{
			ID:            tx.ID,
			Amount:        tx.Amount,
			Reason:        string(tx.Reason),
			RelatedShopID: tx.RelatedShopID,
			BalanceAfter:  tx.BalanceAfter,
			CreatedAt:     tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Topup godoc
//
//	@Summary		Redeem a top-up voucher
//	@Description	Credit the account with the fixed value of a prepaid voucher code.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopupRequestDTO		true	"Voucher payload"
//	@Success		200		{object}	dto.TopupResponseDTO	"New balance"
//	@Failure		400		{object}	utils.Response			"Malformed request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	utils.Response			"Invalid voucher code"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/billing/topup [post]
func (h *BillingHandler) Topup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TopupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	credits, err := h.ledgerService.Topup(r.Context(), userID, req.VoucherCode)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidVoucher):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid voucher code")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopupResponseDTO{Credits: credits})
}
