package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/dto"
	ledgerservice "github.com/shopforge/shopforge/internal/service/ledgerservice"
	"github.com/shopforge/shopforge/pkg/auth"
)

func NewMock(t *testing.T) (*BillingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), 1).Return(int64(5000), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Credits: 5000},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Balance(gomock.Any(), 1).Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/billing/balance", nil)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	shopID := 7
	now := time.Now().UTC().Truncate(time.Second)

	service.EXPECT().
		Transactions(gomock.Any(), 1).
		Return([]domain.CreditTransaction{
			{ID: 42, Amount: -1000, Reason: domain.ReasonShopCreation, RelatedShopID: &shopID, BalanceAfter: 4000, CreatedAt: now},
			{ID: 41, Amount: 5000, Reason: domain.ReasonInitialGrant, BalanceAfter: 5000, CreatedAt: now},
		}, nil)

	r := authedRequest(http.MethodGet, "/api/billing/transactions", nil)
	w := httptest.NewRecorder()
	handler.GetTransactions(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.TransactionResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, int64(-1000), body[0].Amount)
	assert.Equal(t, "shop_creation", body[0].Reason)
	assert.Equal(t, &shopID, body[0].RelatedShopID)
	assert.Equal(t, int64(4000), body[0].BalanceAfter)
}

func TestTopupHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Voucher redeemed",
			body: `{"voucher_code":"2377225624"}`,
			prepareMock: func() {
				service.EXPECT().Topup(gomock.Any(), 1, "2377225624").Return(int64(6000), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid voucher",
			body: `{"voucher_code":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Topup(gomock.Any(), 1, "1234").Return(int64(0), ledgerservice.ErrInvalidVoucher)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Malformed body",
			body:         "{not json",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"voucher_code":"2377225624"}`,
			prepareMock: func() {
				service.EXPECT().Topup(gomock.Any(), 1, "2377225624").Return(int64(0), errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/billing/topup", []byte(tt.body))
			w := httptest.NewRecorder()
			handler.Topup(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.TopupResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, int64(6000), body.Credits)
			}
		})
	}
}
