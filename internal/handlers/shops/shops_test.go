package shops

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/dto"
	shopservice "github.com/shopforge/shopforge/internal/service/shopservice"
	"github.com/shopforge/shopforge/pkg/auth"
)

func NewMock(t *testing.T) (*ShopHandler, *MockService) {
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

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateShopHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"shop_name":"My Coffee Shop","plan":"basic","admin_email":"owner@example.com","admin_password":"secret-pass"}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Accepted",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateShop(gomock.Any(), 1, shopservice.CreateShopInput{
						ShopName:      "My Coffee Shop",
						Plan:          "basic",
						AdminEmail:    "owner@example.com",
						AdminPassword: "secret-pass",
					}).
					Return(&shopservice.CreateShopResult{
						Shop:       &domain.Shop{ID: 7, ShopName: "My Coffee Shop", Slug: "my-coffee-shop", AppName: "sf-my-coffee-shop", Status: domain.ShopCreating},
						Deployment: &domain.Deployment{ID: 11, Status: domain.DeploymentQueued},
						Charged:    false,
					}, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "Malformed body",
			body:         "{not json",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid shop name",
			body: `{"shop_name":"!!","admin_email":"owner@example.com","admin_password":"secret-pass"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateShop(gomock.Any(), 1, gomock.Any()).
					Return(nil, shopservice.ErrInvalidShopName)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Slug taken",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateShop(gomock.Any(), 1, gomock.Any()).
					Return(nil, shopservice.ErrSlugTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient credits",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateShop(gomock.Any(), 1, gomock.Any()).
					Return(nil, &domain.InsufficientCreditsError{Need: 1000, Have: 250})
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					CreateShop(gomock.Any(), 1, gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/shops", []byte(tt.body))
			w := httptest.NewRecorder()
			handler.CreateShop(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			switch tt.expectedCode {
			case http.StatusAccepted:
				var body dto.CreateShopResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 7, body.Shop.ID)
				assert.Equal(t, "my-coffee-shop", body.Shop.Slug)
				assert.Equal(t, 11, body.DeploymentID)
				assert.False(t, body.Charged)
			case http.StatusPaymentRequired:
				var body dto.InsufficientCreditsResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, int64(1000), body.Need)
				assert.Equal(t, int64(250), body.Have)
			}
		})
	}
}

func TestListShopsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ListShops(gomock.Any(), 1).
		Return([]domain.Shop{
			{ID: 7, ShopName: "My Coffee Shop", Slug: "my-coffee-shop", Status: domain.ShopActive},
			{ID: 8, ShopName: "Second", Slug: "second", Status: domain.ShopCreating},
		}, nil)

	r := authedRequest(http.MethodGet, "/api/shops", nil)
	w := httptest.NewRecorder()
	handler.ListShops(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.ShopResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, "my-coffee-shop", body[0].Slug)
	assert.Equal(t, "creating", body[1].Status)
}

func TestGetShopHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		shopID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Found with deployment",
			shopID: "7",
			prepareMock: func() {
				service.EXPECT().
					GetShop(gomock.Any(), 1, 7).
					Return(
						&domain.Shop{ID: 7, Slug: "my-coffee-shop", Status: domain.ShopActive},
						&domain.Deployment{ID: 11, Status: domain.DeploymentSuccess, Events: []domain.DeploymentEvent{domain.NewDispatchedEvent("9134752")}},
						nil,
					)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Not found",
			shopID: "99",
			prepareMock: func() {
				service.EXPECT().
					GetShop(gomock.Any(), 1, 99).
					Return(nil, nil, shopservice.ErrShopNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Foreign shop reads as not found",
			shopID: "7",
			prepareMock: func() {
				service.EXPECT().
					GetShop(gomock.Any(), 1, 7).
					Return(nil, nil, shopservice.ErrNotOwner)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			shopID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withURLParam(authedRequest(http.MethodGet, "/api/shops/"+tt.shopID, nil), "id", tt.shopID)
			w := httptest.NewRecorder()
			handler.GetShop(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var body dto.ShopDetailResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 7, body.Shop.ID)
				assert.NotNil(t, body.Deployment)
				assert.Equal(t, "success", body.Deployment.Status)
				assert.Len(t, body.Deployment.Events, 1)
			}
		})
	}
}

func TestDeleteShopHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		shopID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Deleted",
			shopID: "7",
			prepareMock: func() {
				service.EXPECT().DeleteShop(gomock.Any(), 1, 7).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Not found",
			shopID: "99",
			prepareMock: func() {
				service.EXPECT().DeleteShop(gomock.Any(), 1, 99).Return(shopservice.ErrShopNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withURLParam(authedRequest(http.MethodDelete, "/api/shops/"+tt.shopID, nil), "id", tt.shopID)
			w := httptest.NewRecorder()
			handler.DeleteShop(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
