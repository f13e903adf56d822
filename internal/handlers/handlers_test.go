package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/shopforge/shopforge/docs"
	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/handlers/admin"
	"github.com/shopforge/shopforge/internal/handlers/billing"
	"github.com/shopforge/shopforge/internal/handlers/features"
	"github.com/shopforge/shopforge/internal/handlers/shops"
	"github.com/shopforge/shopforge/internal/handlers/webhooks"
	"github.com/shopforge/shopforge/internal/service"
	"github.com/shopforge/shopforge/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		ShopService:    shops.NewMockService(ctrl),
		BillingService: billing.NewMockService(ctrl),
		FeatureService: features.NewMockService(ctrl),
		CleanupService: admin.NewMockService(ctrl),
		WebhookService: webhooks.NewMockService(ctrl),
	}

	h := New(&config.Config{JWTSecret: "test-secret", AdminToken: "op-secret"}, services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopHandler := NewMockShopHandler(ctrl)
	mockBillingHandler := NewMockBillingHandler(ctrl)
	mockFeatureHandler := NewMockFeatureHandler(ctrl)
	mockWebhookHandler := NewMockWebhookHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockShopHandler.EXPECT().CreateShop(gomock.Any(), gomock.Any()).AnyTimes()
	mockShopHandler.EXPECT().ListShops(gomock.Any(), gomock.Any()).AnyTimes()
	mockShopHandler.EXPECT().GetShop(gomock.Any(), gomock.Any()).AnyTimes()
	mockShopHandler.EXPECT().DeleteShop(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillingHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillingHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockBillingHandler.EXPECT().Topup(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeatureHandler.EXPECT().EnableChatbot(gomock.Any(), gomock.Any()).AnyTimes()
	mockFeatureHandler.EXPECT().SSOToken(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().Deployment(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Sweep(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("test-secret")
	h := &Handlers{
		ShopHandler:    mockShopHandler,
		BillingHandler: mockBillingHandler,
		FeatureHandler: mockFeatureHandler,
		WebhookHandler: mockWebhookHandler,
		AdminHandler:   mockAdminHandler,
		jwtService:     jwtService,
		adminToken:     "op-secret",
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := jwtService.GenerateJWT(1, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		auth   string
		admin  string
		status int
	}{
		{"POST", "/api/webhooks/deployment", "", "", http.StatusOK},
		{"POST", "/api/shops/", "", "", http.StatusUnauthorized},
		{"GET", "/api/shops/", "", "", http.StatusUnauthorized},
		{"GET", "/api/shops/", token, "", http.StatusOK},
		{"GET", "/api/shops/7/", token, "", http.StatusOK},
		{"POST", "/api/shops/7/features/chatbot", token, "", http.StatusOK},
		{"GET", "/api/shops/7/features/chatbot/sso", token, "", http.StatusOK},
		{"GET", "/api/billing/balance", "", "", http.StatusUnauthorized},
		{"GET", "/api/billing/balance", token, "", http.StatusOK},
		{"GET", "/api/billing/transactions", token, "", http.StatusOK},
		{"POST", "/api/billing/topup", token, "", http.StatusOK},
		{"POST", "/api/admin/cleanup/sweep", "", "", http.StatusUnauthorized},
		{"POST", "/api/admin/cleanup/sweep", "", "op-secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", "Bearer "+tt.auth)
			}
			if tt.admin != "" {
				req.Header.Set("X-Admin-Token", tt.admin)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
