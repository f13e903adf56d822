package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	cleanupservice "github.com/shopforge/shopforge/internal/service/cleanupservice"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestSweepHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Sweep counters returned",
			prepareMock: func() {
				service.EXPECT().
					Sweep(gomock.Any(), 0).
					Return(&cleanupservice.SweepResult{ShopsDeleted: 2, SubscriptionsExpired: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Sweep(gomock.Any(), 0).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/cleanup/sweep", nil)
			w := httptest.NewRecorder()
			handler.Sweep(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var body cleanupservice.SweepResult
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 2, body.ShopsDeleted)
				assert.Equal(t, int64(3), body.SubscriptionsExpired)
			}
		})
	}
}

func TestTokenMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		configured   string
		header       string
		expectedCode int
	}{
		{name: "Valid token", configured: "op-secret", header: "op-secret", expectedCode: http.StatusOK},
		{name: "Wrong token", configured: "op-secret", header: "guess", expectedCode: http.StatusUnauthorized},
		{name: "Missing token", configured: "op-secret", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Disabled surface", configured: "", header: "anything", expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/cleanup/sweep", nil)
			if tt.header != "" {
				r.Header.Set("X-Admin-Token", tt.header)
			}
			w := httptest.NewRecorder()
			TokenMiddleware(tt.configured)(next).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
