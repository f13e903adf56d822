package shopservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shopforge/shopforge/internal/domain"
)

type mocks struct {
	userRepo   *MockUserRepo
	shopRepo   *MockShopRepo
	deployRepo *MockDeploymentRepo
	secretRepo *MockSecretRepo
	ledger     *MockLedger
	queue      *MockQueue
	auditRepo  *MockAuditRepo
	hasher     *MockHasher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		userRepo:   NewMockUserRepo(ctrl),
		shopRepo:   NewMockShopRepo(ctrl),
		deployRepo: NewMockDeploymentRepo(ctrl),
		secretRepo: NewMockSecretRepo(ctrl),
		ledger:     NewMockLedger(ctrl),
		queue:      NewMockQueue(ctrl),
		auditRepo:  NewMockAuditRepo(ctrl),
		hasher:     NewMockHasher(ctrl),
	}
	service := New(m.userRepo, m.shopRepo, m.deployRepo, m.secretRepo, m.ledger, m.queue, m.auditRepo, m.hasher, 1000)
	defer ctrl.Finish()
	return service, m
}

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain name", input: "My Shop", expected: "my-shop"},
		{name: "punctuation collapses", input: "Anna's  Cafe!!", expected: "anna-s-cafe"},
		{name: "leading and trailing junk trimmed", input: "--Shop 42--", expected: "shop-42"},
		{name: "only junk yields empty", input: "!!!", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveSlug(tt.input))
		})
	}
}

func TestCreateShop(t *testing.T) {
	in := CreateShopInput{
		ShopName:      "My Shop",
		AdminEmail:    "owner@example.com",
		AdminPassword: "secret",
	}

	expectHappyTail := func(m *mocks, chargedAmount int64) {
		m.shopRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, shop *domain.Shop) (*domain.Shop, error) {
				created := *shop
				created.ID = 7
				return &created, nil
			})
		m.secretRepo.EXPECT().GetByShop(gomock.Any(), 7).Return(nil, nil)
		m.secretRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.ShopSecret{ShopID: 7}, nil)
		m.deployRepo.EXPECT().Create(gomock.Any(), 7).Return(&domain.Deployment{ID: 11, ShopID: 7, Status: domain.DeploymentQueued}, nil)
		m.queue.EXPECT().
			Enqueue(gomock.Any(), 11, 7, 1, chargedAmount, gomock.Any()).
			Return(&domain.ProvisionJob{ID: 3}, nil)
		m.auditRepo.EXPECT().Record(gomock.Any(), gomock.Any())
	}

	tests := []struct {
		name            string
		prepareMock     func(m *mocks)
		expectedCharged bool
		expectedError   error
	}{
		{
			name: "first shop rides the free grant",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().SlugTaken(gomock.Any(), "my-shop", "sf-my-shop").Return(false, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, FirstShopRedeemed: false}, nil)
				m.userRepo.EXPECT().MarkFirstShopRedeemed(gomock.Any(), 1).Return(true, nil)
				m.hasher.EXPECT().HashPassword("secret").Return("$2a$hash", nil)
				expectHappyTail(m, 0)
			},
			expectedCharged: false,
		},
		{
			name: "second shop is debited",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().SlugTaken(gomock.Any(), "my-shop", "sf-my-shop").Return(false, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, FirstShopRedeemed: true}, nil)
				m.ledger.EXPECT().
					Debit(gomock.Any(), 1, int64(1000), domain.ReasonShopCreation, nil).
					Return(int64(0), nil)
				m.hasher.EXPECT().HashPassword("secret").Return("$2a$hash", nil)
				expectHappyTail(m, 1000)
			},
			expectedCharged: true,
		},
		{
			name: "losing the free-grant race falls back to a debit",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().SlugTaken(gomock.Any(), "my-shop", "sf-my-shop").Return(false, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, FirstShopRedeemed: false}, nil)
				m.userRepo.EXPECT().MarkFirstShopRedeemed(gomock.Any(), 1).Return(false, nil)
				m.ledger.EXPECT().
					Debit(gomock.Any(), 1, int64(1000), domain.ReasonShopCreation, nil).
					Return(int64(0), nil)
				m.hasher.EXPECT().HashPassword("secret").Return("$2a$hash", nil)
				expectHappyTail(m, 1000)
			},
			expectedCharged: true,
		},
		{
			name: "taken slug rejects before billing",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().SlugTaken(gomock.Any(), "my-shop", "sf-my-shop").Return(true, nil)
			},
			expectedError: ErrSlugTaken,
		},
		{
			name: "insufficient credits propagate",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().SlugTaken(gomock.Any(), "my-shop", "sf-my-shop").Return(false, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, FirstShopRedeemed: true}, nil)
				m.ledger.EXPECT().
					Debit(gomock.Any(), 1, int64(1000), domain.ReasonShopCreation, nil).
					Return(int64(0), &domain.InsufficientCreditsError{Need: 1000, Have: 250})
			},
			expectedError: &domain.InsufficientCreditsError{Need: 1000, Have: 250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.CreateShop(context.Background(), 1, in)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCharged, result.Charged)
			assert.Equal(t, "my-shop", result.Shop.Slug)
			assert.Equal(t, "sf-my-shop", result.Shop.AppName)
			assert.Equal(t, domain.DeploymentQueued, result.Deployment.Status)
		})
	}
}

func TestCreateShopCompensation(t *testing.T) {
	service, m := NewMock(t)

	m.shopRepo.EXPECT().SlugTaken(gomock.Any(), "my-shop", "sf-my-shop").Return(false, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, FirstShopRedeemed: true}, nil)
	m.ledger.EXPECT().
		Debit(gomock.Any(), 1, int64(1000), domain.ReasonShopCreation, nil).
		Return(int64(0), nil)
	m.hasher.EXPECT().HashPassword("secret").Return("$2a$hash", nil)
	m.shopRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, shop *domain.Shop) (*domain.Shop, error) {
			created := *shop
			created.ID = 7
			return &created, nil
		})
	m.secretRepo.EXPECT().GetByShop(gomock.Any(), 7).Return(&domain.ShopSecret{ShopID: 7}, nil)
	m.deployRepo.EXPECT().Create(gomock.Any(), 7).Return(&domain.Deployment{ID: 11, ShopID: 7}, nil)
	m.queue.EXPECT().
		Enqueue(gomock.Any(), 11, 7, 1, int64(1000), gomock.Any()).
		Return(nil, errors.New("queue unavailable"))

	// The failed enqueue must refund the charge and park shop and
	// deployment in failed state.
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, gomock.Any()).
		Return(true, nil)
	m.ledger.EXPECT().
		Credit(gomock.Any(), 1, int64(1000), domain.ReasonRefund, gomock.Any()).
		Return(int64(1000), nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)
	m.auditRepo.EXPECT().Record(gomock.Any(), gomock.Any())

	result, err := service.CreateShop(context.Background(), 1, CreateShopInput{
		ShopName:      "My Shop",
		AdminEmail:    "owner@example.com",
		AdminPassword: "secret",
	})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "enqueue provisioning job")
}

func TestCreateShopDuplicateSlugRace(t *testing.T) {
	// The SlugTaken pre-check passes, then a concurrent create wins the
	// insert. The unique-constraint error must refund the charge and
	// read as the usual slug conflict, not an internal error.
	service, m := NewMock(t)

	m.shopRepo.EXPECT().SlugTaken(gomock.Any(), "my-shop", "sf-my-shop").Return(false, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, FirstShopRedeemed: true}, nil)
	m.ledger.EXPECT().
		Debit(gomock.Any(), 1, int64(1000), domain.ReasonShopCreation, nil).
		Return(int64(0), nil)
	m.hasher.EXPECT().HashPassword("secret").Return("$2a$hash", nil)
	m.shopRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateSlug)
	m.ledger.EXPECT().
		Credit(gomock.Any(), 1, int64(1000), domain.ReasonRefund, gomock.Nil()).
		Return(int64(1000), nil)

	result, err := service.CreateShop(context.Background(), 1, CreateShopInput{
		ShopName:      "My Shop",
		AdminEmail:    "owner@example.com",
		AdminPassword: "secret",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestDeleteShop(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "soft delete schedules hard delete",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Shop{ID: 7, OwnerID: 1, Status: domain.ShopActive}, nil)
				m.shopRepo.EXPECT().SoftDelete(gomock.Any(), 7, gomock.Any(), gomock.Any()).Return(nil)
				m.auditRepo.EXPECT().Record(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "deleting twice is a no-op",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Shop{ID: 7, OwnerID: 1, Status: domain.ShopDeleted}, nil)
			},
		},
		{
			name: "unknown shop",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrShopNotFound,
		},
		{
			name: "foreign shop is rejected",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Shop{ID: 7, OwnerID: 2}, nil)
			},
			expectedError: ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.DeleteShop(context.Background(), 1, 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHandleDeploymentWebhook(t *testing.T) {
	shop := &domain.Shop{ID: 7, OwnerID: 1, AppName: "sf-my-shop"}
	secret := &domain.ShopSecret{ShopID: 7, WebhookSecret: "hook-token"}

	tests := []struct {
		name          string
		token         string
		status        string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "success commits deployment and activates shop",
			token:  "hook-token",
			status: "success",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByAppName(gomock.Any(), "sf-my-shop").Return(shop, nil)
				m.secretRepo.EXPECT().GetByShop(gomock.Any(), 7).Return(secret, nil)
				m.deployRepo.EXPECT().FindByRunID(gomock.Any(), "run-1").Return(&domain.Deployment{ID: 11, ShopID: 7}, nil)
				m.deployRepo.EXPECT().MarkTerminal(gomock.Any(), 11, domain.DeploymentSuccess, "done").Return(true, nil)
				m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopActive).Return(nil)
			},
		},
		{
			name:   "already-terminal deployment leaves shop untouched",
			token:  "hook-token",
			status: "failed",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByAppName(gomock.Any(), "sf-my-shop").Return(shop, nil)
				m.secretRepo.EXPECT().GetByShop(gomock.Any(), 7).Return(secret, nil)
				m.deployRepo.EXPECT().FindByRunID(gomock.Any(), "run-1").Return(&domain.Deployment{ID: 11, ShopID: 7}, nil)
				m.deployRepo.EXPECT().MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, "done").Return(false, nil)
			},
		},
		{
			name:   "bad token is rejected",
			token:  "forged",
			status: "success",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByAppName(gomock.Any(), "sf-my-shop").Return(shop, nil)
				m.secretRepo.EXPECT().GetByShop(gomock.Any(), 7).Return(secret, nil)
			},
			expectedError: ErrWebhookAuth,
		},
		{
			name:   "unknown app name",
			token:  "hook-token",
			status: "success",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByAppName(gomock.Any(), "sf-my-shop").Return(nil, nil)
			},
			expectedError: ErrShopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.HandleDeploymentWebhook(context.Background(), "sf-my-shop", tt.token, "run-1", tt.status, "done")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
