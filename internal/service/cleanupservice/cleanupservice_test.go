package cleanupservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shopforge/shopforge/internal/domain"
)

type mocks struct {
	shopRepo *MockShopRepo
	subRepo  *MockSubscriptionRepo
	compute  *MockComputeClient
	audit    *MockAuditRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		shopRepo: NewMockShopRepo(ctrl),
		subRepo:  NewMockSubscriptionRepo(ctrl),
		compute:  NewMockComputeClient(ctrl),
		audit:    NewMockAuditRepo(ctrl),
	}
	service := New(m.shopRepo, m.subRepo, m.compute, m.audit)
	defer ctrl.Finish()
	return service, m
}

func deletedShop(id int, appName string) domain.Shop {
	past := time.Now().Add(-time.Hour)
	return domain.Shop{
		ID:                    id,
		AppName:               appName,
		Status:                domain.ShopDeleted,
		DeletedAt:             &past,
		ScheduledHardDeleteAt: &past,
	}
}

func TestSweep(t *testing.T) {
	service, m := NewMock(t)

	due := []domain.Shop{deletedShop(1, "sf-one"), deletedShop(2, "sf-two")}
	m.shopRepo.EXPECT().ListHardDeleteDue(gomock.Any(), gomock.Any()).Return(due, nil)

	// sf-one: compute teardown fails but the row delete still proceeds.
	m.compute.EXPECT().DestroyApp("sf-one").Return(errors.New("api down"))
	m.shopRepo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
	m.compute.EXPECT().DestroyApp("sf-two").Return(nil)
	m.shopRepo.EXPECT().Delete(gomock.Any(), 2).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Times(2)

	m.subRepo.EXPECT().ExpireDue(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	result, err := service.Sweep(context.Background(), 99)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.ShopsDeleted)
	assert.Equal(t, 0, result.ShopsFailed)
	assert.Equal(t, int64(3), result.SubscriptionsExpired)
}

func TestSweep_RowDeleteFailureIsCounted(t *testing.T) {
	service, m := NewMock(t)

	m.shopRepo.EXPECT().
		ListHardDeleteDue(gomock.Any(), gomock.Any()).
		Return([]domain.Shop{deletedShop(1, "sf-one")}, nil)
	m.compute.EXPECT().DestroyApp("sf-one").Return(nil)
	m.shopRepo.EXPECT().Delete(gomock.Any(), 1).Return(errors.New("db down"))
	m.subRepo.EXPECT().ExpireDue(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	result, err := service.Sweep(context.Background(), 99)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.ShopsDeleted)
	assert.Equal(t, 1, result.ShopsFailed)
}

func TestHardDelete(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "deletes a soft-deleted shop",
			prepareMock: func(m *mocks) {
				shop := deletedShop(7, "sf-my-shop")
				m.shopRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&shop, nil)
				m.compute.EXPECT().DestroyApp("sf-my-shop").Return(nil)
				m.shopRepo.EXPECT().Delete(gomock.Any(), 7).Return(nil)
				m.audit.EXPECT().Record(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "refuses a live shop",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Shop{ID: 7, Status: domain.ShopActive}, nil)
			},
			expectedError: ErrNotDeleted,
		},
		{
			name: "refuses an unknown shop",
			prepareMock: func(m *mocks) {
				m.shopRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrNotDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.HardDelete(context.Background(), 99, 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
