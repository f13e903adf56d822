package cleanupservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopforge/shopforge/internal/domain"
)

var ErrNotDeleted = errors.New("shop is not soft-deleted")

const sweepConcurrency = 4

type ShopRepo interface {
	FindByID(ctx context.Context, shopID int) (*domain.Shop, error)
	ListHardDeleteDue(ctx context.Context, now time.Time) ([]domain.Shop, error)
	Delete(ctx context.Context, shopID int) error
}

type SubscriptionRepo interface {
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type ComputeClient interface {
	DestroyApp(appName string) error
}

type AuditRepo interface {
	Record(ctx context.Context, entry *domain.AuditLog)
}

type Service struct {
	shopRepo ShopRepo
	subRepo  SubscriptionRepo
	compute  ComputeClient
	audit    AuditRepo
}

func New(shopRepo ShopRepo, subRepo SubscriptionRepo, compute ComputeClient, audit AuditRepo) *Service {
	return &Service{
		shopRepo: shopRepo,
		subRepo:  subRepo,
		compute:  compute,
		audit:    audit,
	}
}

// SweepResult reports what one sweep pass touched.
type SweepResult struct {
	ShopsDeleted         int   `json:"shops_deleted"`
	ShopsFailed          int   `json:"shops_failed"`
	SubscriptionsExpired int64 `json:"subscriptions_expired"`
}

// Sweep hard-deletes every shop whose grace period ran out and expires due
// subscriptions. Individual shop failures are counted, logged and skipped so
// one stuck tenant never stalls the rest of the pass.
func (s *Service) Sweep(ctx context.Context, actorID int) (*SweepResult, error) {
	due, err := s.shopRepo.ListHardDeleteDue(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	var result SweepResult
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)
	results := make(chan error, len(due))
	for _, shop := range due {
		shop := shop
		g.Go(func() error {
			results <- s.hardDelete(gctx, actorID, &shop)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)
	for err := range results {
		if err != nil {
			result.ShopsFailed++
		} else {
			result.ShopsDeleted++
		}
	}

	expired, err := s.subRepo.ExpireDue(ctx, time.Now())
	if err != nil {
		zap.L().Error("can't expire due subscriptions", zap.Error(err))
	}
	result.SubscriptionsExpired = expired
	return &result, nil
}

// HardDelete removes a single soft-deleted shop immediately, regardless of
// its scheduled hard-delete time.
func (s *Service) HardDelete(ctx context.Context, actorID, shopID int) error {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return err
	}
	if shop == nil || shop.Status != domain.ShopDeleted {
		return ErrNotDeleted
	}
	return s.hardDelete(ctx, actorID, shop)
}

// hardDelete tears the compute app down best-effort, then removes the shop
// row. Dependent rows go with it via foreign keys; the ledger keeps its
// entries because transactions only null out their shop reference.
func (s *Service) hardDelete(ctx context.Context, actorID int, shop *domain.Shop) error {
	if err := s.compute.DestroyApp(shop.AppName); err != nil {
		zap.L().Warn("can't destroy compute app, continuing with row delete",
			zap.String("appName", shop.AppName),
			zap.Error(err),
		)
	}
	if err := s.shopRepo.Delete(ctx, shop.ID); err != nil {
		zap.L().Error("can't hard-delete shop", zap.Int("shopID", shop.ID), zap.Error(err))
		return err
	}
	s.audit.Record(ctx, &domain.AuditLog{
		ActorID:      actorID,
		Action:       "shop.hard_delete",
		ResourceType: "shop",
		ResourceID:   shop.ID,
		Details:      fmt.Sprintf("app_name=%s", shop.AppName),
	})
	return nil
}
