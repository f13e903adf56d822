package shopservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/pkg/auth"
)

var (
	ErrInvalidShopName = errors.New("shop name does not yield a usable slug")
	ErrSlugTaken       = errors.New("slug is already taken")
	ErrUserNotFound    = errors.New("user not found")
	ErrShopNotFound    = errors.New("shop not found")
	ErrNotOwner        = errors.New("shop belongs to another user")
	ErrWebhookAuth     = errors.New("webhook token mismatch")
)

const hardDeleteGrace = 7 * 24 * time.Hour

const PlanBasic = "basic"

type planQuota struct {
	maxProducts int
	maxOrders   int
}

var planQuotas = map[string]planQuota{
	PlanBasic: {maxProducts: 100, maxOrders: 1000},
	"pro":     {maxProducts: 10000, maxOrders: 100000},
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	MarkFirstShopRedeemed(ctx context.Context, userID int) (bool, error)
}

type ShopRepo interface {
	Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	FindByID(ctx context.Context, shopID int) (*domain.Shop, error)
	FindByAppName(ctx context.Context, appName string) (*domain.Shop, error)
	FindByOwner(ctx context.Context, userID int) ([]domain.Shop, error)
	SlugTaken(ctx context.Context, slug, appName string) (bool, error)
	UpdateStatus(ctx context.Context, shopID int, status domain.ShopStatus) error
	SoftDelete(ctx context.Context, shopID int, deletedAt, hardDeleteAt time.Time) error
}

type DeploymentRepo interface {
	Create(ctx context.Context, shopID int) (*domain.Deployment, error)
	FindByRunID(ctx context.Context, runID string) (*domain.Deployment, error)
	FindLatestByShop(ctx context.Context, shopID int) (*domain.Deployment, error)
	SetRunning(ctx context.Context, deploymentID int, runID string) error
	MarkTerminal(ctx context.Context, deploymentID int, status domain.DeploymentStatus, message string) (bool, error)
}

type SecretRepo interface {
	Create(ctx context.Context, secret *domain.ShopSecret) (*domain.ShopSecret, error)
	GetByShop(ctx context.Context, shopID int) (*domain.ShopSecret, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error)
	Credit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error)
}

type Queue interface {
	Enqueue(ctx context.Context, deploymentID, shopID, userID int, chargedAmount int64, payload domain.ProvisionPayload) (*domain.ProvisionJob, error)
}

type AuditRepo interface {
	Record(ctx context.Context, entry *domain.AuditLog)
}

type Hasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	userRepo   UserRepo
	shopRepo   ShopRepo
	deployRepo DeploymentRepo
	secretRepo SecretRepo
	ledger     Ledger
	queue      Queue
	auditRepo  AuditRepo
	hasher     Hasher
	shopCost   int64
}

func New(
	userRepo UserRepo,
	shopRepo ShopRepo,
	deployRepo DeploymentRepo,
	secretRepo SecretRepo,
	ledger Ledger,
	queue Queue,
	auditRepo AuditRepo,
	hasher Hasher,
	shopCost int64,
) *Service {
	return &Service{
		userRepo:   userRepo,
		shopRepo:   shopRepo,
		deployRepo: deployRepo,
		secretRepo: secretRepo,
		ledger:     ledger,
		queue:      queue,
		auditRepo:  auditRepo,
		hasher:     hasher,
		shopCost:   shopCost,
	}
}

type CreateShopInput struct {
	ShopName      string
	Plan          string
	CustomDomain  string
	AdminEmail    string
	AdminPassword string
}

type CreateShopResult struct {
	Shop       *domain.Shop
	Deployment *domain.Deployment
	Charged    bool
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug lowercases the shop name and collapses every run of
// non-alphanumeric characters into a single hyphen.
func DeriveSlug(name string) string {
	slug := slugStripRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// CreateShop validates the slug, settles billing (the first shop is free,
// every later one debits the shop cost), persists the shop with its queued
// deployment and generated secrets, and hands the provisioning job to the
// queue. If the enqueue fails the charge is refunded and the shop is marked
// failed so the caller never pays for a shop that was never scheduled.
func (s *Service) CreateShop(ctx context.Context, userID int, in CreateShopInput) (*CreateShopResult, error) {
	slug := DeriveSlug(in.ShopName)
	if slug == "" {
		return nil, ErrInvalidShopName
	}
	appName := fmt.Sprintf("sf-%s", slug)

	taken, err := s.shopRepo.SlugTaken(ctx, slug, appName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	charged := false
	if user.FirstShopRedeemed {
		if _, err := s.ledger.Debit(ctx, userID, s.shopCost, domain.ReasonShopCreation, nil); err != nil {
			return nil, err
		}
		charged = true
	} else {
		redeemed, err := s.userRepo.MarkFirstShopRedeemed(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !redeemed {
			// Lost the race for the free grant to a concurrent request.
			if _, err := s.ledger.Debit(ctx, userID, s.shopCost, domain.ReasonShopCreation, nil); err != nil {
				return nil, err
			}
			charged = true
		}
	}

	passwordHash, err := s.hasher.HashPassword(in.AdminPassword)
	if err != nil {
		return nil, s.compensate(ctx, userID, nil, charged, fmt.Errorf("hash admin password: %w", err))
	}

	plan := in.Plan
	if plan == "" {
		plan = PlanBasic
	}
	quota, ok := planQuotas[plan]
	if !ok {
		quota = planQuotas[PlanBasic]
	}
	shop, err := s.shopRepo.Create(ctx, &domain.Shop{
		OwnerID:      userID,
		ShopName:     in.ShopName,
		Slug:         slug,
		AppName:      appName,
		Status:       domain.ShopCreating,
		Plan:         plan,
		MaxProducts:  quota.maxProducts,
		MaxOrders:    quota.maxOrders,
		CustomDomain: in.CustomDomain,
	})
	if err != nil {
		// The pre-check can lose to a concurrent create; the unique
		// constraint is the authority and reads as the same conflict.
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, s.compensate(ctx, userID, nil, charged, ErrSlugTaken)
		}
		return nil, s.compensate(ctx, userID, nil, charged, fmt.Errorf("create shop: %w", err))
	}

	if err := s.ensureSecrets(ctx, shop.ID); err != nil {
		zap.L().Error("can't generate shop secrets", zap.Int("shopID", shop.ID), zap.Error(err))
	}

	deployment, err := s.deployRepo.Create(ctx, shop.ID)
	if err != nil {
		return nil, s.compensate(ctx, userID, &shop.ID, charged, fmt.Errorf("create deployment: %w", err))
	}

	payload := domain.ProvisionPayload{
		AppName:           appName,
		Slug:              slug,
		ShopName:          in.ShopName,
		Plan:              plan,
		CustomDomain:      in.CustomDomain,
		AdminEmail:        in.AdminEmail,
		AdminPasswordHash: passwordHash,
	}
	var chargedAmount int64
	if charged {
		chargedAmount = s.shopCost
	}
	if _, err := s.queue.Enqueue(ctx, deployment.ID, shop.ID, userID, chargedAmount, payload); err != nil {
		if _, terr := s.deployRepo.MarkTerminal(ctx, deployment.ID, domain.DeploymentFailed, "provisioning queue unavailable"); terr != nil {
			zap.L().Error("can't mark deployment failed", zap.Int("deploymentID", deployment.ID), zap.Error(terr))
		}
		return nil, s.compensate(ctx, userID, &shop.ID, charged, fmt.Errorf("enqueue provisioning job: %w", err))
	}

	s.auditRepo.Record(ctx, &domain.AuditLog{
		ActorID:      userID,
		Action:       "shop.create",
		ResourceType: "shop",
		ResourceID:   shop.ID,
		Details:      fmt.Sprintf("slug=%s charged=%t", slug, charged),
	})
	return &CreateShopResult{Shop: shop, Deployment: deployment, Charged: charged}, nil
}

// compensate refunds a charge and parks the shop in failed state after a
// step downstream of billing broke. The free-grant flag is never handed
// back; the refund covers paid attempts only.
func (s *Service) compensate(ctx context.Context, userID int, shopID *int, charged bool, cause error) error {
	if charged {
		if _, err := s.ledger.Credit(ctx, userID, s.shopCost, domain.ReasonRefund, shopID); err != nil {
			zap.L().Error("can't refund shop charge", zap.Int("userID", userID), zap.Error(err))
		}
	}
	if shopID != nil {
		if err := s.shopRepo.UpdateStatus(ctx, *shopID, domain.ShopFailed); err != nil {
			zap.L().Error("can't mark shop failed", zap.Int("shopID", *shopID), zap.Error(err))
		}
		s.auditRepo.Record(ctx, &domain.AuditLog{
			ActorID:      userID,
			Action:       "shop.create.degraded",
			ResourceType: "shop",
			ResourceID:   *shopID,
			Details:      cause.Error(),
		})
	}
	return cause
}

func (s *Service) ensureSecrets(ctx context.Context, shopID int) error {
	existing, err := s.secretRepo.GetByShop(ctx, shopID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	sso, err := auth.RandomSecret(32)
	if err != nil {
		return err
	}
	webhook, err := auth.RandomSecret(32)
	if err != nil {
		return err
	}
	_, err = s.secretRepo.Create(ctx, &domain.ShopSecret{
		ShopID:        shopID,
		SSOSecret:     sso,
		WebhookSecret: webhook,
	})
	return err
}

// ListShops returns every non-deleted shop owned by the user.
func (s *Service) ListShops(ctx context.Context, userID int) ([]domain.Shop, error) {
	return s.shopRepo.FindByOwner(ctx, userID)
}

// GetShop returns the shop together with its most recent deployment.
func (s *Service) GetShop(ctx context.Context, userID, shopID int) (*domain.Shop, *domain.Deployment, error) {
	shop, err := s.ownedShop(ctx, userID, shopID)
	if err != nil {
		return nil, nil, err
	}
	deployment, err := s.deployRepo.FindLatestByShop(ctx, shopID)
	if err != nil {
		return nil, nil, err
	}
	return shop, deployment, nil
}

// DeleteShop soft-deletes the shop and schedules the hard delete a week out.
// Deleting an already-deleted shop is a no-op.
func (s *Service) DeleteShop(ctx context.Context, userID, shopID int) error {
	shop, err := s.ownedShop(ctx, userID, shopID)
	if err != nil {
		return err
	}
	if shop.Status == domain.ShopDeleted {
		return nil
	}
	now := time.Now()
	if err := s.shopRepo.SoftDelete(ctx, shopID, now, now.Add(hardDeleteGrace)); err != nil {
		return err
	}
	s.auditRepo.Record(ctx, &domain.AuditLog{
		ActorID:      userID,
		Action:       "shop.delete",
		ResourceType: "shop",
		ResourceID:   shopID,
		Details:      "soft delete, hard delete scheduled in 7d",
	})
	return nil
}

func (s *Service) ownedShop(ctx context.Context, userID, shopID int) (*domain.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	if shop.OwnerID != userID {
		return nil, ErrNotOwner
	}
	return shop, nil
}

// HandleDeploymentWebhook authenticates the CI callback with the shop's
// webhook secret and folds the reported run state into the deployment.
func (s *Service) HandleDeploymentWebhook(ctx context.Context, appName, token, runID, status, message string) error {
	shop, err := s.shopRepo.FindByAppName(ctx, appName)
	if err != nil {
		return err
	}
	if shop == nil {
		return ErrShopNotFound
	}
	secret, err := s.secretRepo.GetByShop(ctx, shop.ID)
	if err != nil {
		return err
	}
	if secret == nil || subtle.ConstantTimeCompare([]byte(secret.WebhookSecret), []byte(token)) != 1 {
		return ErrWebhookAuth
	}
	deployment, err := s.deployRepo.FindByRunID(ctx, runID)
	if err != nil {
		return err
	}
	if deployment == nil {
		return ErrShopNotFound
	}

	switch status {
	case "success":
		return s.commitWebhookTerminal(ctx, deployment.ID, shop.ID, domain.DeploymentSuccess, domain.ShopActive, message)
	case "failed":
		return s.commitWebhookTerminal(ctx, deployment.ID, shop.ID, domain.DeploymentFailed, domain.ShopFailed, message)
	default:
		return s.deployRepo.SetRunning(ctx, deployment.ID, runID)
	}
}

func (s *Service) commitWebhookTerminal(ctx context.Context, deploymentID, shopID int, dst domain.DeploymentStatus, sst domain.ShopStatus, message string) error {
	committed, err := s.deployRepo.MarkTerminal(ctx, deploymentID, dst, message)
	if err != nil {
		return err
	}
	if !committed {
		return nil
	}
	return s.shopRepo.UpdateStatus(ctx, shopID, sst)
}
