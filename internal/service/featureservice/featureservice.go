package featureservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/pkg/auth"
)

var (
	ErrShopNotFound   = errors.New("shop not found")
	ErrNotOwner       = errors.New("shop belongs to another user")
	ErrShopNotActive  = errors.New("shop is not active")
	ErrAlreadyEnabled = errors.New("feature is already enabled")
	ErrNoSecret       = errors.New("shop has no secrets provisioned")
)

const subscriptionTerm = 30 * 24 * time.Hour

type ShopRepo interface {
	FindByID(ctx context.Context, shopID int) (*domain.Shop, error)
	SetChatbot(ctx context.Context, shopID int, botID string) error
}

type SecretRepo interface {
	GetByShop(ctx context.Context, shopID int) (*domain.ShopSecret, error)
	Create(ctx context.Context, secret *domain.ShopSecret) (*domain.ShopSecret, error)
	CreateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	FindSubscription(ctx context.Context, shopID int, feature string) (*domain.Subscription, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error)
	Credit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error)
}

type ChatbotClient interface {
	RegisterTenant(slug, shopName, ssoSecret string) (string, error)
}

type ComputeClient interface {
	SetSecrets(appName string, vars map[string]string) error
	BaseURL(appName string) string
}

type AuditRepo interface {
	Record(ctx context.Context, entry *domain.AuditLog)
}

type Service struct {
	shopRepo    ShopRepo
	secretRepo  SecretRepo
	ledger      Ledger
	chatbot     ChatbotClient
	compute     ComputeClient
	auditRepo   AuditRepo
	chatbotCost int64
}

func New(
	shopRepo ShopRepo,
	secretRepo SecretRepo,
	ledger Ledger,
	chatbot ChatbotClient,
	compute ComputeClient,
	auditRepo AuditRepo,
	chatbotCost int64,
) *Service {
	return &Service{
		shopRepo:    shopRepo,
		secretRepo:  secretRepo,
		ledger:      ledger,
		chatbot:     chatbot,
		compute:     compute,
		auditRepo:   auditRepo,
		chatbotCost: chatbotCost,
	}
}

// EnableChatbot debits the feature cost, registers the shop with the chatbot
// platform and injects the credentials into the shop's runtime. The debit is
// refunded when any remote step fails, so a failed enablement never costs
// credits.
func (s *Service) EnableChatbot(ctx context.Context, userID, shopID int) (*domain.Subscription, error) {
	shop, err := s.ownedShop(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}
	if shop.Status != domain.ShopActive {
		return nil, ErrShopNotActive
	}
	existing, err := s.secretRepo.FindSubscription(ctx, shopID, domain.FeatureChatbot)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == domain.SubscriptionActive {
		return nil, ErrAlreadyEnabled
	}

	if _, err := s.ledger.Debit(ctx, userID, s.chatbotCost, domain.ReasonFeatureEnablement, &shopID); err != nil {
		return nil, err
	}

	sub, err := s.enableChatbotRemote(ctx, shop)
	if err != nil {
		if _, rerr := s.ledger.Credit(ctx, userID, s.chatbotCost, domain.ReasonRefund, &shopID); rerr != nil {
			zap.L().Error("can't refund feature charge", zap.Int("userID", userID), zap.Error(rerr))
		}
		return nil, err
	}

	s.auditRepo.Record(ctx, &domain.AuditLog{
		ActorID:      userID,
		Action:       "feature.chatbot.enable",
		ResourceType: "shop",
		ResourceID:   shopID,
		Details:      fmt.Sprintf("feature=%s", domain.FeatureChatbot),
	})
	return sub, nil
}

func (s *Service) enableChatbotRemote(ctx context.Context, shop *domain.Shop) (*domain.Subscription, error) {
	secret, err := s.ensureSecret(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	botID, err := s.chatbot.RegisterTenant(shop.Slug, shop.ShopName, secret.SSOSecret)
	if err != nil {
		return nil, fmt.Errorf("register chatbot tenant: %w", err)
	}

	vars := map[string]string{
		"CHATBOT_ENABLED":    "true",
		"CHATBOT_BOT_ID":     botID,
		"CHATBOT_SSO_SECRET": secret.SSOSecret,
		"SHOP_BASE_URL":      s.compute.BaseURL(shop.AppName),
	}
	if err := s.compute.SetSecrets(shop.AppName, vars); err != nil {
		return nil, fmt.Errorf("inject chatbot credentials: %w", err)
	}

	if err := s.shopRepo.SetChatbot(ctx, shop.ID, botID); err != nil {
		return nil, err
	}
	return s.secretRepo.CreateSubscription(ctx, &domain.Subscription{
		ShopID:    shop.ID,
		Feature:   domain.FeatureChatbot,
		Status:    domain.SubscriptionActive,
		ExpiresAt: time.Now().Add(subscriptionTerm),
	})
}

func (s *Service) ensureSecret(ctx context.Context, shopID int) (*domain.ShopSecret, error) {
	secret, err := s.secretRepo.GetByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if secret != nil {
		return secret, nil
	}
	sso, err := auth.RandomSecret(32)
	if err != nil {
		return nil, err
	}
	webhook, err := auth.RandomSecret(32)
	if err != nil {
		return nil, err
	}
	return s.secretRepo.Create(ctx, &domain.ShopSecret{
		ShopID:        shopID,
		SSOSecret:     sso,
		WebhookSecret: webhook,
	})
}

// SSOToken mints a short-lived token signed with the shop's SSO secret for
// cross-service logins into the shop runtime.
func (s *Service) SSOToken(ctx context.Context, userID, shopID int) (string, error) {
	shop, err := s.ownedShop(ctx, userID, shopID)
	if err != nil {
		return "", err
	}
	secret, err := s.secretRepo.GetByShop(ctx, shopID)
	if err != nil {
		return "", err
	}
	if secret == nil {
		return "", ErrNoSecret
	}
	return auth.MintShopToken(secret.SSOSecret, shop.ID, shop.Slug, "owner")
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
