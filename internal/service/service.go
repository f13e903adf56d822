package service

import (
	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/handlers/admin"
	"github.com/shopforge/shopforge/internal/handlers/billing"
	"github.com/shopforge/shopforge/internal/handlers/features"
	"github.com/shopforge/shopforge/internal/handlers/shops"
	"github.com/shopforge/shopforge/internal/handlers/webhooks"
	"github.com/shopforge/shopforge/internal/provision"
	"github.com/shopforge/shopforge/internal/repo"
	cleanupservice "github.com/shopforge/shopforge/internal/service/cleanupservice"
	featureservice "github.com/shopforge/shopforge/internal/service/featureservice"
	ledgerservice "github.com/shopforge/shopforge/internal/service/ledgerservice"
	shopservice "github.com/shopforge/shopforge/internal/service/shopservice"
	pkgauth "github.com/shopforge/shopforge/pkg/auth"
	"github.com/shopforge/shopforge/pkg/providers/chatbot"
	"github.com/shopforge/shopforge/pkg/providers/compute"
)

type Services struct {
	ShopService    shops.Service
	BillingService billing.Service
	FeatureService features.Service
	CleanupService admin.Service
	WebhookService webhooks.Service
}

func New(
	cfg *config.Config,
	repo *repo.Repositories,
	queue *provision.Queue,
	computeClient *compute.Client,
	chatbotClient *chatbot.Client,
) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.UserRepo)
	shopService := shopservice.New(
		repo.UserRepo,
		repo.ShopRepo,
		repo.DeploymentRepo,
		repo.SecretRepo,
		ledgerService,
		queue,
		repo.AuditRepo,
		&pkgauth.HashService{},
		cfg.ShopCost,
	)
	featureService := featureservice.New(
		repo.ShopRepo,
		repo.SecretRepo,
		ledgerService,
		chatbotClient,
		computeClient,
		repo.AuditRepo,
		cfg.ChatbotCost,
	)
	cleanupService := cleanupservice.New(repo.ShopRepo, repo.SecretRepo, computeClient, repo.AuditRepo)

	return &Services{
		ShopService:    shopService,
		BillingService: ledgerService,
		FeatureService: featureService,
		CleanupService: cleanupService,
		WebhookService: shopService,
	}
}
