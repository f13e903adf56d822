package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/shopforge/shopforge/docs"
	"github.com/shopforge/shopforge/internal/config"
	adminhandlers "github.com/shopforge/shopforge/internal/handlers/admin"
	billinghandlers "github.com/shopforge/shopforge/internal/handlers/billing"
	featurehandlers "github.com/shopforge/shopforge/internal/handlers/features"
	shophandlers "github.com/shopforge/shopforge/internal/handlers/shops"
	webhookhandlers "github.com/shopforge/shopforge/internal/handlers/webhooks"
	"github.com/shopforge/shopforge/internal/service"
	"github.com/shopforge/shopforge/pkg/auth"
)

type ShopHandler interface {
	CreateShop(w http.ResponseWriter, r *http.Request)
	ListShops(w http.ResponseWriter, r *http.Request)
	GetShop(w http.ResponseWriter, r *http.Request)
	DeleteShop(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Topup(w http.ResponseWriter, r *http.Request)
}

type FeatureHandler interface {
	EnableChatbot(w http.ResponseWriter, r *http.Request)
	SSOToken(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Deployment(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Sweep(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ShopHandler    ShopHandler
	BillingHandler BillingHandler
	FeatureHandler FeatureHandler
	WebhookHandler WebhookHandler
	AdminHandler   AdminHandler

	jwtService auth.JWTServiceInterface
	adminToken string
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		ShopHandler:    shophandlers.New(s.ShopService),
		BillingHandler: billinghandlers.New(s.BillingService),
		FeatureHandler: featurehandlers.New(s.FeatureService),
		WebhookHandler: webhookhandlers.New(s.WebhookService),
		AdminHandler:   adminhandlers.New(s.CleanupService),
		jwtService:     auth.NewJWTService(cfg.JWTSecret),
		adminToken:     cfg.AdminToken,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/webhooks/deployment", h.WebhookHandler.Deployment)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/shops", func(r chi.Router) {
				r.Post("/", h.ShopHandler.CreateShop)
				r.Get("/", h.ShopHandler.ListShops)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.ShopHandler.GetShop)
					r.Delete("/", h.ShopHandler.DeleteShop)
					r.Post("/features/chatbot", h.FeatureHandler.EnableChatbot)
					r.Get("/features/chatbot/sso", h.FeatureHandler.SSOToken)
				})
			})
			r.Route("/billing", func(r chi.Router) {
				r.Get("/balance", h.BillingHandler.GetBalance)
				r.Get("/transactions", h.BillingHandler.GetTransactions)
				r.Post("/topup", h.BillingHandler.Topup)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(adminhandlers.TokenMiddleware(h.adminToken))
			r.Post("/admin/cleanup/sweep", h.AdminHandler.Sweep)
		})
	})

	return r
}
