package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/handlers"
	"github.com/shopforge/shopforge/internal/monitor"
	"github.com/shopforge/shopforge/internal/pg"
	"github.com/shopforge/shopforge/internal/provision"
	"github.com/shopforge/shopforge/internal/repo"
	"github.com/shopforge/shopforge/internal/service"
	"github.com/shopforge/shopforge/pkg/clients"
	"github.com/shopforge/shopforge/pkg/logger"
	"github.com/shopforge/shopforge/pkg/notify"
	"github.com/shopforge/shopforge/pkg/providers/chatbot"
	"github.com/shopforge/shopforge/pkg/providers/compute"
	"github.com/shopforge/shopforge/pkg/providers/workflow"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	worker  *provision.Worker
	monitor *monitor.Supervisor

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	httpClient := clients.NewHTTPClient()
	computeClient := compute.New(cfg.ComputeAddress, cfg.ComputeToken, cfg.AppDomain, httpClient)
	workflowClient := workflow.New(cfg.WorkflowAddress, cfg.WorkflowToken, cfg.WorkflowName, cfg.WorkflowRef, httpClient)
	chatbotClient := chatbot.New(cfg.ChatbotAddress, cfg.ChatbotToken, httpClient)

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	queue := provision.NewQueue(a.repo.JobRepo)
	a.srv = service.New(cfg, a.repo, queue, computeClient, chatbotClient)
	a.api = handlers.New(cfg, a.srv)
	a.monitor = monitor.New(cfg, a.repo.DeploymentRepo, a.repo.ShopRepo, a.repo.LeaseRepo, workflowClient, computeClient, a.repo.AuditRepo, notify.NewLogNotifier())
	a.worker = provision.NewWorker(cfg, a.repo.JobRepo, a.repo.DeploymentRepo, a.repo.ShopRepo, computeClient, workflowClient, a.monitor, a.repo.LedgerRepo)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startBackgroundServices(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startBackgroundServices launches the provisioning worker and the
// deployment monitor. The monitor starts first so orphaned deployments are
// reclaimed before new jobs dispatch fresh ones.
func (a *Application) startBackgroundServices(ctx context.Context) {
	a.monitor.Start(ctx)
	a.worker.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.monitor.Wait()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
