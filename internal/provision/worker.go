package provision

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/pkg/auth"
)

const (
	maxAttempts     = 3
	baseBackoff     = 10 * time.Second
	claimBatch      = 100
	staleClaimAfter = 10 * time.Minute
)

var inFlightJobs sync.Map

type DeploymentRepo interface {
	SetRunning(ctx context.Context, deploymentID int, runID string) error
	AppendEvent(ctx context.Context, deploymentID int, event domain.DeploymentEvent) error
	MarkTerminal(ctx context.Context, deploymentID int, status domain.DeploymentStatus, message string) (bool, error)
}

type ShopRepo interface {
	UpdateStatus(ctx context.Context, shopID int, status domain.ShopStatus) error
}

type ComputeClient interface {
	EnsureApp(appName string) error
	SetSecrets(appName string, vars map[string]string) error
	BaseURL(appName string) string
}

type WorkflowClient interface {
	Dispatch(inputs map[string]string) (string, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error)
}

// Watcher takes over a dispatched deployment and supervises it to a terminal
// state. Watch returns immediately; supervision runs in the background.
type Watcher interface {
	Watch(ctx context.Context, deploymentID, shopID int, runID, appName string)
}

// Worker drains the provisioning queue: it claims due jobs, drives each one
// through app setup and workflow dispatch, and hands the running deployment
// to the monitor. Failed jobs retry with exponential backoff until the
// attempt budget runs out.
type Worker struct {
	cfg        *config.Config
	jobRepo    JobRepo
	deployRepo DeploymentRepo
	shopRepo   ShopRepo
	compute    ComputeClient
	workflow   WorkflowClient
	watcher    Watcher
	ledger     Ledger
	workerPool WorkerPoolI
	interval   time.Duration
}

func NewWorker(
	cfg *config.Config,
	jobRepo JobRepo,
	deployRepo DeploymentRepo,
	shopRepo ShopRepo,
	compute ComputeClient,
	workflow WorkflowClient,
	watcher Watcher,
	ledger Ledger,
) *Worker {
	return &Worker{
		cfg:        cfg,
		jobRepo:    jobRepo,
		deployRepo: deployRepo,
		shopRepo:   shopRepo,
		compute:    compute,
		workflow:   workflow,
		watcher:    watcher,
		ledger:     ledger,
		workerPool: NewWorkerPool(cfg.WorkerCount),
		interval:   cfg.QueueInterval,
	}
}

func (w *Worker) Start(ctx context.Context) {
	zap.L().Info("Provisioning worker started")
	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping provisioning worker")
			w.workerPool.Close()
			return
		case <-ticker.C:
			w.processJobs(ctx)
		}
	}
}

func (w *Worker) processJobs(ctx context.Context) {
	requeued, err := w.jobRepo.RequeueStale(ctx, time.Now().Add(-staleClaimAfter))
	if err != nil {
		zap.L().Error("Failed to requeue stale claims", zap.Error(err))
	} else if len(requeued) > 0 {
		zap.L().Warn("Requeued provisioning jobs abandoned by a dead worker", zap.Ints("jobIDs", requeued))
	}

	jobs, err := w.jobRepo.ClaimDue(ctx, claimBatch)
	if err != nil {
		zap.L().Error("Failed to claim provisioning jobs", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, job := range jobs {
		job := job

		if _, loaded := inFlightJobs.LoadOrStore(job.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := w.workerPool.AddTask(ctx, job.ID, func() error {
				defer inFlightJobs.Delete(job.ID)
				w.handleJob(ctx, job)
				return nil
			})
			if err != nil {
				inFlightJobs.Delete(job.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling provisioning jobs", zap.Error(err))
	}
}

func (w *Worker) handleJob(ctx context.Context, job domain.ProvisionJob) {
	dispatched, err := w.provision(ctx, job)
	if err != nil {
		w.handleFailure(ctx, job, dispatched, err)
		return
	}
	if err := w.jobRepo.MarkDone(ctx, job.ID); err != nil {
		zap.L().Error("can't mark job done", zap.Int("jobID", job.ID), zap.Error(err))
	}
}

// provision drives one attempt. The returned flag reports whether a remote
// workflow run was dispatched before the attempt failed; once a run exists
// the attempt has spent real resources and its failure is no longer
// refundable.
func (w *Worker) provision(ctx context.Context, job domain.ProvisionJob) (bool, error) {
	appName := job.Payload.AppName

	if err := w.compute.EnsureApp(appName); err != nil {
		return false, fmt.Errorf("ensure app: %w", err)
	}

	// Baseline runtime config is best effort: a shop that boots without a
	// custom session secret still works, the monitor flags anything worse.
	if vars, err := w.baselineVars(job.Payload); err == nil {
		if err := w.compute.SetSecrets(appName, vars); err != nil {
			zap.L().Warn("can't inject baseline runtime vars", zap.String("appName", appName), zap.Error(err))
		}
	} else {
		zap.L().Warn("can't build baseline runtime vars", zap.String("appName", appName), zap.Error(err))
	}

	runID, err := w.workflow.Dispatch(map[string]string{
		"app_name":            appName,
		"slug":                job.Payload.Slug,
		"shop_name":           job.Payload.ShopName,
		"plan":                job.Payload.Plan,
		"custom_domain":       job.Payload.CustomDomain,
		"admin_email":         job.Payload.AdminEmail,
		"admin_password_hash": job.Payload.AdminPasswordHash,
	})
	if err != nil {
		return false, fmt.Errorf("dispatch workflow: %w", err)
	}

	if err := w.deployRepo.SetRunning(ctx, job.DeploymentID, runID); err != nil {
		return true, fmt.Errorf("record dispatched run: %w", err)
	}
	if err := w.deployRepo.AppendEvent(ctx, job.DeploymentID, domain.NewDispatchedEvent(runID)); err != nil {
		zap.L().Error("can't append dispatched event", zap.Int("deploymentID", job.DeploymentID), zap.Error(err))
	}

	w.watcher.Watch(ctx, job.DeploymentID, job.ShopID, runID, appName)
	return true, nil
}

func (w *Worker) baselineVars(payload domain.ProvisionPayload) (map[string]string, error) {
	sessionSecret, err := auth.RandomSecret(32)
	if err != nil {
		return nil, err
	}
	vars := map[string]string{
		"SHOP_SLUG":           payload.Slug,
		"SHOP_NAME":           payload.ShopName,
		"SHOP_BASE_URL":       w.compute.BaseURL(payload.AppName),
		"SESSION_SECRET":      sessionSecret,
		"ADMIN_EMAIL":         payload.AdminEmail,
		"ADMIN_PASSWORD_HASH": payload.AdminPasswordHash,
	}
	if w.cfg.StorageEnabled {
		vars["STORAGE_ENDPOINT"] = w.cfg.StorageEndpoint
		vars["STORAGE_BUCKET"] = w.cfg.StorageBucket
		vars["STORAGE_ACCESS_KEY"] = w.cfg.StorageAccessKey
		vars["STORAGE_SECRET_KEY"] = w.cfg.StorageSecretKey
	}
	return vars, nil
}

// handleFailure either reschedules the job with exponential backoff or, once
// the attempt budget is spent, fails the job together with its deployment
// and shop. A paid job that never got as far as a workflow dispatch hands the
// charge back to the owner.
func (w *Worker) handleFailure(ctx context.Context, job domain.ProvisionJob, dispatched bool, cause error) {
	zap.L().Error("Provisioning attempt failed",
		zap.Int("jobID", job.ID),
		zap.Int("attempt", job.Attempts),
		zap.Error(cause),
	)

	if job.Attempts < maxAttempts {
		delay := baseBackoff << (job.Attempts - 1)
		if err := w.jobRepo.Reschedule(ctx, job.ID, time.Now().Add(delay), cause.Error()); err != nil {
			zap.L().Error("can't reschedule job", zap.Int("jobID", job.ID), zap.Error(err))
		}
		return
	}

	if err := w.jobRepo.MarkFailed(ctx, job.ID, cause.Error()); err != nil {
		zap.L().Error("can't mark job failed", zap.Int("jobID", job.ID), zap.Error(err))
	}
	if _, err := w.deployRepo.MarkTerminal(ctx, job.DeploymentID, domain.DeploymentFailed, cause.Error()); err != nil {
		zap.L().Error("can't mark deployment failed", zap.Int("deploymentID", job.DeploymentID), zap.Error(err))
	}
	if err := w.shopRepo.UpdateStatus(ctx, job.ShopID, domain.ShopFailed); err != nil {
		zap.L().Error("can't mark shop failed", zap.Int("shopID", job.ShopID), zap.Error(err))
	}
	if !dispatched && job.ChargedAmount > 0 {
		if _, err := w.ledger.Credit(ctx, job.UserID, job.ChargedAmount, domain.ReasonRefund, &job.ShopID); err != nil {
			zap.L().Error("can't refund shop charge",
				zap.Int("userID", job.UserID),
				zap.Int("shopID", job.ShopID),
				zap.Error(err),
			)
		}
	}
}
