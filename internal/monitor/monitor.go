package monitor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/pkg/providers/compute"
	"github.com/shopforge/shopforge/pkg/providers/workflow"
)

const (
	healthAttempts = 5
	resumeInterval = time.Minute
)

type DeploymentRepo interface {
	FindByID(ctx context.Context, deploymentID int) (*domain.Deployment, error)
	AppendEvent(ctx context.Context, deploymentID int, event domain.DeploymentEvent) error
	MarkTerminal(ctx context.Context, deploymentID int, status domain.DeploymentStatus, message string) (bool, error)
}

type ShopRepo interface {
	FindByID(ctx context.Context, shopID int) (*domain.Shop, error)
	UpdateStatus(ctx context.Context, shopID int, status domain.ShopStatus) error
}

type LeaseRepo interface {
	Acquire(ctx context.Context, deploymentID int, owner string, staleBefore time.Time) (bool, error)
	Heartbeat(ctx context.Context, deploymentID int, owner string) error
	Release(ctx context.Context, deploymentID int, owner string) error
	OrphanedDeployments(ctx context.Context, staleBefore time.Time) ([]int, error)
}

type WorkflowClient interface {
	MonitorRun(ctx context.Context, runID string, onUpdate func(*workflow.Run), maxDuration, pollInterval time.Duration) (*workflow.Run, error)
}

type ComputeClient interface {
	AppStatus(appName string) (*compute.AppState, error)
	Probe(appName string) compute.Health
}

type AuditRepo interface {
	Record(ctx context.Context, entry *domain.AuditLog)
}

// Notifier tells the shop owner their shop came up. Delivery is fire and
// forget, a lost notification never blocks or fails a deployment.
type Notifier interface {
	ShopReady(ctx context.Context, shopID int) error
}

// Supervisor owns every in-flight deployment on this process. Each watched
// deployment is backed by a database lease, so a crashed supervisor's
// deployments are picked up by the resume loop of another instance instead
// of hanging in running state forever.
type Supervisor struct {
	deployRepo DeploymentRepo
	shopRepo   ShopRepo
	leaseRepo  LeaseRepo
	workflow   WorkflowClient
	compute    ComputeClient
	audit      AuditRepo
	notifier   Notifier

	owner          string
	maxDuration    time.Duration
	pollInterval   time.Duration
	heartbeat      time.Duration
	healthInterval time.Duration

	watched sync.Map
	wg      sync.WaitGroup
}

func New(
	cfg *config.Config,
	deployRepo DeploymentRepo,
	shopRepo ShopRepo,
	leaseRepo LeaseRepo,
	workflowClient WorkflowClient,
	computeClient ComputeClient,
	audit AuditRepo,
	notifier Notifier,
) *Supervisor {
	hostname, _ := os.Hostname()
	return &Supervisor{
		deployRepo:     deployRepo,
		shopRepo:       shopRepo,
		leaseRepo:      leaseRepo,
		workflow:       workflowClient,
		compute:        computeClient,
		audit:          audit,
		notifier:       notifier,
		owner:          fmt.Sprintf("%s-%s", hostname, uuid.NewString()),
		maxDuration:    cfg.MonitorMaxDuration,
		pollInterval:   cfg.MonitorPollInterval,
		heartbeat:      cfg.LeaseHeartbeat,
		healthInterval: 10 * time.Second,
	}
}

// Start launches the resume loop that reclaims deployments whose supervisor
// died, then waits for ctx. Wait blocks until every supervision goroutine
// has finished.
func (s *Supervisor) Start(ctx context.Context) {
	zap.L().Info("Deployment monitor started", zap.String("owner", s.owner))
	go s.resumeLoop(ctx)
}

func (s *Supervisor) Wait() {
	s.wg.Wait()
}

func (s *Supervisor) resumeLoop(ctx context.Context) {
	ticker := time.NewTicker(resumeInterval)
	defer ticker.Stop()

	s.Resume(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping deployment monitor")
			return
		case <-ticker.C:
			s.Resume(ctx)
		}
	}
}

// Resume reclaims running deployments whose lease went stale or never
// existed, which covers both supervisor crashes and service restarts.
func (s *Supervisor) Resume(ctx context.Context) {
	ids, err := s.leaseRepo.OrphanedDeployments(ctx, s.staleBefore())
	if err != nil {
		zap.L().Error("can't list orphaned deployments", zap.Error(err))
		return
	}
	for _, id := range ids {
		deployment, err := s.deployRepo.FindByID(ctx, id)
		if err != nil || deployment == nil {
			continue
		}
		if deployment.Status.Terminal() || deployment.ExternalRunID == "" {
			continue
		}
		shop, err := s.shopRepo.FindByID(ctx, deployment.ShopID)
		if err != nil || shop == nil {
			continue
		}
		zap.L().Info("Resuming orphaned deployment",
			zap.Int("deploymentID", id),
			zap.String("runID", deployment.ExternalRunID),
		)
		s.Watch(ctx, deployment.ID, shop.ID, deployment.ExternalRunID, shop.AppName)
	}
}

// Watch starts supervising a dispatched deployment. Watching the same
// deployment twice is a no-op, and a deployment whose lease is held by
// another live supervisor is left to that supervisor.
func (s *Supervisor) Watch(ctx context.Context, deploymentID, shopID int, runID, appName string) {
	if _, loaded := s.watched.LoadOrStore(deploymentID, struct{}{}); loaded {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.watched.Delete(deploymentID)
		s.supervise(ctx, deploymentID, shopID, runID, appName)
	}()
}

func (s *Supervisor) supervise(ctx context.Context, deploymentID, shopID int, runID, appName string) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("Supervision panicked", zap.Int("deploymentID", deploymentID), zap.Any("panic", r))
			s.commitTerminal(ctx, deploymentID, shopID, domain.DeploymentFailed, "internal supervision failure")
		}
	}()

	acquired, err := s.leaseRepo.Acquire(ctx, deploymentID, s.owner, s.staleBefore())
	if err != nil {
		zap.L().Error("can't acquire monitor lease", zap.Int("deploymentID", deploymentID), zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer func() {
		if err := s.leaseRepo.Release(context.WithoutCancel(ctx), deploymentID, s.owner); err != nil {
			zap.L().Error("can't release monitor lease", zap.Int("deploymentID", deploymentID), zap.Error(err))
		}
	}()

	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go s.keepLease(heartbeatCtx, deploymentID)

	run, err := s.workflow.MonitorRun(ctx, runID, nil, s.maxDuration, s.pollInterval)
	switch {
	case err == nil:
	case errors.Is(err, workflow.ErrMonitorTimeout):
		s.commitTerminal(ctx, deploymentID, shopID, domain.DeploymentFailed, "workflow run exceeded the monitoring ceiling")
		return
	case ctx.Err() != nil:
		// Shutting down. The lease goes stale and another instance resumes.
		return
	default:
		zap.L().Error("can't monitor workflow run", zap.String("runID", runID), zap.Error(err))
		s.commitTerminal(ctx, deploymentID, shopID, domain.DeploymentFailed, fmt.Sprintf("workflow monitoring failed: %v", err))
		return
	}

	if run.State != workflow.StateSuccess {
		s.commitTerminal(ctx, deploymentID, shopID, domain.DeploymentFailed, "workflow run failed")
		return
	}

	if s.verifyHealth(ctx, deploymentID, appName) {
		s.commitTerminal(ctx, deploymentID, shopID, domain.DeploymentSuccess, "")
		return
	}
	s.commitTerminal(ctx, deploymentID, shopID, domain.DeploymentFailed, "deployed but failed health verification")
}

func (s *Supervisor) keepLease(ctx context.Context, deploymentID int) {
	ticker := time.NewTicker(s.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.leaseRepo.Heartbeat(ctx, deploymentID, s.owner); err != nil {
				zap.L().Error("can't heartbeat monitor lease", zap.Int("deploymentID", deploymentID), zap.Error(err))
			}
		}
	}
}

// verifyHealth probes the deployed app up to healthAttempts times. A single
// healthy answer is enough; anything else after the last attempt means the
// workflow deployed something that does not serve traffic.
func (s *Supervisor) verifyHealth(ctx context.Context, deploymentID int, appName string) bool {
	for attempt := 1; attempt <= healthAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(s.healthInterval):
			}
		}

		healthy, detail := s.checkOnce(appName)
		if err := s.deployRepo.AppendEvent(ctx, deploymentID, domain.NewHealthCheckEvent(attempt, healthy, detail)); err != nil {
			zap.L().Error("can't append health check event", zap.Int("deploymentID", deploymentID), zap.Error(err))
		}
		if healthy {
			return true
		}
	}
	return false
}

func (s *Supervisor) checkOnce(appName string) (bool, string) {
	state, err := s.compute.AppStatus(appName)
	if err != nil {
		return false, fmt.Sprintf("app status check failed: %v", err)
	}
	if state == nil || !state.Exists {
		return false, "app does not exist on the platform"
	}
	health := s.compute.Probe(appName)
	if health != compute.HealthHealthy {
		return false, fmt.Sprintf("http probe returned %s", health)
	}
	return true, "healthy"
}

// commitTerminal writes the final deployment state and moves the shop with
// it. Losing the commit race to the webhook path is fine, then the shop has
// already been moved.
func (s *Supervisor) commitTerminal(ctx context.Context, deploymentID, shopID int, status domain.DeploymentStatus, message string) {
	committed, err := s.deployRepo.MarkTerminal(ctx, deploymentID, status, message)
	if err != nil {
		zap.L().Error("can't commit terminal state", zap.Int("deploymentID", deploymentID), zap.Error(err))
		return
	}
	if !committed {
		return
	}

	shopStatus := domain.ShopFailed
	if status == domain.DeploymentSuccess {
		shopStatus = domain.ShopActive
	}
	if err := s.shopRepo.UpdateStatus(ctx, shopID, shopStatus); err != nil {
		zap.L().Error("can't update shop status", zap.Int("shopID", shopID), zap.Error(err))
	}
	s.audit.Record(ctx, &domain.AuditLog{
		Action:       "deployment.finish",
		ResourceType: "deployment",
		ResourceID:   deploymentID,
		Details:      fmt.Sprintf("status=%s message=%s", status, message),
	})
	if status == domain.DeploymentSuccess {
		go func() {
			if err := s.notifier.ShopReady(context.WithoutCancel(ctx), shopID); err != nil {
				zap.L().Warn("can't deliver shop ready notification", zap.Int("shopID", shopID), zap.Error(err))
			}
		}()
	}
	zap.L().Info("Deployment finished",
		zap.Int("deploymentID", deploymentID),
		zap.String("status", string(status)),
	)
}

func (s *Supervisor) staleBefore() time.Time {
	return time.Now().Add(-3 * s.heartbeat)
}
