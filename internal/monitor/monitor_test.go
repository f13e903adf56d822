package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/pkg/providers/compute"
	"github.com/shopforge/shopforge/pkg/providers/workflow"
)

type mocks struct {
	deployRepo *MockDeploymentRepo
	shopRepo   *MockShopRepo
	leaseRepo  *MockLeaseRepo
	workflow   *MockWorkflowClient
	compute    *MockComputeClient
	audit      *MockAuditRepo
	notifier   *MockNotifier
}

func NewMock(t *testing.T) (*Supervisor, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		deployRepo: NewMockDeploymentRepo(ctrl),
		shopRepo:   NewMockShopRepo(ctrl),
		leaseRepo:  NewMockLeaseRepo(ctrl),
		workflow:   NewMockWorkflowClient(ctrl),
		compute:    NewMockComputeClient(ctrl),
		audit:      NewMockAuditRepo(ctrl),
		notifier:   NewMockNotifier(ctrl),
	}
	cfg := &config.Config{
		MonitorMaxDuration:  45 * time.Minute,
		MonitorPollInterval: 30 * time.Second,
		LeaseHeartbeat:      time.Hour,
	}
	s := New(cfg, m.deployRepo, m.shopRepo, m.leaseRepo, m.workflow, m.compute, m.audit, m.notifier)
	s.healthInterval = time.Millisecond
	defer ctrl.Finish()
	return s, m
}

func expectLease(m *mocks) {
	m.leaseRepo.EXPECT().Acquire(gomock.Any(), 11, gomock.Any(), gomock.Any()).Return(true, nil)
	m.leaseRepo.EXPECT().Heartbeat(gomock.Any(), 11, gomock.Any()).Return(nil).AnyTimes()
	m.leaseRepo.EXPECT().Release(gomock.Any(), 11, gomock.Any()).Return(nil)
}

func TestSupervise_SuccessfulDeployment(t *testing.T) {
	s, m := NewMock(t)

	expectLease(m)
	m.workflow.EXPECT().
		MonitorRun(gomock.Any(), "run-1", gomock.Any(), 45*time.Minute, 30*time.Second).
		Return(&workflow.Run{ID: "run-1", State: workflow.StateSuccess}, nil)
	m.compute.EXPECT().AppStatus("sf-my-shop").Return(&compute.AppState{Name: "sf-my-shop", Exists: true}, nil)
	m.compute.EXPECT().Probe("sf-my-shop").Return(compute.HealthHealthy)
	m.deployRepo.EXPECT().
		AppendEvent(gomock.Any(), 11, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, event domain.DeploymentEvent) error {
			assert.Equal(t, domain.EventHealthCheck, event.Type)
			assert.True(t, event.Healthy)
			assert.Equal(t, 1, event.Attempt)
			return nil
		})
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentSuccess, "").
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopActive).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

	notified := make(chan struct{})
	m.notifier.EXPECT().
		ShopReady(gomock.Any(), 7).
		DoAndReturn(func(context.Context, int) error {
			close(notified)
			return nil
		})

	s.supervise(context.Background(), 11, 7, "run-1", "sf-my-shop")

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("shop ready notification was never sent")
	}
}

func TestSupervise_WorkflowFailure(t *testing.T) {
	s, m := NewMock(t)

	expectLease(m)
	m.workflow.EXPECT().
		MonitorRun(gomock.Any(), "run-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&workflow.Run{ID: "run-1", State: workflow.StateFailed}, nil)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, "workflow run failed").
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

	s.supervise(context.Background(), 11, 7, "run-1", "sf-my-shop")
}

// A workflow that succeeds but never serves traffic must fail with a health
// message, not a workflow message.
func TestSupervise_HealthDegradedDistinction(t *testing.T) {
	s, m := NewMock(t)

	expectLease(m)
	m.workflow.EXPECT().
		MonitorRun(gomock.Any(), "run-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&workflow.Run{ID: "run-1", State: workflow.StateSuccess}, nil)
	m.compute.EXPECT().
		AppStatus("sf-my-shop").
		Return(&compute.AppState{Name: "sf-my-shop", Exists: true}, nil).
		Times(healthAttempts)
	m.compute.EXPECT().Probe("sf-my-shop").Return(compute.HealthDegraded).Times(healthAttempts)
	m.deployRepo.EXPECT().AppendEvent(gomock.Any(), 11, gomock.Any()).Return(nil).Times(healthAttempts)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, "deployed but failed health verification").
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

	s.supervise(context.Background(), 11, 7, "run-1", "sf-my-shop")
}

func TestSupervise_MonitorTimeout(t *testing.T) {
	s, m := NewMock(t)

	expectLease(m)
	m.workflow.EXPECT().
		MonitorRun(gomock.Any(), "run-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&workflow.Run{ID: "run-1", State: workflow.StateRunning}, workflow.ErrMonitorTimeout)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, "workflow run exceeded the monitoring ceiling").
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

	s.supervise(context.Background(), 11, 7, "run-1", "sf-my-shop")
}

// Losing the terminal-commit race, e.g. to the webhook path, must not move
// the shop.
func TestSupervise_LostCommitRace(t *testing.T) {
	s, m := NewMock(t)

	expectLease(m)
	m.workflow.EXPECT().
		MonitorRun(gomock.Any(), "run-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&workflow.Run{ID: "run-1", State: workflow.StateFailed}, nil)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, "workflow run failed").
		Return(false, nil)

	s.supervise(context.Background(), 11, 7, "run-1", "sf-my-shop")
}

func TestSupervise_LeaseHeldElsewhere(t *testing.T) {
	s, m := NewMock(t)

	m.leaseRepo.EXPECT().Acquire(gomock.Any(), 11, gomock.Any(), gomock.Any()).Return(false, nil)

	s.supervise(context.Background(), 11, 7, "run-1", "sf-my-shop")
}

func TestWatch_DuplicateIsNoOp(t *testing.T) {
	s, m := NewMock(t)

	block := make(chan struct{})
	m.leaseRepo.EXPECT().
		Acquire(gomock.Any(), 11, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, int, string, time.Time) (bool, error) {
			<-block
			return false, nil
		})

	s.Watch(context.Background(), 11, 7, "run-1", "sf-my-shop")
	s.Watch(context.Background(), 11, 7, "run-1", "sf-my-shop")
	close(block)
	s.Wait()
}

func TestResume_ReclaimsOrphans(t *testing.T) {
	s, m := NewMock(t)

	m.leaseRepo.EXPECT().OrphanedDeployments(gomock.Any(), gomock.Any()).Return([]int{11}, nil)
	m.deployRepo.EXPECT().
		FindByID(gomock.Any(), 11).
		Return(&domain.Deployment{ID: 11, ShopID: 7, Status: domain.DeploymentRunning, ExternalRunID: "run-1"}, nil)
	m.shopRepo.EXPECT().
		FindByID(gomock.Any(), 7).
		Return(&domain.Shop{ID: 7, AppName: "sf-my-shop", Status: domain.ShopCreating}, nil)

	expectLease(m)
	m.workflow.EXPECT().
		MonitorRun(gomock.Any(), "run-1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&workflow.Run{ID: "run-1", State: workflow.StateFailed}, nil)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, "workflow run failed").
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

	s.Resume(context.Background())
	s.Wait()
}

func TestResume_SkipsTerminalDeployments(t *testing.T) {
	s, m := NewMock(t)

	m.leaseRepo.EXPECT().OrphanedDeployments(gomock.Any(), gomock.Any()).Return([]int{11}, nil)
	m.deployRepo.EXPECT().
		FindByID(gomock.Any(), 11).
		Return(&domain.Deployment{ID: 11, ShopID: 7, Status: domain.DeploymentSuccess, ExternalRunID: "run-1"}, nil)

	s.Resume(context.Background())
	s.Wait()
}
