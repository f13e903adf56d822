package provision

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/domain"
)

type mocks struct {
	jobRepo    *MockJobRepo
	deployRepo *MockDeploymentRepo
	shopRepo   *MockShopRepo
	compute    *MockComputeClient
	workflow   *MockWorkflowClient
	watcher    *MockWatcher
	ledger     *MockLedger
}

func NewMock(t *testing.T) (*Worker, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		jobRepo:    NewMockJobRepo(ctrl),
		deployRepo: NewMockDeploymentRepo(ctrl),
		shopRepo:   NewMockShopRepo(ctrl),
		compute:    NewMockComputeClient(ctrl),
		workflow:   NewMockWorkflowClient(ctrl),
		watcher:    NewMockWatcher(ctrl),
		ledger:     NewMockLedger(ctrl),
	}
	cfg := &config.Config{WorkerCount: 1, QueueInterval: time.Second}
	worker := NewWorker(cfg, m.jobRepo, m.deployRepo, m.shopRepo, m.compute, m.workflow, m.watcher, m.ledger)
	defer ctrl.Finish()
	return worker, m
}

func sampleJob(attempts int) domain.ProvisionJob {
	return domain.ProvisionJob{
		ID:            3,
		DeploymentID:  11,
		ShopID:        7,
		UserID:        1,
		ChargedAmount: 1000,
		Attempts:      attempts,
		Status:        domain.JobRunning,
		Payload: domain.ProvisionPayload{
			AppName:           "sf-my-shop",
			Slug:              "my-shop",
			ShopName:          "My Shop",
			Plan:              "basic",
			AdminEmail:        "owner@example.com",
			AdminPasswordHash: "$2a$hash",
		},
	}
}

func TestHandleJob_Success(t *testing.T) {
	worker, m := NewMock(t)

	m.compute.EXPECT().EnsureApp("sf-my-shop").Return(nil)
	m.compute.EXPECT().BaseURL("sf-my-shop").Return("https://sf-my-shop.shopforge.app")
	m.compute.EXPECT().
		SetSecrets("sf-my-shop", gomock.Any()).
		DoAndReturn(func(_ string, vars map[string]string) error {
			assert.Equal(t, "my-shop", vars["SHOP_SLUG"])
			assert.NotEmpty(t, vars["SESSION_SECRET"])
			return nil
		})
	m.workflow.EXPECT().
		Dispatch(gomock.Any()).
		DoAndReturn(func(inputs map[string]string) (string, error) {
			assert.Equal(t, "sf-my-shop", inputs["app_name"])
			assert.Equal(t, "$2a$hash", inputs["admin_password_hash"])
			return "run-1", nil
		})
	m.deployRepo.EXPECT().SetRunning(gomock.Any(), 11, "run-1").Return(nil)
	m.deployRepo.EXPECT().
		AppendEvent(gomock.Any(), 11, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, event domain.DeploymentEvent) error {
			assert.Equal(t, domain.EventDispatched, event.Type)
			assert.Equal(t, "run-1", event.RunID)
			return nil
		})
	m.watcher.EXPECT().Watch(gomock.Any(), 11, 7, "run-1", "sf-my-shop")
	m.jobRepo.EXPECT().MarkDone(gomock.Any(), 3).Return(nil)

	worker.handleJob(context.Background(), sampleJob(1))
}

func TestHandleJob_RetriesWithBackoff(t *testing.T) {
	tests := []struct {
		name          string
		attempts      int
		expectedDelay time.Duration
	}{
		{name: "first failure waits 10s", attempts: 1, expectedDelay: 10 * time.Second},
		{name: "second failure waits 20s", attempts: 2, expectedDelay: 20 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker, m := NewMock(t)

			m.compute.EXPECT().EnsureApp("sf-my-shop").Return(errors.New("compute api down"))
			m.jobRepo.EXPECT().
				Reschedule(gomock.Any(), 3, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int, nextRunAt time.Time, lastError string) error {
					delay := time.Until(nextRunAt)
					assert.InDelta(t, tt.expectedDelay.Seconds(), delay.Seconds(), 1.0)
					assert.Contains(t, lastError, "compute api down")
					return nil
				})

			worker.handleJob(context.Background(), sampleJob(tt.attempts))
		})
	}
}

func TestHandleJob_ExhaustedAttemptsFailEverything(t *testing.T) {
	worker, m := NewMock(t)

	m.compute.EXPECT().EnsureApp("sf-my-shop").Return(nil)
	m.compute.EXPECT().BaseURL("sf-my-shop").Return("https://sf-my-shop.shopforge.app")
	m.compute.EXPECT().SetSecrets("sf-my-shop", gomock.Any()).Return(nil)
	m.workflow.EXPECT().Dispatch(gomock.Any()).Return("", errors.New("dispatch rejected"))

	m.jobRepo.EXPECT().MarkFailed(gomock.Any(), 3, gomock.Any()).Return(nil)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, gomock.Any()).
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)
	m.ledger.EXPECT().
		Credit(gomock.Any(), 1, int64(1000), domain.ReasonRefund, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ int64, _ domain.TxReason, relatedShopID *int) (int64, error) {
			assert.Equal(t, 7, *relatedShopID)
			return 1000, nil
		})

	worker.handleJob(context.Background(), sampleJob(maxAttempts))
}

func TestHandleJob_ExhaustedAfterDispatchKeepsCharge(t *testing.T) {
	worker, m := NewMock(t)

	m.compute.EXPECT().EnsureApp("sf-my-shop").Return(nil)
	m.compute.EXPECT().BaseURL("sf-my-shop").Return("https://sf-my-shop.shopforge.app")
	m.compute.EXPECT().SetSecrets("sf-my-shop", gomock.Any()).Return(nil)
	m.workflow.EXPECT().Dispatch(gomock.Any()).Return("run-1", nil)
	m.deployRepo.EXPECT().SetRunning(gomock.Any(), 11, "run-1").Return(errors.New("db down"))

	// A dispatched run already consumed CI resources, so the failure ends
	// without any ledger call.
	m.jobRepo.EXPECT().MarkFailed(gomock.Any(), 3, gomock.Any()).Return(nil)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, gomock.Any()).
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)

	worker.handleJob(context.Background(), sampleJob(maxAttempts))
}

func TestHandleJob_ExhaustedFreeGrantJobRefundsNothing(t *testing.T) {
	worker, m := NewMock(t)

	m.compute.EXPECT().EnsureApp("sf-my-shop").Return(errors.New("compute api down"))
	m.jobRepo.EXPECT().MarkFailed(gomock.Any(), 3, gomock.Any()).Return(nil)
	m.deployRepo.EXPECT().
		MarkTerminal(gomock.Any(), 11, domain.DeploymentFailed, gomock.Any()).
		Return(true, nil)
	m.shopRepo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.ShopFailed).Return(nil)

	job := sampleJob(maxAttempts)
	job.ChargedAmount = 0
	worker.handleJob(context.Background(), job)
}

func TestProcessJobs_RequeuesStaleClaims(t *testing.T) {
	worker, m := NewMock(t)

	m.jobRepo.EXPECT().
		RequeueStale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, olderThan time.Time) ([]int, error) {
			assert.WithinDuration(t, time.Now().Add(-staleClaimAfter), olderThan, time.Second)
			return []int{4}, nil
		})
	m.jobRepo.EXPECT().ClaimDue(gomock.Any(), claimBatch).Return(nil, nil)

	worker.processJobs(context.Background())
}

func TestHandleJob_SecretInjectionFailureIsNotFatal(t *testing.T) {
	worker, m := NewMock(t)

	m.compute.EXPECT().EnsureApp("sf-my-shop").Return(nil)
	m.compute.EXPECT().BaseURL("sf-my-shop").Return("https://sf-my-shop.shopforge.app")
	m.compute.EXPECT().SetSecrets("sf-my-shop", gomock.Any()).Return(errors.New("secrets api down"))
	m.workflow.EXPECT().Dispatch(gomock.Any()).Return("run-1", nil)
	m.deployRepo.EXPECT().SetRunning(gomock.Any(), 11, "run-1").Return(nil)
	m.deployRepo.EXPECT().AppendEvent(gomock.Any(), 11, gomock.Any()).Return(nil)
	m.watcher.EXPECT().Watch(gomock.Any(), 11, 7, "run-1", "sf-my-shop")
	m.jobRepo.EXPECT().MarkDone(gomock.Any(), 3).Return(nil)

	worker.handleJob(context.Background(), sampleJob(1))
}

func TestQueueEnqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobRepo := NewMockJobRepo(ctrl)
	queue := NewQueue(jobRepo)

	jobRepo.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *domain.ProvisionJob) (*domain.ProvisionJob, error) {
			assert.Equal(t, 11, job.DeploymentID)
			assert.Equal(t, 7, job.ShopID)
			assert.Equal(t, int64(1000), job.ChargedAmount)
			assert.Equal(t, domain.JobQueued, job.Status)
			assert.WithinDuration(t, time.Now(), job.NextRunAt, time.Second)
			created := *job
			created.ID = 3
			return &created, nil
		})

	job, err := queue.Enqueue(context.Background(), 11, 7, 1, 1000, domain.ProvisionPayload{AppName: "sf-my-shop"})
	assert.NoError(t, err)
	assert.Equal(t, 3, job.ID)
}
