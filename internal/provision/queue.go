package provision

import (
	"context"
	"time"

	"github.com/shopforge/shopforge/internal/domain"
)

type JobRepo interface {
	Enqueue(ctx context.Context, job *domain.ProvisionJob) (*domain.ProvisionJob, error)
	ClaimDue(ctx context.Context, limit int) ([]domain.ProvisionJob, error)
	MarkDone(ctx context.Context, jobID int) error
	MarkFailed(ctx context.Context, jobID int, lastError string) error
	Reschedule(ctx context.Context, jobID int, nextRunAt time.Time, lastError string) error
	RequeueStale(ctx context.Context, olderThan time.Time) ([]int, error)
}

// Queue is the durable entry point for provisioning work. Jobs land in
// Postgres and survive restarts; the worker claims them with row locks so
// several instances can share one table.
type Queue struct {
	jobRepo JobRepo
}

func NewQueue(jobRepo JobRepo) *Queue {
	return &Queue{jobRepo: jobRepo}
}

// Enqueue records a provisioning job. chargedAmount is whatever the owner
// actually paid for the shop, zero under the free first-shop grant.
func (q *Queue) Enqueue(ctx context.Context, deploymentID, shopID, userID int, chargedAmount int64, payload domain.ProvisionPayload) (*domain.ProvisionJob, error) {
	return q.jobRepo.Enqueue(ctx, &domain.ProvisionJob{
		DeploymentID:  deploymentID,
		ShopID:        shopID,
		UserID:        userID,
		ChargedAmount: chargedAmount,
		Payload:       payload,
		Status:        domain.JobQueued,
		NextRunAt:     time.Now(),
	})
}
