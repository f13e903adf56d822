package jobrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Enqueue(ctx context.Context, job *domain.ProvisionJob) (*domain.ProvisionJob, error) {
	payload, err := json.Marshal(job.Payload)
	if err != nil {
		return nil, err
	}
	query := `
        INSERT INTO provision_jobs (deployment_id, shop_id, user_id, charged_amount, payload, status, next_run_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, job.DeploymentID, job.ShopID, job.UserID, job.ChargedAmount, payload, domain.JobQueued)
	if err := row.Scan(&job.ID, &job.CreatedAt); err != nil {
		zap.L().Error("can't enqueue provision job", zap.Error(err))
		return nil, err
	}
	job.Status = domain.JobQueued
	return job, nil
}

// ClaimDue atomically claims up to limit due jobs: every claimed job is moved
// to running with its attempt counter bumped and its claim stamped, so a
// crashed worker's claim can be requeued by RequeueStale instead of hanging.
// SKIP LOCKED keeps several processes from claiming the same rows.
func (r *Repository) ClaimDue(ctx context.Context, limit int) ([]domain.ProvisionJob, error) {
	query := `
        UPDATE provision_jobs
        SET status = 'running', attempts = attempts + 1, claimed_at = NOW()
        WHERE id IN (
            SELECT id FROM provision_jobs
            WHERE status = 'queued' AND next_run_at <= NOW()
            ORDER BY next_run_at ASC
            LIMIT $1
            FOR UPDATE SKIP LOCKED
        )
        RETURNING id, deployment_id, shop_id, user_id, charged_amount, payload, status, attempts, next_run_at, last_error, created_at
    `
	var jobs []domain.ProvisionJob
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, query, limit)
		if err != nil {
			zap.L().Error("can't claim provision jobs", zap.Error(err))
			return err
		}
		defer rows.Close()

		for rows.Next() {
			job, err := scanJob(rows)
			if err != nil {
				zap.L().Error("can't scan provision job row", zap.Error(err))
				return err
			}
			jobs = append(jobs, *job)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (*domain.ProvisionJob, error) {
	var job domain.ProvisionJob
	var payload []byte
	err := row.Scan(&job.ID, &job.DeploymentID, &job.ShopID, &job.UserID, &job.ChargedAmount, &payload,
		&job.Status, &job.Attempts, &job.NextRunAt, &job.LastError, &job.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &job.Payload); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *Repository) MarkDone(ctx context.Context, jobID int) error {
	return r.setStatus(ctx, jobID, domain.JobDone, "")
}

func (r *Repository) MarkFailed(ctx context.Context, jobID int, lastError string) error {
	return r.setStatus(ctx, jobID, domain.JobFailed, lastError)
}

func (r *Repository) setStatus(ctx context.Context, jobID int, status domain.JobStatus, lastError string) error {
	query := `
        UPDATE provision_jobs
        SET status = $1, last_error = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, status, lastError, jobID); err != nil {
		zap.L().Error("can't update provision job", zap.Int("jobID", jobID), zap.Error(err))
		return err
	}
	return nil
}

// RequeueStale returns claims abandoned by a dead worker to the queue. A job
// is stale when it has sat in running since before olderThan; the attempt
// already counted on claim, so a job that keeps killing its worker still
// terminates through the normal attempt ceiling.
func (r *Repository) RequeueStale(ctx context.Context, olderThan time.Time) ([]int, error) {
	query := `
        UPDATE provision_jobs
        SET status = 'queued', next_run_at = NOW(), claimed_at = NULL, last_error = 'claim abandoned, requeued'
        WHERE status = 'running' AND claimed_at < $1
        RETURNING id
    `
	rows, err := r.db.Query(ctx, query, olderThan)
	if err != nil {
		zap.L().Error("can't requeue stale provision jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan requeued job id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Reschedule puts a failed attempt back on the queue for its next backoff
// slot.
func (r *Repository) Reschedule(ctx context.Context, jobID int, nextRunAt time.Time, lastError string) error {
	query := `
        UPDATE provision_jobs
        SET status = 'queued', next_run_at = $1, last_error = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, nextRunAt, lastError, jobID); err != nil {
		zap.L().Error("can't reschedule provision job", zap.Int("jobID", jobID), zap.Error(err))
		return err
	}
	return nil
}
