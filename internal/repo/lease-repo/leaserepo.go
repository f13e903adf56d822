package leaserepo

import (
	"context"
	"time"

	"github.com/shopforge/shopforge/internal/pg"
	"go.uber.org/zap"
)

// Repository manages the durable supervision leases that survive process
// restarts: one row per supervised deployment.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Acquire takes the lease for owner. An existing lease is stolen only when
// its heartbeat is older than staleBefore. Returns false when another live
// owner holds it.
func (r *Repository) Acquire(ctx context.Context, deploymentID int, owner string, staleBefore time.Time) (bool, error) {
	query := `
        INSERT INTO monitor_leases (deployment_id, owner, heartbeat_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (deployment_id) DO UPDATE
        SET owner = EXCLUDED.owner, heartbeat_at = NOW()
        WHERE monitor_leases.owner = EXCLUDED.owner OR monitor_leases.heartbeat_at < $3
    `
	tag, err := r.db.Exec(ctx, query, deploymentID, owner, staleBefore)
	if err != nil {
		zap.L().Error("can't acquire monitor lease", zap.Int("deploymentID", deploymentID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Heartbeat(ctx context.Context, deploymentID int, owner string) error {
	query := `
        UPDATE monitor_leases
        SET heartbeat_at = NOW()
        WHERE deployment_id = $1 AND owner = $2
    `
	if _, err := r.db.Exec(ctx, query, deploymentID, owner); err != nil {
		zap.L().Error("can't heartbeat monitor lease", zap.Int("deploymentID", deploymentID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Release(ctx context.Context, deploymentID int, owner string) error {
	query := `
        DELETE FROM monitor_leases
        WHERE deployment_id = $1 AND owner = $2
    `
	if _, err := r.db.Exec(ctx, query, deploymentID, owner); err != nil {
		zap.L().Error("can't release monitor lease", zap.Int("deploymentID", deploymentID), zap.Error(err))
		return err
	}
	return nil
}

// OrphanedDeployments lists running deployments whose lease is missing or
// stale, i.e. whose supervising process died. Any worker may resume them.
func (r *Repository) OrphanedDeployments(ctx context.Context, staleBefore time.Time) ([]int, error) {
	query := `
        SELECT d.id
        FROM deployments d
        LEFT JOIN monitor_leases l ON l.deployment_id = d.id
        WHERE d.status = 'running'
          AND (l.deployment_id IS NULL OR l.heartbeat_at < $1)
        ORDER BY d.id
    `
	rows, err := r.db.Query(ctx, query, staleBefore)
	if err != nil {
		zap.L().Error("can't list orphaned deployments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan orphaned deployment id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
