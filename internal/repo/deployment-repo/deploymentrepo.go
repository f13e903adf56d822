package deploymentrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/pg"
	"go.uber.org/zap"
)

const deploymentColumns = `id, shop_id, status, external_run_id, events, error_message, started_at, completed_at, created_at`

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

func scanDeployment(row pgx.Row) (*domain.Deployment, error) {
	var d domain.Deployment
	var events []byte
	err := row.Scan(&d.ID, &d.ShopID, &d.Status, &d.ExternalRunID, &events, &d.ErrorMessage, &d.StartedAt, &d.CompletedAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(events) > 0 {
		if err := json.Unmarshal(events, &d.Events); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, shopID int) (*domain.Deployment, error) {
	query := `
        INSERT INTO deployments (shop_id, status)
        VALUES ($1, $2)
        RETURNING ` + deploymentColumns
	d, err := scanDeployment(r.db.QueryRow(ctx, query, shopID, domain.DeploymentQueued))
	if err != nil {
		zap.L().Error("can't create deployment", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) FindByID(ctx context.Context, deploymentID int) (*domain.Deployment, error) {
	query := `SELECT ` + deploymentColumns + ` FROM deployments WHERE id = $1`
	d, err := scanDeployment(r.db.QueryRow(ctx, query, deploymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deployment", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) FindByRunID(ctx context.Context, runID string) (*domain.Deployment, error) {
	query := `SELECT ` + deploymentColumns + ` FROM deployments WHERE external_run_id = $1`
	d, err := scanDeployment(r.db.QueryRow(ctx, query, runID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deployment by run id", zap.Error(err))
		return nil, err
	}
	return d, nil
}

// FindLatestByShop returns the most recent deployment, which is the only one
// authoritative for the shop's current state.
func (r *Repository) FindLatestByShop(ctx context.Context, shopID int) (*domain.Deployment, error) {
	query := `SELECT ` + deploymentColumns + `
        FROM deployments
        WHERE shop_id = $1
        ORDER BY created_at DESC
        LIMIT 1`
	d, err := scanDeployment(r.db.QueryRow(ctx, query, shopID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find latest deployment", zap.Error(err))
		return nil, err
	}
	return d, nil
}

// SetRunning records the dispatched run and moves the deployment to running.
// Terminal deployments are never moved back.
func (r *Repository) SetRunning(ctx context.Context, deploymentID int, runID string) error {
	query := `
        UPDATE deployments
        SET status = $1, external_run_id = $2, started_at = COALESCE(started_at, NOW())
        WHERE id = $3 AND status NOT IN ('success', 'failed')
    `
	if _, err := r.db.Exec(ctx, query, domain.DeploymentRunning, runID, deploymentID); err != nil {
		zap.L().Error("can't set deployment running", zap.Int("deploymentID", deploymentID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AppendEvent(ctx context.Context, deploymentID int, event domain.DeploymentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	query := `
        UPDATE deployments
        SET events = events || $1::jsonb
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, payload, deploymentID); err != nil {
		zap.L().Error("can't append deployment event", zap.Int("deploymentID", deploymentID), zap.Error(err))
		return err
	}
	return nil
}

// MarkTerminal commits the final state and appends the terminal event in the
// same transaction. The status guard keeps the state machine monotonic: an
// already-terminal deployment is left untouched and MarkTerminal reports
// false.
func (r *Repository) MarkTerminal(ctx context.Context, deploymentID int, status domain.DeploymentStatus, errorMessage string) (bool, error) {
	event, err := json.Marshal(domain.NewTerminalEvent(status, errorMessage))
	if err != nil {
		return false, err
	}
	query := `
        UPDATE deployments
        SET status = $1, error_message = $2, completed_at = NOW(), events = events || $3::jsonb
        WHERE id = $4 AND status NOT IN ('success', 'failed')
    `
	var committed bool
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, status, errorMessage, event, deploymentID)
		if err != nil {
			zap.L().Error("can't mark deployment terminal", zap.Int("deploymentID", deploymentID), zap.Error(err))
			return err
		}
		committed = tag.RowsAffected() > 0
		return nil
	})
	return committed, err
}
