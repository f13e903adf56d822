package auditrepo

import (
	"context"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Record appends an audit entry. Audit failures are logged but never fail the
// operation being audited.
func (r *Repository) Record(ctx context.Context, entry *domain.AuditLog) {
	query := `
        INSERT INTO audit_logs (actor_id, action, resource_type, resource_id, details)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, entry.ActorID, entry.Action, entry.ResourceType, entry.ResourceID, entry.Details)
	if err != nil {
		zap.L().Error("can't write audit log",
			zap.String("action", entry.Action),
			zap.String("resourceType", entry.ResourceType),
			zap.Error(err),
		)
	}
}
