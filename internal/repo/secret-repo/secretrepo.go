package secretrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) GetByShop(ctx context.Context, shopID int) (*domain.ShopSecret, error) {
	query := `
        SELECT id, shop_id, sso_secret, webhook_secret, created_at
        FROM shop_secrets
        WHERE shop_id = $1
    `
	row := r.db.QueryRow(ctx, query, shopID)

	var secret domain.ShopSecret
	err := row.Scan(&secret.ID, &secret.ShopID, &secret.SSOSecret, &secret.WebhookSecret, &secret.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find shop secret", zap.Error(err))
		return nil, err
	}
	return &secret, nil
}

// Create inserts the secret material; on a concurrent insert the existing row
// wins and is returned, so the secret is generated exactly once per shop.
func (r *Repository) Create(ctx context.Context, secret *domain.ShopSecret) (*domain.ShopSecret, error) {
	query := `
        INSERT INTO shop_secrets (shop_id, sso_secret, webhook_secret)
        VALUES ($1, $2, $3)
        ON CONFLICT (shop_id) DO NOTHING
        RETURNING id, shop_id, sso_secret, webhook_secret, created_at
    `
	row := r.db.QueryRow(ctx, query, secret.ShopID, secret.SSOSecret, secret.WebhookSecret)

	var created domain.ShopSecret
	err := row.Scan(&created.ID, &created.ShopID, &created.SSOSecret, &created.WebhookSecret, &created.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.GetByShop(ctx, secret.ShopID)
	}
	if err != nil {
		zap.L().Error("can't create shop secret", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) CreateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	query := `
        INSERT INTO subscriptions (shop_id, feature, status, expires_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, shop_id, feature, status, expires_at, created_at
    `
	row := r.db.QueryRow(ctx, query, sub.ShopID, sub.Feature, sub.Status, sub.ExpiresAt)

	var created domain.Subscription
	err := row.Scan(&created.ID, &created.ShopID, &created.Feature, &created.Status, &created.ExpiresAt, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create subscription", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindSubscription(ctx context.Context, shopID int, feature string) (*domain.Subscription, error) {
	query := `
        SELECT id, shop_id, feature, status, expires_at, created_at
        FROM subscriptions
        WHERE shop_id = $1 AND feature = $2
    `
	row := r.db.QueryRow(ctx, query, shopID, feature)

	var sub domain.Subscription
	err := row.Scan(&sub.ID, &sub.ShopID, &sub.Feature, &sub.Status, &sub.ExpiresAt, &sub.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find subscription", zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

// ExpireDue marks active subscriptions past their renewal date as expired.
func (r *Repository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE subscriptions
        SET status = $1
        WHERE status = $2 AND expires_at <= $3
    `
	tag, err := r.db.Exec(ctx, query, domain.SubscriptionExpired, domain.SubscriptionActive, now)
	if err != nil {
		zap.L().Error("can't expire subscriptions", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
