package shoprepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/internal/pg"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

const shopColumns = `id, owner_id, shop_name, slug, app_name, status, plan, max_products, max_orders,
        custom_domain, expires_at, chatbot_enabled, chatbot_bot_id, chatbot_enabled_at,
        deleted_at, scheduled_hard_delete_at, created_at, updated_at`

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

func scanShop(row pgx.Row) (*domain.Shop, error) {
	var shop domain.Shop
	err := row.Scan(
		&shop.ID, &shop.OwnerID, &shop.ShopName, &shop.Slug, &shop.AppName, &shop.Status,
		&shop.Plan, &shop.MaxProducts, &shop.MaxOrders, &shop.CustomDomain, &shop.ExpiresAt,
		&shop.ChatbotEnabled, &shop.ChatbotBotID, &shop.ChatbotEnabledAt,
		&shop.DeletedAt, &shop.ScheduledHardDeleteAt, &shop.CreatedAt, &shop.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *Repository) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	query := `
        INSERT INTO shops (owner_id, shop_name, slug, app_name, status, plan, max_products, max_orders, custom_domain)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + shopColumns
	row := r.db.QueryRow(ctx, query,
		shop.OwnerID, shop.ShopName, shop.Slug, shop.AppName, shop.Status,
		shop.Plan, shop.MaxProducts, shop.MaxOrders, shop.CustomDomain,
	)
	created, err := scanShop(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrDuplicateSlug
		}
		zap.L().Error("can't create shop", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, shopID int) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`
	shop, err := scanShop(r.db.QueryRow(ctx, query, shopID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find shop", zap.Error(err))
		return nil, err
	}
	return shop, nil
}

func (r *Repository) FindByAppName(ctx context.Context, appName string) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE app_name = $1`
	shop, err := scanShop(r.db.QueryRow(ctx, query, appName))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find shop by app name", zap.Error(err))
		return nil, err
	}
	return shop, nil
}

func (r *Repository) FindByOwner(ctx context.Context, ownerID int) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't get shops", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			zap.L().Error("can't scan shop row", zap.Error(err))
			return nil, err
		}
		shops = append(shops, *shop)
	}
	return shops, nil
}

// SlugTaken reports whether any shop (including soft-deleted ones still
// holding their remote app) already uses the slug or app name.
func (r *Repository) SlugTaken(ctx context.Context, slug, appName string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM shops WHERE slug = $1 OR app_name = $2
        )
    `
	var taken bool
	if err := r.db.QueryRow(ctx, query, slug, appName).Scan(&taken); err != nil {
		zap.L().Error("can't check slug uniqueness", zap.Error(err))
		return false, err
	}
	return taken, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, shopID int, status domain.ShopStatus) error {
	query := `
        UPDATE shops
        SET status = $1, updated_at = NOW()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, shopID); err != nil {
		zap.L().Error("can't update shop status", zap.Int("shopID", shopID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, shopID int, deletedAt, hardDeleteAt time.Time) error {
	query := `
        UPDATE shops
        SET status = $1, deleted_at = $2, scheduled_hard_delete_at = $3, updated_at = NOW()
        WHERE id = $4
    `
	if _, err := r.db.Exec(ctx, query, domain.ShopDeleted, deletedAt, hardDeleteAt, shopID); err != nil {
		zap.L().Error("can't soft delete shop", zap.Int("shopID", shopID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetChatbot(ctx context.Context, shopID int, botID string) error {
	query := `
        UPDATE shops
        SET chatbot_enabled = TRUE, chatbot_bot_id = $1, chatbot_enabled_at = NOW(), updated_at = NOW()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, botID, shopID); err != nil {
		zap.L().Error("can't enable chatbot on shop", zap.Int("shopID", shopID), zap.Error(err))
		return err
	}
	return nil
}

// ListHardDeleteDue returns soft-deleted shops whose grace period has passed.
func (r *Repository) ListHardDeleteDue(ctx context.Context, now time.Time) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + `
        FROM shops
        WHERE status = $1 AND scheduled_hard_delete_at IS NOT NULL AND scheduled_hard_delete_at <= $2
        ORDER BY scheduled_hard_delete_at ASC`
	rows, err := r.db.Query(ctx, query, domain.ShopDeleted, now)
	if err != nil {
		zap.L().Error("can't get shops due for hard delete", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			zap.L().Error("can't scan shop row", zap.Error(err))
			return nil, err
		}
		shops = append(shops, *shop)
	}
	return shops, nil
}

// Delete removes the shop row; deployments, secrets and subscriptions go with
// it via FK cascade.
func (r *Repository) Delete(ctx context.Context, shopID int) error {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `DELETE FROM shops WHERE id = $1`, shopID)
		if err != nil {
			zap.L().Error("can't delete shop", zap.Int("shopID", shopID), zap.Error(err))
			return err
		}
		return nil
	})
	return err
}
