package userrepo

import (
	"context"
	"errors"

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

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, credits, first_shop_redeemed, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Credits, &user.FirstShopRedeemed, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// MarkFirstShopRedeemed flips the free-grant flag and reports whether this
// call won it. A concurrent creation that already redeemed the grant leaves
// zero rows affected.
func (r *Repository) MarkFirstShopRedeemed(ctx context.Context, userID int) (bool, error) {
	query := `
        UPDATE users
        SET first_shop_redeemed = TRUE
        WHERE id = $1 AND first_shop_redeemed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't mark first shop redeemed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
