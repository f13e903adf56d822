package ledgerrepo

import (
	"context"

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

// Debit subtracts amount from the user's balance and appends the ledger row,
// all under a row lock on the user so concurrent debits serialize. It fails
// with InsufficientCreditsError before any write when the balance is short.
func (r *Repository) Debit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error) {
	var newBalance int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := r.lockBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance < amount {
			return &domain.InsufficientCreditsError{Need: amount, Have: balance}
		}
		newBalance = balance - amount
		return r.applyEntry(ctx, userID, -amount, newBalance, reason, relatedShopID)
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Credit adds amount to the user's balance and appends the ledger row under
// the same row lock discipline as Debit.
func (r *Repository) Credit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error) {
	var newBalance int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := r.lockBalance(ctx, userID)
		if err != nil {
			return err
		}
		newBalance = balance + amount
		return r.applyEntry(ctx, userID, amount, newBalance, reason, relatedShopID)
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (r *Repository) lockBalance(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT credits
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	var balance int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		zap.L().Error("can't lock user balance", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) applyEntry(ctx context.Context, userID int, amount, balanceAfter int64, reason domain.TxReason, relatedShopID *int) error {
	updateQuery := `
        UPDATE users
        SET credits = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, updateQuery, balanceAfter, userID); err != nil {
		zap.L().Error("can't update user credits", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	insertQuery := `
        INSERT INTO credit_transactions (user_id, amount, reason, related_shop_id, balance_after)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := r.db.Exec(ctx, insertQuery, userID, amount, reason, relatedShopID, balanceAfter); err != nil {
		zap.L().Error("can't insert credit transaction", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Transactions(ctx context.Context, userID int) ([]domain.CreditTransaction, error) {
	query := `
        SELECT id, user_id, amount, reason, related_shop_id, balance_after, created_at
        FROM credit_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get credit transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.CreditTransaction
	for rows.Next() {
		var tx domain.CreditTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Reason, &tx.RelatedShopID, &tx.BalanceAfter, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan credit transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
