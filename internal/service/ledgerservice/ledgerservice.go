package ledgerservice

import (
	"context"
	"errors"

	"github.com/shopforge/shopforge/internal/domain"
	"github.com/shopforge/shopforge/pkg/validate"
	"go.uber.org/zap"
)

// voucherValue is the fixed number of credits a redeemed top-up voucher is
// worth.
const voucherValue int64 = 1000

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidVoucher    = errors.New("invalid voucher code")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

type LedgerRepo interface {
	Debit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error)
	Credit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error)
	Transactions(ctx context.Context, userID int) ([]domain.CreditTransaction, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type Service struct {
	ledgerRepo LedgerRepo
	userRepo   UserRepo
}

func New(ledgerRepo LedgerRepo, userRepo UserRepo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
	}
}

func (s *Service) Debit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}
	newBalance, err := s.ledgerRepo.Debit(ctx, userID, amount, reason, relatedShopID)
	if err != nil {
		var insufficient *domain.InsufficientCreditsError
		if !errors.As(err, &insufficient) {
			zap.L().Error("debit failed", zap.Int("userID", userID), zap.Error(err))
		}
		return 0, err
	}
	return newBalance, nil
}

func (s *Service) Credit(ctx context.Context, userID int, amount int64, reason domain.TxReason, relatedShopID *int) (int64, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}
	newBalance, err := s.ledgerRepo.Credit(ctx, userID, amount, reason, relatedShopID)
	if err != nil {
		zap.L().Error("credit failed", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}

// Topup redeems a prepaid voucher code for a fixed credit value. The code's
// Luhn digit is checked before touching the ledger.
func (s *Service) Topup(ctx context.Context, userID int, voucherCode string) (int64, error) {
	if !validate.IsVoucherCode(voucherCode) {
		return 0, ErrInvalidVoucher
	}
	return s.Credit(ctx, userID, voucherValue, domain.ReasonTopup, nil)
}

func (s *Service) Balance(ctx context.Context, userID int) (int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.Credits, nil
}

func (s *Service) Transactions(ctx context.Context, userID int) ([]domain.CreditTransaction, error) {
	txs, err := s.ledgerRepo.Transactions(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch credit transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}
