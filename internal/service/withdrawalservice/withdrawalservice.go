package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

type Repo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByAccountID(ctx context.Context, accountID int64) ([]domain.Withdrawal, error)
	ListAll(ctx context.Context) ([]domain.WithdrawalWithOwner, error)
	UpdateStatus(ctx context.Context, id int64, status domain.WithdrawalStatus, refund bool, now time.Time) (*domain.Withdrawal, error)
}

type Service struct {
	withdrawalRepo  Repo
	minimum         decimal.Decimal
	refundOnFailure bool
	now             func() time.Time
}

// New builds the withdrawal engine. Requests below minimum are rejected.
// With refundOnFailure the amount of a failed withdrawal returns to the
// available balance.
func New(repo Repo, minimum decimal.Decimal, refundOnFailure bool) *Service {
	return &Service{
		withdrawalRepo:  repo,
		minimum:         minimum,
		refundOnFailure: refundOnFailure,
		now:             time.Now,
	}
}

func (s *Service) Minimum() decimal.Decimal {
	return s.minimum
}

func (s *Service) RequestWithdrawal(ctx context.Context, accountID int64, amount decimal.Decimal, method domain.PaymentMethod, details string) (*domain.Withdrawal, error) {
	if !amount.IsPositive() || amount.LessThan(s.minimum) {
		return nil, domain.ErrBelowMinimum
	}
	if err := domain.ValidatePaymentDetails(method, details); err != nil {
		return nil, err
	}

	withdrawal, err := s.withdrawalRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
		AccountID: accountID,
		Amount:    amount,
		Method:    method,
		Details:   details,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientBalance) && !errors.Is(err, domain.ErrNotFound) {
			zap.L().Error("failed to create withdrawal", zap.Int64("account_id", accountID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int64("withdrawal_id", withdrawal.ID),
		zap.Int64("account_id", accountID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("method", string(method)),
	)
	return withdrawal, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, accountID int64) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) ListAllWithdrawals(ctx context.Context) ([]domain.WithdrawalWithOwner, error) {
	withdrawals, err := s.withdrawalRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch all withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) UpdateWithdrawalStatus(ctx context.Context, id int64, status string) (*domain.Withdrawal, error) {
	newStatus, err := domain.ParseWithdrawalStatus(status)
	if err != nil {
		return nil, err
	}

	withdrawal, err := s.withdrawalRepo.UpdateStatus(ctx, id, newStatus, s.refundOnFailure, s.now())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInsufficientBalance) {
			zap.L().Error("failed to update withdrawal status", zap.Int64("withdrawal_id", id), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal status updated", zap.Int64("withdrawal_id", id), zap.String("status", status))
	return withdrawal, nil
}
