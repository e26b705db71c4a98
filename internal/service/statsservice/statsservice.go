package statsservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

type AccountRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	History(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
}

type ViewRepo interface {
	ListCompleted(ctx context.Context, accountID int64, limit int) ([]domain.AdView, error)
	CompletedSince(ctx context.Context, accountID int64, since time.Time) (int, decimal.Decimal, error)
}

type Service struct {
	accountRepo AccountRepo
	viewRepo    ViewRepo
	now         func() time.Time
}

func New(accountRepo AccountRepo, viewRepo ViewRepo) *Service {
	return &Service{
		accountRepo: accountRepo,
		viewRepo:    viewRepo,
		now:         time.Now,
	}
}

// TodaysStats reports the account totals together with the views completed
// since local midnight. The daily figures are always counted from the views
// themselves, never from the cached counter on the account.
func (s *Service) TodaysStats(ctx context.Context, accountID int64) (*domain.DailyStats, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	watched, earned, err := s.viewRepo.CompletedSince(ctx, accountID, domain.StartOfDay(s.now()))
	if err != nil {
		zap.L().Error("failed to compute today's earnings", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}

	return &domain.DailyStats{
		TotalEarnings:    account.TotalEarnings,
		AvailableBalance: account.AvailableBalance,
		AdsWatchedToday:  watched,
		TodayEarnings:    earned,
		CurrentStreak:    account.CurrentStreak,
	}, nil
}

// RecentEarnings returns the latest completed views. A non-positive limit
// means DefaultRecentLimit; larger limits are capped at MaxRecentLimit.
func (s *Service) RecentEarnings(ctx context.Context, accountID int64, limit int) ([]domain.AdView, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	views, err := s.viewRepo.ListCompleted(ctx, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch recent earnings", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return views, nil
}

func (s *Service) TransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	history, err := s.accountRepo.History(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transaction history", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return history, nil
}

func (s *Service) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	stats, err := s.accountRepo.PlatformStats(ctx)
	if err != nil {
		zap.L().Error("failed to compute platform stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
