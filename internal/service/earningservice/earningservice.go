package earningservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, accountID, adID int64) (*domain.AdView, error)
	Complete(ctx context.Context, viewID, accountID int64, now time.Time, grace time.Duration) (*domain.AdView, error)
}

type Service struct {
	viewRepo Repo
	grace    time.Duration
	now      func() time.Time
}

// New builds the earning engine. grace is how much earlier than the ad's
// duration a completion is still accepted.
func New(repo Repo, grace time.Duration) *Service {
	return &Service{
		viewRepo: repo,
		grace:    grace,
		now:      time.Now,
	}
}

func (s *Service) StartView(ctx context.Context, accountID, adID int64) (*domain.AdView, error) {
	view, err := s.viewRepo.Create(ctx, accountID, adID)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrNotFound) {
			zap.L().Error("failed to start ad view", zap.Int64("account_id", accountID), zap.Int64("ad_id", adID), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Debug("ad view started", zap.Int64("view_id", view.ID), zap.Int64("account_id", accountID))
	return view, nil
}

func (s *Service) CompleteView(ctx context.Context, viewID, accountID int64) (*domain.AdView, error) {
	view, err := s.viewRepo.Complete(ctx, viewID, accountID, s.now(), s.grace)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCompleted), errors.Is(err, domain.ErrViewTooEarly):
			zap.L().Info("ad view rejected", zap.Int64("view_id", viewID), zap.Error(err))
		case !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrForbidden):
			zap.L().Error("failed to complete ad view", zap.Int64("view_id", viewID), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("ad view credited",
		zap.Int64("view_id", view.ID),
		zap.Int64("account_id", accountID),
		zap.String("reward", view.Reward.StringFixed(2)),
	)
	return view, nil
}
