package catalogservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

type Repo interface {
	ListActive(ctx context.Context) ([]domain.Ad, error)
	ListAll(ctx context.Context) ([]domain.Ad, error)
	GetByID(ctx context.Context, id int64) (*domain.Ad, error)
	GetActive(ctx context.Context, id int64) (*domain.Ad, error)
	Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	Update(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
}

type Service struct {
	adRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		adRepo: repo,
	}
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Ad, error) {
	ads, err := s.adRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list active ads", zap.Error(err))
		return nil, err
	}
	return ads, nil
}

func (s *Service) GetActive(ctx context.Context, id int64) (*domain.Ad, error) {
	return s.adRepo.GetActive(ctx, id)
}

// Get returns the ad regardless of its active flag.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Ad, error) {
	return s.adRepo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Ad, error) {
	ads, err := s.adRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list ads", zap.Error(err))
		return nil, err
	}
	return ads, nil
}

func (s *Service) Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	if err := ad.Validate(); err != nil {
		return nil, err
	}
	created, err := s.adRepo.Create(ctx, ad)
	if err != nil {
		zap.L().Error("failed to create ad", zap.Error(err))
		return nil, err
	}
	zap.L().Info("ad created", zap.Int64("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (s *Service) Update(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	if err := ad.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.adRepo.Update(ctx, ad)
	if err != nil {
		return nil, err
	}
	zap.L().Info("ad updated", zap.Int64("id", updated.ID), zap.Bool("active", updated.IsActive))
	return updated, nil
}
