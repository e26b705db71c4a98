package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/adrewards/internal/config"
	"github.com/GlebRadaev/adrewards/internal/handlers/admin"
	"github.com/GlebRadaev/adrewards/internal/handlers/ads"
	"github.com/GlebRadaev/adrewards/internal/handlers/auth"
	"github.com/GlebRadaev/adrewards/internal/handlers/balance"
	"github.com/GlebRadaev/adrewards/internal/repo"
	"github.com/GlebRadaev/adrewards/internal/service/authservice"
	"github.com/GlebRadaev/adrewards/internal/service/catalogservice"
	"github.com/GlebRadaev/adrewards/internal/service/earningservice"
	"github.com/GlebRadaev/adrewards/internal/service/statsservice"
	"github.com/GlebRadaev/adrewards/internal/service/withdrawalservice"
	pkgauth "github.com/GlebRadaev/adrewards/pkg/auth"
)

type AuthService interface {
	auth.Service
	admin.AccountService
	EnsureOperator(ctx context.Context, username, email, password string) error
}

type CatalogService interface {
	ads.CatalogService
	admin.CatalogService
}

type StatsService interface {
	balance.StatsService
	admin.StatsService
}

type WithdrawalService interface {
	balance.WithdrawalService
	admin.WithdrawalService
}

type Services struct {
	AuthService       AuthService
	CatalogService    CatalogService
	EarningService    ads.EarningService
	StatsService      StatsService
	WithdrawalService WithdrawalService
}

func New(repo *repo.Repositories, cfg *config.Config, sessions pkgauth.Resolver) (*Services, error) {
	minimum, err := decimal.NewFromString(cfg.MinWithdrawal)
	if err != nil {
		return nil, fmt.Errorf("invalid minimum withdrawal %q: %w", cfg.MinWithdrawal, err)
	}

	return &Services{
		AuthService:       authservice.New(repo.AccountRepo, &pkgauth.HashService{}, sessions),
		CatalogService:    catalogservice.New(repo.AdRepo),
		EarningService:    earningservice.New(repo.ViewRepo, cfg.ViewGrace),
		StatsService:      statsservice.New(repo.AccountStats, repo.ViewStats),
		WithdrawalService: withdrawalservice.New(repo.WithdrawalRepo, minimum, cfg.RefundOnFailure),
	}, nil
}
