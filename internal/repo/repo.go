package repo

import (
	"github.com/GlebRadaev/adrewards/internal/pg"
	accountrepo "github.com/GlebRadaev/adrewards/internal/repo/account-repo"
	adrepo "github.com/GlebRadaev/adrewards/internal/repo/ad-repo"
	viewrepo "github.com/GlebRadaev/adrewards/internal/repo/view-repo"
	withdrawalrepo "github.com/GlebRadaev/adrewards/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/adrewards/internal/rollover"
	"github.com/GlebRadaev/adrewards/internal/service/authservice"
	"github.com/GlebRadaev/adrewards/internal/service/catalogservice"
	"github.com/GlebRadaev/adrewards/internal/service/earningservice"
	"github.com/GlebRadaev/adrewards/internal/service/statsservice"
	"github.com/GlebRadaev/adrewards/internal/service/withdrawalservice"
)

// Repositories exposes each store through the interface its consumer
// declares. The account and view stores back more than one consumer.
type Repositories struct {
	AccountRepo    authservice.Repo
	AccountStats   statsservice.AccountRepo
	RolloverRepo   rollover.Repo
	AdRepo         catalogservice.Repo
	ViewRepo       earningservice.Repo
	ViewStats      statsservice.ViewRepo
	WithdrawalRepo withdrawalservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	adRepo := adrepo.New(conn)
	viewRepo := viewrepo.New(conn, txManager)
	withdrawalRepo := withdrawalrepo.New(conn, txManager)

	return &Repositories{
		AccountRepo:    accountRepo,
		AccountStats:   accountRepo,
		RolloverRepo:   accountRepo,
		AdRepo:         adRepo,
		ViewRepo:       viewRepo,
		ViewStats:      viewRepo,
		WithdrawalRepo: withdrawalRepo,
	}
}
