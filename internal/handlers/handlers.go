package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/adrewards/docs"
	"github.com/GlebRadaev/adrewards/internal/domain"
	adminhandlers "github.com/GlebRadaev/adrewards/internal/handlers/admin"
	adshandlers "github.com/GlebRadaev/adrewards/internal/handlers/ads"
	authhandlers "github.com/GlebRadaev/adrewards/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/adrewards/internal/handlers/balance"
	"github.com/GlebRadaev/adrewards/internal/service"
	"github.com/GlebRadaev/adrewards/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type AdsHandler interface {
	ListAds(w http.ResponseWriter, r *http.Request)
	StartView(w http.ResponseWriter, r *http.Request)
	CompleteView(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetAccounts(w http.ResponseWriter, r *http.Request)
	UpdateAccount(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	UpdateWithdrawal(w http.ResponseWriter, r *http.Request)
	ListAds(w http.ResponseWriter, r *http.Request)
	CreateAd(w http.ResponseWriter, r *http.Request)
	UpdateAd(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	AdsHandler     AdsHandler
	BalanceHandler BalanceHandler
	AdminHandler   AdminHandler

	sessions auth.Resolver
}

func New(s *service.Services, sessions auth.Resolver) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		AdsHandler:     adshandlers.New(s.CatalogService, s.EarningService),
		BalanceHandler: balancehandlers.New(s.StatsService, s.WithdrawalService),
		AdminHandler:   adminhandlers.New(s.StatsService, s.AuthService, s.WithdrawalService, s.CatalogService),
		sessions:       sessions,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	authenticated := auth.Middleware(h.sessions)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/logout", h.AuthHandler.Logout)
			r.Get("/profile", h.AuthHandler.Profile)
			r.Get("/stats", h.BalanceHandler.GetStats)
			r.Get("/earnings", h.BalanceHandler.GetEarnings)
			r.Get("/transactions", h.BalanceHandler.GetTransactions)
		})
	})

	r.Route("/api/ads", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.AdsHandler.ListAds)
		r.Post("/{adID}/start", h.AdsHandler.StartView)
		r.Post("/views/{viewID}/complete", h.AdsHandler.CompleteView)
	})

	r.Route("/api/withdrawals", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.BalanceHandler.GetWithdrawals)
		r.Post("/", h.BalanceHandler.Withdraw)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authenticated, auth.RequireRole(string(domain.RoleOperator)))
		r.Get("/stats", h.AdminHandler.GetStats)
		r.Get("/accounts", h.AdminHandler.GetAccounts)
		r.Patch("/accounts/{accountID}", h.AdminHandler.UpdateAccount)
		r.Get("/withdrawals", h.AdminHandler.GetWithdrawals)
		r.Patch("/withdrawals/{withdrawalID}", h.AdminHandler.UpdateWithdrawal)
		r.Get("/ads", h.AdminHandler.ListAds)
		r.Post("/ads", h.AdminHandler.CreateAd)
		r.Patch("/ads/{adID}", h.AdminHandler.UpdateAd)
	})

	return r
}
