package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adrewards/internal/config"
	"github.com/GlebRadaev/adrewards/internal/repo"
	"github.com/GlebRadaev/adrewards/internal/service"
	"github.com/GlebRadaev/adrewards/internal/service/authservice"
	"github.com/GlebRadaev/adrewards/internal/service/catalogservice"
	"github.com/GlebRadaev/adrewards/internal/service/earningservice"
	"github.com/GlebRadaev/adrewards/internal/service/statsservice"
	"github.com/GlebRadaev/adrewards/internal/service/withdrawalservice"
	"github.com/GlebRadaev/adrewards/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := auth.NewMockResolver(ctrl)

	services, err := service.New(&repo.Repositories{
		AccountRepo:    authservice.NewMockRepo(ctrl),
		AccountStats:   statsservice.NewMockAccountRepo(ctrl),
		AdRepo:         catalogservice.NewMockRepo(ctrl),
		ViewRepo:       earningservice.NewMockRepo(ctrl),
		ViewStats:      statsservice.NewMockViewRepo(ctrl),
		WithdrawalRepo: withdrawalservice.NewMockRepo(ctrl),
	}, &config.Config{MinWithdrawal: "4500"}, resolver)
	require.NoError(t, err)

	h := New(services, resolver)
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.AdsHandler)
	assert.NotNil(t, h.BalanceHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockAdsHandler := NewMockAdsHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	resolver := auth.NewMockResolver(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Profile(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdsHandler.EXPECT().ListAds(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdsHandler.EXPECT().StartView(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdsHandler.EXPECT().CompleteView(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetEarnings(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetAccounts(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().UpdateWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ListAds(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().CreateAd(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().UpdateAd(gomock.Any(), gomock.Any()).AnyTimes()

	resolver.EXPECT().Resolve(gomock.Any(), "user-token").Return(&auth.Session{AccountID: 1, Role: "user"}, nil).AnyTimes()
	resolver.EXPECT().Resolve(gomock.Any(), "operator-token").Return(&auth.Session{AccountID: 2, Role: "operator"}, nil).AnyTimes()
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (*auth.Session, error) {
		return nil, errors.New("unknown token")
	}).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		AdsHandler:     mockAdsHandler,
		BalanceHandler: mockBalanceHandler,
		AdminHandler:   mockAdminHandler,
		sessions:       resolver,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{http.MethodPost, "/api/user/register", "", http.StatusOK},
		{http.MethodPost, "/api/user/login", "", http.StatusOK},
		{http.MethodPost, "/api/user/logout", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user/profile", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user/stats", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user/earnings", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user/transactions", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/ads", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/ads/1/start", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/ads/views/1/complete", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/withdrawals", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/withdrawals", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/admin/stats", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/user/stats", "forged", http.StatusUnauthorized},

		{http.MethodPost, "/api/user/logout", "user-token", http.StatusOK},
		{http.MethodGet, "/api/user/profile", "user-token", http.StatusOK},
		{http.MethodGet, "/api/user/stats", "user-token", http.StatusOK},
		{http.MethodGet, "/api/user/earnings", "user-token", http.StatusOK},
		{http.MethodGet, "/api/user/transactions", "user-token", http.StatusOK},
		{http.MethodGet, "/api/ads", "user-token", http.StatusOK},
		{http.MethodPost, "/api/ads/1/start", "user-token", http.StatusOK},
		{http.MethodPost, "/api/ads/views/1/complete", "user-token", http.StatusOK},
		{http.MethodGet, "/api/withdrawals", "user-token", http.StatusOK},
		{http.MethodPost, "/api/withdrawals", "user-token", http.StatusOK},

		{http.MethodGet, "/api/admin/stats", "user-token", http.StatusForbidden},
		{http.MethodGet, "/api/admin/accounts", "user-token", http.StatusForbidden},
		{http.MethodPatch, "/api/admin/withdrawals/1", "user-token", http.StatusForbidden},
		{http.MethodPatch, "/api/admin/accounts/1", "user-token", http.StatusForbidden},
		{http.MethodPatch, "/api/admin/accounts/1", "", http.StatusUnauthorized},

		{http.MethodGet, "/api/admin/stats", "operator-token", http.StatusOK},
		{http.MethodGet, "/api/admin/accounts", "operator-token", http.StatusOK},
		{http.MethodPatch, "/api/admin/accounts/1", "operator-token", http.StatusOK},
		{http.MethodGet, "/api/admin/withdrawals", "operator-token", http.StatusOK},
		{http.MethodPatch, "/api/admin/withdrawals/1", "operator-token", http.StatusOK},
		{http.MethodGet, "/api/admin/ads", "operator-token", http.StatusOK},
		{http.MethodPost, "/api/admin/ads", "operator-token", http.StatusOK},
		{http.MethodPatch, "/api/admin/ads/1", "operator-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
