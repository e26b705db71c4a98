package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockResolver) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	sessions := auth.NewMockResolver(ctrl)

	service := New(repo, hashService, sessions)
	return service, repo, hashService, sessions
}

func TestRegister(t *testing.T) {
	service, accountRepo, passwordHasher, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		prepareMock     func()
		expectedAccount *domain.Account
		expectedError   error
	}{
		{
			name: "Successful registration",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(nil, nil)
				accountRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashedpassword", nil)
				accountRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, account *domain.Account) (*domain.Account, error) {
					assert.Equal(t, "asha@example.com", account.Email)
					account.ID = 1
					account.TotalEarnings = decimal.Zero
					account.AvailableBalance = decimal.Zero
					return account, nil
				})
			},
			expectedAccount: &domain.Account{
				ID:               1,
				Username:         "asha",
				Email:            "asha@example.com",
				PasswordHash:     "hashedpassword",
				TotalEarnings:    decimal.Zero,
				AvailableBalance: decimal.Zero,
			},
		},
		{
			name: "Username already taken",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(&domain.Account{Username: "asha"}, nil)
			},
			expectedError: domain.ErrAccountExists,
		},
		{
			name: "Email already taken",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(nil, nil)
				accountRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(&domain.Account{Username: "other"}, nil)
			},
			expectedError: domain.ErrAccountExists,
		},
		{
			name: "Error finding account",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(nil, nil)
				accountRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "Concurrent registration loses the race",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(nil, nil)
				accountRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashedpassword", nil)
				accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, domain.ErrAccountExists)
			},
			expectedError: domain.ErrAccountExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Register(ctx, "asha", " Asha@Example.com ", "secret")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAccount, account)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, accountRepo, passwordHasher, _ := NewMock(t)
	ctx := context.Background()
	stored := &domain.Account{ID: 1, Username: "asha", PasswordHash: "hashedpassword", IsActive: true}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "secret",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "secret").Return(true)
			},
		},
		{
			name:     "Unknown username",
			password: "secret",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "wrong",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Inactive account",
			password: "secret",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "asha").Return(&domain.Account{ID: 2, PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "secret").Return(true)
			},
			expectedError: domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.Authenticate(ctx, "asha", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored, account)
			}
		})
	}
}

func TestIssueTokenAndLogout(t *testing.T) {
	service, _, _, sessions := NewMock(t)
	ctx := context.Background()
	account := &domain.Account{ID: 7, Role: domain.RoleOperator}

	sessions.EXPECT().Issue(ctx, int64(7), "operator").Return("token", nil)
	token, err := service.IssueToken(ctx, account)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	sessions.EXPECT().Issue(ctx, int64(7), "operator").Return("", errors.New("redis down"))
	_, err = service.IssueToken(ctx, account)
	assert.EqualError(t, err, "redis down")

	sessions.EXPECT().Revoke(ctx, "token").Return(nil)
	assert.NoError(t, service.Logout(ctx, "token"))
}

func TestProfile(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)
	ctx := context.Background()

	accountRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Account{ID: 1, Username: "asha", PasswordHash: "hash"}, nil)
	account, err := service.Profile(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, account.PasswordHash)

	accountRepo.EXPECT().GetByID(ctx, int64(2)).Return(nil, domain.ErrNotFound)
	_, err = service.Profile(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAccounts(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)
	ctx := context.Background()

	accountRepo.EXPECT().ListAll(ctx).Return([]domain.Account{{ID: 1, PasswordHash: "a"}, {ID: 2, PasswordHash: "b"}}, nil)
	accounts, err := service.ListAccounts(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	for _, a := range accounts {
		assert.Empty(t, a.PasswordHash)
	}
}

func TestUpdateAccount(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)
	ctx := context.Background()
	inactive := false
	unknown := domain.Role("admin")

	tests := []struct {
		name          string
		changes       domain.AccountChanges
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Deactivate account",
			changes: domain.AccountChanges{IsActive: &inactive},
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(ctx, int64(1)).
					Return(&domain.Account{ID: 1, Role: domain.RoleUser, IsActive: true, PasswordHash: "hash"}, nil)
				accountRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, account *domain.Account) (*domain.Account, error) {
					assert.False(t, account.IsActive)
					assert.Equal(t, domain.RoleUser, account.Role)
					return account, nil
				})
			},
		},
		{
			name:    "Unknown role",
			changes: domain.AccountChanges{Role: &unknown},
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Account{ID: 1, Role: domain.RoleUser}, nil)
			},
			expectedError: domain.ErrInvalidRole,
		},
		{
			name:    "Account missing",
			changes: domain.AccountChanges{IsActive: &inactive},
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(ctx, int64(1)).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:    "Error saving account",
			changes: domain.AccountChanges{IsActive: &inactive},
			prepareMock: func() {
				accountRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Account{ID: 1, Role: domain.RoleUser}, nil)
				accountRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.UpdateAccount(ctx, 1, tt.changes)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, account)
				return
			}
			assert.NoError(t, err)
			assert.False(t, account.IsActive)
			assert.Empty(t, account.PasswordHash)
		})
	}
}

func TestEnsureOperator(t *testing.T) {
	service, accountRepo, passwordHasher, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Creates missing operator",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("admin-secret").Return("hashed", nil)
				accountRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, account *domain.Account) (*domain.Account, error) {
					assert.Equal(t, domain.RoleOperator, account.Role)
					assert.Equal(t, "admin@example.com", account.Email)
					assert.Equal(t, "hashed", account.PasswordHash)
					account.ID = 1
					account.IsActive = true
					return account, nil
				})
			},
		},
		{
			name: "Existing active operator is left alone",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "admin").
					Return(&domain.Account{ID: 1, Role: domain.RoleOperator, IsActive: true}, nil)
			},
		},
		{
			name: "Existing user is promoted and reactivated",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "admin").
					Return(&domain.Account{ID: 1, Role: domain.RoleUser, IsActive: false, PasswordHash: "old"}, nil)
				accountRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, account *domain.Account) (*domain.Account, error) {
					assert.Equal(t, domain.RoleOperator, account.Role)
					assert.True(t, account.IsActive)
					assert.Equal(t, "old", account.PasswordHash)
					return account, nil
				})
			},
		},
		{
			name: "Error finding account",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "admin").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error creating account",
			prepareMock: func() {
				accountRepo.EXPECT().FindByUsername(ctx, "admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("admin-secret").Return("hashed", nil)
				accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, domain.ErrAccountExists)
			},
			expectedError: domain.ErrAccountExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.EnsureOperator(ctx, "admin", " Admin@Example.com", "admin-secret")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
