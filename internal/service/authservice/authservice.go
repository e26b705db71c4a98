package authservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/pkg/auth"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	ListAll(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	sessions    auth.Resolver
}

func New(repo Repo, hashService auth.HashServiceInterface, sessions auth.Resolver) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		sessions:    sessions,
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		existing, err = s.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			zap.L().Error("can't find account", zap.Error(err))
			return nil, err
		}
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("username", username))
		return nil, domain.ErrAccountExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	account, err := s.accountRepo.Create(ctx, &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAccountExists) {
			zap.L().Error("can't create account", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("username", username))
	return account, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	if account == nil || !s.hashService.ComparePassword(account.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	if !account.IsActive {
		zap.L().Info("inactive account tried to log in", zap.Int64("account_id", account.ID))
		return nil, domain.ErrUnauthorized
	}
	zap.L().Info("account successfully authenticated", zap.String("username", username))
	return account, nil
}

func (s *Service) IssueToken(ctx context.Context, account *domain.Account) (string, error) {
	token, err := s.sessions.Issue(ctx, account.ID, string(account.Role))
	if err != nil {
		zap.L().Error("can't issue session", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		zap.L().Error("can't revoke session", zap.Error(err))
		return err
	}
	return nil
}

// Profile returns the account with its credential cleared.
func (s *Service) Profile(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""
	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	for i := range accounts {
		accounts[i].PasswordHash = ""
	}
	return accounts, nil
}

// UpdateAccount changes the role or the active flag of an account.
// Deactivated accounts can neither log in nor start views.
func (s *Service) UpdateAccount(ctx context.Context, id int64, changes domain.AccountChanges) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := changes.Apply(account); err != nil {
		return nil, err
	}
	updated, err := s.accountRepo.Update(ctx, account)
	if err != nil {
		return nil, err
	}

	zap.L().Info("account updated",
		zap.Int64("account_id", id),
		zap.String("role", string(updated.Role)),
		zap.Bool("is_active", updated.IsActive))
	updated.PasswordHash = ""
	return updated, nil
}

// EnsureOperator makes sure an active operator account named username
// exists. An existing account is promoted and reactivated, its password is
// left as is.
func (s *Service) EnsureOperator(ctx context.Context, username, email, password string) error {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return err
	}

	if account == nil {
		hashedPassword, err := s.hashService.HashPassword(password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return err
		}
		_, err = s.accountRepo.Create(ctx, &domain.Account{
			Username:     username,
			Email:        strings.ToLower(strings.TrimSpace(email)),
			PasswordHash: hashedPassword,
			Role:         domain.RoleOperator,
		})
		if err != nil {
			zap.L().Error("can't create operator account", zap.Error(err))
			return err
		}
		zap.L().Info("operator account created", zap.String("username", username))
		return nil
	}

	if account.IsOperator() && account.IsActive {
		return nil
	}
	account.Role = domain.RoleOperator
	account.IsActive = true
	if _, err := s.accountRepo.Update(ctx, account); err != nil {
		zap.L().Error("can't promote operator account", zap.Error(err))
		return err
	}
	zap.L().Info("account promoted to operator", zap.String("username", username))
	return nil
}
