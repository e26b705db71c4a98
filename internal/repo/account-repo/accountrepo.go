package accountrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const accountColumns = `id, username, email, password_hash, total_earnings, available_balance,
		ads_watched_today, current_streak, role, is_active, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.TotalEarnings, &a.AvailableBalance,
		&a.AdsWatchedToday, &a.CurrentStreak, &a.Role, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) findBy(ctx context.Context, column, value string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + column + ` = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.String("by", column), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// FindByUsername returns nil without an error when no account matches.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findBy(ctx, "username", username)
}

// FindByEmail returns nil without an error when no account matches.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findBy(ctx, "email", email)
}

// Create stores a new account. An empty role is stored as RoleUser.
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	role := account.Role
	if role == "" {
		role = domain.RoleUser
	}
	query := `
		INSERT INTO accounts (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accountColumns
	created, err := scanAccount(r.db.QueryRow(ctx, query, account.Username, account.Email, account.PasswordHash, role))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrAccountExists
		}
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't get account", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Update writes the role and the active flag of the account. Balances and
// counters are owned by the ledger and never change here.
func (r *Repository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET role = $2, is_active = $3
		WHERE id = $1
		RETURNING ` + accountColumns
	updated, err := scanAccount(r.db.QueryRow(ctx, query, account.ID, account.Role, account.IsActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't update account", zap.Int64("id", account.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

// History returns earnings and withdrawals of the account as one signed
// ledger, newest first.
func (r *Repository) History(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `
		SELECT id, 'earning' AS kind, reward AS amount, 'completed' AS status, created_at AS date
		FROM ad_views
		WHERE account_id = $1 AND completed
		UNION ALL
		SELECT id, 'withdrawal' AS kind, -amount AS amount, status, requested_at AS date
		FROM withdrawals
		WHERE account_id = $1
		ORDER BY date DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.Transaction
	for rows.Next() {
		var tr domain.Transaction
		if err := rows.Scan(&tr.ID, &tr.Kind, &tr.Amount, &tr.Status, &tr.Date); err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		history = append(history, tr)
	}
	return history, rows.Err()
}

func (r *Repository) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM accounts),
			(SELECT COUNT(*) FROM accounts WHERE is_active),
			(SELECT COALESCE(SUM(total_earnings), 0) FROM accounts),
			(SELECT COUNT(*) FROM withdrawals WHERE status = 'pending'),
			(SELECT COALESCE(SUM(amount), 0) FROM withdrawals),
			(SELECT COUNT(*) FROM ad_views WHERE completed)
	`
	var stats domain.PlatformStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalAccounts, &stats.ActiveAccounts, &stats.TotalEarnings,
		&stats.PendingWithdrawals, &stats.TotalWithdrawals, &stats.CompletedViews)
	if err != nil {
		zap.L().Error("failed to compute platform stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// RolloverCandidates returns active accounts whose daily counters were last
// rolled over before today. today is local midnight.
func (r *Repository) RolloverCandidates(ctx context.Context, today time.Time, limit uint32) ([]domain.RolloverCandidate, error) {
	query := `
		SELECT id, current_streak, last_rollover
		FROM accounts
		WHERE is_active AND last_rollover < $1
		ORDER BY id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, domain.CivilDate(today), limit)
	if err != nil {
		zap.L().Error("failed to fetch rollover candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.RolloverCandidate
	for rows.Next() {
		var c domain.RolloverCandidate
		if err := rows.Scan(&c.AccountID, &c.CurrentStreak, &c.LastRollover); err != nil {
			zap.L().Error("failed to scan rollover candidate", zap.Error(err))
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// ApplyRollover moves the account's daily counters to today. Accounts that
// were already rolled over by a concurrent worker are left untouched.
func (r *Repository) ApplyRollover(ctx context.Context, accountID int64, today time.Time) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var candidate domain.RolloverCandidate
		err := r.db.QueryRow(ctx, `
			SELECT id, current_streak, last_rollover
			FROM accounts
			WHERE id = $1
			FOR UPDATE
		`, accountID).Scan(&candidate.AccountID, &candidate.CurrentStreak, &candidate.LastRollover)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("lock account: %w", err)
		}
		if candidate.RolledOverBy(today) {
			return nil
		}

		yesterday := today.AddDate(0, 0, -1)
		tomorrow := today.AddDate(0, 0, 1)
		var watchedYesterday, watchedToday int
		err = r.db.QueryRow(ctx, `
			SELECT
				COUNT(*) FILTER (WHERE created_at >= $2 AND created_at < $3),
				COUNT(*) FILTER (WHERE created_at >= $3 AND created_at < $4)
			FROM ad_views
			WHERE account_id = $1 AND completed
		`, accountID, yesterday, today, tomorrow).Scan(&watchedYesterday, &watchedToday)
		if err != nil {
			return fmt.Errorf("count completed views: %w", err)
		}

		streak := candidate.NextStreak(today, watchedYesterday)
		_, err = r.db.Exec(ctx, `
			UPDATE accounts
			SET current_streak = $2, ads_watched_today = $3, last_rollover = $4
			WHERE id = $1
		`, accountID, streak, watchedToday, domain.CivilDate(today))
		if err != nil {
			return fmt.Errorf("update account counters: %w", err)
		}
		return nil
	})
}
