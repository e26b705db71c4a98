package withdrawalrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const withdrawalColumns = `id, account_id, amount, method, details, status, requested_at, updated_at`

func scanWithdrawal(row pgx.Row, extra ...any) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	dest := append([]any{&w.ID, &w.AccountID, &w.Amount, &w.Method, &w.Details, &w.Status, &w.RequestedAt, &w.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) lockBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT available_balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, domain.ErrNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("lock account: %w", err)
	}
	return balance, nil
}

func (r *Repository) adjustBalance(ctx context.Context, accountID int64, delta decimal.Decimal) error {
	_, err := r.db.Exec(ctx, `UPDATE accounts SET available_balance = available_balance + $2 WHERE id = $1`, accountID, delta)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	return nil
}

// CreateWithdrawal reserves the amount from the account's available balance
// and records a pending withdrawal. The account row stays locked until
// commit, so concurrent requests cannot spend the same balance twice.
func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	var created *domain.Withdrawal
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := r.lockBalance(ctx, withdrawal.AccountID)
		if err != nil {
			return err
		}
		if balance.LessThan(withdrawal.Amount) {
			return domain.ErrInsufficientBalance
		}
		if err := r.adjustBalance(ctx, withdrawal.AccountID, withdrawal.Amount.Neg()); err != nil {
			return err
		}

		query := `
			INSERT INTO withdrawals (account_id, amount, method, details, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING ` + withdrawalColumns
		created, err = scanWithdrawal(r.db.QueryRow(ctx, query,
			withdrawal.AccountID, withdrawal.Amount, withdrawal.Method, withdrawal.Details, domain.StatusPending))
		if err != nil {
			return fmt.Errorf("insert withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		zap.L().Debug("can't save withdrawal", zap.Int64("account_id", withdrawal.AccountID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetWithdrawalsByAccountID(ctx context.Context, accountID int64) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE account_id = $1
		ORDER BY requested_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.WithdrawalWithOwner, error) {
	query := `
		SELECT w.id, w.account_id, w.amount, w.method, w.details, w.status, w.requested_at, w.updated_at,
			a.username, a.email
		FROM withdrawals w
		JOIN accounts a ON a.id = w.account_id
		ORDER BY w.requested_at DESC, w.id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch all withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalWithOwner
	for rows.Next() {
		var owner domain.WithdrawalWithOwner
		wd, err := scanWithdrawal(rows, &owner.Username, &owner.Email)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		owner.Withdrawal = *wd
		withdrawals = append(withdrawals, owner)
	}
	return withdrawals, rows.Err()
}

// UpdateStatus moves the withdrawal to status. When refund is set the
// reservation follows the status: entering failed returns the amount to the
// available balance and leaving failed takes it again.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.WithdrawalStatus, refund bool, now time.Time) (*domain.Withdrawal, error) {
	var updated *domain.Withdrawal
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := scanWithdrawal(r.db.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock withdrawal: %w", err)
		}

		if refund && current.Status.Reserves() != status.Reserves() {
			balance, err := r.lockBalance(ctx, current.AccountID)
			if err != nil {
				return err
			}
			delta := current.Amount
			if status.Reserves() {
				if balance.LessThan(current.Amount) {
					return domain.ErrInsufficientBalance
				}
				delta = delta.Neg()
			}
			if err := r.adjustBalance(ctx, current.AccountID, delta); err != nil {
				return err
			}
		}

		query := `
			UPDATE withdrawals
			SET status = $2, updated_at = $3
			WHERE id = $1
			RETURNING ` + withdrawalColumns
		updated, err = scanWithdrawal(r.db.QueryRow(ctx, query, id, status, now))
		if err != nil {
			return fmt.Errorf("update withdrawal: %w", err)
		}
		return nil
	})
	if err != nil {
		zap.L().Debug("can't update withdrawal status", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}
