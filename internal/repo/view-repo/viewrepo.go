package viewrepo

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

const viewColumns = `id, account_id, ad_id, completed, reward, duration_seconds, created_at, completed_at`

func scanView(row pgx.Row) (*domain.AdView, error) {
	var v domain.AdView
	err := row.Scan(&v.ID, &v.AccountID, &v.AdID, &v.Completed, &v.Reward, &v.DurationSeconds, &v.CreatedAt, &v.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create starts a view of adID for an active account, snapshotting the ad's
// reward and duration.
func (r *Repository) Create(ctx context.Context, accountID, adID int64) (*domain.AdView, error) {
	var view *domain.AdView
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var active bool
		err := r.db.QueryRow(ctx, `SELECT is_active FROM accounts WHERE id = $1`, accountID).Scan(&active)
		if errors.Is(err, pgx.ErrNoRows) || (err == nil && !active) {
			return domain.ErrUnauthorized
		}
		if err != nil {
			return fmt.Errorf("load account: %w", err)
		}

		query := `
			INSERT INTO ad_views (account_id, ad_id, reward, duration_seconds)
			SELECT $1, id, reward, duration_seconds
			FROM ads
			WHERE id = $2
			RETURNING ` + viewColumns
		view, err = scanView(r.db.QueryRow(ctx, query, accountID, adID))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("insert ad view: %w", err)
		}
		return nil
	})
	if err != nil {
		zap.L().Debug("can't start ad view", zap.Int64("account_id", accountID), zap.Int64("ad_id", adID), zap.Error(err))
		return nil, err
	}
	return view, nil
}

// Complete marks the view completed and credits its reward to the owner in
// one transaction. The view row lock serialises concurrent completions, so a
// view is credited at most once.
func (r *Repository) Complete(ctx context.Context, viewID, accountID int64, now time.Time, grace time.Duration) (*domain.AdView, error) {
	var view *domain.AdView
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		view, err = scanView(r.db.QueryRow(ctx, `SELECT `+viewColumns+` FROM ad_views WHERE id = $1 FOR UPDATE`, viewID))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock ad view: %w", err)
		}
		if err := view.CheckCompletion(accountID, now, grace); err != nil {
			return err
		}

		_, err = r.db.Exec(ctx, `UPDATE ad_views SET completed = TRUE, completed_at = $2 WHERE id = $1`, viewID, now)
		if err != nil {
			return fmt.Errorf("mark ad view completed: %w", err)
		}

		_, err = r.db.Exec(ctx, `
			UPDATE accounts
			SET total_earnings = total_earnings + $2,
				available_balance = available_balance + $2,
				ads_watched_today = ads_watched_today + 1
			WHERE id = $1
		`, view.AccountID, view.Reward)
		if err != nil {
			return fmt.Errorf("credit reward: %w", err)
		}

		view.Completed = true
		view.CompletedAt = &now
		return nil
	})
	if err != nil {
		zap.L().Debug("can't complete ad view", zap.Int64("view_id", viewID), zap.Error(err))
		return nil, err
	}
	return view, nil
}

// ListCompleted returns the account's completed views, most recently started
// first.
func (r *Repository) ListCompleted(ctx context.Context, accountID int64, limit int) ([]domain.AdView, error) {
	query := `
		SELECT ` + viewColumns + `
		FROM ad_views
		WHERE account_id = $1 AND completed
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("failed to fetch completed views", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var views []domain.AdView
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			zap.L().Error("failed to scan ad view row", zap.Error(err))
			return nil, err
		}
		views = append(views, *view)
	}
	return views, rows.Err()
}

// CompletedSince counts the account's completed views started at or after
// since and sums their rewards.
func (r *Repository) CompletedSince(ctx context.Context, accountID int64, since time.Time) (int, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(reward), 0)
		FROM ad_views
		WHERE account_id = $1 AND completed AND created_at >= $2
	`
	var (
		count int
		total decimal.Decimal
	)
	if err := r.db.QueryRow(ctx, query, accountID, since).Scan(&count, &total); err != nil {
		zap.L().Error("failed to aggregate completed views", zap.Error(err))
		return 0, decimal.Zero, err
	}
	return count, total, nil
}
