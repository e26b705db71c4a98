package adrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const adColumns = `id, title, type, category, duration_seconds, reward, network_code, is_active`

func scanAd(row pgx.Row) (*domain.Ad, error) {
	var ad domain.Ad
	err := row.Scan(&ad.ID, &ad.Title, &ad.Type, &ad.Category, &ad.DurationSeconds, &ad.Reward, &ad.NetworkCode, &ad.IsActive)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *Repository) list(ctx context.Context, query string) ([]domain.Ad, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch ads", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			zap.L().Error("failed to scan ad row", zap.Error(err))
			return nil, err
		}
		ads = append(ads, *ad)
	}
	return ads, rows.Err()
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Ad, error) {
	return r.list(ctx, `SELECT `+adColumns+` FROM ads WHERE is_active ORDER BY id`)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Ad, error) {
	return r.list(ctx, `SELECT `+adColumns+` FROM ads ORDER BY id`)
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.Ad, error) {
	ad, err := scanAd(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't get ad", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return ad, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	return r.get(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id)
}

// GetActive returns domain.ErrNotFound for inactive ads as well.
func (r *Repository) GetActive(ctx context.Context, id int64) (*domain.Ad, error) {
	return r.get(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1 AND is_active`, id)
}

func (r *Repository) Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	query := `
		INSERT INTO ads (title, type, category, duration_seconds, reward, network_code, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, ad.Title, ad.Type, ad.Category, ad.DurationSeconds, ad.Reward, ad.NetworkCode, ad.IsActive).
		Scan(&ad.ID)
	if err != nil {
		zap.L().Error("can't save ad", zap.Error(err))
		return nil, err
	}
	return ad, nil
}

func (r *Repository) Update(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	query := `
		UPDATE ads
		SET title = $2, type = $3, category = $4, duration_seconds = $5, reward = $6, network_code = $7, is_active = $8
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, ad.ID, ad.Title, ad.Type, ad.Category, ad.DurationSeconds, ad.Reward, ad.NetworkCode, ad.IsActive)
	if err != nil {
		zap.L().Error("can't update ad", zap.Int64("id", ad.ID), zap.Error(err))
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return ad, nil
}
