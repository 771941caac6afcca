package postgres

import (
	"context"
	"database/sql"
	"errors"

	"thecommons/internal/domain"
)

type townRepository struct {
	DB *sql.DB
}

// NewTownRepository returns a domain.TownRepository implemented with Postgres.
func NewTownRepository(db *sql.DB) domain.TownRepository {
	return &townRepository{DB: db}
}

func scanTown(s rowScanner) (*domain.Town, error) {
	t := &domain.Town{}
	var descNull sql.NullString
	var status string
	if err := s.Scan(&t.ID, &t.RegionID, &t.Name, &t.Slug, &descNull, &status); err != nil {
		return nil, err
	}
	t.Description = descNull.String
	t.Status = domain.TownStatus(status)
	return t, nil
}

func (r *townRepository) GetBySlug(ctx context.Context, slug string) (*domain.Town, error) {
	query := `
		SELECT id, region_id, name, slug, description, status
		FROM towns
		WHERE slug = $1
	`
	t, err := scanTown(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *townRepository) ListByRegionID(ctx context.Context, regionID string) ([]*domain.Town, error) {
	query := `
		SELECT id, region_id, name, slug, description, status
		FROM towns
		WHERE region_id = $1
		ORDER BY CASE status WHEN 'active' THEN 0 WHEN 'passive' THEN 1 ELSE 2 END, name
	`
	return r.list(ctx, query, regionID)
}

func (r *townRepository) ListByStatus(ctx context.Context, status domain.TownStatus) ([]*domain.Town, error) {
	query := `
		SELECT id, region_id, name, slug, description, status
		FROM towns
		WHERE status = $1
		ORDER BY name
	`
	return r.list(ctx, query, string(status))
}

func (r *townRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Town, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	towns := make([]*domain.Town, 0)
	for rows.Next() {
		t, err := scanTown(rows)
		if err != nil {
			return nil, err
		}
		towns = append(towns, t)
	}
	return towns, rows.Err()
}
