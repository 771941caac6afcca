package postgres

import (
	"context"
	"database/sql"
	"errors"

	"thecommons/internal/domain"
)

type regionRepository struct {
	DB *sql.DB
}

// NewRegionRepository returns a domain.RegionRepository implemented with Postgres.
func NewRegionRepository(db *sql.DB) domain.RegionRepository {
	return &regionRepository{DB: db}
}

func (r *regionRepository) GetBySlug(ctx context.Context, slug string) (*domain.Region, error) {
	reg := &domain.Region{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, slug FROM regions WHERE slug = $1`, slug).
		Scan(&reg.ID, &reg.Name, &reg.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}
