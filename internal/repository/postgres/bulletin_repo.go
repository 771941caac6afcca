package postgres

import (
	"context"
	"database/sql"

	"thecommons/internal/domain"
)

type bulletinRepository struct {
	DB *sql.DB
}

// NewBulletinRepository returns a domain.BulletinRepository implemented with Postgres.
func NewBulletinRepository(db *sql.DB) domain.BulletinRepository {
	return &bulletinRepository{DB: db}
}

func (r *bulletinRepository) Create(ctx context.Context, p *domain.BulletinPost) error {
	query := `
		INSERT INTO bulletin_board_posts (town_id, title, org_name, submitter_name, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query,
		p.TownID, p.Title, nullIfEmpty(p.OrgName), nullIfEmpty(p.SubmitterName), p.Content,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *bulletinRepository) ListByTownID(ctx context.Context, townID string, params domain.PaginationParams) ([]*domain.BulletinPost, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bulletin_board_posts WHERE town_id = $1`, townID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, town_id, title, org_name, submitter_name, content, created_at
		FROM bulletin_board_posts
		WHERE town_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, townID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	posts := make([]*domain.BulletinPost, 0)
	for rows.Next() {
		p := &domain.BulletinPost{}
		var orgNull, submitterNull, contentNull sql.NullString
		if err := rows.Scan(&p.ID, &p.TownID, &p.Title, &orgNull, &submitterNull, &contentNull, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		p.OrgName = orgNull.String
		p.SubmitterName = submitterNull.String
		p.Content = contentNull.String
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
