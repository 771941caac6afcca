package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"thecommons/internal/domain"
)

type businessRepository struct {
	DB *sql.DB
}

// NewBusinessRepository returns a domain.BusinessRepository reading the businesses_with_tags view.
func NewBusinessRepository(db *sql.DB) domain.BusinessRepository {
	return &businessRepository{DB: db}
}

func (r *businessRepository) ListByTownID(ctx context.Context, townID string) ([]*domain.Business, error) {
	query := `
		SELECT id, town_id, name, description, website_url, instagram_url, tag_slugs
		FROM businesses_with_tags
		WHERE town_id = $1
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query, townID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		b := &domain.Business{}
		var descNull, webNull, igNull sql.NullString
		var tags pq.StringArray
		if err := rows.Scan(&b.ID, &b.TownID, &b.Name, &descNull, &webNull, &igNull, &tags); err != nil {
			return nil, err
		}
		b.Description = descNull.String
		b.WebsiteURL = webNull.String
		b.InstagramURL = igNull.String
		b.TagSlugs = []string(tags)
		if b.TagSlugs == nil {
			b.TagSlugs = []string{}
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}
