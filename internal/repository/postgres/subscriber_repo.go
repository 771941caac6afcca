package postgres

import (
	"context"
	"database/sql"

	"thecommons/internal/domain"
)

type subscriberRepository struct {
	DB *sql.DB
}

// NewSubscriberRepository returns a domain.SubscriberRepository implemented with Postgres.
func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{DB: db}
}

func (r *subscriberRepository) ListByTownID(ctx context.Context, townID string, frequency domain.EmailFrequency) ([]*domain.Subscriber, error) {
	query := `
		SELECT id, town_id, email, name, email_preference
		FROM digest_subscribers
		WHERE town_id = $1 AND email_preference = $2
		ORDER BY email
	`
	rows, err := r.DB.QueryContext(ctx, query, townID, string(frequency))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var subs []*domain.Subscriber
	for rows.Next() {
		var s domain.Subscriber
		var nameNull sql.NullString
		var freq string
		if err := rows.Scan(&s.ID, &s.TownID, &s.Email, &nameNull, &freq); err != nil {
			return nil, err
		}
		s.Name = nameNull.String
		s.Frequency = domain.EmailFrequency(freq)
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}
