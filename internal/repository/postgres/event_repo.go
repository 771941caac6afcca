package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"thecommons/internal/domain"
)

const eventColumns = `id, town_id, title, start_time, description, card_summary, social_post, cta_url, location, tags`

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvent reads one event row. A NULL start_time leaves StartTime zero so the
// record is recognisable as malformed further up.
func scanEvent(s rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var startNull sql.NullTime
	var descNull, cardNull, socialNull, ctaNull, locNull sql.NullString
	var tags pq.StringArray
	if err := s.Scan(&e.ID, &e.TownID, &e.Title, &startNull,
		&descNull, &cardNull, &socialNull, &ctaNull, &locNull, &tags); err != nil {
		return nil, err
	}
	if startNull.Valid {
		e.StartTime = startNull.Time
	}
	e.Description = descNull.String
	e.CardSummary = cardNull.String
	e.SocialPost = socialNull.String
	e.CTAURL = ctaNull.String
	e.Location = locNull.String
	e.Tags = []string(tags)
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByTownID(ctx context.Context, townID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE town_id = $1 ORDER BY start_time`
	return r.list(ctx, query, townID)
}

func (r *eventRepository) ListByTownIDs(ctx context.Context, townIDs []string) ([]*domain.Event, error) {
	if len(townIDs) == 0 {
		return []*domain.Event{}, nil
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE town_id = ANY($1) ORDER BY start_time`
	return r.list(ctx, query, pq.Array(townIDs))
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
