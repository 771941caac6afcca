package domain

import (
	"context"
	"strings"
	"time"
)

// Event is a calendar-dated community happening owned by exactly one town.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	TownID      string    `json:"town_id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	Description string    `json:"description,omitempty"`
	CardSummary string    `json:"card_summary,omitempty"`
	SocialPost  string    `json:"social_post,omitempty"`
	CTAURL      string    `json:"cta_url,omitempty"`
	Location    string    `json:"location,omitempty"`
	Tags        []string  `json:"tags"`
}

// HasValidStart reports whether the event carries a usable start timestamp.
// Rows whose start_time is NULL or unparsable are scanned as the zero time.
func (e *Event) HasValidStart() bool {
	return !e.StartTime.IsZero()
}

// Valid reports whether the event can enter the grouping and filtering logic.
func (e *Event) Valid() bool {
	return e.ID != "" && e.TownID != "" && e.HasValidStart()
}

// Summary returns the first non-blank of card summary, social post and description.
func (e *Event) Summary() string {
	for _, s := range []string{e.CardSummary, e.SocialPost, e.Description} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// HasAnyTag reports whether at least one of the event's tags is in set.
func (e *Event) HasAnyTag(set map[string]struct{}) bool {
	for _, t := range e.Tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// EventBuckets partitions events relative to the current calendar week.
// swagger:model EventBuckets
type EventBuckets struct {
	ThisWeek []*Event `json:"this_week"`
	NextWeek []*Event `json:"next_week"`
	Later    []*Event `json:"later"`
}

// Len returns the total number of events across all buckets.
func (b EventBuckets) Len() int {
	return len(b.ThisWeek) + len(b.NextWeek) + len(b.Later)
}

// TimeWindow selects events by when they start.
type TimeWindow string

const (
	TimeAll      TimeWindow = "all"
	TimeWeekday  TimeWindow = "weekday"
	TimeWeekend  TimeWindow = "weekend"
	TimeThisWeek TimeWindow = "this-week"
	TimeNextWeek TimeWindow = "next-week"
)

// EventCriteria is the filter tuple applied to an event list. Empty town and tag
// sets match everything; a zero Time is treated as TimeAll.
type EventCriteria struct {
	Towns []string
	Tags  []string
	Time  TimeWindow
}

// TownPage is everything the town view renders.
// swagger:model TownPage
type TownPage struct {
	Town       *Town           `json:"town"`
	Events     EventBuckets    `json:"events"`
	Posts      []*BulletinPost `json:"posts"`
	Businesses []*Business     `json:"businesses"`
}

// EventRepository defines read access to events in the hosted backend.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListByTownID returns the town's events ordered by start time ascending.
	ListByTownID(ctx context.Context, townID string) ([]*Event, error)
	// ListByTownIDs returns events of any of the given towns ordered by start time ascending.
	ListByTownIDs(ctx context.Context, townIDs []string) ([]*Event, error)
}

// EventService groups and filters events for the town and region views.
type EventService interface {
	TownEvents(ctx context.Context, townSlug string, now time.Time) (*Town, EventBuckets, error)
	RegionEvents(ctx context.Context, regionSlug string, criteria EventCriteria, now time.Time) ([]*Event, error)
	TownPage(ctx context.Context, townSlug string, now time.Time) (*TownPage, error)
	UpcomingTownEvents(ctx context.Context, townSlug string, now time.Time) (*Town, []*Event, error)
	EventByID(ctx context.Context, id string) (*Event, error)
}
