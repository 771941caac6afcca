package domain

import "context"

// Business is an entry in a town's business directory.
// swagger:model Business
type Business struct {
	ID           string   `json:"id"`
	TownID       string   `json:"town_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	WebsiteURL   string   `json:"website_url,omitempty"`
	InstagramURL string   `json:"instagram_url,omitempty"`
	TagSlugs     []string `json:"tag_slugs"`
}

// BusinessRepository defines read access to the business directory.
type BusinessRepository interface {
	// ListByTownID returns the town's businesses ordered by name.
	ListByTownID(ctx context.Context, townID string) ([]*Business, error)
}

// BusinessService lists a town's businesses, optionally narrowed by tag.
type BusinessService interface {
	ListBusinesses(ctx context.Context, townSlug string, tags []string) ([]*Business, error)
}
