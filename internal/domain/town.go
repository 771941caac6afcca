package domain

import "context"

// TownStatus gates a town's visibility and interactivity.
type TownStatus string

const (
	TownActive  TownStatus = "active"
	TownPassive TownStatus = "passive"
	TownHidden  TownStatus = "hidden"
)

// Visible reports whether the town may be listed at all.
func (s TownStatus) Visible() bool {
	return s == TownActive || s == TownPassive
}

// Interactive reports whether the town's pages can be opened.
func (s TownStatus) Interactive() bool {
	return s == TownActive
}

// Region groups towns under a shared slug, e.g. "chatham-county".
// swagger:model Region
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Town is a community listed by The Commons.
// swagger:model Town
type Town struct {
	ID          string     `json:"id"`
	RegionID    string     `json:"region_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Status      TownStatus `json:"status"`
}

// TownCard is the list representation of a town with its description shortened.
// swagger:model TownCard
type TownCard struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Status      TownStatus `json:"status"`
	Interactive bool       `json:"interactive"`
	ComingSoon  bool       `json:"coming_soon"`
}

// RegionRepository defines read access to regions.
type RegionRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Region, error)
}

// TownRepository defines read access to towns.
type TownRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Town, error)
	// ListByRegionID returns all towns of the region, active first.
	ListByRegionID(ctx context.Context, regionID string) ([]*Town, error)
	ListByStatus(ctx context.Context, status TownStatus) ([]*Town, error)
}

// TownService resolves towns for the region and town views.
type TownService interface {
	ListRegionTowns(ctx context.Context, regionSlug string) (*Region, []*TownCard, error)
	GetTown(ctx context.Context, slug string) (*Town, error)
}
