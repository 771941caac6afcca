package domain

// Tag is a categorical label attached to events and businesses.
// swagger:model Tag
type Tag struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// TagCatalog resolves display labels for tag slugs.
type TagCatalog interface {
	// List returns all known tags in catalog order.
	List() []Tag
	// Label returns the display label for id, or id itself when unknown.
	Label(id string) string
}
