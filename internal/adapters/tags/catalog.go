// Package tags loads the tag catalog used to label events and businesses.
package tags

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"thecommons/internal/domain"
)

//go:embed tags.yaml
var defaultCatalog []byte

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type fileFormat struct {
	Tags []domain.Tag `yaml:"tags"`
}

// Catalog is an immutable, ordered tag list. It is safe for concurrent use.
type Catalog struct {
	tags   []domain.Tag
	labels map[string]string
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or returns the default one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tag catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog. Ids must be unique lowercase slugs.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tag catalog: %w", err)
	}
	c := &Catalog{
		tags:   make([]domain.Tag, 0, len(f.Tags)),
		labels: make(map[string]string, len(f.Tags)),
	}
	for i, t := range f.Tags {
		if !slugPattern.MatchString(t.ID) {
			return nil, fmt.Errorf("tag %d: invalid id %q", i, t.ID)
		}
		if _, dup := c.labels[t.ID]; dup {
			return nil, fmt.Errorf("tag %d: duplicate id %q", i, t.ID)
		}
		if t.Label == "" {
			t.Label = t.ID
		}
		c.tags = append(c.tags, t)
		c.labels[t.ID] = t.Label
	}
	return c, nil
}

// List returns a copy of the tags in catalog order.
func (c *Catalog) List() []domain.Tag {
	out := make([]domain.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Label returns the display label for id, or id itself when unknown.
func (c *Catalog) Label(id string) string {
	if l, ok := c.labels[id]; ok {
		return l
	}
	return id
}
