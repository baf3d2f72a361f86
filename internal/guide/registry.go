package guide

import (
	"fmt"
	"sort"
)

// Registry maps section ids to their content blocks. Authored content takes
// precedence; any catalogued section without authored content receives the
// placeholder built from its own descriptor.
type Registry struct {
	catalog   *Catalog
	authored  map[string]Content
	defaultID string
}

// NewRegistry builds a registry. Every authored block must belong to a
// catalogued section and defaultID must name a catalogued section.
func NewRegistry(catalog *Catalog, authored []Content, defaultID string) (*Registry, error) {
	if !catalog.Has(defaultID) {
		return nil, fmt.Errorf("default section %q is not in the catalog", defaultID)
	}

	r := &Registry{
		catalog:   catalog,
		authored:  make(map[string]Content, len(authored)),
		defaultID: defaultID,
	}
	for _, c := range authored {
		if !catalog.Has(c.SectionID) {
			return nil, fmt.Errorf("content %q has no section descriptor", c.SectionID)
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.authored[c.SectionID]; dup {
			return nil, fmt.Errorf("content %q is authored twice", c.SectionID)
		}
		c.Placeholder = false
		r.authored[c.SectionID] = c
	}
	return r, nil
}

// Catalog returns the section catalog.
func (r *Registry) Catalog() *Catalog { return r.catalog }

// DefaultID returns the section shown on initial load.
func (r *Registry) DefaultID() string { return r.defaultID }

// Authored returns the authored content for id, if any.
func (r *Registry) Authored(id string) (Content, bool) {
	c, ok := r.authored[id]
	return c, ok
}

// AuthoredIDs returns the ids that have authored content, sorted.
func (r *Registry) AuthoredIDs() []string {
	ids := make([]string, 0, len(r.authored))
	for id := range r.authored {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve returns the content block for id. It never returns empty content:
// authored content wins, then the placeholder for a catalogued section, and an
// id with no descriptor at all resolves to the default section.
func (r *Registry) Resolve(id string) Content {
	if c, ok := r.authored[id]; ok {
		return c
	}
	if s, ok := r.catalog.Lookup(id); ok {
		return Placeholder(s)
	}
	return r.Resolve(r.defaultID)
}
