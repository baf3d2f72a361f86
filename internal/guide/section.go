package guide

import (
	"fmt"
)

// Category is the fixed grouping tag used to cluster sections in the sidebar.
type Category string

const (
	CategoryOverview       Category = "overview"
	CategoryBPTypes        Category = "bp-types"
	CategoryImplementation Category = "implementation"
	CategoryResources      Category = "resources"
)

// CategoryInfo holds the display metadata of a category.
type CategoryInfo struct {
	Key   Category `json:"key"`
	Title string   `json:"title"`
	Color string   `json:"color"`
}

// Categories is the declared sidebar order. Groups are always emitted in this order.
var Categories = []CategoryInfo{
	{Key: CategoryOverview, Title: "Overview", Color: "blue"},
	{Key: CategoryBPTypes, Title: "BP Types", Color: "green"},
	{Key: CategoryImplementation, Title: "Implementation", Color: "purple"},
	{Key: CategoryResources, Title: "Resources", Color: "orange"},
}

// LookupCategory returns the display metadata for key.
func LookupCategory(key Category) (CategoryInfo, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// Section describes one navigable topic.
type Section struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Icon     string   `yaml:"icon" json:"icon"`
	Category Category `yaml:"category" json:"category"`
}

// Group is one category with its sections, in declaration order.
type Group struct {
	Category CategoryInfo `json:"category"`
	Sections []Section    `json:"sections"`
}

// Catalog is the immutable, ordered list of section descriptors.
type Catalog struct {
	sections []Section
	index    map[string]int
}

// NewCatalog validates the descriptors and builds a catalog. IDs must be unique
// and every descriptor must carry a known category.
func NewCatalog(sections []Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("catalog has no sections")
	}

	c := &Catalog{
		sections: make([]Section, len(sections)),
		index:    make(map[string]int, len(sections)),
	}
	copy(c.sections, sections)

	for i, s := range c.sections {
		if s.ID == "" {
			return nil, fmt.Errorf("section %d: id is required", i)
		}
		if s.Title == "" {
			return nil, fmt.Errorf("section %q: title is required", s.ID)
		}
		if _, ok := LookupCategory(s.Category); !ok {
			return nil, fmt.Errorf("section %q: unknown category %q", s.ID, s.Category)
		}
		if _, dup := c.index[s.ID]; dup {
			return nil, fmt.Errorf("section %q: duplicate id", s.ID)
		}
		c.index[s.ID] = i
	}

	return c, nil
}

// Len returns the number of sections.
func (c *Catalog) Len() int { return len(c.sections) }

// Sections returns a copy of the descriptors in declaration order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Lookup returns the descriptor for id.
func (c *Catalog) Lookup(id string) (Section, bool) {
	i, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// Has reports whether id names a descriptor.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Groups partitions the descriptors by category. Category order follows
// Categories; order within a category follows declaration order. Categories
// with no sections are still returned so the sidebar layout stays stable.
func (c *Catalog) Groups() []Group {
	groups := make([]Group, 0, len(Categories))
	for _, cat := range Categories {
		g := Group{Category: cat}
		for _, s := range c.sections {
			if s.Category == cat.Key {
				g.Sections = append(g.Sections, s)
			}
		}
		groups = append(groups, g)
	}
	return groups
}
