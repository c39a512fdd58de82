package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Ingredient is one input of a crafting recipe.
type Ingredient struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// Item is the static metadata of one material.
type Item struct {
	ID          string       `json:"itemId"`
	Name        string       `json:"name"`
	Tier        int          `json:"tier"`
	SortID      int          `json:"sortId"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}

// IsCraftable reports whether the item has a recipe.
func (i Item) IsCraftable() bool {
	return len(i.Ingredients) > 0
}

// Catalog is an immutable lookup table of known materials.
type Catalog struct {
	items map[string]Item
}

// New builds a catalog from items. Later duplicates win.
func New(items ...Item) *Catalog {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// Parse decodes an items.json document, an object keyed by material id.
func Parse(r io.Reader) (*Catalog, error) {
	var raw map[string]Item
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("catalog: decode items: %w", err)
	}

	c := &Catalog{items: make(map[string]Item, len(raw))}
	for id, it := range raw {
		if it.ID == "" {
			it.ID = id
		}
		if it.ID != id {
			return nil, fmt.Errorf("catalog: item key %q does not match itemId %q", id, it.ID)
		}
		c.items[id] = it
	}
	return c, nil
}

// Has reports whether id names a known material.
func (c *Catalog) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.items[id]
	return ok
}

// Get returns the item for id.
func (c *Catalog) Get(id string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	it, ok := c.items[id]
	return it, ok
}

// Len returns the number of known materials.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// IDs returns all material ids ordered by sort id, then id.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.items[ids[i]], c.items[ids[j]]
		if a.SortID != b.SortID {
			return a.SortID < b.SortID
		}
		return a.ID < b.ID
	})
	return ids
}
