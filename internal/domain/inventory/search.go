package inventory

import "furnistore/internal/domain/catalog"

// Filter is a conjunctive, exact-match predicate set over item attributes.
// Nil fields match everything, so the zero Filter returns the whole catalog.
type Filter struct {
	Name     *string
	Kind     *catalog.Kind
	Material *string
	Color    *string
	ID       *string
}

func (f Filter) matches(item *catalog.Item) bool {
	if f.Name != nil && item.Name() != *f.Name {
		return false
	}
	if f.Kind != nil && item.Kind() != *f.Kind {
		return false
	}
	if f.Material != nil && item.Material() != *f.Material {
		return false
	}
	if f.Color != nil && item.Color() != *f.Color {
		return false
	}
	if f.ID != nil && item.ID() != *f.ID {
		return false
	}
	return true
}

// Search returns every item matching all supplied predicates.
func (inv *Inventory) Search(f Filter) []*catalog.Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var results []*catalog.Item
	for _, byName := range inv.items {
		for _, item := range byName {
			if f.matches(item) {
				results = append(results, item)
			}
		}
	}
	return results
}
