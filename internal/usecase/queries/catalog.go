package queries

import (
	"context"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/domain/inventory"
)

type ItemView struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Kind              string  `json:"kind"`
	Description       string  `json:"description"`
	Material          string  `json:"material"`
	Color             string  `json:"color"`
	WarrantyYears     int     `json:"warrantyYears"`
	Price             float64 `json:"price"`
	AvailableQuantity int     `json:"availableQuantity"`
	Discount          string  `json:"discount"`
	TypeBonus         float64 `json:"typeBonus"`
	InStock           bool    `json:"inStock"`
}

// SearchParams mirrors inventory.Filter for the query surface: conjunctive,
// exact-match, all fields optional.
type SearchParams struct {
	Name     *string
	Kind     *string
	Material *string
	Color    *string
}

type CatalogQueries interface {
	List(ctx context.Context) []*ItemView
	Search(ctx context.Context, params SearchParams) ([]*ItemView, error)
}

type catalogQueriesImpl struct {
	inv *inventory.Inventory
}

func NewCatalogQueries(inv *inventory.Inventory) CatalogQueries {
	return &catalogQueriesImpl{inv: inv}
}

func (q *catalogQueriesImpl) List(_ context.Context) []*ItemView {
	return toItemViews(q.inv.Items())
}

func (q *catalogQueriesImpl) Search(_ context.Context, params SearchParams) ([]*ItemView, error) {
	filter := inventory.Filter{
		Name:     params.Name,
		Material: params.Material,
		Color:    params.Color,
	}
	if params.Kind != nil {
		kind, err := catalog.NewKind(*params.Kind)
		if err != nil {
			return nil, err
		}
		filter.Kind = &kind
	}
	return toItemViews(q.inv.Search(filter)), nil
}

func toItemViews(items []*catalog.Item) []*ItemView {
	views := make([]*ItemView, len(items))
	for i, item := range items {
		views[i] = NewItemView(item)
	}
	return views
}

func NewItemView(item *catalog.Item) *ItemView {
	return &ItemView{
		ID:                item.ID(),
		Name:              item.Name(),
		Kind:              item.Kind().String(),
		Description:       item.Description(),
		Material:          item.Material(),
		Color:             item.Color(),
		WarrantyYears:     item.WarrantyYears(),
		Price:             item.Price(),
		AvailableQuantity: item.AvailableQuantity(),
		Discount:          item.Discount().String(),
		TypeBonus:         item.TypeBonus(),
		InStock:           item.InStock(),
	}
}
