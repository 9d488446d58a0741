package request

import (
	"furnistore/internal/domain/catalog"

	"github.com/google/uuid"
)

// AddItemRequest is a tagged union over the furniture kinds: the kind field
// picks which attribute fields are consulted, the rest are ignored.
type AddItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	Kind          string  `json:"kind" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
	Quantity      int     `json:"quantity" binding:"gte=0"`
	Description   string  `json:"description,omitempty"`
	Material      string  `json:"material,omitempty"`
	Color         string  `json:"color,omitempty"`
	WarrantyYears int     `json:"warranty_years,omitempty"`
	Discount      string  `json:"discount,omitempty"`

	HasArmrests  *bool   `json:"has_armrests,omitempty"`
	Shape        *string `json:"shape,omitempty"`
	IsExtendable *bool   `json:"is_extendable,omitempty"`
	Seats        *int    `json:"seats,omitempty"`
	HasRecliner  *bool   `json:"has_recliner,omitempty"`
	Size         *string `json:"size,omitempty"`
	HasStorage   *bool   `json:"has_storage,omitempty"`
	Doors        *int    `json:"doors,omitempty"`
	HasMirror    *bool   `json:"has_mirror,omitempty"`
}

func (r AddItemRequest) ToDomain() (*catalog.Item, error) {
	kind, err := catalog.NewKind(r.Kind)
	if err != nil {
		return nil, err
	}

	cfg := catalog.Config{
		ID:            uuid.NewString(),
		Description:   r.Description,
		Material:      r.Material,
		Color:         r.Color,
		WarrantyYears: r.WarrantyYears,
	}
	if r.Discount != "" {
		d, err := catalog.NewDiscount(r.Discount)
		if err != nil {
			return nil, err
		}
		cfg.Discount = d
	}

	switch kind {
	case catalog.KindChair:
		return catalog.NewChair(r.Name, r.Price, r.Quantity, boolVal(r.HasArmrests), cfg)
	case catalog.KindTable:
		return catalog.NewTable(r.Name, r.Price, r.Quantity, strVal(r.Shape), boolVal(r.IsExtendable), cfg)
	case catalog.KindSofa:
		return catalog.NewSofa(r.Name, r.Price, r.Quantity, intVal(r.Seats), boolVal(r.HasRecliner), cfg)
	case catalog.KindBed:
		return catalog.NewBed(r.Name, r.Price, r.Quantity, strVal(r.Size), boolVal(r.HasStorage), cfg)
	case catalog.KindWardrobe:
		return catalog.NewWardrobe(r.Name, r.Price, r.Quantity, intVal(r.Doors), boolVal(r.HasMirror), cfg)
	default:
		return nil, catalog.ErrInvalidKind
	}
}

type UpdateQuantityRequest struct {
	Name     string `json:"name" binding:"required"`
	Kind     string `json:"kind" binding:"required"`
	Quantity int    `json:"quantity"`
}

type RemoveItemRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
