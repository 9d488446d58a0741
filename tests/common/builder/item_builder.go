//go:build unit || e2e

package builder

import (
	"furnistore/internal/domain/catalog"
	reqdto "furnistore/internal/handler/dto/request"
)

type ItemBuilder struct {
	Name          string
	Kind          string
	Price         float64
	Quantity      int
	Description   string
	Material      string
	Color         string
	WarrantyYears int
	Discount      string

	HasArmrests  bool
	Shape        string
	IsExtendable bool
	Seats        int
	HasRecliner  bool
	Size         string
	HasStorage   bool
	Doors        int
	HasMirror    bool
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		Name:     "Test Chair",
		Kind:     "chair",
		Price:    100.0,
		Quantity: 10,
		Material: "Wood",
		Color:    "Black",
		Discount: "none",
	}
}

func (b *ItemBuilder) BuildDomain() (*catalog.Item, error) {
	kind, err := catalog.NewKind(b.Kind)
	if err != nil {
		return nil, err
	}
	discount, err := catalog.NewDiscount(b.Discount)
	if err != nil {
		return nil, err
	}

	cfg := catalog.Config{
		Description:   b.Description,
		Material:      b.Material,
		Color:         b.Color,
		WarrantyYears: b.WarrantyYears,
		Discount:      discount,
	}

	switch kind {
	case catalog.KindChair:
		return catalog.NewChair(b.Name, b.Price, b.Quantity, b.HasArmrests, cfg)
	case catalog.KindTable:
		return catalog.NewTable(b.Name, b.Price, b.Quantity, b.Shape, b.IsExtendable, cfg)
	case catalog.KindSofa:
		return catalog.NewSofa(b.Name, b.Price, b.Quantity, b.Seats, b.HasRecliner, cfg)
	case catalog.KindBed:
		return catalog.NewBed(b.Name, b.Price, b.Quantity, b.Size, b.HasStorage, cfg)
	case catalog.KindWardrobe:
		return catalog.NewWardrobe(b.Name, b.Price, b.Quantity, b.Doors, b.HasMirror, cfg)
	default:
		return nil, catalog.ErrInvalidKind
	}
}

func (b *ItemBuilder) BuildAddRequestDTO() reqdto.AddItemRequest {
	req := reqdto.AddItemRequest{
		Name:          b.Name,
		Kind:          b.Kind,
		Price:         b.Price,
		Quantity:      b.Quantity,
		Description:   b.Description,
		Material:      b.Material,
		Color:         b.Color,
		WarrantyYears: b.WarrantyYears,
		Discount:      b.Discount,
	}
	switch b.Kind {
	case "chair":
		req.HasArmrests = &b.HasArmrests
	case "table":
		req.Shape = &b.Shape
		req.IsExtendable = &b.IsExtendable
	case "sofa":
		req.Seats = &b.Seats
		req.HasRecliner = &b.HasRecliner
	case "bed":
		req.Size = &b.Size
		req.HasStorage = &b.HasStorage
	case "wardrobe":
		req.Doors = &b.Doors
		req.HasMirror = &b.HasMirror
	}
	return req
}

// Fluent builder methods
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithKind(kind string) *ItemBuilder {
	b.Kind = kind
	return b
}

func (b *ItemBuilder) WithPrice(price float64) *ItemBuilder {
	b.Price = price
	return b
}

func (b *ItemBuilder) WithQuantity(quantity int) *ItemBuilder {
	b.Quantity = quantity
	return b
}

func (b *ItemBuilder) WithDiscount(discount string) *ItemBuilder {
	b.Discount = discount
	return b
}

func (b *ItemBuilder) WithMaterial(material string) *ItemBuilder {
	b.Material = material
	return b
}

func (b *ItemBuilder) WithColor(color string) *ItemBuilder {
	b.Color = color
	return b
}

func (b *ItemBuilder) AsChairWithArmrests() *ItemBuilder {
	b.Kind = "chair"
	b.HasArmrests = true
	return b
}

func (b *ItemBuilder) AsSofa(seats int) *ItemBuilder {
	b.Kind = "sofa"
	b.Seats = seats
	return b
}

func (b *ItemBuilder) AsWardrobe(doors int) *ItemBuilder {
	b.Kind = "wardrobe"
	b.Doors = doors
	return b
}
