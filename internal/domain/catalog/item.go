package catalog

import (
	"errors"
	"math"
)

var (
	ErrInvalidKind     = errors.New("invalid furniture kind")
	ErrInvalidDiscount = errors.New("invalid discount policy")
	ErrEmptyName       = errors.New("item name cannot be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeStock   = errors.New("available quantity cannot be negative")
	ErrMissingAttrs    = errors.New("item attributes are required")
)

// maxDiscountPercent caps the combined strategy + type bonus discount.
const maxDiscountPercent = 50

// Item is a priced, typed, stocked catalog entry. Price is immutable after
// construction; available quantity is mutated only through the inventory.
// (Kind, name) is the lookup identity.
type Item struct {
	id                string
	name              string
	attrs             Attributes
	description       string
	material          string
	color             string
	warrantyYears     int
	price             float64
	availableQuantity int
	discount          Discount
}

// Config carries the optional construction fields. Zero values fall back to
// the catalog defaults (wood, black, 5-year warranty, no discount).
type Config struct {
	ID            string
	Description   string
	Material      string
	Color         string
	WarrantyYears int
	Discount      Discount
}

func (c Config) withDefaults() Config {
	if c.Material == "" {
		c.Material = "Wood"
	}
	if c.Color == "" {
		c.Color = "Black"
	}
	if c.WarrantyYears == 0 {
		c.WarrantyYears = 5
	}
	if c.Discount == "" {
		c.Discount = NoDiscount
	}
	return c
}

func New(name string, attrs Attributes, price float64, quantity int, cfg Config) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if attrs == nil {
		return nil, ErrMissingAttrs
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeStock
	}

	cfg = cfg.withDefaults()
	if !cfg.Discount.IsValid() {
		return nil, ErrInvalidDiscount
	}

	return &Item{
		id:                cfg.ID,
		name:              name,
		attrs:             attrs,
		description:       cfg.Description,
		material:          cfg.Material,
		color:             cfg.Color,
		warrantyYears:     cfg.WarrantyYears,
		price:             price,
		availableQuantity: quantity,
		discount:          cfg.Discount,
	}, nil
}

func NewChair(name string, price float64, quantity int, hasArmrests bool, cfg Config) (*Item, error) {
	return New(name, ChairAttributes{HasArmrests: hasArmrests}, price, quantity, cfg)
}

func NewTable(name string, price float64, quantity int, shape string, isExtendable bool, cfg Config) (*Item, error) {
	return New(name, TableAttributes{Shape: shape, IsExtendable: isExtendable}, price, quantity, cfg)
}

func NewSofa(name string, price float64, quantity int, seats int, hasRecliner bool, cfg Config) (*Item, error) {
	return New(name, SofaAttributes{Seats: seats, HasRecliner: hasRecliner}, price, quantity, cfg)
}

func NewBed(name string, price float64, quantity int, size string, hasStorage bool, cfg Config) (*Item, error) {
	return New(name, BedAttributes{Size: size, HasStorage: hasStorage}, price, quantity, cfg)
}

func NewWardrobe(name string, price float64, quantity int, doors int, hasMirror bool, cfg Config) (*Item, error) {
	return New(name, WardrobeAttributes{Doors: doors, HasMirror: hasMirror}, price, quantity, cfg)
}

func (i *Item) ID() string             { return i.id }
func (i *Item) Name() string           { return i.name }
func (i *Item) Kind() Kind             { return i.attrs.Kind() }
func (i *Item) Attributes() Attributes { return i.attrs }
func (i *Item) Description() string    { return i.description }
func (i *Item) Material() string       { return i.material }
func (i *Item) Color() string          { return i.color }
func (i *Item) WarrantyYears() int     { return i.warrantyYears }
func (i *Item) Price() float64         { return i.price }
func (i *Item) AvailableQuantity() int { return i.availableQuantity }
func (i *Item) Discount() Discount     { return i.discount }

// TypeBonus is the extra discount percentage this item's traits earn.
func (i *Item) TypeBonus() float64 {
	return i.attrs.BonusPercent()
}

// TotalDiscountPercent combines a strategy's base percentage with the item's
// type bonus, capped at 50%.
func (i *Item) TotalDiscountPercent(d Discount) float64 {
	return math.Min(d.Percentage()+i.TypeBonus(), maxDiscountPercent)
}

// DiscountedUnitPrice applies the combined discount and rounds to one
// decimal. The one-decimal rounding is contract, not incident.
func (i *Item) DiscountedUnitPrice(d Discount) float64 {
	total := i.TotalDiscountPercent(d)
	return math.Round(i.price*(1-total/100)*10) / 10
}

// PriceWithTax applies the tax percentage to the raw unit price. A negative
// percentage acts as a rebate, not an error.
func (i *Item) PriceWithTax(taxPercent float64) float64 {
	return i.price * (1 + taxPercent/100)
}

func (i *Item) InStock() bool {
	return i.availableQuantity > 0
}

// SetDiscount replaces the item's own discount policy, used at the item
// pricing stage of cart totals.
func (i *Item) SetDiscount(d Discount) error {
	if !d.IsValid() {
		return ErrInvalidDiscount
	}
	i.discount = d
	return nil
}

// SetAvailableQuantity assigns an absolute stock level. Callers other than
// the inventory must not use this; the inventory serializes all stock writes.
func (i *Item) SetAvailableQuantity(n int) error {
	if n < 0 {
		return ErrNegativeStock
	}
	i.availableQuantity = n
	return nil
}
