package catalog

// Discount is a named constant-percentage discount policy. Policies carry no
// state and can be shared freely; pricing code only ever reads Percentage().
type Discount string

const (
	NoDiscount        Discount = "none"
	HolidayDiscount   Discount = "holiday"
	VIPDiscount       Discount = "vip"
	ClearanceDiscount Discount = "clearance"
)

func (d Discount) String() string {
	return string(d)
}

func (d Discount) IsValid() bool {
	switch d {
	case NoDiscount, HolidayDiscount, VIPDiscount, ClearanceDiscount:
		return true
	default:
		return false
	}
}

// Percentage returns the policy's base discount in [0,100].
func (d Discount) Percentage() float64 {
	switch d {
	case HolidayDiscount:
		return 15
	case VIPDiscount:
		return 20
	case ClearanceDiscount:
		return 30
	default:
		return 0
	}
}

func NewDiscount(s string) (Discount, error) {
	d := Discount(s)
	if !d.IsValid() {
		return "", ErrInvalidDiscount
	}
	return d, nil
}
