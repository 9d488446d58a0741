package catalog

// Attributes is the closed variant over type-specific item traits. Each
// variant knows the bonus discount its traits earn on top of a strategy's
// base percentage.
type Attributes interface {
	Kind() Kind
	BonusPercent() float64
}

type ChairAttributes struct {
	HasArmrests bool
}

func (a ChairAttributes) Kind() Kind { return KindChair }

func (a ChairAttributes) BonusPercent() float64 {
	if a.HasArmrests {
		return 5
	}
	return 0
}

type TableAttributes struct {
	Shape        string
	IsExtendable bool
}

func (a TableAttributes) Kind() Kind { return KindTable }

func (a TableAttributes) BonusPercent() float64 {
	if a.IsExtendable {
		return 10
	}
	return 0
}

type SofaAttributes struct {
	Seats       int
	HasRecliner bool
}

func (a SofaAttributes) Kind() Kind { return KindSofa }

// 2% per seat
func (a SofaAttributes) BonusPercent() float64 {
	return float64(a.Seats) * 2
}

type BedAttributes struct {
	Size       string
	HasStorage bool
}

func (a BedAttributes) Kind() Kind { return KindBed }

func (a BedAttributes) BonusPercent() float64 {
	if a.HasStorage {
		return 15
	}
	return 0
}

type WardrobeAttributes struct {
	Doors     int
	HasMirror bool
}

func (a WardrobeAttributes) Kind() Kind { return KindWardrobe }

// 3% per door
func (a WardrobeAttributes) BonusPercent() float64 {
	return float64(a.Doors) * 3
}
