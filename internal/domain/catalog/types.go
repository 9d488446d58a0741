package catalog

// Kind tags the closed set of sellable furniture types. Together with the
// item name it forms the identity used for every inventory lookup.
type Kind string

const (
	KindChair    Kind = "chair"
	KindTable    Kind = "table"
	KindSofa     Kind = "sofa"
	KindBed      Kind = "bed"
	KindWardrobe Kind = "wardrobe"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindChair, KindTable, KindSofa, KindBed, KindWardrobe:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}
