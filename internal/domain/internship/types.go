package internship

import "errors"

var (
	ErrInvalidVariant = errors.New("invalid internship variant")
	ErrInvalidMode    = errors.New("invalid internship mode")
)

// Variant selects the marketplace endpoint family.
type Variant string

const (
	VariantStandard    Variant = "standard"
	VariantAPExclusive Variant = "ap_exclusive"
)

func (v Variant) String() string {
	return string(v)
}

func (v Variant) IsValid() bool {
	switch v {
	case VariantStandard, VariantAPExclusive:
		return true
	default:
		return false
	}
}

func NewVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.IsValid() {
		return "", ErrInvalidVariant
	}
	return v, nil
}

type Mode string

const (
	ModeFree     Mode = "free"
	ModePaid     Mode = "paid" // stipend-paying, no fee
	ModeFeeBased Mode = "fee_based"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeFree, ModePaid, ModeFeeBased:
		return true
	default:
		return false
	}
}

// ParseMode accepts the marketplace spellings ("fee-based", "unpaid", ...).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "free", "unpaid":
		return ModeFree, nil
	case "paid", "stipend":
		return ModePaid, nil
	case "fee_based", "fee-based", "feeBased":
		return ModeFeeBased, nil
	default:
		return "", ErrInvalidMode
	}
}
