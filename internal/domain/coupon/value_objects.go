package coupon

import (
	"errors"
	"regexp"
	"strings"

	"internship-checkout/internal/domain/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount can only be either fixed amount or percentage, not both")
	ErrMissingDiscount        = errors.New("discount must have either fixed amount or percentage")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

// Code is compared case-insensitively; the canonical form is upper case.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	amountOff  *money.Amount
	percentOff *decimal.Decimal
}

func NewFixedDiscount(amountOff money.Amount) Discount {
	return Discount{amountOff: &amountOff}
}

func NewPercentageDiscount(percentOff decimal.Decimal) (Discount, error) {
	if percentOff.IsNegative() || percentOff.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOff *float64, percentOff *float64) (Discount, error) {
	if amountOff != nil && percentOff != nil {
		return Discount{}, ErrAmbiguousDiscount
	}
	if amountOff == nil && percentOff == nil {
		return Discount{}, ErrMissingDiscount
	}

	if amountOff != nil {
		amount, err := money.FromFloat(*amountOff)
		if err != nil {
			return Discount{}, ErrInvalidDiscountAmount
		}
		return NewFixedDiscount(amount), nil
	}

	return NewPercentageDiscount(decimal.NewFromFloat(*percentOff))
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFixed() bool {
	return d.amountOff != nil
}

// Amount is the discount granted on base; it never exceeds base.
func (d Discount) Amount(base money.Amount) money.Amount {
	if d.IsPercentage() {
		return base.Percent(*d.percentOff)
	}
	if d.amountOff == nil {
		return money.Zero()
	}
	return d.amountOff.Min(base)
}

func (d Discount) AmountOff() *money.Amount {
	return d.amountOff
}

func (d Discount) PercentOff() *decimal.Decimal {
	return d.percentOff
}
