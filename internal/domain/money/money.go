package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

var hundred = decimal.NewFromInt(100)

// Amount is a rupee amount. The zero value is ₹0.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(rupees decimal.Decimal) (Amount, error) {
	if rupees.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: rupees}, nil
}

func FromFloat(rupees float64) (Amount, error) {
	return NewAmount(decimal.NewFromFloat(rupees))
}

func FromInt(rupees int64) Amount {
	if rupees < 0 {
		return Amount{}
	}
	return Amount{value: decimal.NewFromInt(rupees)}
}

func FromPaise(paise int64) Amount {
	if paise < 0 {
		return Amount{}
	}
	return Amount{value: decimal.New(paise, -2)}
}

func Zero() Amount {
	return Amount{}
}

// ClampedSub returns max(0, a - discount).
func (a Amount) ClampedSub(discount Amount) Amount {
	result := a.value.Sub(discount.value)
	if result.IsNegative() {
		return Amount{}
	}
	return Amount{value: result}
}

// Min returns the smaller of a and other.
func (a Amount) Min(other Amount) Amount {
	if a.value.GreaterThan(other.value) {
		return other
	}
	return a
}

// Percent returns pct percent of a, rounded to the paisa.
func (a Amount) Percent(pct decimal.Decimal) Amount {
	v := a.value.Mul(pct).Div(hundred).Round(2)
	if v.IsNegative() {
		return Amount{}
	}
	return Amount{value: v}
}

// Paise converts to the gateway's minor unit, rounding half away from zero.
func (a Amount) Paise() int64 {
	return a.value.Mul(hundred).Round(0).IntPart()
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) String() string {
	return a.value.StringFixed(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	parsed, err := NewAmount(d)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
