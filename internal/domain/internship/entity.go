package internship

import (
	"errors"
	"strings"

	"internship-checkout/internal/domain/money"
)

var ErrEmptyID = errors.New("internship id is required")

const DefaultCurrency = "INR"

// Target is the thing being applied to. It is immutable from this service's point of view.
type Target struct {
	id         string
	title      string
	baseAmount money.Amount
	currency   string
	mode       Mode
}

func NewTarget(id, title string, baseAmount money.Amount, currency string, mode Mode) (*Target, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Target{
		id:         id,
		title:      title,
		baseAmount: baseAmount,
		currency:   strings.ToUpper(currency),
		mode:       mode,
	}, nil
}

// RequiresFee reports whether applying can lead to a checkout.
func (t *Target) RequiresFee() bool {
	return t.mode == ModeFeeBased && !t.baseAmount.IsZero()
}

func (t *Target) ID() string               { return t.id }
func (t *Target) Title() string            { return t.title }
func (t *Target) BaseAmount() money.Amount { return t.baseAmount }
func (t *Target) Currency() string         { return t.currency }
func (t *Target) Mode() Mode               { return t.mode }
