package coupon

import (
	"errors"
	"time"
)

var (
	ErrCouponInactive  = errors.New("coupon is not active")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
	ErrCouponOutScope  = errors.New("coupon is not valid for this internship")
	ErrCouponUnknown   = errors.New("coupon not found")
)

// Coupon is a read-only copy of a marketplace coupon; usage is counted server-side.
type Coupon struct {
	code         Code
	discount     Discount
	internshipID *string
	usageLimit   int
	usedCount    int
	expiresAt    time.Time
	active       bool
}

type Params struct {
	Code         string
	AmountOff    *float64
	PercentOff   *float64
	InternshipID *string
	UsageLimit   int
	UsedCount    int
	ExpiresAt    time.Time
	Active       bool
}

func NewCoupon(p Params) (*Coupon, error) {
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(p.AmountOff, p.PercentOff)
	if err != nil {
		return nil, err
	}

	var scope *string
	if p.InternshipID != nil && *p.InternshipID != "" {
		id := *p.InternshipID
		scope = &id
	}

	return &Coupon{
		code:         code,
		discount:     discount,
		internshipID: scope,
		usageLimit:   p.UsageLimit,
		usedCount:    p.UsedCount,
		expiresAt:    p.ExpiresAt,
		active:       p.Active,
	}, nil
}

// Check reports why the coupon cannot be used for internshipID at now, or nil.
// A usage limit of zero means unlimited and a zero expiry means no expiry.
func (c *Coupon) Check(now time.Time, internshipID string) error {
	switch {
	case !c.active:
		return ErrCouponInactive
	case !c.expiresAt.IsZero() && !now.Before(c.expiresAt):
		return ErrCouponExpired
	case c.usageLimit > 0 && c.usedCount >= c.usageLimit:
		return ErrCouponExhausted
	case c.internshipID != nil && *c.internshipID != internshipID:
		return ErrCouponOutScope
	default:
		return nil
	}
}

func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) InternshipID() *string { return c.internshipID }
func (c *Coupon) UsageLimit() int       { return c.usageLimit }
func (c *Coupon) UsedCount() int        { return c.usedCount }
func (c *Coupon) ExpiresAt() time.Time  { return c.expiresAt }
func (c *Coupon) Active() bool          { return c.active }
