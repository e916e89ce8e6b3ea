//go:build unit || e2e

package builder

import (
	"time"

	"internship-checkout/internal/domain/coupon"
)

type CouponBuilder struct {
	Code         string
	AmountOff    *float64
	PercentOff   *float64
	InternshipID *string
	UsageLimit   int
	UsedCount    int
	ExpiresAt    time.Time
	Active       bool
}

func NewCouponBuilder() *CouponBuilder {
	pct := 20.0
	return &CouponBuilder{
		Code:       "SAVE20",
		PercentOff: &pct,
		UsageLimit: 100,
		UsedCount:  3,
		ExpiresAt:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:     true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(coupon.Params{
		Code:         b.Code,
		AmountOff:    b.AmountOff,
		PercentOff:   b.PercentOff,
		InternshipID: b.InternshipID,
		UsageLimit:   b.UsageLimit,
		UsedCount:    b.UsedCount,
		ExpiresAt:    b.ExpiresAt,
		Active:       b.Active,
	})
}

// MustBuild panics on invalid input; for fixtures only.
func (b *CouponBuilder) MustBuild() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithAmountOff(v float64) *CouponBuilder {
	b.AmountOff = &v
	b.PercentOff = nil
	return b
}

func (b *CouponBuilder) WithPercentOff(v float64) *CouponBuilder {
	b.PercentOff = &v
	b.AmountOff = nil
	return b
}

func (b *CouponBuilder) WithInternshipID(id string) *CouponBuilder {
	b.InternshipID = &id
	return b
}

func (b *CouponBuilder) WithUsage(used, limit int) *CouponBuilder {
	b.UsedCount = used
	b.UsageLimit = limit
	return b
}

func (b *CouponBuilder) WithExpiresAt(t time.Time) *CouponBuilder {
	b.ExpiresAt = t
	return b
}

func (b *CouponBuilder) AsInactive() *CouponBuilder {
	b.Active = false
	return b
}
