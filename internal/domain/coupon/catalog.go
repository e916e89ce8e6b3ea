package coupon

import "time"

// Catalog is a locally cached coupon list used only to skip obviously wasted
// validation round-trips. The marketplace re-validates every code.
type Catalog struct {
	byCode    map[Code]*Coupon
	unparsed  []string
	deferred  map[Code]struct{}
	partial   bool
	fetchedAt time.Time
}

func NewCatalog(coupons []*Coupon, fetchedAt time.Time) *Catalog {
	byCode := make(map[Code]*Coupon, len(coupons))
	for _, c := range coupons {
		byCode[c.Code()] = c
	}
	return &Catalog{byCode: byCode, deferred: map[Code]struct{}{}, fetchedAt: fetchedAt}
}

// WithUnparsed records list entries whose terms could not be read. Their codes
// are left to the marketplace. An entry without a readable code makes the
// catalog partial, and a partial catalog never rejects a code for being absent.
func (c *Catalog) WithUnparsed(codes ...string) *Catalog {
	for _, raw := range codes {
		c.unparsed = append(c.unparsed, raw)
		code, err := NewCode(raw)
		if err != nil {
			c.partial = true
			continue
		}
		if _, known := c.byCode[code]; !known {
			c.deferred[code] = struct{}{}
		}
	}
	return c
}

func (c *Catalog) Lookup(raw string) (*Coupon, bool) {
	code, err := NewCode(raw)
	if err != nil {
		return nil, false
	}
	found, ok := c.byCode[code]
	return found, ok
}

// Precheck returns nil when the code is worth sending to the marketplace.
// Only a coupon the list describes completely can be rejected here.
func (c *Catalog) Precheck(raw string, now time.Time, internshipID string) error {
	if found, ok := c.Lookup(raw); ok {
		return found.Check(now, internshipID)
	}
	code, err := NewCode(raw)
	if err != nil {
		return ErrCouponUnknown
	}
	if _, ok := c.deferred[code]; ok || c.partial {
		return nil
	}
	return ErrCouponUnknown
}

func (c *Catalog) Len() int {
	return len(c.byCode)
}

// Unparsed returns the raw codes given to WithUnparsed, in order.
func (c *Catalog) Unparsed() []string {
	return c.unparsed
}

func (c *Catalog) FetchedAt() time.Time {
	return c.fetchedAt
}

func (c *Catalog) Coupons() []*Coupon {
	out := make([]*Coupon, 0, len(c.byCode))
	for _, v := range c.byCode {
		out = append(out, v)
	}
	return out
}
