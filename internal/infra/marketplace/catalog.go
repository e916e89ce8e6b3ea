package marketplace

import (
	"context"
	"log/slog"
	"strings"

	"internship-checkout/internal/domain/coupon"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/pkg/patch"
	"internship-checkout/internal/usecase/shared"
)

func (c *Client) GetTarget(ctx context.Context, sess session.Session, internshipID string) (*internship.Target, error) {
	var resp targetResponse
	if err := c.getJSON(ctx, sess, "get_internship", targetPath(internshipID), &resp); err != nil {
		return nil, err
	}
	doc := resp.doc()

	base := money.Zero()
	if d := firstDecimal(doc.Price, doc.Fee, doc.Amount); d != nil {
		amount, err := money.NewAmount(*d)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "marketplace returned an invalid internship amount"), errs.ErrUpstreamUnavailable)
		}
		base = amount
	}

	mode, err := internship.ParseMode(firstNonEmpty(doc.Mode, doc.InternshipType, doc.Type))
	if err != nil {
		mode = internship.ModeFree
		if !base.IsZero() {
			mode = internship.ModeFeeBased
		}
	}

	return internship.NewTarget(firstNonEmpty(doc.MongoID, doc.ID, internshipID), doc.Title, base, doc.Currency, mode)
}

// ListCoupons returns the coupons the marketplace exposes for pre-checking.
// Entries that do not parse are reported by code so the caller can defer them
// to remote validation.
func (c *Client) ListCoupons(ctx context.Context, sess session.Session) (*shared.CouponListing, error) {
	var resp couponListResponse
	if err := c.getJSON(ctx, sess, "list_coupons", couponsPath, &resp); err != nil {
		return nil, err
	}
	docs := resp.Coupons
	if len(docs) == 0 {
		docs = resp.Data
	}

	out := &shared.CouponListing{Coupons: make([]*coupon.Coupon, 0, len(docs))}
	for _, d := range docs {
		cp, err := d.toCoupon()
		if err != nil {
			c.logger.Debug("unparseable coupon left to the server", slog.String("code", d.Code), slog.Any("error", err))
			out.Unparsed = append(out.Unparsed, d.Code)
			continue
		}
		out.Coupons = append(out.Coupons, cp)
	}
	return out, nil
}

func (d couponDoc) toCoupon() (*coupon.Coupon, error) {
	p := coupon.Params{
		Code:       d.Code,
		UsageLimit: d.UsageLimit,
		UsedCount:  d.UsedCount,
		Active:     patch.Coalesce(d.IsActive, patch.Coalesce(d.Active, true)),
	}

	p.InternshipID = patch.NilIfZero(string(d.Internship))
	if t := d.ExpiresAt; t != nil {
		p.ExpiresAt = *t
	} else if t := d.ValidUntil; t != nil {
		p.ExpiresAt = *t
	}

	switch strings.ToLower(d.DiscountType) {
	case "percentage", "percent":
		if d.DiscountValue != nil {
			pct := d.DiscountValue.InexactFloat64()
			p.PercentOff = &pct
		}
	case "fixed", "fixed_amount", "amount", "flat":
		if d.DiscountValue != nil {
			amt := d.DiscountValue.InexactFloat64()
			p.AmountOff = &amt
		}
	}
	if p.PercentOff == nil && p.AmountOff == nil {
		if d.DiscountPercentage != nil {
			pct := d.DiscountPercentage.InexactFloat64()
			p.PercentOff = &pct
		} else if d.DiscountAmount != nil {
			amt := d.DiscountAmount.InexactFloat64()
			p.AmountOff = &amt
		}
	}

	return coupon.NewCoupon(p)
}
