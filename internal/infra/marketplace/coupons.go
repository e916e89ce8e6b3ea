package marketplace

import (
	"context"

	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/shared"
)

const defaultRejection = "Invalid coupon code"

// ValidateCoupon asks the variant's validation endpoint about a code. A 4xx
// answer is a verdict, not an error.
func (c *Client) ValidateCoupon(ctx context.Context, sess session.Session, variant internship.Variant, check shared.CouponCheck) (*shared.CouponVerdict, error) {
	fam, err := familyFor(variant)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		fam.couponCodeField: check.Code,
		"internshipId":      check.InternshipID,
		"amount":            check.Amount,
	}

	var resp verdictResponse
	if err := c.postJSON(ctx, sess, "validate_coupon", fam.validateCoupon, body, &resp); err != nil {
		if upErr, ok := isRejection(err); ok {
			return &shared.CouponVerdict{Valid: false, DiscountAmount: money.Zero(), Message: upErr.Message}, nil
		}
		return nil, err
	}

	if !resp.valid() {
		msg := resp.Message
		if msg == "" {
			msg = defaultRejection
		}
		return &shared.CouponVerdict{Valid: false, DiscountAmount: money.Zero(), Message: msg}, nil
	}

	discount := money.Zero()
	if d := resp.discount(); d != nil {
		amount, err := money.NewAmount(*d)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "marketplace returned an invalid discount"), errs.ErrUpstreamUnavailable)
		}
		discount = amount
	}

	return &shared.CouponVerdict{Valid: true, DiscountAmount: discount, Message: resp.Message}, nil
}
