package shared

import (
	"context"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/coupon"
	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/domain/payment"
	"internship-checkout/internal/domain/session"
)

// MarketplaceClient is the marketplace REST API as seen by the checkout flow.
// Every call carries the session's bearer token and is never retried.
type MarketplaceClient interface {
	GetTarget(ctx context.Context, sess session.Session, internshipID string) (*internship.Target, error)
	ListCoupons(ctx context.Context, sess session.Session) (*CouponListing, error)
	ValidateCoupon(ctx context.Context, sess session.Session, variant internship.Variant, check CouponCheck) (*CouponVerdict, error)
	SubmitApplication(ctx context.Context, sess session.Session, variant internship.Variant, form ApplicationForm) (*SubmitOutcome, error)
	VerifyPayment(ctx context.Context, sess session.Session, variant internship.Variant, v Verification) error
	ListApplications(ctx context.Context, sess session.Session, variant internship.Variant) ([]enrollment.ApplicationView, error)
	ListEnrollments(ctx context.Context, sess session.Session, variant internship.Variant) ([]enrollment.Enrollment, error)
}

// CouponListing is the advisory coupon list. Unparsed holds the codes of
// entries whose terms could not be read.
type CouponListing struct {
	Coupons  []*coupon.Coupon
	Unparsed []string
}

type CouponCheck struct {
	Code         string
	InternshipID string
	Amount       money.Amount
}

type CouponVerdict struct {
	Valid          bool
	DiscountAmount money.Amount
	Message        string
}

type ApplicantDetails struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	College  string `json:"college,omitempty" validate:"omitempty,max=200"`
	Degree   string `json:"degree,omitempty" validate:"omitempty,max=120"`
	Year     string `json:"year,omitempty" validate:"omitempty,max=20"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub   string `json:"github,omitempty" validate:"omitempty,url"`
}

type FilePart struct {
	Filename    string
	ContentType string
	Content     []byte
}

type ApplicationForm struct {
	InternshipID    string
	Applicant       ApplicantDetails
	PortfolioLink   string
	Resume          *FilePart
	CoverLetter     *FilePart
	CoverLetterText string
	CouponCode      *string
}

type SubmitKind string

const (
	// SubmitEnrolledByCode: the coupon covered the whole fee.
	SubmitEnrolledByCode SubmitKind = "enrolled_by_code"
	// SubmitPaymentRequired: the caller must proceed to checkout with Order.
	SubmitPaymentRequired SubmitKind = "payment_required"
	// SubmitEnrolledFree: no fee at all.
	SubmitEnrolledFree SubmitKind = "enrolled_free"
)

type SubmitOutcome struct {
	Kind           SubmitKind
	ApplicationID  string
	Message        string
	Order          *application.Order
	DiscountAmount *money.Amount
}

type Verification struct {
	Confirmation payment.Confirmation
	CouponCode   *string
}
