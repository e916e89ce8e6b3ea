package request

import (
	"strings"

	"internship-checkout/internal/domain/payment"
	"internship-checkout/internal/usecase/shared"
)

type ApplyCouponRequest struct {
	InternshipID string `json:"internshipId" binding:"required"`
	Code         string `json:"code" binding:"required,max=64"`
}

// SubmitApplicationForm is the multipart application form. The resume and
// cover letter files are read separately.
type SubmitApplicationForm struct {
	InternshipID    string `form:"internshipId" binding:"required"`
	Name            string `form:"name"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	College         string `form:"college"`
	Degree          string `form:"degree"`
	Year            string `form:"year"`
	LinkedIn        string `form:"linkedin"`
	GitHub          string `form:"github"`
	PortfolioLink   string `form:"portfolioLink"`
	CoverLetterText string `form:"coverLetterText"`
	CouponCode      string `form:"couponCode"`
}

func (f *SubmitApplicationForm) Applicant() shared.ApplicantDetails {
	return shared.ApplicantDetails{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
		College:  strings.TrimSpace(f.College),
		Degree:   strings.TrimSpace(f.Degree),
		Year:     strings.TrimSpace(f.Year),
		LinkedIn: strings.TrimSpace(f.LinkedIn),
		GitHub:   strings.TrimSpace(f.GitHub),
	}
}

// ResumeCheckoutRequest carries the optional widget prefill.
type ResumeCheckoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

func (r *ResumeCheckoutRequest) Prefill() shared.Prefill {
	return shared.Prefill{Name: r.Name, Email: r.Email, Contact: r.Contact}
}

// PaymentOutcomeRequest is what the browser forwards from the checkout
// widget's handler, payment.failed and ondismiss callbacks.
type PaymentOutcomeRequest struct {
	Status            string               `json:"status" binding:"required,oneof=success failed dismissed"`
	RazorpayOrderID   string               `json:"razorpay_order_id"`
	RazorpayPaymentID string               `json:"razorpay_payment_id"`
	RazorpaySignature string               `json:"razorpay_signature"`
	Error             *PaymentErrorRequest `json:"error,omitempty"`
}

type PaymentErrorRequest struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Metadata    struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
	} `json:"metadata"`
}

func (r *PaymentOutcomeRequest) ToDomain() (payment.Outcome, error) {
	switch payment.OutcomeKind(r.Status) {
	case payment.OutcomeSuccess:
		return payment.Succeeded(payment.Confirmation{
			OrderID:   r.RazorpayOrderID,
			PaymentID: r.RazorpayPaymentID,
			Signature: r.RazorpaySignature,
		})
	case payment.OutcomeFailed:
		var f payment.Failure
		if r.Error != nil {
			f = payment.Failure{
				Code:        r.Error.Code,
				Description: r.Error.Description,
				Reason:      r.Error.Reason,
				OrderID:     r.Error.Metadata.OrderID,
				PaymentID:   r.Error.Metadata.PaymentID,
			}
		}
		return payment.Failed(f), nil
	case payment.OutcomeDismissed:
		return payment.Dismissed(), nil
	default:
		return payment.Outcome{}, payment.ErrInvalidOutcome
	}
}
