package response

import (
	"time"

	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/usecase/commands"
	"internship-checkout/internal/usecase/queries"
	"internship-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutConfigResponse struct {
	ScriptURL string `json:"scriptUrl"`
	KeyID     string `json:"keyId"`
}

type CouponQuoteResponse struct {
	InternshipID    string  `json:"internshipId"`
	Code            string  `json:"code"`
	Valid           bool    `json:"valid"`
	BaseAmount      float64 `json:"baseAmount"`
	DiscountAmount  float64 `json:"discountAmount"`
	FinalAmount     float64 `json:"finalAmount"`
	Currency        string  `json:"currency"`
	Message         string  `json:"message,omitempty"`
	RejectedLocally bool    `json:"rejectedLocally,omitempty"`
}

func FromCouponQuote(q *commands.CouponQuote) (*CouponQuoteResponse, error) {
	var res CouponQuoteResponse
	if err := copyInto(&res, q); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckoutSessionResponse is what the browser needs to open the widget.
type CheckoutSessionResponse struct {
	ScriptURL string               `json:"scriptUrl"`
	Options   shared.WidgetOptions `json:"options"`
}

func FromCheckoutSession(s *commands.CheckoutSession) *CheckoutSessionResponse {
	if s == nil {
		return nil
	}
	return &CheckoutSessionResponse{ScriptURL: s.ScriptURL, Options: s.Options}
}

type SubmitApplicationResponse struct {
	Kind          string                   `json:"kind"`
	Status        string                   `json:"status"`
	ApplicationID string                   `json:"applicationId"`
	Message       string                   `json:"message,omitempty"`
	Checkout      *CheckoutSessionResponse `json:"checkout,omitempty"`
	Snapshot      *enrollment.Snapshot     `json:"snapshot,omitempty"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitApplicationResponse {
	return &SubmitApplicationResponse{
		Kind:          string(r.Kind),
		Status:        r.Status.String(),
		ApplicationID: r.ApplicationID,
		Message:       r.Message,
		Checkout:      FromCheckoutSession(r.Checkout),
		Snapshot:      r.Snapshot,
	}
}

type PaymentResultResponse struct {
	Status   string               `json:"status"`
	Message  string               `json:"message,omitempty"`
	Snapshot *enrollment.Snapshot `json:"snapshot,omitempty"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResultResponse {
	return &PaymentResultResponse{
		Status:   r.Status.String(),
		Message:  r.Message,
		Snapshot: r.Snapshot,
	}
}

type AttemptResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"userId,omitempty"`
	Variant        string    `json:"variant"`
	InternshipID   string    `json:"internshipId"`
	ApplicationID  string    `json:"applicationId,omitempty"`
	Status         string    `json:"status"`
	CouponCode     *string   `json:"couponCode,omitempty"`
	DiscountAmount *float64  `json:"discountAmount,omitempty"`
	OrderID        string    `json:"orderId,omitempty"`
	OrderAmount    *float64  `json:"orderAmount,omitempty"`
	OrderCurrency  string    `json:"orderCurrency,omitempty"`
	LastError      string    `json:"lastError,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromAttemptView(v *queries.AttemptView) (*AttemptResponse, error) {
	var res AttemptResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromAttemptViews(vs []queries.AttemptView) ([]AttemptResponse, error) {
	res := make([]AttemptResponse, 0, len(vs))
	if len(vs) == 0 {
		return res, nil
	}
	if err := copyInto(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}

type DashboardResponse struct {
	Applications []enrollment.ApplicationView `json:"applications"`
	Enrollments  []enrollment.Enrollment      `json:"enrollments"`
	EnrolledIDs  []string                     `json:"enrolledInternshipIds"`
	RefreshedAt  time.Time                    `json:"refreshedAt"`
	Attempts     []AttemptResponse            `json:"attempts"`
}

func FromSnapshot(snap *enrollment.Snapshot) *DashboardResponse {
	res := &DashboardResponse{
		Applications: []enrollment.ApplicationView{},
		Enrollments:  []enrollment.Enrollment{},
		EnrolledIDs:  []string{},
		Attempts:     []AttemptResponse{},
	}
	if snap == nil {
		return res
	}
	if snap.Applications != nil {
		res.Applications = snap.Applications
	}
	if snap.Enrollments != nil {
		res.Enrollments = snap.Enrollments
	}
	res.EnrolledIDs = snap.EnrolledInternshipIDs()
	res.RefreshedAt = snap.RefreshedAt
	return res
}

func FromDashboardView(v *queries.DashboardView) (*DashboardResponse, error) {
	res := FromSnapshot(v.Snapshot)
	attempts, err := FromAttemptViews(v.Attempts)
	if err != nil {
		return nil, err
	}
	res.Attempts = attempts
	return res, nil
}
