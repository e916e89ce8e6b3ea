package queries

import (
	"time"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/money"

	"github.com/google/uuid"
)

// AttemptView is the read model of one checkout attempt.
type AttemptView struct {
	ID             uuid.UUID
	UserID         string
	Variant        string
	InternshipID   string
	ApplicationID  string
	Status         string
	CouponCode     *string
	DiscountAmount *money.Amount
	OrderID        string
	OrderAmount    *money.Amount
	OrderCurrency  string
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewAttemptView(a *application.Attempt) AttemptView {
	v := AttemptView{
		ID:             a.ID(),
		UserID:         a.UserID(),
		Variant:        a.Variant().String(),
		InternshipID:   a.InternshipID(),
		ApplicationID:  a.ApplicationID(),
		Status:         a.Status().String(),
		CouponCode:     a.CouponCode(),
		DiscountAmount: a.DiscountAmount(),
		LastError:      a.LastError(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
	if order := a.Order(); !order.IsZero() {
		amount := order.Amount
		v.OrderID = order.ID
		v.OrderAmount = &amount
		v.OrderCurrency = order.Currency
	}
	return v
}

type DashboardView struct {
	Snapshot *enrollment.Snapshot
	Attempts []AttemptView
}
