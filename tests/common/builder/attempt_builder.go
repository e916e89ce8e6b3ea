//go:build unit || e2e

package builder

import (
	"time"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"

	"github.com/google/uuid"
)

type AttemptBuilder struct {
	ID             uuid.UUID
	UserID         string
	Variant        internship.Variant
	InternshipID   string
	ApplicationID  string
	Status         application.Status
	CouponCode     *string
	DiscountAmount *money.Amount
	Order          application.Order
	LastError      string
	Version        int
	ClaimedAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewAttemptBuilder() *AttemptBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &AttemptBuilder{
		ID:           uuid.New(),
		UserID:       "64f1c2a9e4b0a1b2c3d4e5f6",
		Variant:      internship.VariantStandard,
		InternshipID: "intern-101",
		Status:       application.StatusApplied,
		Version:      1,
		ClaimedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *AttemptBuilder) With(mutate func(*AttemptBuilder)) *AttemptBuilder {
	mutate(b)
	return b
}

func (b *AttemptBuilder) BuildDomain() *application.Attempt {
	return application.Reconstruct(application.Snapshot{
		ID:             b.ID,
		UserID:         b.UserID,
		Variant:        b.Variant,
		InternshipID:   b.InternshipID,
		ApplicationID:  b.ApplicationID,
		Status:         b.Status,
		CouponCode:     b.CouponCode,
		DiscountAmount: b.DiscountAmount,
		Order:          b.Order,
		LastError:      b.LastError,
		Version:        b.Version,
		ClaimedAt:      b.ClaimedAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	})
}

func (b *AttemptBuilder) WithUserID(userID string) *AttemptBuilder {
	b.UserID = userID
	return b
}

func (b *AttemptBuilder) WithVariant(v internship.Variant) *AttemptBuilder {
	b.Variant = v
	return b
}

func (b *AttemptBuilder) WithInternshipID(id string) *AttemptBuilder {
	b.InternshipID = id
	return b
}

func (b *AttemptBuilder) WithStatus(s application.Status) *AttemptBuilder {
	b.Status = s
	return b
}

func (b *AttemptBuilder) WithCouponCode(code string) *AttemptBuilder {
	b.CouponCode = &code
	return b
}

func (b *AttemptBuilder) WithClaimedAt(t time.Time) *AttemptBuilder {
	b.ClaimedAt = t
	return b
}

func (b *AttemptBuilder) WithLastError(msg string) *AttemptBuilder {
	b.LastError = msg
	return b
}

// AsPaymentPending puts the attempt at the point where the widget is open.
func (b *AttemptBuilder) AsPaymentPending() *AttemptBuilder {
	b.Status = application.StatusPaymentPending
	b.ApplicationID = "app-501"
	b.Order = application.Order{ID: "order_Nx01", Amount: money.FromInt(499), Currency: "INR"}
	return b
}

// AsPaymentCompleted is an attempt whose verification outcome was never recorded.
func (b *AttemptBuilder) AsPaymentCompleted() *AttemptBuilder {
	b.AsPaymentPending()
	b.Status = application.StatusPaymentCompleted
	return b
}

func (b *AttemptBuilder) WithUpdatedAt(t time.Time) *AttemptBuilder {
	b.UpdatedAt = t
	return b
}

func (b *AttemptBuilder) AsVerificationFailed() *AttemptBuilder {
	b.AsPaymentPending()
	b.Status = application.StatusVerificationFailed
	b.LastError = "Payment signature mismatch"
	return b
}

func (b *AttemptBuilder) AsEnrolled() *AttemptBuilder {
	b.Status = application.StatusEnrolled
	b.ApplicationID = "app-501"
	return b
}
