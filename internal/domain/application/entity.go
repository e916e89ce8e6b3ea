package application

import (
	"errors"
	"strings"
	"time"

	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrMissingOrder  = errors.New("payment order is required")
	ErrEmptyUserID   = errors.New("user id is required")
	ErrOrderMismatch = errors.New("payment order does not belong to this application")
	ErrClaimHeld     = errors.New("a submission for this internship is already in progress")
)

// Order is the payment order descriptor returned by the marketplace.
type Order struct {
	ID       string
	Amount   money.Amount
	Currency string
}

func (o Order) IsZero() bool {
	return o.ID == ""
}

// Attempt is this service's copy of one marketplace application, keyed by
// (user, variant, internship).
type Attempt struct {
	id             uuid.UUID
	userID         string
	variant        internship.Variant
	internshipID   string
	applicationID  string
	status         Status
	couponCode     *string
	discountAmount *money.Amount
	order          Order
	lastError      string
	version        int
	claimedAt      time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAttempt creates the claim written before the application is submitted.
func NewAttempt(userID string, variant internship.Variant, internshipID string, couponCode *string, now time.Time) (*Attempt, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrEmptyUserID
	}
	if strings.TrimSpace(internshipID) == "" {
		return nil, internship.ErrEmptyID
	}
	if !variant.IsValid() {
		return nil, internship.ErrInvalidVariant
	}
	return &Attempt{
		id:           uuid.New(),
		userID:       userID,
		variant:      variant,
		internshipID: internshipID,
		status:       StatusApplied,
		couponCode:   couponCode,
		version:      1,
		claimedAt:    now,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

type Snapshot struct {
	ID             uuid.UUID
	UserID         string
	Variant        internship.Variant
	InternshipID   string
	ApplicationID  string
	Status         Status
	CouponCode     *string
	DiscountAmount *money.Amount
	Order          Order
	LastError      string
	Version        int
	ClaimedAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(s Snapshot) *Attempt {
	return &Attempt{
		id:             s.ID,
		userID:         s.UserID,
		variant:        s.Variant,
		internshipID:   s.InternshipID,
		applicationID:  s.ApplicationID,
		status:         s.Status,
		couponCode:     s.CouponCode,
		discountAmount: s.DiscountAmount,
		order:          s.Order,
		lastError:      s.LastError,
		version:        s.Version,
		claimedAt:      s.ClaimedAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

// Apply advances the lifecycle. The attempt is unchanged on error.
func (a *Attempt) Apply(ev Event, now time.Time) error {
	next, err := Transition(a.status, ev)
	if err != nil {
		return err
	}
	a.status = next
	a.updatedAt = now
	if next == StatusEnrolled {
		a.lastError = ""
	}
	return nil
}

// MarkSubmitted records the marketplace's answer to the application submission.
func (a *Attempt) MarkSubmitted(applicationID string, order *Order, discount *money.Amount, now time.Time) error {
	ev := EventSubmittedFree
	if order != nil {
		if order.IsZero() {
			return ErrMissingOrder
		}
		ev = EventSubmittedPaid
	}
	if err := a.Apply(ev, now); err != nil {
		return err
	}
	a.applicationID = applicationID
	a.discountAmount = discount
	if order != nil {
		a.order = *order
	}
	return nil
}

// RecordFailure applies ev and remembers the user-facing reason.
func (a *Attempt) RecordFailure(ev Event, reason string, now time.Time) error {
	if err := a.Apply(ev, now); err != nil {
		return err
	}
	a.lastError = reason
	return nil
}

// CheckOrder guards against a widget callback for some other order.
func (a *Attempt) CheckOrder(orderID string) error {
	if a.order.IsZero() {
		return ErrMissingOrder
	}
	if a.order.ID != orderID {
		return ErrOrderMismatch
	}
	return nil
}

// ClaimExpired reports whether an in-flight submission claim may be taken over.
func (a *Attempt) ClaimExpired(now time.Time, ttl time.Duration) bool {
	return a.status == StatusApplied && now.Sub(a.claimedAt) > ttl
}

// Reclaim takes over a stale submission claim for a fresh submission.
func (a *Attempt) Reclaim(couponCode *string, now time.Time, ttl time.Duration) error {
	if !a.ClaimExpired(now, ttl) {
		return ErrClaimHeld
	}
	a.couponCode = couponCode
	a.claimedAt = now
	a.updatedAt = now
	a.lastError = ""
	return nil
}

func (a *Attempt) ID() uuid.UUID                 { return a.id }
func (a *Attempt) UserID() string                { return a.userID }
func (a *Attempt) Variant() internship.Variant   { return a.variant }
func (a *Attempt) InternshipID() string          { return a.internshipID }
func (a *Attempt) ApplicationID() string         { return a.applicationID }
func (a *Attempt) Status() Status                { return a.status }
func (a *Attempt) CouponCode() *string           { return a.couponCode }
func (a *Attempt) DiscountAmount() *money.Amount { return a.discountAmount }
func (a *Attempt) Order() Order                  { return a.order }
func (a *Attempt) LastError() string             { return a.lastError }
func (a *Attempt) Version() int                  { return a.version }
func (a *Attempt) ClaimedAt() time.Time          { return a.claimedAt }
func (a *Attempt) CreatedAt() time.Time          { return a.createdAt }
func (a *Attempt) UpdatedAt() time.Time          { return a.updatedAt }
