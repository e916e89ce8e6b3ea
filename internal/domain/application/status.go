package application

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus     = errors.New("invalid application status")
	ErrInvalidEvent      = errors.New("invalid application event")
	ErrInvalidTransition = errors.New("invalid application status transition")
)

type Status string

const (
	StatusNotApplied         Status = "not_applied"
	StatusApplied            Status = "applied"
	StatusPaymentPending     Status = "payment_pending"
	StatusPaymentCompleted   Status = "payment_completed"
	StatusEnrolled           Status = "enrolled"
	StatusVerificationFailed Status = "verification_failed"
)

var allStatuses = []Status{
	StatusNotApplied,
	StatusApplied,
	StatusPaymentPending,
	StatusPaymentCompleted,
	StatusEnrolled,
	StatusVerificationFailed,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	for _, st := range allStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusEnrolled
}

// AwaitsPayment reports whether the checkout widget may be (re)opened.
func (s Status) AwaitsPayment() bool {
	return s == StatusPaymentPending || s == StatusVerificationFailed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Event string

const (
	EventSubmittedFree        Event = "submitted_free"
	EventSubmittedPaid        Event = "submitted_paid"
	EventGatewaySucceeded     Event = "gateway_succeeded"
	EventGatewayFailed        Event = "gateway_failed"
	EventCheckoutDismissed    Event = "checkout_dismissed"
	EventPaymentVerified      Event = "payment_verified"
	EventVerificationRejected Event = "verification_rejected"
	EventCheckoutResumed      Event = "checkout_resumed"
	EventEnrollmentObserved   Event = "enrollment_observed"
)

func (e Event) IsValid() bool {
	switch e {
	case EventSubmittedFree, EventSubmittedPaid,
		EventGatewaySucceeded, EventGatewayFailed, EventCheckoutDismissed,
		EventPaymentVerified, EventVerificationRejected,
		EventCheckoutResumed, EventEnrollmentObserved:
		return true
	default:
		return false
	}
}

// Transition is the complete application lifecycle. Every pair not handled
// below is rejected with ErrInvalidTransition.
func Transition(from Status, ev Event) (Status, error) {
	if !from.IsValid() {
		return from, ErrInvalidStatus
	}
	if !ev.IsValid() {
		return from, ErrInvalidEvent
	}

	if ev == EventEnrollmentObserved {
		return StatusEnrolled, nil
	}

	switch from {
	case StatusNotApplied, StatusApplied:
		switch ev {
		case EventSubmittedFree:
			return StatusEnrolled, nil
		case EventSubmittedPaid:
			return StatusPaymentPending, nil
		}
	case StatusPaymentPending:
		switch ev {
		case EventGatewaySucceeded:
			return StatusPaymentCompleted, nil
		case EventGatewayFailed, EventCheckoutDismissed, EventCheckoutResumed:
			return StatusPaymentPending, nil
		}
	case StatusPaymentCompleted:
		switch ev {
		case EventPaymentVerified:
			return StatusEnrolled, nil
		case EventVerificationRejected:
			return StatusVerificationFailed, nil
		}
	case StatusVerificationFailed:
		if ev == EventCheckoutResumed {
			return StatusPaymentPending, nil
		}
	case StatusEnrolled:
	}

	return from, fmt.Errorf("%w: %s --%s-->", ErrInvalidTransition, from, ev)
}
