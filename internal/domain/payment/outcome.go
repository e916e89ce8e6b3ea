package payment

import (
	"errors"
	"strings"
)

var (
	ErrInvalidOutcome    = errors.New("invalid checkout outcome")
	ErrIncompleteSuccess = errors.New("successful checkout requires order id, payment id and signature")
)

type OutcomeKind string

const (
	OutcomeSuccess   OutcomeKind = "success"
	OutcomeFailed    OutcomeKind = "failed"
	OutcomeDismissed OutcomeKind = "dismissed"
)

// Confirmation is the checkout widget's success payload. It is forwarded to
// the marketplace verbatim; only the marketplace can check the signature.
type Confirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Failure is the gateway's own error description from a payment.failed event.
type Failure struct {
	Code        string
	Description string
	Reason      string
	OrderID     string
	PaymentID   string
}

// Outcome is what the browser reports after the checkout widget closes.
// Exactly one of Confirmation / Failure is set, matching Kind.
type Outcome struct {
	Kind         OutcomeKind
	Confirmation *Confirmation
	Failure      *Failure
}

func Succeeded(c Confirmation) (Outcome, error) {
	c.OrderID = strings.TrimSpace(c.OrderID)
	c.PaymentID = strings.TrimSpace(c.PaymentID)
	c.Signature = strings.TrimSpace(c.Signature)
	if c.OrderID == "" || c.PaymentID == "" || c.Signature == "" {
		return Outcome{}, ErrIncompleteSuccess
	}
	return Outcome{Kind: OutcomeSuccess, Confirmation: &c}, nil
}

func Failed(f Failure) Outcome {
	if strings.TrimSpace(f.Description) == "" {
		f.Description = "Payment failed"
	}
	return Outcome{Kind: OutcomeFailed, Failure: &f}
}

func Dismissed() Outcome {
	return Outcome{Kind: OutcomeDismissed}
}
