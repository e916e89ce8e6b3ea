package commands

import (
	"fmt"

	"internship-checkout/internal/pkg/errs"
)

var (
	ErrResumeRequired            = errs.New("resume file is required")
	ErrInvalidApplicant          = errs.New("invalid applicant details")
	ErrInvalidCouponCode         = errs.New("invalid coupon code")
	ErrAlreadyEnrolled           = errs.New("already enrolled in this internship")
	ErrSubmissionInProgress      = errs.New("an application for this internship is already being submitted")
	ErrPaymentPending            = errs.New("payment is pending for this application")
	ErrNoPendingPayment          = errs.New("no payment is pending for this application")
	ErrAwaitingConfirmation      = errs.New("payment was received and is awaiting confirmation")
	ErrAttemptNotFound           = errs.New("no application found for this internship")
	ErrOrderMismatch             = errs.New("payment does not match this application's order")
	ErrGatewayFailed             = errs.New("payment failed at the gateway")
	ErrPaymentVerificationFailed = errs.New("payment could not be verified")
	ErrDatabaseOperationFailed   = errs.New("database operation failed")
)

const (
	msgVerificationFailed = "We could not verify your payment. If money was deducted, please contact support with payment ID %s."
	msgWidgetUnavailable  = "The payment window could not be loaded. Your application is saved; resume payment from your dashboard."
)

// GatewayError carries the gateway's own description of a failed payment.
type GatewayError struct {
	Code        string
	Description string
	Reason      string
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return e.Description
	}
	return fmt.Sprintf("%s (%s)", e.Description, e.Code)
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayFailed
}
