package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/coupon"
	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/domain/payment"
	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/infra"
	"internship-checkout/internal/infra/db"
	"internship-checkout/internal/pkg/clock"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/pkg/metrics"
	"internship-checkout/internal/pkg/patch"
	"internship-checkout/internal/pkg/validate"
	"internship-checkout/internal/usecase/queries"
	"internship-checkout/internal/usecase/shared"
)

const feeDescription = "Internship application fee"

type CouponQuote struct {
	InternshipID   string
	Code           string
	Valid          bool
	BaseAmount     money.Amount
	DiscountAmount money.Amount
	FinalAmount    money.Amount
	Currency       string
	Message        string
	// RejectedLocally is set when the cached coupon list ruled the code out.
	RejectedLocally bool
}

type SubmitApplicationInput struct {
	InternshipID    string
	Applicant       shared.ApplicantDetails
	PortfolioLink   string
	Resume          *shared.FilePart
	CoverLetter     *shared.FilePart
	CoverLetterText string
	CouponCode      string
}

type SubmitResult struct {
	Kind          shared.SubmitKind
	Status        application.Status
	ApplicationID string
	Message       string
	Checkout      *CheckoutSession
	Snapshot      *enrollment.Snapshot
}

// CheckoutSession is everything the browser needs to open the widget.
type CheckoutSession struct {
	ScriptURL string
	Options   shared.WidgetOptions
}

type PaymentResult struct {
	Status   application.Status
	Message  string
	Snapshot *enrollment.Snapshot
}

type CheckoutCommands interface {
	ApplyCoupon(ctx context.Context, sess session.Session, variant internship.Variant, internshipID, code string) (*CouponQuote, error)
	SubmitApplication(ctx context.Context, sess session.Session, variant internship.Variant, in SubmitApplicationInput) (*SubmitResult, error)
	ResumeCheckout(ctx context.Context, sess session.Session, variant internship.Variant, internshipID string, prefill shared.Prefill) (*CheckoutSession, error)
	CompletePayment(ctx context.Context, sess session.Session, variant internship.Variant, internshipID string, outcome payment.Outcome) (*PaymentResult, error)
}

type checkoutUseCaseImpl struct {
	client     shared.MarketplaceClient
	widget     shared.CheckoutWidget
	catalog    shared.CouponCatalogCache
	snapshots  shared.SnapshotStore
	attempts   shared.AttemptRepository
	uow        shared.UnitOfWork
	refresher  queries.Refresher
	clock      clock.Clock
	claimTTL   time.Duration
	catalogTTL time.Duration
	logger     *slog.Logger
}

func NewCheckoutUseCase(
	client shared.MarketplaceClient,
	widget shared.CheckoutWidget,
	catalog shared.CouponCatalogCache,
	snapshots shared.SnapshotStore,
	attempts shared.AttemptRepository,
	uow shared.UnitOfWork,
	refresher queries.Refresher,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		client:     client,
		widget:     widget,
		catalog:    catalog,
		snapshots:  snapshots,
		attempts:   attempts,
		uow:        uow,
		refresher:  refresher,
		clock:      clock,
		claimTTL:   cfg.Checkout.ClaimTTL,
		catalogTTL: cfg.Checkout.CatalogTTL,
		logger:     logger,
	}
}

func keyFor(sess session.Session, variant internship.Variant, internshipID string) shared.AttemptKey {
	return shared.AttemptKey{UserID: sess.UserID(), Variant: variant, InternshipID: internshipID}
}

// ---------------------------------------------------------------------------
// Coupons
// ---------------------------------------------------------------------------

func (u *checkoutUseCaseImpl) ApplyCoupon(ctx context.Context, sess session.Session, variant internship.Variant, internshipID, raw string) (*CouponQuote, error) {
	code, err := coupon.NewCode(raw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCouponCode)
	}

	target, err := u.client.GetTarget(ctx, sess, internshipID)
	if err != nil {
		return nil, err
	}

	quote := &CouponQuote{
		InternshipID:   target.ID(),
		Code:           code.String(),
		BaseAmount:     target.BaseAmount(),
		DiscountAmount: money.Zero(),
		FinalAmount:    target.BaseAmount(),
		Currency:       target.Currency(),
	}

	if !target.RequiresFee() {
		quote.Message = "This internship has no fee to discount"
		metrics.CouponVerdicts.WithLabelValues(variant.String(), "no_fee").Inc()
		return quote, nil
	}

	if catalog := u.loadCatalog(ctx, sess); catalog != nil {
		if err := catalog.Precheck(code.String(), u.clock.Now(), target.ID()); err != nil {
			quote.Message = capitalize(err.Error())
			quote.RejectedLocally = true
			metrics.CouponVerdicts.WithLabelValues(variant.String(), "rejected_locally").Inc()
			return quote, nil
		}
	}

	verdict, err := u.client.ValidateCoupon(ctx, sess, variant, shared.CouponCheck{
		Code:         code.String(),
		InternshipID: target.ID(),
		Amount:       target.BaseAmount(),
	})
	if err != nil {
		return nil, err
	}

	quote.Message = verdict.Message
	if !verdict.Valid {
		metrics.CouponVerdicts.WithLabelValues(variant.String(), "rejected").Inc()
		return quote, nil
	}

	quote.Valid = true
	quote.DiscountAmount = verdict.DiscountAmount
	quote.FinalAmount = target.BaseAmount().ClampedSub(verdict.DiscountAmount)
	metrics.CouponVerdicts.WithLabelValues(variant.String(), "accepted").Inc()
	return quote, nil
}

// loadCatalog returns nil when no usable list is available; callers then
// skip the pre-check and let the marketplace decide.
func (u *checkoutUseCaseImpl) loadCatalog(ctx context.Context, sess session.Session) *coupon.Catalog {
	catalog, err := u.catalog.Get(ctx)
	if err == nil {
		return nonEmpty(catalog)
	}
	if !errs.Is(err, errs.ErrCacheMiss) {
		u.logger.Warn("failed to read coupon catalog", slog.Any("error", err))
	}

	listing, err := u.client.ListCoupons(ctx, sess)
	if err != nil {
		u.logger.Info("coupon catalog unavailable, skipping pre-check", slog.Any("error", err))
		return nil
	}
	catalog = coupon.NewCatalog(listing.Coupons, u.clock.Now()).WithUnparsed(listing.Unparsed...)
	if err := u.catalog.Put(ctx, catalog, u.catalogTTL); err != nil {
		u.logger.Warn("failed to cache coupon catalog", slog.Any("error", err))
	}
	return nonEmpty(catalog)
}

func nonEmpty(c *coupon.Catalog) *coupon.Catalog {
	if c == nil || c.Len() == 0 {
		return nil
	}
	return c
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ---------------------------------------------------------------------------
// Submission
// ---------------------------------------------------------------------------

func (u *checkoutUseCaseImpl) SubmitApplication(ctx context.Context, sess session.Session, variant internship.Variant, in SubmitApplicationInput) (*SubmitResult, error) {
	form, err := u.buildForm(in)
	if err != nil {
		return nil, err
	}

	if err := u.rejectIfEnrolled(ctx, sess, variant, in.InternshipID); err != nil {
		return nil, err
	}

	key := keyFor(sess, variant, in.InternshipID)
	if err := u.claim(ctx, key, form.CouponCode); err != nil {
		return nil, err
	}

	outcome, err := u.client.SubmitApplication(ctx, sess, variant, form)
	if err != nil {
		u.release(key)
		metrics.Submissions.WithLabelValues(variant.String(), "failed").Inc()
		return nil, err
	}
	metrics.Submissions.WithLabelValues(variant.String(), string(outcome.Kind)).Inc()

	// the marketplace already created the application; record it even if the caller went away
	saveCtx := context.WithoutCancel(ctx)
	var status application.Status
	err = u.uow.Within(saveCtx, func(ctx context.Context, tx db.DBTX) error {
		a, err := u.attempts.FindForUpdate(ctx, tx, key)
		if err != nil {
			return err
		}
		if err := a.MarkSubmitted(outcome.ApplicationID, outcome.Order, outcome.DiscountAmount, u.clock.Now()); err != nil {
			return err
		}
		status = a.Status()
		return u.attempts.Save(ctx, tx, a)
	})
	if err != nil {
		u.logger.Error("application created but attempt not recorded",
			slog.String("user_id", sess.UserID()),
			slog.String("internship_id", in.InternshipID),
			slog.String("application_id", outcome.ApplicationID),
			slog.Any("error", err))
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &SubmitResult{
		Kind:          outcome.Kind,
		Status:        status,
		ApplicationID: outcome.ApplicationID,
		Message:       outcome.Message,
	}

	if outcome.Kind != shared.SubmitPaymentRequired {
		result.Snapshot = u.refreshQuietly(ctx, sess, variant)
		return result, nil
	}

	prefill := shared.Prefill{Name: in.Applicant.Name, Email: in.Applicant.Email, Contact: in.Applicant.Phone}
	checkout, err := u.openCheckout(ctx, *outcome.Order, prefill)
	if err != nil {
		return nil, err
	}
	result.Checkout = checkout
	return result, nil
}

// buildForm applies the local gates. Nothing here touches the network.
func (u *checkoutUseCaseImpl) buildForm(in SubmitApplicationInput) (shared.ApplicationForm, error) {
	if strings.TrimSpace(in.InternshipID) == "" {
		return shared.ApplicationForm{}, errs.Mark(internship.ErrEmptyID, ErrInvalidApplicant)
	}
	if in.Resume == nil || len(in.Resume.Content) == 0 {
		return shared.ApplicationForm{}, ErrResumeRequired
	}
	if err := validate.Check(in.Applicant); err != nil {
		return shared.ApplicationForm{}, errs.WithUserMessage(errs.Mark(err, ErrInvalidApplicant), err.Error())
	}

	form := shared.ApplicationForm{
		InternshipID:    in.InternshipID,
		Applicant:       in.Applicant,
		PortfolioLink:   strings.TrimSpace(in.PortfolioLink),
		Resume:          in.Resume,
		CoverLetter:     in.CoverLetter,
		CoverLetterText: strings.TrimSpace(in.CoverLetterText),
	}
	if form.CoverLetter != nil && len(form.CoverLetter.Content) == 0 {
		form.CoverLetter = nil
	}
	if raw := strings.TrimSpace(in.CouponCode); raw != "" {
		code, err := coupon.NewCode(raw)
		if err != nil {
			return shared.ApplicationForm{}, errs.Mark(err, ErrInvalidCouponCode)
		}
		form.CouponCode = patch.NilIfZero(code.String())
	}
	return form, nil
}

func (u *checkoutUseCaseImpl) rejectIfEnrolled(ctx context.Context, sess session.Session, variant internship.Variant, internshipID string) error {
	snap, err := u.snapshots.Get(ctx, sess.UserID(), variant)
	if err != nil {
		return nil
	}
	if snap.Includes(internshipID) {
		return ErrAlreadyEnrolled
	}
	return nil
}

func (u *checkoutUseCaseImpl) claim(ctx context.Context, key shared.AttemptKey, couponCode *string) error {
	now := u.clock.Now()
	return u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		existing, err := u.attempts.FindForUpdate(ctx, tx, key)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			fresh, err := application.NewAttempt(key.UserID, key.Variant, key.InternshipID, couponCode, now)
			if err != nil {
				return errs.Mark(err, ErrInvalidApplicant)
			}
			if err := u.attempts.Claim(ctx, tx, fresh); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return ErrSubmissionInProgress
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			return nil
		}

		switch st := existing.Status(); {
		case st.IsTerminal():
			return ErrAlreadyEnrolled
		case st == application.StatusApplied:
			if err := existing.Reclaim(couponCode, now, u.claimTTL); err != nil {
				return ErrSubmissionInProgress
			}
			return u.attempts.Save(ctx, tx, existing)
		case st == application.StatusPaymentCompleted:
			return ErrAwaitingConfirmation
		default:
			return ErrPaymentPending
		}
	})
}

func (u *checkoutUseCaseImpl) release(key shared.AttemptKey) {
	err := u.uow.Within(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return u.attempts.Release(ctx, tx, key)
	})
	if err != nil {
		u.logger.Error("failed to release submission claim",
			slog.String("user_id", key.UserID),
			slog.String("internship_id", key.InternshipID),
			slog.Any("error", err))
	}
}

func (u *checkoutUseCaseImpl) refreshQuietly(ctx context.Context, sess session.Session, variant internship.Variant) *enrollment.Snapshot {
	snap, err := u.refresher.Refresh(ctx, sess, variant)
	if err != nil {
		u.logger.Warn("refresh after state change failed", slog.String("user_id", sess.UserID()), slog.Any("error", err))
		return nil
	}
	return snap
}

func (u *checkoutUseCaseImpl) openCheckout(ctx context.Context, order application.Order, prefill shared.Prefill) (*CheckoutSession, error) {
	if err := u.widget.Ensure(ctx); err != nil {
		return nil, errs.WithUserMessage(err, msgWidgetUnavailable)
	}
	return &CheckoutSession{
		ScriptURL: u.widget.ScriptURL(),
		Options:   u.widget.Options(order, feeDescription, prefill),
	}, nil
}

// ---------------------------------------------------------------------------
// Payment
// ---------------------------------------------------------------------------

func (u *checkoutUseCaseImpl) ResumeCheckout(ctx context.Context, sess session.Session, variant internship.Variant, internshipID string, prefill shared.Prefill) (*CheckoutSession, error) {
	var order application.Order
	err := u.transition(ctx, keyFor(sess, variant, internshipID), func(a *application.Attempt) error {
		if err := rejectSettled(a.Status()); err != nil {
			return err
		}
		if !a.Status().AwaitsPayment() {
			return ErrNoPendingPayment
		}
		if err := a.Apply(application.EventCheckoutResumed, u.clock.Now()); err != nil {
			return errs.Mark(err, ErrNoPendingPayment)
		}
		order = a.Order()
		if order.IsZero() {
			return ErrNoPendingPayment
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.openCheckout(ctx, order, prefill)
}

func (u *checkoutUseCaseImpl) CompletePayment(ctx context.Context, sess session.Session, variant internship.Variant, internshipID string, outcome payment.Outcome) (*PaymentResult, error) {
	key := keyFor(sess, variant, internshipID)

	switch outcome.Kind {
	case payment.OutcomeDismissed:
		err := u.transition(ctx, key, func(a *application.Attempt) error {
			return u.applyPending(a, application.EventCheckoutDismissed, "")
		})
		if err != nil {
			return nil, err
		}
		metrics.PaymentOutcomes.WithLabelValues(variant.String(), "dismissed").Inc()
		return &PaymentResult{Status: application.StatusPaymentPending}, nil

	case payment.OutcomeFailed:
		f := outcome.Failure
		if f == nil {
			return nil, payment.ErrInvalidOutcome
		}
		err := u.transition(ctx, key, func(a *application.Attempt) error {
			if f.OrderID != "" {
				if err := a.CheckOrder(f.OrderID); err != nil {
					return errs.Mark(err, ErrOrderMismatch)
				}
			}
			return u.applyPending(a, application.EventGatewayFailed, f.Description)
		})
		if err != nil {
			return nil, err
		}
		metrics.PaymentOutcomes.WithLabelValues(variant.String(), "gateway_failed").Inc()
		return nil, &GatewayError{Code: f.Code, Description: f.Description, Reason: f.Reason}

	case payment.OutcomeSuccess:
		if outcome.Confirmation == nil {
			return nil, payment.ErrInvalidOutcome
		}
		return u.verify(ctx, sess, variant, key, *outcome.Confirmation)

	default:
		return nil, payment.ErrInvalidOutcome
	}
}

// rejectSettled reports statuses where the gateway has already been paid.
func rejectSettled(st application.Status) error {
	switch {
	case st.IsTerminal():
		return ErrAlreadyEnrolled
	case st == application.StatusPaymentCompleted:
		return ErrAwaitingConfirmation
	default:
		return nil
	}
}

func (u *checkoutUseCaseImpl) applyPending(a *application.Attempt, ev application.Event, reason string) error {
	if err := rejectSettled(a.Status()); err != nil {
		return err
	}
	if a.Status() != application.StatusPaymentPending {
		return ErrNoPendingPayment
	}
	if reason != "" {
		return a.RecordFailure(ev, reason, u.clock.Now())
	}
	return a.Apply(ev, u.clock.Now())
}

// verify forwards the widget's success payload exactly once. A rejection is
// final for this payment; the user has to start a new one.
func (u *checkoutUseCaseImpl) verify(ctx context.Context, sess session.Session, variant internship.Variant, key shared.AttemptKey, conf payment.Confirmation) (*PaymentResult, error) {
	var couponCode *string
	err := u.transition(ctx, key, func(a *application.Attempt) error {
		if err := rejectSettled(a.Status()); err != nil {
			return err
		}
		if a.Status() != application.StatusPaymentPending {
			return ErrNoPendingPayment
		}
		if err := a.CheckOrder(conf.OrderID); err != nil {
			return errs.Mark(err, ErrOrderMismatch)
		}
		couponCode = a.CouponCode()
		return a.Apply(application.EventGatewaySucceeded, u.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	verifyErr := u.client.VerifyPayment(ctx, sess, variant, shared.Verification{Confirmation: conf, CouponCode: couponCode})

	// the gateway has already taken the money; persist the result regardless of the caller
	saveCtx := context.WithoutCancel(ctx)
	if verifyErr != nil {
		reason := errs.UserMessage(verifyErr, "verification failed")
		if upErr, ok := infra.AsUpstream(verifyErr); ok {
			reason = upErr.Message
		}
		err := u.transition(saveCtx, key, func(a *application.Attempt) error {
			return a.RecordFailure(application.EventVerificationRejected, reason, u.clock.Now())
		})
		if err != nil {
			// the attempt stays payment_completed and surfaces in the support listing once stalled
			u.logger.Error("failed to record verification failure",
				slog.String("order_id", conf.OrderID),
				slog.String("payment_id", conf.PaymentID),
				slog.Any("error", err))
		}
		u.logger.Error("payment verification failed",
			slog.String("user_id", sess.UserID()),
			slog.String("order_id", conf.OrderID),
			slog.String("payment_id", conf.PaymentID),
			slog.Any("error", verifyErr))
		metrics.PaymentOutcomes.WithLabelValues(variant.String(), "verification_failed").Inc()
		return nil, errs.WithUserMessage(
			errs.Mark(verifyErr, ErrPaymentVerificationFailed),
			fmt.Sprintf(msgVerificationFailed, conf.PaymentID),
		)
	}

	err = u.transition(saveCtx, key, func(a *application.Attempt) error {
		return a.Apply(application.EventPaymentVerified, u.clock.Now())
	})
	if err != nil {
		u.logger.Error("payment verified but attempt not updated", slog.String("order_id", conf.OrderID), slog.Any("error", err))
	}
	metrics.PaymentOutcomes.WithLabelValues(variant.String(), "verified").Inc()

	return &PaymentResult{
		Status:   application.StatusEnrolled,
		Message:  "Payment verified. You are enrolled.",
		Snapshot: u.refreshQuietly(ctx, sess, variant),
	}, nil
}

// transition loads the attempt under a row lock, lets fn mutate it and saves it.
func (u *checkoutUseCaseImpl) transition(ctx context.Context, key shared.AttemptKey, fn func(a *application.Attempt) error) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		a, err := u.attempts.FindForUpdate(ctx, tx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAttemptNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := fn(a); err != nil {
			return err
		}
		if err := u.attempts.Save(ctx, tx, a); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
