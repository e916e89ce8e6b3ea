//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/coupon"
	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/domain/payment"
	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/infra"
	"internship-checkout/internal/pkg/clock"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/commands"
	"internship-checkout/internal/usecase/shared"
	"internship-checkout/tests/common/builder"
	"internship-checkout/tests/common/testutil"
	queriesmock "internship-checkout/tests/mock/queries"
	sharedmock "internship-checkout/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const variant = internship.VariantStandard

var notFound = infra.RepositoryError{Kind: infra.KindNotFound}

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	client    *sharedmock.MockMarketplaceClient
	widget    *sharedmock.MockCheckoutWidget
	catalog   *sharedmock.MockCouponCatalogCache
	snapshots *sharedmock.MockSnapshotStore
	attempts  *sharedmock.MockAttemptRepository
	refresher *queriesmock.MockRefresher
	uow       *testutil.InlineUoW
	clock     *clock.MockClock
	sess      session.Session
	uc        commands.CheckoutCommands
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = sharedmock.NewMockMarketplaceClient(s.ctrl)
	s.widget = sharedmock.NewMockCheckoutWidget(s.ctrl)
	s.catalog = sharedmock.NewMockCouponCatalogCache(s.ctrl)
	s.snapshots = sharedmock.NewMockSnapshotStore(s.ctrl)
	s.attempts = sharedmock.NewMockAttemptRepository(s.ctrl)
	s.refresher = queriesmock.NewMockRefresher(s.ctrl)
	s.uow = &testutil.InlineUoW{}
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 10, 5, 0, 0, time.UTC))

	sess, err := session.New("64f1c2a9e4b0a1b2c3d4e5f6", session.RoleStudent, "bearer-token")
	s.Require().NoError(err)
	s.sess = sess

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uc = commands.NewCheckoutUseCase(
		s.client, s.widget, s.catalog, s.snapshots, s.attempts, s.uow, s.refresher,
		s.clock, config.NewTestConfig(), logger,
	)
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

func feeTarget(t *testing.T, amount int64) *internship.Target {
	t.Helper()
	target, err := internship.NewTarget("intern-101", "Backend Intern", money.FromInt(amount), "INR", internship.ModeFeeBased)
	require.NoError(t, err)
	return target
}

func (s *CheckoutUseCaseTestSuite) expectWidget(order application.Order) {
	s.widget.EXPECT().Ensure(gomock.Any()).Return(nil)
	s.widget.EXPECT().ScriptURL().Return("https://checkout.razorpay.com/v1/checkout.js")
	s.widget.EXPECT().Options(order, gomock.Any(), gomock.Any()).
		DoAndReturn(func(o application.Order, desc string, p shared.Prefill) shared.WidgetOptions {
			return shared.WidgetOptions{Key: "rzp_test_key", Amount: o.Amount.Paise(), Currency: o.Currency, OrderID: o.ID, Description: desc, Prefill: p}
		})
}

// ---------------------------------------------------------------------------
// ApplyCoupon
// ---------------------------------------------------------------------------

func (s *CheckoutUseCaseTestSuite) TestApplyCoupon() {
	ctx := context.Background()

	s.Run("accepted by marketplace", func() {
		s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(feeTarget(s.T(), 499), nil)
		s.catalog.EXPECT().Get(gomock.Any()).
			Return(coupon.NewCatalog([]*coupon.Coupon{builder.NewCouponBuilder().MustBuild()}, s.clock.Now()), nil)
		s.client.EXPECT().ValidateCoupon(gomock.Any(), s.sess, variant, shared.CouponCheck{
			Code: "SAVE20", InternshipID: "intern-101", Amount: money.FromInt(499),
		}).Return(&shared.CouponVerdict{Valid: true, DiscountAmount: money.FromPaise(9980), Message: "Coupon applied"}, nil)

		quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", " save20 ")

		s.Require().NoError(err)
		s.True(quote.Valid)
		s.Equal("SAVE20", quote.Code)
		s.Equal("99.80", quote.DiscountAmount.String())
		s.Equal("399.20", quote.FinalAmount.String())
		s.Equal("Coupon applied", quote.Message)
		s.False(quote.RejectedLocally)
	})

	s.Run("discount larger than fee clamps to zero", func() {
		s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(feeTarget(s.T(), 499), nil)
		s.catalog.EXPECT().Get(gomock.Any()).Return(nil, errs.ErrCacheMiss)
		s.client.EXPECT().ListCoupons(gomock.Any(), s.sess).Return(nil, errs.ErrUpstreamUnavailable)
		s.client.EXPECT().ValidateCoupon(gomock.Any(), s.sess, variant, gomock.Any()).
			Return(&shared.CouponVerdict{Valid: true, DiscountAmount: money.FromInt(1000)}, nil)

		quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "FULLFREE")

		s.Require().NoError(err)
		s.True(quote.Valid)
		s.True(quote.FinalAmount.IsZero())
	})

	s.Run("unknown code is rejected from the cached catalog", func() {
		s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(feeTarget(s.T(), 499), nil)
		s.catalog.EXPECT().Get(gomock.Any()).Return(nil, errs.ErrCacheMiss)
		s.client.EXPECT().ListCoupons(gomock.Any(), s.sess).
			Return(&shared.CouponListing{Coupons: []*coupon.Coupon{builder.NewCouponBuilder().MustBuild()}}, nil)
		s.catalog.EXPECT().Put(gomock.Any(), gomock.Any(), 5*time.Minute).Return(nil)

		quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "NOPE99")

		s.Require().NoError(err)
		s.False(quote.Valid)
		s.True(quote.RejectedLocally)
		s.Equal("Coupon not found", quote.Message)
		s.Equal("499.00", quote.FinalAmount.String())
	})

	s.Run("code from an unreadable list entry is validated remotely", func() {
		s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(feeTarget(s.T(), 5000), nil)
		s.catalog.EXPECT().Get(gomock.Any()).Return(nil, errs.ErrCacheMiss)
		s.client.EXPECT().ListCoupons(gomock.Any(), s.sess).Return(&shared.CouponListing{
			Coupons:  []*coupon.Coupon{builder.NewCouponBuilder().MustBuild()},
			Unparsed: []string{"save1000"},
		}, nil)
		s.catalog.EXPECT().Put(gomock.Any(), gomock.Any(), 5*time.Minute).
			DoAndReturn(func(_ context.Context, c *coupon.Catalog, _ time.Duration) error {
				s.Equal([]string{"save1000"}, c.Unparsed())
				return nil
			})
		s.client.EXPECT().ValidateCoupon(gomock.Any(), s.sess, variant, shared.CouponCheck{
			Code: "SAVE1000", InternshipID: "intern-101", Amount: money.FromInt(5000),
		}).Return(&shared.CouponVerdict{Valid: true, DiscountAmount: money.FromInt(1000), Message: "Coupon applied"}, nil)

		quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "SAVE1000")

		s.Require().NoError(err)
		s.True(quote.Valid)
		s.False(quote.RejectedLocally)
		s.Equal("4000.00", quote.FinalAmount.String())
	})

	s.Run("expired code is rejected from the cached catalog", func() {
		expired := builder.NewCouponBuilder().WithExpiresAt(s.clock.Now().Add(-time.Hour)).MustBuild()
		s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(feeTarget(s.T(), 499), nil)
		s.catalog.EXPECT().Get(gomock.Any()).Return(coupon.NewCatalog([]*coupon.Coupon{expired}, s.clock.Now()), nil)

		quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "SAVE20")

		s.Require().NoError(err)
		s.True(quote.RejectedLocally)
		s.Equal("Coupon has expired", quote.Message)
	})

	s.Run("marketplace rejection keeps the base amount", func() {
		s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(feeTarget(s.T(), 499), nil)
		s.catalog.EXPECT().Get(gomock.Any()).Return(coupon.NewCatalog(nil, s.clock.Now()), nil)
		s.client.EXPECT().ValidateCoupon(gomock.Any(), s.sess, variant, gomock.Any()).
			Return(&shared.CouponVerdict{Valid: false, Message: "Coupon usage limit reached"}, nil)

		quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "SAVE20")

		s.Require().NoError(err)
		s.False(quote.Valid)
		s.False(quote.RejectedLocally)
		s.Equal("Coupon usage limit reached", quote.Message)
		s.True(quote.DiscountAmount.IsZero())
		s.Equal("499.00", quote.FinalAmount.String())
	})

	s.Run("free internship makes no coupon calls", func() {
		free, err := internship.NewTarget("intern-101", "Free Intern", money.Zero(), "", internship.ModeFree)
		s.Require().NoError(err)
		s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(free, nil)

		quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "SAVE20")

		s.Require().NoError(err)
		s.False(quote.Valid)
		s.Equal("This internship has no fee to discount", quote.Message)
	})

	s.Run("malformed code never reaches the marketplace", func() {
		_, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "a!")

		s.Require().Error(err)
		testutil.AssertIs(s.T(), err, commands.ErrInvalidCouponCode)
	})
}

// ---------------------------------------------------------------------------
// SubmitApplication
// ---------------------------------------------------------------------------

func (s *CheckoutUseCaseTestSuite) TestSubmitApplication_LocalGates() {
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*builder.ApplicationBuilder)
		errIs   error
		userMsg string
	}{
		{
			name:   "missing resume",
			mutate: func(b *builder.ApplicationBuilder) { b.WithoutResume() },
			errIs:  commands.ErrResumeRequired,
		},
		{
			name: "empty resume",
			mutate: func(b *builder.ApplicationBuilder) {
				b.Resume = &shared.FilePart{Filename: "resume.pdf"}
			},
			errIs: commands.ErrResumeRequired,
		},
		{
			name:    "invalid email",
			mutate:  func(b *builder.ApplicationBuilder) { b.WithEmail("not-an-email") },
			errIs:   commands.ErrInvalidApplicant,
			userMsg: "Email must be a valid email address",
		},
		{
			name:   "missing internship",
			mutate: func(b *builder.ApplicationBuilder) { b.WithInternshipID("  ") },
			errIs:  commands.ErrInvalidApplicant,
		},
		{
			name:   "malformed coupon",
			mutate: func(b *builder.ApplicationBuilder) { b.WithCouponCode("x") },
			errIs:  commands.ErrInvalidCouponCode,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			in := builder.NewApplicationBuilder().With(c.mutate).BuildInput()

			result, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)

			s.Nil(result)
			s.Require().Error(err)
			testutil.AssertIs(s.T(), err, c.errIs)
			if c.userMsg != "" {
				s.Equal(c.userMsg, errs.UserMessage(err, ""))
			}
			s.Zero(s.uow.Calls)
		})
	}
}

func (s *CheckoutUseCaseTestSuite) TestSubmitApplication_PaymentRequired() {
	ctx := context.Background()
	in := builder.NewApplicationBuilder().WithCouponCode("save20").BuildInput()
	order := &application.Order{ID: "order_Nx01", Amount: money.FromInt(399), Currency: "INR"}
	discount := money.FromInt(100)

	var claimed *application.Attempt
	s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound)
	s.attempts.EXPECT().Claim(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, a *application.Attempt) error {
			claimed = a
			return nil
		})
	s.client.EXPECT().SubmitApplication(gomock.Any(), s.sess, variant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ session.Session, _ internship.Variant, form shared.ApplicationForm) (*shared.SubmitOutcome, error) {
			s.Require().NotNil(form.CouponCode)
			s.Equal("SAVE20", *form.CouponCode)
			s.Equal("resume.pdf", form.Resume.Filename)
			return &shared.SubmitOutcome{
				Kind:           shared.SubmitPaymentRequired,
				ApplicationID:  "app-501",
				Message:        "Proceed to payment",
				Order:          order,
				DiscountAmount: &discount,
			}, nil
		})
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(context.Context, any, shared.AttemptKey) (*application.Attempt, error) {
			return claimed, nil
		})
	s.attempts.EXPECT().Save(gomock.Any(), nil, gomock.Any()).Return(nil)
	s.expectWidget(*order)

	result, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)

	s.Require().NoError(err)
	s.Equal(shared.SubmitPaymentRequired, result.Kind)
	s.Equal(application.StatusPaymentPending, result.Status)
	s.Require().NotNil(result.Checkout)
	s.Equal(int64(39900), result.Checkout.Options.Amount)
	s.Equal("order_Nx01", result.Checkout.Options.OrderID)
	s.Equal("Asha Verma", result.Checkout.Options.Prefill.Name)
	s.Nil(result.Snapshot)

	s.Equal("app-501", claimed.ApplicationID())
	s.Equal("order_Nx01", claimed.Order().ID)
}

func (s *CheckoutUseCaseTestSuite) TestSubmitApplication_EnrolledWithoutPayment() {
	for _, kind := range []shared.SubmitKind{shared.SubmitEnrolledByCode, shared.SubmitEnrolledFree} {
		s.Run(string(kind), func() {
			ctx := context.Background()
			in := builder.NewApplicationBuilder().BuildInput()
			snap := &enrollment.Snapshot{Enrollments: []enrollment.Enrollment{{ID: "enr-1", InternshipID: "intern-101", Status: enrollment.StatusActive}}}

			var claimed *application.Attempt
			s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(&enrollment.Snapshot{}, nil)
			s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound)
			s.attempts.EXPECT().Claim(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, a *application.Attempt) error {
					claimed = a
					return nil
				})
			s.client.EXPECT().SubmitApplication(gomock.Any(), s.sess, variant, gomock.Any()).
				Return(&shared.SubmitOutcome{Kind: kind, ApplicationID: "app-777", Message: "Enrolled"}, nil)
			s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).
				DoAndReturn(func(context.Context, any, shared.AttemptKey) (*application.Attempt, error) {
					return claimed, nil
				})
			s.attempts.EXPECT().Save(gomock.Any(), nil, gomock.Any()).Return(nil)
			s.refresher.EXPECT().Refresh(gomock.Any(), s.sess, variant).Return(snap, nil).Times(1)

			result, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)

			s.Require().NoError(err)
			s.Equal(kind, result.Kind)
			s.Equal(application.StatusEnrolled, result.Status)
			s.Nil(result.Checkout)
			s.Same(snap, result.Snapshot)
		})
	}
}

func (s *CheckoutUseCaseTestSuite) TestSubmitApplication_Conflicts() {
	ctx := context.Background()
	in := builder.NewApplicationBuilder().BuildInput()

	s.Run("already enrolled per snapshot", func() {
		s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(&enrollment.Snapshot{
			Enrollments: []enrollment.Enrollment{{InternshipID: "intern-101", Status: enrollment.StatusActive}},
		}, nil)

		_, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)
		testutil.AssertIs(s.T(), err, commands.ErrAlreadyEnrolled)
	})

	s.Run("concurrent claim", func() {
		s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound)
		s.attempts.EXPECT().Claim(gomock.Any(), nil, gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)
		testutil.AssertIs(s.T(), err, commands.ErrSubmissionInProgress)
	})

	s.Run("fresh claim held by another request", func() {
		held := builder.NewAttemptBuilder().WithClaimedAt(s.clock.Now().Add(-10 * time.Second)).BuildDomain()
		s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(held, nil)

		_, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)
		testutil.AssertIs(s.T(), err, commands.ErrSubmissionInProgress)
	})

	s.Run("payment already pending", func() {
		pending := builder.NewAttemptBuilder().AsPaymentPending().BuildDomain()
		s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(pending, nil)

		_, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)
		testutil.AssertIs(s.T(), err, commands.ErrPaymentPending)
	})

	s.Run("payment taken but never confirmed", func() {
		completed := builder.NewAttemptBuilder().AsPaymentCompleted().BuildDomain()
		s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(completed, nil)

		_, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)
		testutil.AssertIs(s.T(), err, commands.ErrAwaitingConfirmation)
	})

	s.Run("enrolled locally", func() {
		enrolled := builder.NewAttemptBuilder().AsEnrolled().BuildDomain()
		s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(enrolled, nil)

		_, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)
		testutil.AssertIs(s.T(), err, commands.ErrAlreadyEnrolled)
	})
}

func (s *CheckoutUseCaseTestSuite) TestSubmitApplication_StaleClaimIsTakenOver() {
	ctx := context.Background()
	in := builder.NewApplicationBuilder().BuildInput()
	stale := builder.NewAttemptBuilder().WithClaimedAt(s.clock.Now().Add(-time.Hour)).BuildDomain()

	s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(stale, nil).Times(2)
	s.attempts.EXPECT().Save(gomock.Any(), nil, stale).Return(nil).Times(2)
	s.client.EXPECT().SubmitApplication(gomock.Any(), s.sess, variant, gomock.Any()).
		Return(&shared.SubmitOutcome{Kind: shared.SubmitEnrolledFree, ApplicationID: "app-9"}, nil)
	s.refresher.EXPECT().Refresh(gomock.Any(), s.sess, variant).Return(nil, errs.ErrUpstreamUnavailable)

	result, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)

	s.Require().NoError(err)
	s.Equal(application.StatusEnrolled, result.Status)
	s.Nil(result.Snapshot)
	s.Equal(s.clock.Now(), stale.ClaimedAt())
}

func (s *CheckoutUseCaseTestSuite) TestSubmitApplication_UpstreamRejectionReleasesClaim() {
	ctx := context.Background()
	in := builder.NewApplicationBuilder().BuildInput()
	rejection := &infra.UpstreamError{Status: 400, Message: "Applications for this internship are closed"}

	s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound)
	s.attempts.EXPECT().Claim(gomock.Any(), nil, gomock.Any()).Return(nil)
	s.client.EXPECT().SubmitApplication(gomock.Any(), s.sess, variant, gomock.Any()).Return(nil, rejection).Times(1)
	s.attempts.EXPECT().Release(gomock.Any(), nil, shared.AttemptKey{
		UserID: s.sess.UserID(), Variant: variant, InternshipID: "intern-101",
	}).Return(nil)

	result, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)

	s.Nil(result)
	up, ok := infra.AsUpstream(err)
	s.Require().True(ok)
	s.Equal("Applications for this internship are closed", up.Message)
}

func (s *CheckoutUseCaseTestSuite) TestSubmitApplication_WidgetUnavailable() {
	ctx := context.Background()
	in := builder.NewApplicationBuilder().BuildInput()
	order := &application.Order{ID: "order_Nx01", Amount: money.FromInt(499), Currency: "INR"}

	var claimed *application.Attempt
	s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound)
	s.attempts.EXPECT().Claim(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, a *application.Attempt) error {
			claimed = a
			return nil
		})
	s.client.EXPECT().SubmitApplication(gomock.Any(), s.sess, variant, gomock.Any()).
		Return(&shared.SubmitOutcome{Kind: shared.SubmitPaymentRequired, ApplicationID: "app-501", Order: order}, nil)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(context.Context, any, shared.AttemptKey) (*application.Attempt, error) {
			return claimed, nil
		})
	s.attempts.EXPECT().Save(gomock.Any(), nil, gomock.Any()).Return(nil)
	s.widget.EXPECT().Ensure(gomock.Any()).Return(errs.Mark(errors.New("probe: 503"), errs.ErrCheckoutUnavailable))

	_, err := s.uc.SubmitApplication(ctx, s.sess, variant, in)

	testutil.AssertIs(s.T(), err, errs.ErrCheckoutUnavailable)
	s.Contains(errs.UserMessage(err, ""), "resume payment from your dashboard")
	s.Equal(application.StatusPaymentPending, claimed.Status())
}

// ---------------------------------------------------------------------------
// Payment
// ---------------------------------------------------------------------------

func confirmation() payment.Confirmation {
	return payment.Confirmation{OrderID: "order_Nx01", PaymentID: "pay_Qm42", Signature: "sig_abc"}
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_Verified() {
	ctx := context.Background()
	attempt := builder.NewAttemptBuilder().AsPaymentPending().WithCouponCode("SAVE20").BuildDomain()
	snap := &enrollment.Snapshot{Enrollments: []enrollment.Enrollment{{InternshipID: "intern-101", Status: enrollment.StatusActive}}}
	outcome, err := payment.Succeeded(confirmation())
	s.Require().NoError(err)

	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil).Times(2)
	s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).Return(nil).Times(2)
	code := "SAVE20"
	s.client.EXPECT().VerifyPayment(gomock.Any(), s.sess, variant, shared.Verification{
		Confirmation: confirmation(),
		CouponCode:   &code,
	}).Return(nil).Times(1)
	s.refresher.EXPECT().Refresh(gomock.Any(), s.sess, variant).Return(snap, nil).Times(1)

	result, err := s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", outcome)

	s.Require().NoError(err)
	s.Equal(application.StatusEnrolled, result.Status)
	s.Equal("Payment verified. You are enrolled.", result.Message)
	s.Same(snap, result.Snapshot)
	s.Equal(application.StatusEnrolled, attempt.Status())
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_VerificationRejected() {
	ctx := context.Background()
	attempt := builder.NewAttemptBuilder().AsPaymentPending().BuildDomain()
	outcome, err := payment.Succeeded(confirmation())
	s.Require().NoError(err)

	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil).Times(2)
	s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).Return(nil).Times(2)
	s.client.EXPECT().VerifyPayment(gomock.Any(), s.sess, variant, gomock.Any()).
		Return(&infra.UpstreamError{Status: 400, Message: "Payment signature mismatch"}).Times(1)

	result, err := s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", outcome)

	s.Nil(result)
	testutil.AssertIs(s.T(), err, commands.ErrPaymentVerificationFailed)
	s.Equal(
		"We could not verify your payment. If money was deducted, please contact support with payment ID pay_Qm42.",
		errs.UserMessage(err, ""),
	)
	s.Equal(application.StatusVerificationFailed, attempt.Status())
	s.Equal("Payment signature mismatch", attempt.LastError())
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_VerificationTransportFailure() {
	ctx := context.Background()
	attempt := builder.NewAttemptBuilder().AsPaymentPending().BuildDomain()
	outcome, err := payment.Succeeded(confirmation())
	s.Require().NoError(err)

	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil).Times(2)
	s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).Return(nil).Times(2)
	s.client.EXPECT().VerifyPayment(gomock.Any(), s.sess, variant, gomock.Any()).
		Return(errs.Mark(errors.New("connection reset"), errs.ErrUpstreamUnavailable)).Times(1)

	_, err = s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", outcome)

	testutil.AssertIs(s.T(), err, commands.ErrPaymentVerificationFailed)
	testutil.AssertIs(s.T(), err, errs.ErrUpstreamUnavailable)
	s.Equal(application.StatusVerificationFailed, attempt.Status())
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_VerificationFailureNotRecorded() {
	ctx := context.Background()
	attempt := builder.NewAttemptBuilder().AsPaymentPending().BuildDomain()
	outcome, err := payment.Succeeded(confirmation())
	s.Require().NoError(err)

	var saved []application.Status
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil).Times(2)
	gomock.InOrder(
		s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).
			DoAndReturn(func(_ context.Context, _ any, a *application.Attempt) error {
				saved = append(saved, a.Status())
				return nil
			}),
		s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).
			Return(infra.RepositoryError{Kind: infra.KindConflict}),
	)
	s.client.EXPECT().VerifyPayment(gomock.Any(), s.sess, variant, gomock.Any()).
		Return(&infra.UpstreamError{Status: 400, Message: "Payment signature mismatch"}).Times(1)

	result, err := s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", outcome)

	s.Nil(result)
	testutil.AssertIs(s.T(), err, commands.ErrPaymentVerificationFailed)
	s.False(errs.Is(err, commands.ErrDatabaseOperationFailed))
	s.Equal(
		"We could not verify your payment. If money was deducted, please contact support with payment ID pay_Qm42.",
		errs.UserMessage(err, ""),
	)
	s.Equal([]application.Status{application.StatusPaymentCompleted}, saved)

	// the stored row is still payment_completed; a retry must not open a second payment
	stuck := builder.NewAttemptBuilder().AsPaymentCompleted().BuildDomain()
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(stuck, nil)

	_, err = s.uc.ResumeCheckout(ctx, s.sess, variant, "intern-101", shared.Prefill{})

	testutil.AssertIs(s.T(), err, commands.ErrAwaitingConfirmation)
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_OrderMismatch() {
	ctx := context.Background()
	attempt := builder.NewAttemptBuilder().AsPaymentPending().BuildDomain()
	conf := confirmation()
	conf.OrderID = "order_Other"
	outcome, err := payment.Succeeded(conf)
	s.Require().NoError(err)

	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil)

	_, err = s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", outcome)

	testutil.AssertIs(s.T(), err, commands.ErrOrderMismatch)
	s.Equal(application.StatusPaymentPending, attempt.Status())
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_Dismissed() {
	ctx := context.Background()
	attempt := builder.NewAttemptBuilder().AsPaymentPending().BuildDomain()

	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil)
	s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).Return(nil)

	result, err := s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", payment.Dismissed())

	s.Require().NoError(err)
	s.Equal(application.StatusPaymentPending, result.Status)
	s.Equal(application.StatusPaymentPending, attempt.Status())
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_GatewayFailure() {
	ctx := context.Background()
	attempt := builder.NewAttemptBuilder().AsPaymentPending().BuildDomain()
	outcome := payment.Failed(payment.Failure{
		Code:        "BAD_REQUEST_ERROR",
		Description: "Your card was declined",
		Reason:      "payment_failed",
		OrderID:     "order_Nx01",
	})

	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil)
	s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).Return(nil)

	result, err := s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", outcome)

	s.Nil(result)
	testutil.AssertIs(s.T(), err, commands.ErrGatewayFailed)
	var gwErr *commands.GatewayError
	s.Require().ErrorAs(err, &gwErr)
	s.Equal("Your card was declined", gwErr.Description)
	s.Equal(application.StatusPaymentPending, attempt.Status())
	s.Equal("Your card was declined", attempt.LastError())
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_NoAttempt() {
	outcome, err := payment.Succeeded(confirmation())
	s.Require().NoError(err)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound)

	_, err = s.uc.CompletePayment(context.Background(), s.sess, variant, "intern-101", outcome)

	testutil.AssertIs(s.T(), err, commands.ErrAttemptNotFound)
}

func (s *CheckoutUseCaseTestSuite) TestCompletePayment_AlreadyEnrolled() {
	attempt := builder.NewAttemptBuilder().AsEnrolled().BuildDomain()
	outcome, err := payment.Succeeded(confirmation())
	s.Require().NoError(err)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil)

	_, err = s.uc.CompletePayment(context.Background(), s.sess, variant, "intern-101", outcome)

	testutil.AssertIs(s.T(), err, commands.ErrAlreadyEnrolled)
}

func (s *CheckoutUseCaseTestSuite) TestResumeCheckout() {
	ctx := context.Background()
	prefill := shared.Prefill{Name: "Asha Verma"}

	s.Run("after verification failure", func() {
		attempt := builder.NewAttemptBuilder().AsVerificationFailed().BuildDomain()
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil)
		s.attempts.EXPECT().Save(gomock.Any(), nil, attempt).Return(nil)
		s.expectWidget(attempt.Order())

		checkout, err := s.uc.ResumeCheckout(ctx, s.sess, variant, "intern-101", prefill)

		s.Require().NoError(err)
		s.Equal(int64(49900), checkout.Options.Amount)
		s.Equal(application.StatusPaymentPending, attempt.Status())
	})

	s.Run("nothing to pay", func() {
		attempt := builder.NewAttemptBuilder().BuildDomain()
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil)

		_, err := s.uc.ResumeCheckout(ctx, s.sess, variant, "intern-101", prefill)

		testutil.AssertIs(s.T(), err, commands.ErrNoPendingPayment)
	})

	s.Run("already enrolled", func() {
		attempt := builder.NewAttemptBuilder().AsEnrolled().BuildDomain()
		s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(attempt, nil)

		_, err := s.uc.ResumeCheckout(ctx, s.sess, variant, "intern-101", prefill)

		testutil.AssertIs(s.T(), err, commands.ErrAlreadyEnrolled)
	})
}

// ---------------------------------------------------------------------------
// Fixed-amount coupon through enrollment
// ---------------------------------------------------------------------------

func (s *CheckoutUseCaseTestSuite) TestFixedCouponCheckoutThroughEnrollment() {
	ctx := context.Background()
	save1000 := builder.NewCouponBuilder().WithCode("SAVE1000").WithAmountOff(1000).MustBuild()

	// quote
	s.client.EXPECT().GetTarget(gomock.Any(), s.sess, "intern-101").Return(feeTarget(s.T(), 5000), nil)
	s.catalog.EXPECT().Get(gomock.Any()).Return(coupon.NewCatalog([]*coupon.Coupon{save1000}, s.clock.Now()), nil)
	s.client.EXPECT().ValidateCoupon(gomock.Any(), s.sess, variant, shared.CouponCheck{
		Code: "SAVE1000", InternshipID: "intern-101", Amount: money.FromInt(5000),
	}).Return(&shared.CouponVerdict{Valid: true, DiscountAmount: money.FromInt(1000), Message: "Coupon applied"}, nil)

	quote, err := s.uc.ApplyCoupon(ctx, s.sess, variant, "intern-101", "save1000")

	s.Require().NoError(err)
	s.True(quote.Valid)
	s.Equal("1000.00", quote.DiscountAmount.String())
	s.Equal("4000.00", quote.FinalAmount.String())

	// submit with the coupon; the marketplace prices the order
	order := &application.Order{ID: "order_Nx01", Amount: money.FromInt(4000), Currency: "INR"}
	discount := money.FromInt(1000)
	var claimed *application.Attempt
	s.snapshots.EXPECT().Get(gomock.Any(), s.sess.UserID(), variant).Return(nil, errs.ErrCacheMiss)
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).Return(nil, notFound)
	s.attempts.EXPECT().Claim(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, a *application.Attempt) error {
			claimed = a
			return nil
		})
	s.client.EXPECT().SubmitApplication(gomock.Any(), s.sess, variant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ session.Session, _ internship.Variant, form shared.ApplicationForm) (*shared.SubmitOutcome, error) {
			s.Require().NotNil(form.CouponCode)
			s.Equal("SAVE1000", *form.CouponCode)
			return &shared.SubmitOutcome{
				Kind:           shared.SubmitPaymentRequired,
				ApplicationID:  "app-501",
				Order:          order,
				DiscountAmount: &discount,
			}, nil
		})
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(context.Context, any, shared.AttemptKey) (*application.Attempt, error) {
			return claimed, nil
		})
	s.attempts.EXPECT().Save(gomock.Any(), nil, gomock.Any()).Return(nil)
	s.expectWidget(*order)

	submitted, err := s.uc.SubmitApplication(ctx, s.sess, variant,
		builder.NewApplicationBuilder().WithCouponCode("SAVE1000").BuildInput())

	s.Require().NoError(err)
	s.Require().NotNil(submitted.Checkout)
	s.Equal(int64(400000), submitted.Checkout.Options.Amount)
	s.Equal("INR", submitted.Checkout.Options.Currency)

	// widget success
	snap := &enrollment.Snapshot{Enrollments: []enrollment.Enrollment{{ID: "enr-1", InternshipID: "intern-101", Status: enrollment.StatusActive}}}
	code := "SAVE1000"
	s.attempts.EXPECT().FindForUpdate(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(context.Context, any, shared.AttemptKey) (*application.Attempt, error) {
			return claimed, nil
		}).Times(2)
	s.attempts.EXPECT().Save(gomock.Any(), nil, gomock.Any()).Return(nil).Times(2)
	s.client.EXPECT().VerifyPayment(gomock.Any(), s.sess, variant, shared.Verification{
		Confirmation: confirmation(),
		CouponCode:   &code,
	}).Return(nil).Times(1)
	s.refresher.EXPECT().Refresh(gomock.Any(), s.sess, variant).Return(snap, nil)

	outcome, err := payment.Succeeded(confirmation())
	s.Require().NoError(err)
	paid, err := s.uc.CompletePayment(ctx, s.sess, variant, "intern-101", outcome)

	s.Require().NoError(err)
	s.Equal(application.StatusEnrolled, paid.Status)
	s.Require().NotNil(paid.Snapshot)
	s.True(paid.Snapshot.Includes("intern-101"))
	s.Equal(application.StatusEnrolled, claimed.Status())
}
