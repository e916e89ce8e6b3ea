package queries

import (
	"context"
	"log/slog"
	"time"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/session"
	"internship-checkout/internal/infra"
	"internship-checkout/internal/infra/db"
	"internship-checkout/internal/pkg/clock"
	"internship-checkout/internal/pkg/config"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

var (
	ErrAttemptNotFound         = errs.New("no application found for this internship")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Refresher re-reads the user's applications and enrollments. It is the only
// thing allowed to replace a stored snapshot.
type Refresher interface {
	Refresh(ctx context.Context, sess session.Session, variant internship.Variant) (*enrollment.Snapshot, error)
}

type CheckoutQueries interface {
	Refresher
	Dashboard(ctx context.Context, sess session.Session, variant internship.Variant) (*DashboardView, error)
	Attempt(ctx context.Context, sess session.Session, variant internship.Variant, internshipID string) (*AttemptView, error)
	VerificationFailures(ctx context.Context, limit int) ([]AttemptView, error)
}

type checkoutQueriesImpl struct {
	client     shared.MarketplaceClient
	snapshots  shared.SnapshotStore
	attempts   shared.AttemptRepository
	uow        shared.UnitOfWork
	clock      clock.Clock
	ttl        time.Duration
	stallAfter time.Duration
	logger     *slog.Logger
}

func NewCheckoutQueries(
	client shared.MarketplaceClient,
	snapshots shared.SnapshotStore,
	attempts shared.AttemptRepository,
	uow shared.UnitOfWork,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		client:     client,
		snapshots:  snapshots,
		attempts:   attempts,
		uow:        uow,
		clock:      clock,
		ttl:        cfg.Checkout.SnapshotTTL,
		stallAfter: cfg.Checkout.StallAfter,
		logger:     logger,
	}
}

func (q *checkoutQueriesImpl) Refresh(ctx context.Context, sess session.Session, variant internship.Variant) (*enrollment.Snapshot, error) {
	var (
		apps []enrollment.ApplicationView
		enrs []enrollment.Enrollment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apps, err = q.client.ListApplications(gctx, sess, variant)
		return err
	})
	g.Go(func() error {
		var err error
		enrs, err = q.client.ListEnrollments(gctx, sess, variant)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &enrollment.Snapshot{
		Applications: apps,
		Enrollments:  enrs,
		RefreshedAt:  q.clock.Now(),
	}

	if err := q.snapshots.Replace(ctx, sess.UserID(), variant, snap, q.ttl); err != nil {
		q.logger.Warn("failed to store snapshot", slog.String("user_id", sess.UserID()), slog.Any("error", err))
	}

	q.reconcile(ctx, sess.UserID(), variant, snap)
	return snap, nil
}

// reconcile moves local attempts to enrolled once the marketplace lists the
// enrollment. Failures are logged; the next refresh tries again.
func (q *checkoutQueriesImpl) reconcile(ctx context.Context, userID string, variant internship.Variant, snap *enrollment.Snapshot) {
	if len(snap.Enrollments) == 0 {
		return
	}

	var local []*application.Attempt
	err := q.uow.WithDB(ctx, func(ctx context.Context, conn db.DBTX) error {
		var err error
		local, err = q.attempts.ListByUser(ctx, conn, userID, variant)
		return err
	})
	if err != nil {
		q.logger.Warn("reconcile: failed to list attempts", slog.String("user_id", userID), slog.Any("error", err))
		return
	}

	now := q.clock.Now()
	for _, a := range local {
		if a.Status().IsTerminal() || !snap.Includes(a.InternshipID()) {
			continue
		}
		from := a.Status()
		if err := a.Apply(application.EventEnrollmentObserved, now); err != nil {
			continue
		}
		err := q.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			return q.attempts.Save(ctx, tx, a)
		})
		if err != nil {
			q.logger.Warn("reconcile: failed to save attempt",
				slog.String("attempt_id", a.ID().String()),
				slog.Any("error", err))
			continue
		}
		q.logger.Info("attempt reconciled from enrollments",
			slog.String("attempt_id", a.ID().String()),
			slog.String("from", from.String()))
	}
}

// Dashboard serves the stored snapshot and only refreshes when there is none.
func (q *checkoutQueriesImpl) Dashboard(ctx context.Context, sess session.Session, variant internship.Variant) (*DashboardView, error) {
	snap, err := q.snapshots.Get(ctx, sess.UserID(), variant)
	if err != nil {
		if !errs.Is(err, errs.ErrCacheMiss) {
			q.logger.Warn("failed to read snapshot", slog.String("user_id", sess.UserID()), slog.Any("error", err))
		}
		snap, err = q.Refresh(ctx, sess, variant)
		if err != nil {
			return nil, err
		}
	}

	var local []*application.Attempt
	err = q.uow.WithDB(ctx, func(ctx context.Context, conn db.DBTX) error {
		var err error
		local, err = q.attempts.ListByUser(ctx, conn, sess.UserID(), variant)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	views := make([]AttemptView, 0, len(local))
	for _, a := range local {
		views = append(views, NewAttemptView(a))
	}
	return &DashboardView{Snapshot: snap, Attempts: views}, nil
}

func (q *checkoutQueriesImpl) Attempt(ctx context.Context, sess session.Session, variant internship.Variant, internshipID string) (*AttemptView, error) {
	var found *application.Attempt
	err := q.uow.WithDB(ctx, func(ctx context.Context, conn db.DBTX) error {
		var err error
		found, err = q.attempts.Find(ctx, conn, shared.AttemptKey{UserID: sess.UserID(), Variant: variant, InternshipID: internshipID})
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	view := NewAttemptView(found)
	return &view, nil
}

// VerificationFailures lists attempts where a payment may have been taken but
// never confirmed, newest first. That covers recorded verification failures and
// attempts stuck in payment_completed longer than the stall threshold.
func (q *checkoutQueriesImpl) VerificationFailures(ctx context.Context, limit int) ([]AttemptView, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var found []*application.Attempt
	err := q.uow.WithDB(ctx, func(ctx context.Context, conn db.DBTX) error {
		var err error
		found, err = q.attempts.ListNeedingSupport(ctx, conn, q.clock.Now().Add(-q.stallAfter), limit)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	views := make([]AttemptView, 0, len(found))
	for _, a := range found {
		views = append(views, NewAttemptView(a))
	}
	return views, nil
}
