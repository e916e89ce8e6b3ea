package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/domain/money"
	"internship-checkout/internal/infra"
	"internship-checkout/internal/infra/db"
	"internship-checkout/internal/pkg/pgconv"
	"internship-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

const attemptColumns = `id, user_id, variant, internship_id, application_id, status,
	coupon_code, discount_amount, order_id, order_amount, order_currency,
	last_error, version, claimed_at, created_at, updated_at`

type AttemptRepository struct {
	logger *slog.Logger
}

func NewAttemptRepository(logger *slog.Logger) *AttemptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttemptRepository{logger: logger}
}

var _ shared.AttemptRepository = (*AttemptRepository)(nil)

func (r *AttemptRepository) Claim(ctx context.Context, tx db.DBTX, a *application.Attempt) error {
	orderID, orderAmount, orderCurrency := orderColumns(a.Order())
	_, err := tx.Exec(ctx, `
		INSERT INTO checkout_attempts (`+attemptColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $14, $15)`,
		pgconv.UUIDToPgtype(a.ID()),
		a.UserID(),
		a.Variant().String(),
		a.InternshipID(),
		pgconv.StringToPgtype(a.ApplicationID()),
		a.Status().String(),
		pgconv.StringPtrToPgtype(a.CouponCode()),
		amountToNumeric(a.DiscountAmount()),
		orderID, orderAmount, orderCurrency,
		pgconv.StringToPgtype(a.LastError()),
		pgconv.TimeToPgtype(a.ClaimedAt()),
		pgconv.TimeToPgtype(a.CreatedAt()),
		pgconv.TimeToPgtype(a.UpdatedAt()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "attempt already claimed", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to claim attempt", err)
	}
	return nil
}

func (r *AttemptRepository) Release(ctx context.Context, tx db.DBTX, key shared.AttemptKey) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM checkout_attempts
		WHERE user_id = $1 AND variant = $2 AND internship_id = $3 AND status = $4`,
		key.UserID, key.Variant.String(), key.InternshipID, application.StatusApplied.String(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to release attempt", err)
	}
	return nil
}

func (r *AttemptRepository) FindForUpdate(ctx context.Context, tx db.DBTX, key shared.AttemptKey) (*application.Attempt, error) {
	return r.findOne(ctx, tx, key, " FOR UPDATE")
}

func (r *AttemptRepository) Find(ctx context.Context, tx db.DBTX, key shared.AttemptKey) (*application.Attempt, error) {
	return r.findOne(ctx, tx, key, "")
}

func (r *AttemptRepository) findOne(ctx context.Context, tx db.DBTX, key shared.AttemptKey, suffix string) (*application.Attempt, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+attemptColumns+`
		FROM checkout_attempts
		WHERE user_id = $1 AND variant = $2 AND internship_id = $3`+suffix,
		key.UserID, key.Variant.String(), key.InternshipID,
	)
	a, err := scanAttempt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "attempt not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find attempt", err)
	}
	return a, nil
}

func (r *AttemptRepository) ListByUser(ctx context.Context, tx db.DBTX, userID string, variant internship.Variant) ([]*application.Attempt, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+attemptColumns+`
		FROM checkout_attempts
		WHERE user_id = $1 AND variant = $2
		ORDER BY created_at DESC`,
		userID, variant.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list attempts", err)
	}
	return r.collect(rows)
}

func (r *AttemptRepository) ListNeedingSupport(ctx context.Context, tx db.DBTX, stalledBefore time.Time, limit int) ([]*application.Attempt, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+attemptColumns+`
		FROM checkout_attempts
		WHERE status = $1 OR (status = $2 AND updated_at < $3)
		ORDER BY updated_at DESC
		LIMIT $4`,
		application.StatusVerificationFailed.String(),
		application.StatusPaymentCompleted.String(),
		pgconv.TimeToPgtype(stalledBefore),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list attempts needing support", err)
	}
	return r.collect(rows)
}

func (r *AttemptRepository) Save(ctx context.Context, tx db.DBTX, a *application.Attempt) error {
	orderID, orderAmount, orderCurrency := orderColumns(a.Order())
	tag, err := tx.Exec(ctx, `
		UPDATE checkout_attempts SET
			application_id = $2,
			status = $3,
			coupon_code = $4,
			discount_amount = $5,
			order_id = $6,
			order_amount = $7,
			order_currency = $8,
			last_error = $9,
			claimed_at = $10,
			updated_at = $11,
			version = version + 1
		WHERE id = $1 AND version = $12`,
		pgconv.UUIDToPgtype(a.ID()),
		pgconv.StringToPgtype(a.ApplicationID()),
		a.Status().String(),
		pgconv.StringPtrToPgtype(a.CouponCode()),
		amountToNumeric(a.DiscountAmount()),
		orderID, orderAmount, orderCurrency,
		pgconv.StringToPgtype(a.LastError()),
		pgconv.TimeToPgtype(a.ClaimedAt()),
		pgconv.TimeToPgtype(a.UpdatedAt()),
		a.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save attempt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict, "attempt was modified concurrently", nil)
	}
	return nil
}

func (r *AttemptRepository) collect(rows pgx.Rows) ([]*application.Attempt, error) {
	defer rows.Close()
	var out []*application.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan attempt", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate attempts", err)
	}
	return out, nil
}

func scanAttempt(row pgx.Row) (*application.Attempt, error) {
	var (
		id                                pgtype.UUID
		userID, variant, internshipID     string
		status                            string
		applicationID, couponCode         pgtype.Text
		discount, orderAmount             pgtype.Numeric
		orderID, orderCurrency, lastError pgtype.Text
		version                           int
		claimedAt, createdAt, updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &userID, &variant, &internshipID, &applicationID, &status,
		&couponCode, &discount, &orderID, &orderAmount, &orderCurrency,
		&lastError, &version, &claimedAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	snap := application.Snapshot{
		ID:             pgconv.UUIDFromPgtype(id),
		UserID:         userID,
		Variant:        internship.Variant(variant),
		InternshipID:   internshipID,
		ApplicationID:  pgconv.StringFromPgtype(applicationID),
		Status:         application.Status(status),
		CouponCode:     pgconv.StringPtrFromPgtype(couponCode),
		DiscountAmount: amountFromNumeric(discount),
		LastError:      pgconv.StringFromPgtype(lastError),
		Version:        version,
		ClaimedAt:      pgconv.TimeFromPgtype(claimedAt),
		CreatedAt:      pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:      pgconv.TimeFromPgtype(updatedAt),
	}
	if orderID.Valid {
		snap.Order = application.Order{ID: orderID.String, Currency: pgconv.StringFromPgtype(orderCurrency)}
		if amt := amountFromNumeric(orderAmount); amt != nil {
			snap.Order.Amount = *amt
		}
	}
	return application.Reconstruct(snap), nil
}

func orderColumns(o application.Order) (pgtype.Text, pgtype.Numeric, pgtype.Text) {
	if o.IsZero() {
		return pgtype.Text{}, pgtype.Numeric{}, pgtype.Text{}
	}
	amount := o.Amount
	return pgconv.StringToPgtype(o.ID), amountToNumeric(&amount), pgconv.StringToPgtype(o.Currency)
}

func amountToNumeric(a *money.Amount) pgtype.Numeric {
	if a == nil {
		return pgtype.Numeric{}
	}
	d := a.Decimal()
	return pgconv.DecimalPtrToNumeric(&d)
}

func amountFromNumeric(n pgtype.Numeric) *money.Amount {
	d := pgconv.DecimalPtrFromNumeric(n)
	if d == nil {
		return nil
	}
	amt, err := money.NewAmount(*d)
	if err != nil {
		return nil
	}
	return &amt
}
