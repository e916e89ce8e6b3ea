package shared

import (
	"context"
	"time"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/infra/db"
)

type AttemptKey struct {
	UserID       string
	Variant      internship.Variant
	InternshipID string
}

type AttemptRepository interface {
	// Claim inserts a fresh attempt; it returns an infra KindDuplicateKey error when one exists.
	Claim(ctx context.Context, tx db.DBTX, attempt *application.Attempt) error
	Release(ctx context.Context, tx db.DBTX, key AttemptKey) error
	FindForUpdate(ctx context.Context, tx db.DBTX, key AttemptKey) (*application.Attempt, error)
	Find(ctx context.Context, tx db.DBTX, key AttemptKey) (*application.Attempt, error)
	ListByUser(ctx context.Context, tx db.DBTX, userID string, variant internship.Variant) ([]*application.Attempt, error)
	// ListNeedingSupport returns verification failures and attempts left in
	// payment_completed since before stalledBefore, most recently updated first.
	ListNeedingSupport(ctx context.Context, tx db.DBTX, stalledBefore time.Time, limit int) ([]*application.Attempt, error)
	// Save writes the attempt if its version is unchanged and bumps the version.
	Save(ctx context.Context, tx db.DBTX, attempt *application.Attempt) error
}

func KeyOf(a *application.Attempt) AttemptKey {
	return AttemptKey{UserID: a.UserID(), Variant: a.Variant(), InternshipID: a.InternshipID()}
}
