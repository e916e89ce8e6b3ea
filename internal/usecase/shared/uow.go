package shared

import (
	"context"

	"internship-checkout/internal/infra/db"
)

// UnitOfWork runs attempt reads and writes against the database.
// Within retries the whole function on serialization failures, so fn must
// not call the marketplace.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
}
