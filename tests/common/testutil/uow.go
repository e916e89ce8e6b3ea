//go:build unit || e2e

package testutil

import (
	"context"

	"internship-checkout/internal/infra/db"
)

// InlineUoW runs every unit of work directly with a nil handle; repositories
// are expected to be mocks that ignore it.
type InlineUoW struct {
	Calls int
}

func (u *InlineUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.Calls++
	return fn(ctx, nil)
}

func (u *InlineUoW) WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	return fn(ctx, nil)
}
