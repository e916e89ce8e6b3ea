package shared

import (
	"context"
	"time"

	"internship-checkout/internal/domain/coupon"
	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/internship"
)

// CouponCatalogCache holds the advisory coupon list. Get returns errs.ErrCacheMiss when empty.
type CouponCatalogCache interface {
	Get(ctx context.Context) (*coupon.Catalog, error)
	Put(ctx context.Context, catalog *coupon.Catalog, ttl time.Duration) error
}

// SnapshotStore holds the last refreshed applications/enrollments per user and variant.
type SnapshotStore interface {
	Get(ctx context.Context, userID string, variant internship.Variant) (*enrollment.Snapshot, error)
	Replace(ctx context.Context, userID string, variant internship.Variant, snap *enrollment.Snapshot, ttl time.Duration) error
}
