package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"internship-checkout/internal/domain/coupon"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const catalogKey = keyPrefix + "coupons"

type CatalogStore struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewCatalogStore(rdb *redis.Client, logger *slog.Logger) *CatalogStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogStore{rdb: rdb, logger: logger}
}

var _ shared.CouponCatalogCache = (*CatalogStore)(nil)

type couponRecord struct {
	Code         string     `json:"code"`
	AmountOff    *float64   `json:"amountOff,omitempty"`
	PercentOff   *float64   `json:"percentOff,omitempty"`
	InternshipID *string    `json:"internshipId,omitempty"`
	UsageLimit   int        `json:"usageLimit"`
	UsedCount    int        `json:"usedCount"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Active       bool       `json:"active"`
}

type catalogRecord struct {
	FetchedAt time.Time      `json:"fetchedAt"`
	Coupons   []couponRecord `json:"coupons"`
	Unparsed  []string       `json:"unparsed,omitempty"`
}

func (s *CatalogStore) Get(ctx context.Context) (*coupon.Catalog, error) {
	raw, err := s.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrCacheMiss
		}
		return nil, errs.Wrap(err, "failed to read coupon catalog")
	}

	var rec catalogRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Warn("dropping unreadable coupon catalog", slog.Any("error", err))
		return nil, errs.ErrCacheMiss
	}

	coupons := make([]*coupon.Coupon, 0, len(rec.Coupons))
	unparsed := rec.Unparsed
	for _, r := range rec.Coupons {
		p := coupon.Params{
			Code:         r.Code,
			AmountOff:    r.AmountOff,
			PercentOff:   r.PercentOff,
			InternshipID: r.InternshipID,
			UsageLimit:   r.UsageLimit,
			UsedCount:    r.UsedCount,
			Active:       r.Active,
		}
		if r.ExpiresAt != nil {
			p.ExpiresAt = *r.ExpiresAt
		}
		cp, err := coupon.NewCoupon(p)
		if err != nil {
			unparsed = append(unparsed, r.Code)
			continue
		}
		coupons = append(coupons, cp)
	}
	return coupon.NewCatalog(coupons, rec.FetchedAt).WithUnparsed(unparsed...), nil
}

func (s *CatalogStore) Put(ctx context.Context, catalog *coupon.Catalog, ttl time.Duration) error {
	rec := catalogRecord{FetchedAt: catalog.FetchedAt(), Unparsed: catalog.Unparsed()}
	for _, c := range catalog.Coupons() {
		r := couponRecord{
			Code:         c.Code().String(),
			InternshipID: c.InternshipID(),
			UsageLimit:   c.UsageLimit(),
			UsedCount:    c.UsedCount(),
			Active:       c.Active(),
		}
		if amt := c.Discount().AmountOff(); amt != nil {
			f := amt.Float64()
			r.AmountOff = &f
		}
		if pct := c.Discount().PercentOff(); pct != nil {
			f := pct.InexactFloat64()
			r.PercentOff = &f
		}
		if exp := c.ExpiresAt(); !exp.IsZero() {
			r.ExpiresAt = &exp
		}
		rec.Coupons = append(rec.Coupons, r)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to encode coupon catalog")
	}
	if err := s.rdb.Set(ctx, catalogKey, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store coupon catalog")
	}
	return nil
}
