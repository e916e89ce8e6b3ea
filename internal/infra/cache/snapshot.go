package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"internship-checkout/internal/domain/enrollment"
	"internship-checkout/internal/domain/internship"
	"internship-checkout/internal/pkg/errs"
	"internship-checkout/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// SnapshotStore keeps the last dashboard snapshot per user and variant.
// Replace overwrites the whole value; nothing is patched in place.
type SnapshotStore struct {
	rdb *redis.Client
}

func NewSnapshotStore(rdb *redis.Client) *SnapshotStore {
	return &SnapshotStore{rdb: rdb}
}

var _ shared.SnapshotStore = (*SnapshotStore)(nil)

func snapshotKey(userID string, variant internship.Variant) string {
	return keyPrefix + "snapshot:" + variant.String() + ":" + userID
}

func (s *SnapshotStore) Get(ctx context.Context, userID string, variant internship.Variant) (*enrollment.Snapshot, error) {
	raw, err := s.rdb.Get(ctx, snapshotKey(userID, variant)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrCacheMiss
		}
		return nil, errs.Wrap(err, "failed to read snapshot")
	}
	var snap enrollment.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errs.ErrCacheMiss
	}
	return &snap, nil
}

func (s *SnapshotStore) Replace(ctx context.Context, userID string, variant internship.Variant, snap *enrollment.Snapshot, ttl time.Duration) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return errs.Wrap(err, "failed to encode snapshot")
	}
	if err := s.rdb.Set(ctx, snapshotKey(userID, variant), raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store snapshot")
	}
	return nil
}
