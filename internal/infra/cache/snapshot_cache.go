// Package cache keeps recently fetched campaign snapshots in Redis so repeat
// detail views within the TTL skip the catalog round trip.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

// Snapshots are locale-specific: the catalog localizes names and captions, so
// the key carries both.
func key(id int64, locale string) string {
	return fmt.Sprintf("campaign:%d:snapshot:%s", id, locale)
}

// Get returns (nil, nil) on a miss.
func (c *SnapshotCache) Get(ctx context.Context, id int64, locale string) (*campaign.Snapshot, error) {
	val, err := c.rdb.Get(ctx, key(id, locale)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "read snapshot cache")
	}

	var snap campaign.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		// A corrupt entry behaves like a miss; the fetch path overwrites it.
		return nil, nil
	}
	return &snap, nil
}

func (c *SnapshotCache) Set(ctx context.Context, locale string, snap *campaign.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errs.Wrap(err, "marshal snapshot")
	}
	if err := c.rdb.Set(ctx, key(snap.ID, locale), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write snapshot cache")
	}
	return nil
}
