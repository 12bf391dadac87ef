package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"rewind/internal/domain"
)

const keyPrefix = "rewind:timeline:"

// TimelineCache memoizes finished timelines by request fingerprint.
type TimelineCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTimelineCache returns a cache whose entries expire after ttl. A zero
// ttl keeps entries forever.
func NewTimelineCache(rdb *redis.Client, ttl time.Duration) *TimelineCache {
	return &TimelineCache{rdb: rdb, ttl: ttl}
}

func (c *TimelineCache) Get(ctx context.Context, fingerprint string) (*domain.Timeline, bool, error) {
	body, err := c.rdb.Get(ctx, keyPrefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get timeline %s: %w", fingerprint, err)
	}

	var t domain.Timeline
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, false, fmt.Errorf("decode timeline %s: %w", fingerprint, err)
	}
	return &t, true, nil
}

func (c *TimelineCache) Put(ctx context.Context, fingerprint string, timeline *domain.Timeline) error {
	body, err := json.Marshal(timeline)
	if err != nil {
		return fmt.Errorf("encode timeline %s: %w", fingerprint, err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+fingerprint, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("set timeline %s: %w", fingerprint, err)
	}
	return nil
}
