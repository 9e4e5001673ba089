package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

const (
	trackKeyPrefix  = "track:"
	defaultCacheTTL = 30 * time.Second
)

// TrackingCache caches public tracking lookups in Redis, keyed by the
// normalised (uppercase) tracking number. Entries expire after ttl and are
// deleted eagerly whenever the shipment mutates.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTrackingCache(client *redis.Client, ttl time.Duration) *TrackingCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &TrackingCache{client: client, ttl: ttl}
}

// Get returns the cached shipment, or (nil, nil) on a miss.
func (c *TrackingCache) Get(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	raw, err := c.client.Get(ctx, c.key(trackingNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("tracking cache get: %w", err)
	}

	var s domain.Shipment
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("tracking cache decode: %w", err)
	}
	return &s, nil
}

// Set stores the shipment under its own tracking number.
func (c *TrackingCache) Set(ctx context.Context, s *domain.Shipment) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("tracking cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(s.TrackingNumber), raw, c.ttl).Err()
}

// Invalidate drops the cached entry for the tracking number, if any.
func (c *TrackingCache) Invalidate(ctx context.Context, trackingNumber string) error {
	return c.client.Del(ctx, c.key(trackingNumber)).Err()
}

func (c *TrackingCache) key(trackingNumber string) string {
	return trackKeyPrefix + trackingNumber
}
