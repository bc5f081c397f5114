package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/norteboa/barberpos/internal/config"
)

// AvailabilityCache guarda a grade livre por (barbeiro, data).
// Advisory only: entries expire on their own and every booking or status
// change deletes the pair it touched, so staleness is short-lived and
// correctness never depends on a hit.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(cfg *config.Config, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
		ttl: ttl,
	}
}

func (c *AvailabilityCache) Get(ctx context.Context, barberID uint, date string) ([]string, error) {
	data, err := c.client.Get(ctx, availabilityKey(barberID, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, barberID uint, date string, slots []string) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(barberID, date), payload, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uint, date string) error {
	return c.client.Del(ctx, availabilityKey(barberID, date)).Err()
}

func (c *AvailabilityCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func availabilityKey(barberID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", barberID, date)
}
