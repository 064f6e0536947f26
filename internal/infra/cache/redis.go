package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/pkg/config"
	"pet-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// NewRedisClient returns nil when caching is disabled or the server does not
// answer a ping; callers fall back to shared.NopAvailabilityCache.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, availability cache disabled", "addr", cfg.Addr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

type cachedSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailabilityCache stores one hash per resource and day. Each field is a
// duration in minutes so a booking can drop every variant with one DEL.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ shared.AvailabilityCache = (*AvailabilityCache)(nil)

func NewAvailabilityCache(client *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: cfg.TTL, prefix: cfg.Prefix}
}

func (c *AvailabilityCache) key(resourceID int64, date schedule.LocalDate) string {
	return fmt.Sprintf("%s:avail:%d:%s", c.prefix, resourceID, date)
}

func (c *AvailabilityCache) Get(ctx context.Context, resourceID int64, date schedule.LocalDate, durationMinutes int) ([]schedule.SlotAvailability, bool) {
	raw, err := c.client.HGet(ctx, c.key(resourceID, date), strconv.Itoa(durationMinutes)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "resource_id", resourceID, "date", date.String(), "error", err)
		}
		return nil, false
	}

	var stored []cachedSlot
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("availability cache entry unreadable", "resource_id", resourceID, "date", date.String(), "error", err)
		return nil, false
	}

	slots := make([]schedule.SlotAvailability, 0, len(stored))
	for _, s := range stored {
		t, err := schedule.ParseTime(s.Time)
		if err != nil {
			return nil, false
		}
		slots = append(slots, schedule.SlotAvailability{Time: t, Available: s.Available})
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, resourceID int64, date schedule.LocalDate, durationMinutes int, slots []schedule.SlotAvailability) {
	stored := make([]cachedSlot, len(slots))
	for i, s := range slots {
		stored[i] = cachedSlot{Time: s.Time.String(), Available: s.Available}
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return
	}

	key := c.key(resourceID, date)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(durationMinutes), payload)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("availability cache write failed", "resource_id", resourceID, "date", date.String(), "error", err)
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, resourceID int64, date schedule.LocalDate) {
	if err := c.client.Del(ctx, c.key(resourceID, date)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "resource_id", resourceID, "date", date.String(), "error", err)
	}
}
