package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"toolshed/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisAvailabilityCache stores the availability projection per tool and day.
// Keys are scoped per tool so a write to any of the tool's reservations can
// drop all of its cached days with one DEL.
type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) shared.AvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(toolID int64) string {
	return fmt.Sprintf("tool_avail:%d", toolID)
}

func dayField(day time.Time) string {
	return day.Format("2006-01-02")
}

func (c *RedisAvailabilityCache) GetStatus(ctx context.Context, toolID int64, day time.Time) (string, bool) {
	status, err := c.client.HGet(ctx, availabilityKey(toolID), dayField(day)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "tool_id", toolID, "error", err.Error())
		}
		return "", false
	}
	return status, true
}

func (c *RedisAvailabilityCache) SetStatus(ctx context.Context, toolID int64, day time.Time, status string) {
	key := availabilityKey(toolID)
	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, dayField(day), status)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("availability cache write failed", "tool_id", toolID, "error", err.Error())
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, toolID int64) {
	if err := c.client.Del(ctx, availabilityKey(toolID)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "tool_id", toolID, "error", err.Error())
	}
}

// NoopAvailabilityCache is used when Redis is not configured.
type NoopAvailabilityCache struct{}

func NewNoopAvailabilityCache() shared.AvailabilityCache {
	return NoopAvailabilityCache{}
}

func (NoopAvailabilityCache) GetStatus(context.Context, int64, time.Time) (string, bool) {
	return "", false
}
func (NoopAvailabilityCache) SetStatus(context.Context, int64, time.Time, string) {}
func (NoopAvailabilityCache) Invalidate(context.Context, int64)                   {}
