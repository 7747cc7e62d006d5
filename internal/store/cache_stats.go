package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/config"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix  = "gumi:stats:"
	facetsKeyPrefix = "gumi:facets:"
)

// redisClient is the subset of *redis.Client the cache uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisStatsCache stores JSON encoded read models under per-user keys.
type redisStatsCache struct {
	client redisClient
	ttl    time.Duration
	logger *logger.Logger
}

// NewStatsCache connects to Redis. Without an address caching is disabled
// and a no-op cache is returned.
func NewStatsCache(ctx context.Context, cfg config.Redis, log *logger.Logger) (StatsCache, func() error, error) {
	if cfg.Address == "" {
		log.Info().Str("func", "NewStatsCache").Msg("redis address is empty, stats cache disabled")
		return nopStatsCache{}, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewStatsCache").Str("address", cfg.Address).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("func", "NewStatsCache").Msg("connected to redis successfully")

	return newRedisStatsCache(client, cfg.TTL, log), client.Close, nil
}

func newRedisStatsCache(client redisClient, ttl time.Duration, log *logger.Logger) *redisStatsCache {
	return &redisStatsCache{client: client, ttl: ttl, logger: log}
}

func statsKey(userID int64) string  { return statsKeyPrefix + strconv.FormatInt(userID, 10) }
func facetsKey(userID int64) string { return facetsKeyPrefix + strconv.FormatInt(userID, 10) }

func (c *redisStatsCache) GetStats(ctx context.Context, userID int64) (models.StatsBundle, bool, error) {
	var stats models.StatsBundle
	ok, err := c.get(ctx, statsKey(userID), &stats)
	return stats, ok, err
}

func (c *redisStatsCache) SetStats(ctx context.Context, userID int64, stats models.StatsBundle) error {
	return c.set(ctx, statsKey(userID), stats)
}

func (c *redisStatsCache) GetFacets(ctx context.Context, userID int64) (models.FilterFacets, bool, error) {
	var facets models.FilterFacets
	ok, err := c.get(ctx, facetsKey(userID), &facets)
	return facets, ok, err
}

func (c *redisStatsCache) SetFacets(ctx context.Context, userID int64, facets models.FilterFacets) error {
	return c.set(ctx, facetsKey(userID), facets)
}

// Invalidate drops every cached read model of userID.
func (c *redisStatsCache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, statsKey(userID), facetsKey(userID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisStatsCache.Invalidate").
			Int64("user_id", userID).
			Msg("failed to invalidate cache")
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

func (c *redisStatsCache) get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return true, nil
}

func (c *redisStatsCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	return nil
}

// nopStatsCache always misses.
type nopStatsCache struct{}

func (nopStatsCache) GetStats(context.Context, int64) (models.StatsBundle, bool, error) {
	return models.StatsBundle{}, false, nil
}

func (nopStatsCache) SetStats(context.Context, int64, models.StatsBundle) error {
	return nil
}

func (nopStatsCache) GetFacets(context.Context, int64) (models.FilterFacets, bool, error) {
	return models.FilterFacets{}, false, nil
}

func (nopStatsCache) SetFacets(context.Context, int64, models.FilterFacets) error {
	return nil
}

func (nopStatsCache) Invalidate(context.Context, int64) error {
	return nil
}
