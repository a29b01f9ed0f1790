package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel-itinerary-service/internal/metrics"
	"travel-itinerary-service/internal/platform/obs"
	"travel-itinerary-service/internal/ports"

	redis "github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "itinerary:distance:"

// RedisDistanceCache stores legs in Redis, one hash per origin.
// Hash fields are destinations and values are JSON-encoded results.
// Entries expire with the origin hash after TTL; zero TTL keeps them forever.
type RedisDistanceCache struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisDistanceCache(rdb redis.UniversalClient, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{rdb: rdb, prefix: defaultRedisPrefix, ttl: ttl}
}

// NewRedisDistanceCacheFromURL parses a redis:// URL and connects lazily.
func NewRedisDistanceCacheFromURL(url string, ttl time.Duration) (*RedisDistanceCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis distance cache: parse url: %w", err)
	}
	return NewRedisDistanceCache(redis.NewClient(opt), ttl), nil
}

type redisLeg struct {
	Meters  int `json:"m"`
	Seconds int `json:"s"`
}

func (c *RedisDistanceCache) key(origin string) string { return c.prefix + origin }

func (c *RedisDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.cache.redis.GetMany")(&err)

	if c.rdb == nil {
		return nil, errors.New("redis distance cache: client is nil")
	}
	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	uniq := uniqueKeys(destinations)
	if len(uniq) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	vals, err := c.rdb.HMGet(ctx, c.key(origin), uniq...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: hmget %q: %w", origin, err)
	}

	out := make(map[string]ports.DistanceResult, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var leg redisLeg
		if err := json.Unmarshal([]byte(s), &leg); err != nil {
			return nil, fmt.Errorf("get distance cache: decode %q -> %q: %w", origin, uniq[i], err)
		}
		out[uniq[i]] = ports.DistanceResult{DistanceMeters: leg.Meters, DurationSeconds: leg.Seconds}
	}

	metrics.ObserveCache("distance_redis", len(out), len(uniq))
	return out, nil
}

func (c *RedisDistanceCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.DistanceResult,
) error {
	if c.rdb == nil {
		return errors.New("redis distance cache: client is nil")
	}
	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}
	if len(results) == 0 {
		return nil
	}

	fields := make(map[string]any, len(results))
	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return errors.New("insert distance cache: empty destination key")
		}
		b, err := json.Marshal(redisLeg{Meters: r.DistanceMeters, Seconds: r.DurationSeconds})
		if err != nil {
			return fmt.Errorf("insert distance cache dest=%q: %w", dest, err)
		}
		fields[dest] = string(b)
	}

	key := c.key(origin)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, fields)
	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert distance cache origin=%q: %w", origin, err)
	}
	return nil
}

func (c *RedisDistanceCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

var _ ports.DistanceCache = (*RedisDistanceCache)(nil)
