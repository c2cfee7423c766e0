package services

import (
	"context"
	"ecomshop_server/structs"
	"fmt"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService wraps an optional Redis client. When no address is
// configured every operation is a no-op and rate limiting falls back to
// allowing the request.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	cs := &CacheService{
		logger: logger,
		config: cfg,
	}
	if cfg.Cache.Address != "" {
		cs.client = getRedisClient(cfg)
	}
	return cs
}

func getRedisClient(cfg *structs.Config) *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
	})
	return redisClient
}

func (cs *CacheService) Enabled() bool {
	return cs.client != nil
}

func (cs *CacheService) Close() error {
	if cs.client != nil {
		return cs.client.Close()
	}
	return nil
}

// Set sets a key with TTL.
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	if cs.client == nil {
		return nil
	}
	return cs.client.Set(redisCtx, key, value, ttl).Err()
}

// Get retrieves a key. A missing key returns "" with no error.
func (cs *CacheService) Get(key string) (string, error) {
	if cs.client == nil {
		return "", nil
	}
	val, err := cs.client.Get(redisCtx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (cs *CacheService) Delete(key string) error {
	if cs.client == nil {
		return nil
	}
	return cs.client.Del(redisCtx, key).Err()
}

// IncrementRateLimit atomically increments a rate limit counter for an
// IP/endpoint combination, starting the window on first increment. With
// Redis disabled it reports a count of zero so callers never throttle.
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, ttl time.Duration) (int, error) {
	if cs.client == nil {
		return 0, nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)
	val, err := cs.client.Incr(redisCtx, key).Result()
	if err != nil {
		return 0, err
	}

	// Set expiration only on first increment
	if val == 1 {
		if err := cs.client.Expire(redisCtx, key, ttl).Err(); err != nil {
			return int(val), err
		}
	}

	return int(val), nil
}

// Ping tests the Redis connection.
func (cs *CacheService) Ping() error {
	if cs.client == nil {
		return nil
	}
	return cs.client.Ping(redisCtx).Err()
}

// GetConnectionStats returns Redis connection pool statistics.
func (cs *CacheService) GetConnectionStats() map[string]any {
	if cs.client == nil {
		return map[string]any{"enabled": false}
	}

	stats := cs.client.PoolStats()
	return map[string]any{
		"enabled":     true,
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
