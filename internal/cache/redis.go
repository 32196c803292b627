package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

// RedisCache caches dashboard payloads and directory views. Every operation
// fails open: a cache error degrades to a repository read, never an outage.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
	keyPrefix  string
	metrics    *Metrics
}

// Metrics tracks cache performance.
type Metrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	errors prometheus.Counter
	sets   prometheus.Counter
}

// Config defines the cache connection and behavior.
type Config struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DefaultTTL   time.Duration
	KeyPrefix    string
}

// NewRedisCache connects to Redis and registers cache metrics.
func NewRedisCache(config *Config) (*RedisCache, error) {
	cache := &RedisCache{
		defaultTTL: config.DefaultTTL,
		keyPrefix:  config.KeyPrefix,
		metrics: &Metrics{
			hits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			}),
			misses: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			}),
			errors: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cache_errors_total",
				Help: "Total number of cache errors",
			}),
			sets: promauto.NewCounter(prometheus.CounterOpts{
				Name: "cache_sets_total",
				Help: "Total number of cache sets",
			}),
		},
	}

	cache.client = redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return cache, nil
}

func (c *RedisCache) key(k string) string {
	if c.keyPrefix == "" {
		return k
	}
	return c.keyPrefix + ":" + k
}

// Get reads a JSON value into dest. Returns false on miss or error.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		c.metrics.misses.Inc()
		return false
	}
	if err != nil {
		c.metrics.errors.Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.metrics.errors.Inc()
		return false
	}
	c.metrics.hits.Inc()
	return true
}

// Set writes a JSON value with the default TTL. Errors are counted and
// swallowed.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.metrics.errors.Inc()
		return
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.defaultTTL).Err(); err != nil {
		c.metrics.errors.Inc()
		return
	}
	c.metrics.sets.Inc()
}

// Delete drops a key, typically after a mutation invalidates it.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.metrics.errors.Inc()
	}
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
