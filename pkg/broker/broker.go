// Package broker provides the Redis-backed coordination layer: durable
// priority queues, pub/sub channels, atomic counters, and keyed locks.
package broker

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Well-known durable queue names.
const (
	QueueDefault     = "default"
	QueueAgentTasks  = "agent_tasks"
	QueueSystemTasks = "system_tasks"
)

// KnownQueues lists every durable queue the stats sampler tracks.
var KnownQueues = []string{QueueDefault, QueueAgentTasks, QueueSystemTasks}

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadConfigFromEnv loads broker configuration from environment variables.
func LoadConfigFromEnv() Config {
	db, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	return Config{
		Addr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Client wraps a Redis connection with the queue, pub/sub, counter and lock
// primitives the runtime needs. All methods suspend on I/O and honor ctx.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	return &Client{rdb: rdb}, nil
}

// NewClientFromRedis wraps an existing Redis client (useful for testing).
func NewClientFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Available reports whether the broker currently answers pings. Dispatch
// uses this to decide whether to degrade DISTRIBUTED mode to LOCAL.
func (c *Client) Available(ctx context.Context) bool {
	return c.rdb.Ping(ctx).Err() == nil
}

// Incr atomically increments a named counter and returns the new value.
func (c *Client) Incr(ctx context.Context, name string) (int64, error) {
	v, err := c.rdb.Incr(ctx, "counter:"+name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return v, nil
}

// Counter returns the current value of a named counter (0 when unset).
func (c *Client) Counter(ctx context.Context, name string) (int64, error) {
	v, err := c.rdb.Get(ctx, "counter:"+name).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return v, nil
}

// Close releases the underlying Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
