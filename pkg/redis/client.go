package redis

import (
	"context"
	"time"

	"github.com/fxdesk/order-engine/pkg/errors"
	"github.com/fxdesk/order-engine/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type client struct {
	logger  *logger.Logger
	config  *Config
	cmdable *redis.Client
}

// NewClient creates a new Redis client with the provided logger and configuration.
func NewClient(logger *logger.Logger, config *Config) Client {
	return &client{
		logger: logger,
		config: config,
	}
}

func (c *client) Connect(ctx context.Context) error {
	if c.config == nil {
		return errors.NewErrorDetails("Redis config is nil", string(errors.RedisConfigError), "connect")
	}

	if len(c.config.Addrs) == 0 {
		return errors.NewErrorDetails("Redis addresses are empty", string(errors.RedisConfigError), "connect")
	}

	if c.config.ConnectTimeout <= 0 {
		return errors.NewErrorDetails("Invalid Redis connect timeout", string(errors.RedisConfigError), "connect")
	}

	if c.config.PoolSize <= 0 {
		return errors.NewErrorDetails("Invalid Redis pool size", string(errors.RedisConfigError), "connect")
	}

	c.cmdable = redis.NewClient(&redis.Options{
		Addr:         c.config.Addrs[0],
		Username:     c.config.Username,
		Password:     c.config.Password,
		DB:           c.config.DB,
		MaxRetries:   c.config.MaxRetries,
		DialTimeout:  c.config.ConnectTimeout,
		ReadTimeout:  c.config.ConnectTimeout,
		WriteTimeout: c.config.ConnectTimeout,
		PoolSize:     c.config.PoolSize,
	})

	return c.cmdable.Ping(ctx).Err()
}

func (c *client) Disconnect(ctx context.Context) error {
	if c.cmdable == nil {
		return errors.NewErrorDetails("Redis client is not connected", string(errors.RedisDisconnectionError), "disconnect")
	}
	return c.cmdable.Close()
}

func (c *client) Ping(ctx context.Context) error {
	if err := c.cmdable.Ping(ctx).Err(); err != nil {
		return errors.NewErrorDetails("Failed to ping Redis", string(errors.RedisPingError), "ping")
	}
	return nil
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.cmdable.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.NewErrorDetails("Failed to get value from Redis", string(errors.GeneralInternalServerError), "get")
	}
	return val, nil
}

func (c *client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if err := c.cmdable.Set(ctx, key, value, expiration).Err(); err != nil {
		return errors.NewErrorDetails("Failed to set value in Redis", string(errors.GeneralInternalServerError), "set")
	}
	return nil
}

func (c *client) Publish(ctx context.Context, channel string, message any) (int64, error) {
	n, err := c.cmdable.Publish(ctx, channel, message).Result()
	if err != nil {
		return 0, errors.NewErrorDetails("Failed to publish message to Redis", string(errors.RedisPublishError), "publish")
	}
	return n, nil
}
