package redis

import "time"

// Config holds the connection settings for the Redis client.
type Config struct {
	Addrs          []string
	Username       string
	Password       string
	DB             int
	ConnectTimeout time.Duration
	PoolSize       int
	MaxRetries     int
}

// DefaultConfig returns a Config with sensible defaults for a local standalone instance.
func DefaultConfig() *Config {
	return &Config{
		Addrs:          []string{"localhost:6379"},
		DB:             0,
		ConnectTimeout: 5 * time.Second,
		PoolSize:       10,
		MaxRetries:     3,
	}
}
