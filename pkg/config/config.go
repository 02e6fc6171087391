package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // .env file is optional

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return nil
}

// Config holds the configuration for the application.
type Config struct {
	EngineConfig `envPrefix:"ENGINE_"` // Execution engine tuning
	KafkaConfig  `envPrefix:"KAFKA_"`  // Market tick feed
	RedisConfig  `envPrefix:"REDIS_"`  // Optional order update bridge
}

// EngineConfig holds the tuning knobs for the execution engine.
type EngineConfig struct {
	TickInterval  string  `env:"TICK_INTERVAL" envDefault:"100ms"`
	BatchSize     int     `env:"BATCH_SIZE" envDefault:"50"`
	FeeRate       float64 `env:"FEE_RATE" envDefault:"0.001"`
	Slippage      float64 `env:"SLIPPAGE" envDefault:"0.0001"`
	RateWeight    float64 `env:"RATE_WEIGHT" envDefault:"0.2"`
	LatencyWeight float64 `env:"LATENCY_WEIGHT" envDefault:"0.1"`
	ErrorWeight   float64 `env:"ERROR_WEIGHT" envDefault:"0.1"`
	DelayScale    float64 `env:"DELAY_SCALE" envDefault:"1.0"`
}

// KafkaConfig holds the configuration for the Kafka tick consumer.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC" envDefault:"market-ticks"`
	GroupID string   `env:"GROUP_ID" envDefault:"order-engine"`
	Brokers []string `env:"BROKER" envDefault:"localhost:9092"`
}

// RedisConfig holds the configuration for the Redis order update publisher.
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addrs    string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	Username string `env:"USERNAME" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	Channel  string `env:"CHANNEL" envDefault:"order-updates"`
}
