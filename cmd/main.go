package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/fxdesk/order-engine/internal/app/engine"
	"github.com/fxdesk/order-engine/internal/usecase/publisher"
	"github.com/fxdesk/order-engine/internal/usecase/tickfeed"
	"github.com/fxdesk/order-engine/pkg/config"
	"github.com/fxdesk/order-engine/pkg/logger"
	"github.com/fxdesk/order-engine/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Market tick feed from Kafka
	reader := tickfeed.NewReader(cfg.KafkaConfig, log)
	feed := tickfeed.NewFeed(reader, log)
	go feed.Run(ctx)

	// Execution engine
	options, err := app.OptionsFromConfig(cfg.EngineConfig)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "parse_engine_options"})
		return
	}

	engine := app.NewEngineWithOptions(feed, log, options)

	// Optional order update bridge to Redis pub/sub
	if cfg.RedisConfig.Enabled {
		redisConfig := redis.DefaultConfig()
		redisConfig.Addrs = []string{cfg.RedisConfig.Addrs}
		redisConfig.Password = cfg.RedisConfig.Password
		redisConfig.Username = cfg.RedisConfig.Username
		redisConfig.DB = cfg.RedisConfig.DB

		rclient := redis.NewClient(log, redisConfig)
		if err := rclient.Connect(ctx); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "connect_redis"})
			return
		}
		defer func() {
			if err := rclient.Disconnect(context.Background()); err != nil {
				log.Error(err, logger.Field{Key: "action", Value: "disconnect_redis"})
			}
		}()

		orderPublisher := publisher.NewOrderPublisher(rclient, cfg.RedisConfig.Channel, log)
		engine.Subscribe(orderPublisher.Subscriber(ctx))
	}

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "start_engine"})
		return
	}

	log.Info("order engine service started")

	sig := <-sigChan
	log.Info("received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "stop_engine"})
	}

	log.Info("order engine shutdown complete")
}
