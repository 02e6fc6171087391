package tickfeed

import (
	"context"
	"encoding/json"

	marketdatav1 "github.com/fxdesk/order-engine/internal/domain/marketdata/v1"
	"github.com/fxdesk/order-engine/pkg/config"
	"github.com/fxdesk/order-engine/pkg/errors"
	"github.com/fxdesk/order-engine/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Reader consumes price ticks from the market data topic.
// It implements the marketdatav1.TickReader interface.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      *logger.Logger
}

// NewReader creates a Kafka reader for the tick topic.
func NewReader(cfg config.KafkaConfig, log *logger.Logger) *Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return &Reader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

// ReadTick reads the next message from the topic and decodes it as a Tick.
func (r *Reader) ReadTick(ctx context.Context) (marketdatav1.Tick, error) {
	msg, err := r.kafkaReader.ReadMessage(ctx)
	if err != nil {
		return marketdatav1.Tick{}, errors.NewTracer(string(errors.TickReadError)).Wrap(err)
	}

	var tick marketdatav1.Tick
	if err := json.Unmarshal(msg.Value, &tick); err != nil {
		return marketdatav1.Tick{}, errors.NewTracer(string(errors.TickDecodeError)).Wrap(err)
	}

	r.logger.Debug("tick received",
		logger.Field{Key: "symbol", Value: tick.Symbol},
		logger.Field{Key: "price", Value: tick.Price},
	)

	return tick, nil
}

// Close properly closes the Kafka reader.
func (r *Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logger.Error(errors.TracerFromError(err), logger.Field{
			Key:   "operation",
			Value: "close_tick_reader",
		})
		return err
	}
	return nil
}
