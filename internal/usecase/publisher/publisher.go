package publisher

import (
	"context"
	"encoding/json"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
	"github.com/fxdesk/order-engine/pkg/errors"
	"github.com/fxdesk/order-engine/pkg/logger"
	"github.com/fxdesk/order-engine/pkg/redis"
)

// OrderPublisher bridges the in-process notification bus onto a Redis
// pub/sub channel so out-of-process observers can follow order updates.
type OrderPublisher struct {
	channel     string
	logger      *logger.Logger
	redisclient redis.Client
}

// NewOrderPublisher creates a publisher writing to the given channel.
func NewOrderPublisher(redisclient redis.Client, channel string, log *logger.Logger) *OrderPublisher {
	return &OrderPublisher{
		channel:     channel,
		redisclient: redisclient,
		logger:      log,
	}
}

// PublishOrders serializes the order list and publishes it.
func (p *OrderPublisher) PublishOrders(ctx context.Context, orders []*orderv1.Order) error {
	buf, err := json.Marshal(orders)
	if err != nil {
		p.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "channel",
			Value: p.channel,
		})
		return errors.NewTracer("order_update_marshal_error").Wrap(err)
	}

	if _, err := p.redisclient.Publish(ctx, p.channel, buf); err != nil {
		p.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "channel",
			Value: p.channel,
		})
		return errors.NewTracer(string(errors.RedisPublishError)).Wrap(err)
	}

	return nil
}

// Subscriber adapts the publisher into a notification bus callback.
// Publish failures are logged inside PublishOrders and dropped; order
// update delivery is best effort.
func (p *OrderPublisher) Subscriber(ctx context.Context) func(orders []*orderv1.Order) {
	return func(orders []*orderv1.Order) {
		_ = p.PublishOrders(ctx, orders)
	}
}
