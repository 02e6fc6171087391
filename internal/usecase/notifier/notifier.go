package notifier

import (
	"fmt"
	"sync"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
	"github.com/fxdesk/order-engine/pkg/errors"
	"github.com/fxdesk/order-engine/pkg/logger"
)

// Callback receives the full current order list on every mutation.
type Callback func(orders []*orderv1.Order)

type subscriber struct {
	id int64
	fn Callback
}

// Bus fans the order list out to registered subscribers. Delivery is
// synchronous, in subscription order, and best effort: a panicking
// subscriber is logged and skipped, never the rest.
type Bus struct {
	mu     sync.Mutex
	nextID int64
	subs   []subscriber
	logger *logger.Logger
}

// NewBus creates an empty notification bus.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{logger: log}
}

// Subscribe registers a callback and returns its deregistration handle.
func (b *Bus) Subscribe(fn Callback) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the order list to every subscriber.
func (b *Bus) Publish(orders []*orderv1.Order) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		b.deliver(sub, orders)
	}
}

// Len returns the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus) deliver(sub subscriber, orders []*orderv1.Order) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error(errors.NewTracer(fmt.Sprintf("order subscriber panicked: %v", r)),
				logger.Field{Key: "subscriberID", Value: sub.id},
			)
		}
	}()

	sub.fn(orders)
}
