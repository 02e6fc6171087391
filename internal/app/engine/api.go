package engine

import (
	"context"
	"fmt"
	"time"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
	statsv1 "github.com/fxdesk/order-engine/internal/domain/stats/v1"
	"github.com/fxdesk/order-engine/internal/usecase/notifier"
	"github.com/fxdesk/order-engine/pkg/errors"
	"github.com/fxdesk/order-engine/pkg/logger"
)

// SubmitOrder validates the request, stores the new order and enqueues it
// for execution. It never blocks on processing: acceptance does not imply
// execution.
func (e *Engine) SubmitOrder(ctx context.Context, req orderv1.SubmitRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	order := orderv1.NewOrder(req, time.Now())

	e.store.Put(order)
	e.queue.Push(order.ID)
	e.stats.OrderSubmitted()
	e.notifySubscribers()

	e.logger.InfoContext(ctx, "order submitted",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "symbol", Value: order.Symbol},
		logger.Field{Key: "kind", Value: order.Kind},
		logger.Field{Key: "side", Value: order.Side},
		logger.Field{Key: "quantity", Value: order.Quantity},
	)

	return order.ID, nil
}

// CancelOrder cancels a non-terminal order, recording the reason.
func (e *Engine) CancelOrder(ctx context.Context, orderID, reason string) error {
	now := time.Now()

	_, found, err := e.store.Update(orderID, func(o *orderv1.Order) error {
		if o.Status.IsTerminal() {
			return errors.NewErrorDetails(
				fmt.Sprintf("cannot cancel order %s: status is %s", orderID, o.Status),
				string(errors.OrderInvalidStateError),
				"status",
			)
		}

		o.Status = orderv1.StatusCancelled
		o.Metadata.CancellationReason = reason
		o.UpdatedAt = now
		return nil
	})
	if !found {
		return errors.NewErrorDetails(
			fmt.Sprintf("order %s not found", orderID),
			string(errors.OrderNotFoundError),
			"orderID",
		)
	}
	if err != nil {
		return err
	}

	e.stats.OrderCancelled()
	e.notifySubscribers()

	e.logger.InfoContext(ctx, "order cancelled",
		logger.Field{Key: "orderID", Value: orderID},
		logger.Field{Key: "reason", Value: reason},
	)

	return nil
}

// ModifyOrder merges the given modification into a pending order.
func (e *Engine) ModifyOrder(ctx context.Context, orderID string, mod orderv1.Modification) error {
	if err := mod.Validate(); err != nil {
		return err
	}

	now := time.Now()

	updated, found, err := e.store.Update(orderID, func(o *orderv1.Order) error {
		if o.Status != orderv1.StatusPending {
			return errors.NewErrorDetails(
				fmt.Sprintf("cannot modify order %s: status is %s", orderID, o.Status),
				string(errors.OrderInvalidStateError),
				"status",
			)
		}

		if mod.Quantity != nil {
			o.Quantity = *mod.Quantity
			o.RemainingQuantity = *mod.Quantity - o.FilledQuantity
		}
		if mod.Price != nil {
			o.Price = *mod.Price
		}
		if mod.StopPrice != nil {
			o.StopPrice = *mod.StopPrice
		}
		if mod.TimeInForce != nil {
			o.TimeInForce = *mod.TimeInForce
		}
		if mod.Priority != nil {
			o.Priority = *mod.Priority
		}
		if mod.Notes != nil {
			o.Metadata.Notes = *mod.Notes
		}

		o.ModificationCount++
		o.UpdatedAt = now
		return nil
	})
	if !found {
		return errors.NewErrorDetails(
			fmt.Sprintf("order %s not found", orderID),
			string(errors.OrderNotFoundError),
			"orderID",
		)
	}
	if err != nil {
		return err
	}

	e.notifySubscribers()

	e.logger.InfoContext(ctx, "order modified",
		logger.Field{Key: "orderID", Value: orderID},
		logger.Field{Key: "modificationCount", Value: updated.ModificationCount},
	)

	return nil
}

// GetOrder returns a copy of the order, and false when unknown.
func (e *Engine) GetOrder(orderID string) (*orderv1.Order, bool) {
	return e.store.Get(orderID)
}

// GetOrders returns copies of all orders matching the filter, newest first.
func (e *Engine) GetOrders(filter orderv1.Filter) []*orderv1.Order {
	return e.store.List(filter)
}

// CancelOrdersBulk cancels every pending order matching the criteria and
// returns the ids that were actually cancelled. Individual failures are
// logged, not propagated.
func (e *Engine) CancelOrdersBulk(ctx context.Context, criteria orderv1.BulkCancelCriteria) []string {
	matches := e.store.List(orderv1.Filter{
		Symbol: criteria.Symbol,
		Side:   criteria.Side,
		Status: orderv1.StatusPending,
		DateTo: criteria.OlderThan,
	})

	var cancelled []string
	for _, order := range matches {
		if err := e.CancelOrder(ctx, order.ID, "bulk cancellation"); err != nil {
			e.logger.WarnContext(ctx, "bulk cancellation skipped order",
				logger.Field{Key: "orderID", Value: order.ID},
				logger.Field{Key: "error", Value: err.Error()},
			)
			continue
		}
		cancelled = append(cancelled, order.ID)
	}

	e.logger.InfoContext(ctx, "bulk cancellation finished",
		logger.Field{Key: "cancelledCount", Value: len(cancelled)},
	)

	return cancelled
}

// GetQueueStats returns a read-only snapshot of the processing statistics.
func (e *Engine) GetQueueStats() statsv1.QueueStats {
	return e.stats.Snapshot()
}

// Subscribe registers a callback invoked with the full order list on every
// mutation. The returned function deregisters it.
func (e *Engine) Subscribe(callback notifier.Callback) func() {
	return e.bus.Subscribe(callback)
}

// OnOrderExecution registers a one-shot callback fired when the given
// order fills.
func (e *Engine) OnOrderExecution(orderID string, callback func(*orderv1.Order)) {
	e.execMu.Lock()
	defer e.execMu.Unlock()
	e.execCallbacks[orderID] = callback
}

// OrderSummary groups orders by status and symbol for dashboard views.
func (e *Engine) OrderSummary() *orderv1.Summary {
	return e.store.Summary()
}
