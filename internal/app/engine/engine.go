package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	marketdatav1 "github.com/fxdesk/order-engine/internal/domain/marketdata/v1"
	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
	"github.com/fxdesk/order-engine/internal/usecase/notifier"
	"github.com/fxdesk/order-engine/internal/usecase/queue"
	"github.com/fxdesk/order-engine/internal/usecase/stats"
	"github.com/fxdesk/order-engine/internal/usecase/store"
	"github.com/fxdesk/order-engine/internal/usecase/trigger"
	"github.com/fxdesk/order-engine/pkg/errors"
	"github.com/fxdesk/order-engine/pkg/logger"
)

// Engine accepts orders, queues them and executes them against simulated
// market prices on a fixed-period timer. It owns the order store; the
// price source is read-only from its perspective.
type Engine struct {
	// Core components
	store    *store.Store
	queue    *queue.AdmissionQueue
	stats    *stats.Aggregator
	bus      *notifier.Bus
	triggers *trigger.Registry
	prices   marketdatav1.PriceSource
	logger   *logger.Logger
	options  *Options

	// Re-entrancy guard: one batch in flight at a time
	processing atomic.Bool

	// One-shot execution hooks keyed by order id
	execMu        sync.Mutex
	execCallbacks map[string]func(*orderv1.Order)

	// Shutdown coordination
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates an engine with the default options.
func NewEngine(prices marketdatav1.PriceSource, log *logger.Logger) *Engine {
	return NewEngineWithOptions(prices, log, DefaultEngineOptions())
}

// NewEngineWithOptions creates an engine with custom options. The engine is
// an explicitly constructed component, never a process-wide singleton, so
// independent instances can coexist and tests can substitute fakes.
func NewEngineWithOptions(prices marketdatav1.PriceSource, log *logger.Logger, options *Options) *Engine {
	return &Engine{
		store:         store.NewStore(),
		queue:         queue.NewAdmissionQueue(),
		stats:         stats.NewAggregator(options.Weights),
		bus:           notifier.NewBus(log),
		triggers:      trigger.NewRegistry(options.Slippage),
		prices:        prices,
		logger:        log,
		options:       options,
		execCallbacks: make(map[string]func(*orderv1.Order)),
	}
}

// Start launches the batch processing loop.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.runQueueProcessor()

	e.logger.Info("order engine started",
		logger.Field{Key: "tickInterval", Value: e.options.TickInterval.String()},
		logger.Field{Key: "batchSize", Value: e.options.BatchSize},
	)

	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("order engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("order engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runQueueProcessor drives batch draws on a fixed-period ticker.
func (e *Engine) runQueueProcessor() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.options.TickInterval)
	defer ticker.Stop()

	e.logger.Info("queue processor started")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("queue processor shutting down")
			return
		case <-ticker.C:
			if !e.processing.Load() && e.queue.Len() > 0 {
				e.processBatch()
			}
		}
	}
}

// processBatch drains up to BatchSize orders and executes them
// sequentially. Batches never overlap.
func (e *Engine) processBatch() {
	if !e.processing.CompareAndSwap(false, true) {
		return
	}
	defer e.processing.Store(false)

	defer func() {
		if r := recover(); r != nil {
			e.stats.RecordBatchFailure()
			e.logger.Error(errors.NewTracer(fmt.Sprintf("batch processing panicked: %v", r)))
		}
	}()

	batch := e.queue.Drain(e.options.BatchSize)
	if len(batch) == 0 {
		return
	}

	startTime := time.Now()
	for i, orderID := range batch {
		if e.ctx.Err() != nil {
			// shutting down, leave the rest queued
			for _, id := range batch[i:] {
				e.queue.Push(id)
			}
			return
		}
		e.executeOrder(orderID)
	}

	e.stats.RecordBatch(len(batch), time.Since(startTime))
}

// executeOrder runs one order through delay simulation, price lookup and
// trigger evaluation. Failures are isolated per order: the order is
// rejected, the batch carries on.
func (e *Engine) executeOrder(orderID string) {
	defer func() {
		if r := recover(); r != nil {
			e.rejectOrder(orderID, fmt.Sprintf("execution panicked: %v", r))
		}
	}()

	order, ok := e.store.Get(orderID)
	if !ok {
		e.logger.Warn("queued order missing from store", logger.Field{
			Key:   "orderID",
			Value: orderID,
		})
		return
	}

	// A cancellation that lands before the engine reaches an order drained
	// into an in-flight batch wins.
	if order.Status != orderv1.StatusPending {
		return
	}

	if !e.waitExecutionDelay(order) {
		// shutdown mid-delay, the order stays pending in the store
		return
	}

	marketPrice, ok := e.prices.CurrentPrice(order.Symbol)
	if !ok {
		e.rejectOrder(orderID, fmt.Sprintf("no market data for symbol %s", order.Symbol))
		return
	}

	decision := e.triggers.Evaluate(order, marketPrice)
	if !decision.Fill {
		if decision.Standing {
			// standing order, re-evaluate on a later batch
			e.queue.Push(orderID)
		}
		return
	}

	e.fillOrder(orderID, decision.Price)
}

// waitExecutionDelay models exchange latency. Returns false when the
// engine shut down before the delay elapsed.
func (e *Engine) waitExecutionDelay(order *orderv1.Order) bool {
	delay := e.options.executionDelay(order.Kind, order.Priority)
	if delay <= 0 {
		return true
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-e.ctx.Done():
		return false
	}
}

// fillOrder transitions a pending order to filled at the given price.
func (e *Engine) fillOrder(orderID string, executionPrice float64) {
	now := time.Now()

	updated, found, err := e.store.Update(orderID, func(o *orderv1.Order) error {
		if o.Status != orderv1.StatusPending {
			return errors.NewErrorDetails(
				fmt.Sprintf("cannot fill order %s: status is %s", o.ID, o.Status),
				string(errors.OrderInvalidStateError),
				"status",
			)
		}

		o.Status = orderv1.StatusFilled
		o.FilledQuantity = o.Quantity
		o.RemainingQuantity = 0
		o.AvgFillPrice = executionPrice
		o.Fees = o.Quantity * executionPrice * e.options.FeeRate
		o.ExecutedAt = &now
		o.UpdatedAt = now
		return nil
	})
	if !found || err != nil {
		return
	}

	e.stats.OrderExecuted()
	e.fireExecutionCallback(updated)
	e.notifySubscribers()

	e.logger.Info("order filled",
		logger.Field{Key: "orderID", Value: updated.ID},
		logger.Field{Key: "symbol", Value: updated.Symbol},
		logger.Field{Key: "quantity", Value: updated.FilledQuantity},
		logger.Field{Key: "avgFillPrice", Value: updated.AvgFillPrice},
		logger.Field{Key: "fees", Value: updated.Fees},
	)
}

// rejectOrder transitions a pending order to rejected with the reason
// recorded in its metadata.
func (e *Engine) rejectOrder(orderID, reason string) {
	now := time.Now()

	updated, found, err := e.store.Update(orderID, func(o *orderv1.Order) error {
		if o.Status != orderv1.StatusPending {
			return errors.NewErrorDetails(
				fmt.Sprintf("cannot reject order %s: status is %s", o.ID, o.Status),
				string(errors.OrderInvalidStateError),
				"status",
			)
		}

		o.Status = orderv1.StatusRejected
		o.Metadata.RejectionReason = reason
		o.UpdatedAt = now
		return nil
	})
	if !found || err != nil {
		return
	}

	e.stats.OrderRejected()
	e.notifySubscribers()

	e.logger.Warn("order rejected",
		logger.Field{Key: "orderID", Value: updated.ID},
		logger.Field{Key: "symbol", Value: updated.Symbol},
		logger.Field{Key: "reason", Value: reason},
	)
}

// fireExecutionCallback invokes and removes the one-shot hook for an order.
func (e *Engine) fireExecutionCallback(order *orderv1.Order) {
	e.execMu.Lock()
	callback, ok := e.execCallbacks[order.ID]
	if ok {
		delete(e.execCallbacks, order.ID)
	}
	e.execMu.Unlock()

	if ok {
		callback(order)
	}
}

// notifySubscribers fans the full order list out to every subscriber.
func (e *Engine) notifySubscribers() {
	e.bus.Publish(e.store.List(orderv1.Filter{}))
}
