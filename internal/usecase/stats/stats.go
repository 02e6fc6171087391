package stats

import (
	"sync"
	"time"

	statsv1 "github.com/fxdesk/order-engine/internal/domain/stats/v1"
)

// Weights holds the exponential-smoothing factors for the rate fields.
// Each new sample contributes its weight; the running value keeps the rest.
type Weights struct {
	Rate    float64 // processing rate, orders/second
	Latency float64 // average execution time, ms/order
	Error   float64 // error rate, in [0, 1]
}

// DefaultWeights mirror the smoothing constants of the simulator.
func DefaultWeights() Weights {
	return Weights{
		Rate:    0.2,
		Latency: 0.1,
		Error:   0.1,
	}
}

// Aggregator maintains the engine's running counters and smoothed rates.
// It is updated only by the engine at well-defined points.
type Aggregator struct {
	mu      sync.Mutex
	weights Weights
	current statsv1.QueueStats
}

// NewAggregator creates an aggregator with the given smoothing weights.
func NewAggregator(weights Weights) *Aggregator {
	return &Aggregator{
		weights: weights,
		current: statsv1.QueueStats{
			LastProcessedTime: time.Now(),
		},
	}
}

// OrderSubmitted records an accepted submission.
func (a *Aggregator) OrderSubmitted() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current.TotalOrders++
	a.current.PendingOrders++
}

// OrderCancelled records a successful cancellation of a pending order.
func (a *Aggregator) OrderCancelled() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current.CancelledOrders++
	if a.current.PendingOrders > 0 {
		a.current.PendingOrders--
	}
}

// OrderExecuted records a full fill.
func (a *Aggregator) OrderExecuted() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current.ExecutedOrders++
	if a.current.PendingOrders > 0 {
		a.current.PendingOrders--
	}
}

// OrderRejected records an execution-time rejection. Rejected orders leave
// the pending population, so the live pending count stays accurate.
func (a *Aggregator) OrderRejected() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current.PendingOrders > 0 {
		a.current.PendingOrders--
	}
}

// RecordBatch folds a completed batch into the smoothed rate fields.
func (a *Aggregator) RecordBatch(processed int, elapsed time.Duration) {
	if processed <= 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	seconds := elapsed.Seconds()
	if seconds > 0 {
		rate := float64(processed) / seconds
		a.current.QueueProcessingRate = a.current.QueueProcessingRate*(1-a.weights.Rate) + rate*a.weights.Rate
	}

	perOrderMs := float64(elapsed.Milliseconds()) / float64(processed)
	a.current.AverageExecutionTime = a.current.AverageExecutionTime*(1-a.weights.Latency) + perOrderMs*a.weights.Latency

	a.current.LastProcessedTime = time.Now()
}

// RecordBatchFailure nudges the error rate toward 1.
func (a *Aggregator) RecordBatchFailure() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current.ErrorRate = a.current.ErrorRate*(1-a.weights.Error) + a.weights.Error
}

// Snapshot returns a copy of the current statistics.
func (a *Aggregator) Snapshot() statsv1.QueueStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}
