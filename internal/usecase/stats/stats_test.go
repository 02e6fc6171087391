package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregatorCounters(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	agg.OrderSubmitted()
	agg.OrderSubmitted()
	agg.OrderSubmitted()

	snapshot := agg.Snapshot()
	assert.Equal(t, int64(3), snapshot.TotalOrders)
	assert.Equal(t, int64(3), snapshot.PendingOrders)

	agg.OrderExecuted()
	agg.OrderCancelled()
	agg.OrderRejected()

	snapshot = agg.Snapshot()
	assert.Equal(t, int64(3), snapshot.TotalOrders)
	assert.Equal(t, int64(0), snapshot.PendingOrders)
	assert.Equal(t, int64(1), snapshot.ExecutedOrders)
	assert.Equal(t, int64(1), snapshot.CancelledOrders)
}

func TestAggregatorPendingFlooredAtZero(t *testing.T) {
	agg := NewAggregator(DefaultWeights())

	agg.OrderCancelled()
	agg.OrderExecuted()
	agg.OrderRejected()

	snapshot := agg.Snapshot()
	assert.Equal(t, int64(0), snapshot.PendingOrders)
}

func TestProcessingRateConvergence(t *testing.T) {
	agg := NewAggregator(Weights{Rate: 0.2, Latency: 0.1, Error: 0.1})

	// 10 orders in 1s is a rate of 10/s; each sample folds in with weight 0.2
	agg.RecordBatch(10, time.Second)
	assert.InDelta(t, 2.0, agg.Snapshot().QueueProcessingRate, 1e-9)

	agg.RecordBatch(10, time.Second)
	assert.InDelta(t, 3.6, agg.Snapshot().QueueProcessingRate, 1e-9)

	// repeated identical samples converge on the sample value
	for i := 0; i < 200; i++ {
		agg.RecordBatch(10, time.Second)
	}
	assert.InDelta(t, 10.0, agg.Snapshot().QueueProcessingRate, 1e-6)
}

func TestAverageExecutionTimeConvergence(t *testing.T) {
	agg := NewAggregator(Weights{Rate: 0.2, Latency: 0.1, Error: 0.1})

	// 1000ms over 10 orders is 100ms per order
	agg.RecordBatch(10, time.Second)
	assert.InDelta(t, 10.0, agg.Snapshot().AverageExecutionTime, 1e-9)

	agg.RecordBatch(10, time.Second)
	assert.InDelta(t, 19.0, agg.Snapshot().AverageExecutionTime, 1e-9)

	for i := 0; i < 500; i++ {
		agg.RecordBatch(10, time.Second)
	}
	assert.InDelta(t, 100.0, agg.Snapshot().AverageExecutionTime, 1e-4)
}

func TestErrorRateNudgedTowardOne(t *testing.T) {
	agg := NewAggregator(Weights{Rate: 0.2, Latency: 0.1, Error: 0.1})

	assert.InDelta(t, 0.0, agg.Snapshot().ErrorRate, 1e-9)

	agg.RecordBatchFailure()
	assert.InDelta(t, 0.1, agg.Snapshot().ErrorRate, 1e-9)

	agg.RecordBatchFailure()
	assert.InDelta(t, 0.19, agg.Snapshot().ErrorRate, 1e-9)

	for i := 0; i < 500; i++ {
		agg.RecordBatchFailure()
	}
	rate := agg.Snapshot().ErrorRate
	assert.Greater(t, rate, 0.99)
	assert.LessOrEqual(t, rate, 1.0)
}

func TestRecordBatchIgnoresEmptyBatches(t *testing.T) {
	agg := NewAggregator(DefaultWeights())
	before := agg.Snapshot()

	agg.RecordBatch(0, time.Second)
	agg.RecordBatch(-5, time.Second)

	after := agg.Snapshot()
	assert.Equal(t, before.QueueProcessingRate, after.QueueProcessingRate)
	assert.Equal(t, before.AverageExecutionTime, after.AverageExecutionTime)
	assert.Equal(t, before.LastProcessedTime, after.LastProcessedTime)
}

func TestRecordBatchAdvancesLastProcessedTime(t *testing.T) {
	agg := NewAggregator(DefaultWeights())
	before := agg.Snapshot().LastProcessedTime

	time.Sleep(5 * time.Millisecond)
	agg.RecordBatch(1, 10*time.Millisecond)

	assert.True(t, agg.Snapshot().LastProcessedTime.After(before))
}
