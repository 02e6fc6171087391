package statsv1

import "time"

// QueueStats is a point-in-time snapshot of the engine's processing
// statistics. Rate fields are exponential moving averages.
type QueueStats struct {
	TotalOrders          int64     `json:"totalOrders"`
	PendingOrders        int64     `json:"pendingOrders"`
	ExecutedOrders       int64     `json:"executedOrders"`
	CancelledOrders      int64     `json:"cancelledOrders"`
	AverageExecutionTime float64   `json:"averageExecutionTime"` // milliseconds per order
	QueueProcessingRate  float64   `json:"queueProcessingRate"`  // orders per second
	ErrorRate            float64   `json:"errorRate"`            // in [0, 1]
	LastProcessedTime    time.Time `json:"lastProcessedTime"`
}
