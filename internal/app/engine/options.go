package engine

import (
	"time"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
	"github.com/fxdesk/order-engine/internal/usecase/stats"
	"github.com/fxdesk/order-engine/pkg/config"
)

// Options represents configuration options for the Engine.
type Options struct {
	// TickInterval is the fixed period of the batch processing loop,
	// independent of queue depth.
	TickInterval time.Duration
	// BatchSize caps how many orders one tick drains from the queue.
	BatchSize int
	// FeeRate is the flat fee fraction applied to each fill's notional.
	FeeRate float64
	// Slippage is the fixed price adjustment applied to market orders.
	Slippage float64
	// Weights are the smoothing factors for the statistics aggregator.
	Weights stats.Weights
	// DelayScale scales every simulated execution delay. Tests set it to
	// zero to run batches at full speed.
	DelayScale float64
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		TickInterval: 100 * time.Millisecond,
		BatchSize:    50,
		FeeRate:      0.001,
		Slippage:     0.0001,
		Weights:      stats.DefaultWeights(),
		DelayScale:   1.0,
	}
}

// OptionsFromConfig builds engine options from the environment configuration.
func OptionsFromConfig(cfg config.EngineConfig) (*Options, error) {
	interval, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, err
	}

	return &Options{
		TickInterval: interval,
		BatchSize:    cfg.BatchSize,
		FeeRate:      cfg.FeeRate,
		Slippage:     cfg.Slippage,
		Weights: stats.Weights{
			Rate:    cfg.RateWeight,
			Latency: cfg.LatencyWeight,
			Error:   cfg.ErrorWeight,
		},
		DelayScale: cfg.DelayScale,
	}, nil
}

// baseDelays models per-kind exchange latency, market orders fastest,
// composite orders slowest.
var baseDelays = map[orderv1.Kind]time.Duration{
	orderv1.KindMarket:            50 * time.Millisecond,
	orderv1.KindLimit:             100 * time.Millisecond,
	orderv1.KindStop:              80 * time.Millisecond,
	orderv1.KindStopLimit:         120 * time.Millisecond,
	orderv1.KindTrailingStop:      150 * time.Millisecond,
	orderv1.KindOCO:               200 * time.Millisecond,
	orderv1.KindBracket:           250 * time.Millisecond,
	orderv1.KindIceberg:           300 * time.Millisecond,
	orderv1.KindFillOrKill:        30 * time.Millisecond,
	orderv1.KindImmediateOrCancel: 25 * time.Millisecond,
}

const defaultBaseDelay = 100 * time.Millisecond

// priorityMultipliers scale the simulated delay, never the queue position.
var priorityMultipliers = map[orderv1.Priority]float64{
	orderv1.PriorityUrgent: 0.5,
	orderv1.PriorityHigh:   0.7,
	orderv1.PriorityNormal: 1.0,
	orderv1.PriorityLow:    1.5,
}

// executionDelay computes the simulated latency for one order.
func (o *Options) executionDelay(kind orderv1.Kind, priority orderv1.Priority) time.Duration {
	base, ok := baseDelays[kind]
	if !ok {
		base = defaultBaseDelay
	}

	multiplier, ok := priorityMultipliers[priority]
	if !ok {
		multiplier = 1.0
	}

	return time.Duration(float64(base) * multiplier * o.DelayScale)
}
