package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
	"github.com/fxdesk/order-engine/internal/usecase/stats"
	"github.com/fxdesk/order-engine/pkg/config"
)

func engineConfigForTest() config.EngineConfig {
	return config.EngineConfig{
		TickInterval:  "100ms",
		BatchSize:     50,
		FeeRate:       0.001,
		Slippage:      0.0001,
		RateWeight:    0.2,
		LatencyWeight: 0.1,
		ErrorWeight:   0.1,
		DelayScale:    1.0,
	}
}

func TestExecutionDelay(t *testing.T) {
	options := DefaultEngineOptions()

	testCases := []struct {
		name     string
		kind     orderv1.Kind
		priority orderv1.Priority
		expected time.Duration
	}{
		{name: "market normal", kind: orderv1.KindMarket, priority: orderv1.PriorityNormal, expected: 50 * time.Millisecond},
		{name: "market urgent halves", kind: orderv1.KindMarket, priority: orderv1.PriorityUrgent, expected: 25 * time.Millisecond},
		{name: "limit low stretches", kind: orderv1.KindLimit, priority: orderv1.PriorityLow, expected: 150 * time.Millisecond},
		{name: "stop high", kind: orderv1.KindStop, priority: orderv1.PriorityHigh, expected: 56 * time.Millisecond},
		{name: "ioc is the fastest kind", kind: orderv1.KindImmediateOrCancel, priority: orderv1.PriorityNormal, expected: 25 * time.Millisecond},
		{name: "unknown kind falls back to default", kind: orderv1.Kind("exotic"), priority: orderv1.PriorityNormal, expected: 100 * time.Millisecond},
		{name: "unknown priority falls back to normal", kind: orderv1.KindMarket, priority: orderv1.Priority("extreme"), expected: 50 * time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, options.executionDelay(tc.kind, tc.priority))
		})
	}
}

func TestExecutionDelayScale(t *testing.T) {
	options := DefaultEngineOptions()
	options.DelayScale = 0

	assert.Equal(t, time.Duration(0), options.executionDelay(orderv1.KindMarket, orderv1.PriorityNormal))

	options.DelayScale = 2
	assert.Equal(t, 100*time.Millisecond, options.executionDelay(orderv1.KindMarket, orderv1.PriorityNormal))
}

func TestOptionsFromConfig(t *testing.T) {
	options, err := OptionsFromConfig(engineConfigForTest())
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, options.TickInterval)
	assert.Equal(t, 50, options.BatchSize)
	assert.Equal(t, 0.001, options.FeeRate)
	assert.Equal(t, 0.0001, options.Slippage)
	assert.Equal(t, stats.Weights{Rate: 0.2, Latency: 0.1, Error: 0.1}, options.Weights)
	assert.Equal(t, 1.0, options.DelayScale)
}

func TestOptionsFromConfigRejectsBadInterval(t *testing.T) {
	cfg := engineConfigForTest()
	cfg.TickInterval = "not-a-duration"

	_, err := OptionsFromConfig(cfg)
	assert.Error(t, err)
}
