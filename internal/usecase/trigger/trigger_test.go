package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
)

const testSlippage = 0.0001

func TestRegistryEvaluate(t *testing.T) {
	registry := NewRegistry(testSlippage)

	testCases := []struct {
		name             string
		order            *orderv1.Order
		marketPrice      float64
		expectedFill     bool
		expectedPrice    float64
		expectedStanding bool
	}{
		{
			name:          "market buy fills with positive slippage",
			order:         &orderv1.Order{Kind: orderv1.KindMarket, Side: orderv1.SideBuy},
			marketPrice:   1.0845,
			expectedFill:  true,
			expectedPrice: 1.0845 + testSlippage,
		},
		{
			name:          "market sell fills with negative slippage",
			order:         &orderv1.Order{Kind: orderv1.KindMarket, Side: orderv1.SideSell},
			marketPrice:   1.0845,
			expectedFill:  true,
			expectedPrice: 1.0845 - testSlippage,
		},
		{
			name:          "limit buy fills when market at or below limit",
			order:         &orderv1.Order{Kind: orderv1.KindLimit, Side: orderv1.SideBuy, Price: 1.0900},
			marketPrice:   1.0850,
			expectedFill:  true,
			expectedPrice: 1.0900,
		},
		{
			name:             "limit buy stands when market above limit",
			order:            &orderv1.Order{Kind: orderv1.KindLimit, Side: orderv1.SideBuy, Price: 1.0800},
			marketPrice:      1.0850,
			expectedFill:     false,
			expectedStanding: true,
		},
		{
			name:          "limit sell fills when market at or above limit",
			order:         &orderv1.Order{Kind: orderv1.KindLimit, Side: orderv1.SideSell, Price: 1.0800},
			marketPrice:   1.0850,
			expectedFill:  true,
			expectedPrice: 1.0800,
		},
		{
			name:             "limit sell stands when market below limit",
			order:            &orderv1.Order{Kind: orderv1.KindLimit, Side: orderv1.SideSell, Price: 1.0900},
			marketPrice:      1.0850,
			expectedFill:     false,
			expectedStanding: true,
		},
		{
			name:         "limit without price never triggers and never stands",
			order:        &orderv1.Order{Kind: orderv1.KindLimit, Side: orderv1.SideBuy},
			marketPrice:  1.0850,
			expectedFill: false,
		},
		{
			name:          "stop buy triggers when market at or above stop",
			order:         &orderv1.Order{Kind: orderv1.KindStop, Side: orderv1.SideBuy, StopPrice: 1.0800},
			marketPrice:   1.0850,
			expectedFill:  true,
			expectedPrice: 1.0850,
		},
		{
			name:             "stop buy stands below stop",
			order:            &orderv1.Order{Kind: orderv1.KindStop, Side: orderv1.SideBuy, StopPrice: 1.0900},
			marketPrice:      1.0850,
			expectedFill:     false,
			expectedStanding: true,
		},
		{
			name:          "stop sell triggers when market at or below stop",
			order:         &orderv1.Order{Kind: orderv1.KindStop, Side: orderv1.SideSell, StopPrice: 1.0900},
			marketPrice:   1.0850,
			expectedFill:  true,
			expectedPrice: 1.0850,
		},
		{
			name:          "stop-limit buy fills when stop crossed and limit holds",
			order:         &orderv1.Order{Kind: orderv1.KindStopLimit, Side: orderv1.SideBuy, StopPrice: 1.0800, Price: 1.0900},
			marketPrice:   1.0850,
			expectedFill:  true,
			expectedPrice: 1.0900,
		},
		{
			name:             "stop-limit buy stands when stop not crossed",
			order:            &orderv1.Order{Kind: orderv1.KindStopLimit, Side: orderv1.SideBuy, StopPrice: 1.0900, Price: 1.0950},
			marketPrice:      1.0850,
			expectedFill:     false,
			expectedStanding: true,
		},
		{
			name:             "stop-limit buy stands when stop crossed but limit violated",
			order:            &orderv1.Order{Kind: orderv1.KindStopLimit, Side: orderv1.SideBuy, StopPrice: 1.0800, Price: 1.0820},
			marketPrice:      1.0850,
			expectedFill:     false,
			expectedStanding: true,
		},
		{
			name:          "stop-limit sell fills when stop crossed and limit holds",
			order:         &orderv1.Order{Kind: orderv1.KindStopLimit, Side: orderv1.SideSell, StopPrice: 1.0900, Price: 1.0800},
			marketPrice:   1.0850,
			expectedFill:  true,
			expectedPrice: 1.0800,
		},
		{
			name:         "iceberg is accepted but never triggers",
			order:        &orderv1.Order{Kind: orderv1.KindIceberg, Side: orderv1.SideBuy, Price: 1.0900},
			marketPrice:  1.0850,
			expectedFill: false,
		},
		{
			name:         "oco is accepted but never triggers",
			order:        &orderv1.Order{Kind: orderv1.KindOCO, Side: orderv1.SideSell},
			marketPrice:  1.0850,
			expectedFill: false,
		},
		{
			name:         "fill-or-kill is accepted but never triggers",
			order:        &orderv1.Order{Kind: orderv1.KindFillOrKill, Side: orderv1.SideBuy},
			marketPrice:  1.0850,
			expectedFill: false,
		},
		{
			name:         "unknown kind never triggers",
			order:        &orderv1.Order{Kind: orderv1.Kind("exotic"), Side: orderv1.SideBuy},
			marketPrice:  1.0850,
			expectedFill: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decision := registry.Evaluate(tc.order, tc.marketPrice)

			assert.Equal(t, tc.expectedFill, decision.Fill)
			assert.Equal(t, tc.expectedStanding, decision.Standing)
			if tc.expectedFill {
				assert.InDelta(t, tc.expectedPrice, decision.Price, 1e-9)
			}
		})
	}
}

func TestStubKindsNeverStand(t *testing.T) {
	registry := NewRegistry(testSlippage)

	for _, kind := range []orderv1.Kind{
		orderv1.KindTrailingStop,
		orderv1.KindOCO,
		orderv1.KindBracket,
		orderv1.KindIceberg,
		orderv1.KindFillOrKill,
		orderv1.KindImmediateOrCancel,
	} {
		decision := registry.Evaluate(&orderv1.Order{Kind: kind, Side: orderv1.SideBuy}, 1.0)
		assert.False(t, decision.Fill, "kind %s", kind)
		assert.False(t, decision.Standing, "kind %s", kind)
	}
}
