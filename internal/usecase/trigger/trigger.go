package trigger

import (
	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
)

// Decision is the outcome of evaluating an order against the market price.
type Decision struct {
	// Fill reports whether the order should execute now.
	Fill bool
	// Price is the execution price when Fill is true.
	Price float64
	// Standing reports whether an unfilled order should go back into the
	// admission queue for re-evaluation on a later batch.
	Standing bool
}

// Strategy decides whether an order of a particular kind should fill at
// the given market price.
type Strategy interface {
	Evaluate(o *orderv1.Order, marketPrice float64) Decision
}

// Registry maps every order kind to its trigger strategy. Market, limit,
// stop and stop-limit have real semantics; the remaining kinds are
// accepted at submission but never trigger (see stub below).
type Registry struct {
	strategies map[orderv1.Kind]Strategy
}

// NewRegistry builds the registry with the given slippage constant applied
// to market orders.
func NewRegistry(slippage float64) *Registry {
	r := &Registry{
		strategies: map[orderv1.Kind]Strategy{
			orderv1.KindMarket:    marketStrategy{slippage: slippage},
			orderv1.KindLimit:     limitStrategy{},
			orderv1.KindStop:      stopStrategy{},
			orderv1.KindStopLimit: stopLimitStrategy{},
		},
	}

	for _, kind := range []orderv1.Kind{
		orderv1.KindTrailingStop,
		orderv1.KindOCO,
		orderv1.KindBracket,
		orderv1.KindIceberg,
		orderv1.KindFillOrKill,
		orderv1.KindImmediateOrCancel,
	} {
		r.strategies[kind] = stub{}
	}

	return r
}

// Evaluate dispatches to the strategy for the order's kind. Unknown kinds
// behave like the stub kinds: accepted, never triggered.
func (r *Registry) Evaluate(o *orderv1.Order, marketPrice float64) Decision {
	strategy, ok := r.strategies[o.Kind]
	if !ok {
		return Decision{}
	}
	return strategy.Evaluate(o, marketPrice)
}

// marketStrategy always fills at the market price shifted by the slippage
// constant, against the taker.
type marketStrategy struct {
	slippage float64
}

func (s marketStrategy) Evaluate(o *orderv1.Order, marketPrice float64) Decision {
	price := marketPrice
	if o.IsBuy() {
		price += s.slippage
	} else {
		price -= s.slippage
	}
	return Decision{Fill: true, Price: price}
}

// limitStrategy fills at the limit price once the market crosses it.
type limitStrategy struct{}

func (limitStrategy) Evaluate(o *orderv1.Order, marketPrice float64) Decision {
	if o.Price <= 0 {
		// no limit price to compare against, the order can never trigger
		return Decision{}
	}

	filled := false
	if o.IsBuy() {
		filled = marketPrice <= o.Price
	} else {
		filled = marketPrice >= o.Price
	}

	return Decision{Fill: filled, Price: o.Price, Standing: !filled}
}

// stopStrategy becomes marketable once the stop price is crossed and fills
// at the market price.
type stopStrategy struct{}

func (stopStrategy) Evaluate(o *orderv1.Order, marketPrice float64) Decision {
	if o.StopPrice <= 0 {
		return Decision{}
	}

	triggered := false
	if o.IsBuy() {
		triggered = marketPrice >= o.StopPrice
	} else {
		triggered = marketPrice <= o.StopPrice
	}

	return Decision{Fill: triggered, Price: marketPrice, Standing: !triggered}
}

// stopLimitStrategy requires the stop condition and the limit condition to
// hold simultaneously, then fills at the limit price.
type stopLimitStrategy struct{}

func (stopLimitStrategy) Evaluate(o *orderv1.Order, marketPrice float64) Decision {
	if o.StopPrice <= 0 || o.Price <= 0 {
		return Decision{}
	}

	stopTriggered := false
	if o.IsBuy() {
		stopTriggered = marketPrice >= o.StopPrice
	} else {
		stopTriggered = marketPrice <= o.StopPrice
	}

	filled := false
	if stopTriggered {
		if o.IsBuy() {
			filled = marketPrice <= o.Price
		} else {
			filled = marketPrice >= o.Price
		}
	}

	return Decision{Fill: filled, Price: o.Price, Standing: !filled}
}

// stub covers the kinds the simulator accepts but does not evaluate:
// trailing-stop, oco, bracket, iceberg, fill-or-kill, immediate-or-cancel.
// They stay pending in the store and are not re-queued.
type stub struct{}

func (stub) Evaluate(*orderv1.Order, float64) Decision {
	return Decision{}
}
