package orderv1

import (
	"time"

	"github.com/fxdesk/order-engine/pkg/errors"
)

// SubmitRequest represents a request to place a new order.
// Symbol, Side and Quantity are mandatory; everything else defaults.
type SubmitRequest struct {
	ClientOrderID string      `json:"clientOrderID,omitempty"`
	Symbol        string      `json:"symbol"`
	Kind          Kind        `json:"kind,omitempty"`
	Side          Side        `json:"side"`
	Quantity      float64     `json:"quantity"`
	Price         float64     `json:"price,omitempty"`
	StopPrice     float64     `json:"stopPrice,omitempty"`
	TimeInForce   TimeInForce `json:"timeInForce,omitempty"`
	Priority      Priority    `json:"priority,omitempty"`
	ParentOrderID string      `json:"parentOrderID,omitempty"`
	Metadata      Metadata    `json:"metadata,omitempty"`
}

// Validate checks the mandatory submission fields.
func (r SubmitRequest) Validate() error {
	if r.Symbol == "" {
		return errors.NewErrorDetails("order symbol is required", string(errors.OrderValidationError), "symbol")
	}
	if r.Side != SideBuy && r.Side != SideSell {
		return errors.NewErrorDetails("order side must be buy or sell", string(errors.OrderValidationError), "side")
	}
	if r.Quantity <= 0 {
		return errors.NewErrorDetails("order quantity must be positive", string(errors.OrderValidationError), "quantity")
	}
	return nil
}

// Modification represents an in-place change to a pending order.
// Nil fields are left untouched.
type Modification struct {
	Quantity    *float64     `json:"quantity,omitempty"`
	Price       *float64     `json:"price,omitempty"`
	StopPrice   *float64     `json:"stopPrice,omitempty"`
	TimeInForce *TimeInForce `json:"timeInForce,omitempty"`
	Priority    *Priority    `json:"priority,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
}

// Validate checks that provided modification fields keep the order well formed.
func (m Modification) Validate() error {
	if m.Quantity != nil && *m.Quantity <= 0 {
		return errors.NewErrorDetails("order quantity must be positive", string(errors.OrderValidationError), "quantity")
	}
	if m.Price != nil && *m.Price <= 0 {
		return errors.NewErrorDetails("order price must be positive", string(errors.OrderValidationError), "price")
	}
	if m.StopPrice != nil && *m.StopPrice <= 0 {
		return errors.NewErrorDetails("order stop price must be positive", string(errors.OrderValidationError), "stopPrice")
	}
	return nil
}

// Filter narrows the order listing. Zero values mean "no constraint".
type Filter struct {
	Symbol   string
	Status   Status
	Side     Side
	Kind     Kind
	DateFrom time.Time
	DateTo   time.Time
}

// Matches reports whether the order satisfies every set predicate.
func (f Filter) Matches(o *Order) bool {
	if f.Symbol != "" && o.Symbol != f.Symbol {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Side != "" && o.Side != f.Side {
		return false
	}
	if f.Kind != "" && o.Kind != f.Kind {
		return false
	}
	if !f.DateFrom.IsZero() && o.CreatedAt.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && o.CreatedAt.After(f.DateTo) {
		return false
	}
	return true
}

// BulkCancelCriteria selects pending orders for bulk cancellation.
type BulkCancelCriteria struct {
	Symbol    string
	Side      Side
	OlderThan time.Time
}

// Summary groups orders for dashboard views.
type Summary struct {
	ByStatus       map[Status][]*Order `json:"byStatus"`
	BySymbol       map[string][]*Order `json:"bySymbol"`
	RecentActivity []*Order            `json:"recentActivity"`
}
