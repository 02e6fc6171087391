package orderv1

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind represents the execution semantics of an order.
type Kind string

const (
	// KindMarket executes immediately at the prevailing market price.
	KindMarket Kind = "market"
	// KindLimit executes at the limit price or better.
	KindLimit Kind = "limit"
	// KindStop becomes a market order once the stop price is crossed.
	KindStop Kind = "stop"
	// KindStopLimit becomes a limit order once the stop price is crossed.
	KindStopLimit Kind = "stop-limit"
	// KindTrailingStop is a stop order whose trigger follows the market.
	KindTrailingStop Kind = "trailing-stop"
	// KindOCO is a one-cancels-other pair.
	KindOCO Kind = "oco"
	// KindBracket is an entry order with attached take-profit and stop-loss.
	KindBracket Kind = "bracket"
	// KindIceberg exposes only a slice of the full quantity at a time.
	KindIceberg Kind = "iceberg"
	// KindFillOrKill fills completely and immediately or not at all.
	KindFillOrKill Kind = "fill-or-kill"
	// KindImmediateOrCancel fills what it can immediately and cancels the rest.
	KindImmediateOrCancel Kind = "immediate-or-cancel"
)

// Side represents the direction of an order.
type Side string

const (
	// SideBuy represents a buy order.
	SideBuy Side = "buy"
	// SideSell represents a sell order.
	SideSell Side = "sell"
)

// Status represents the lifecycle state of an order.
// Transitions are monotonic: pending is initial, filled/cancelled/rejected
// are terminal. Partial and Expired are reserved for future use.
type Status string

const (
	// StatusPending means the order is waiting for execution.
	StatusPending Status = "pending"
	// StatusPartial means the order is partially filled (reserved).
	StatusPartial Status = "partial"
	// StatusFilled means the order is completely filled.
	StatusFilled Status = "filled"
	// StatusCancelled means the order was cancelled before filling.
	StatusCancelled Status = "cancelled"
	// StatusRejected means execution failed and the order was discarded.
	StatusRejected Status = "rejected"
	// StatusExpired means the order's time-in-force lapsed (reserved).
	StatusExpired Status = "expired"
)

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusFilled || s == StatusCancelled || s == StatusRejected || s == StatusExpired
}

// TimeInForce constrains how long an order remains eligible for execution.
type TimeInForce string

const (
	// TIFGoodTilCancelled keeps the order live until explicitly cancelled.
	TIFGoodTilCancelled TimeInForce = "GTC"
	// TIFImmediateOrCancel cancels whatever cannot fill immediately.
	TIFImmediateOrCancel TimeInForce = "IOC"
	// TIFFillOrKill cancels the order unless it fills completely at once.
	TIFFillOrKill TimeInForce = "FOK"
	// TIFDay keeps the order live for the trading day.
	TIFDay TimeInForce = "DAY"
)

// Priority affects the simulated execution delay of an order, not its
// position in the admission queue.
type Priority string

const (
	// PriorityLow scales the simulated delay up.
	PriorityLow Priority = "low"
	// PriorityNormal leaves the simulated delay unchanged.
	PriorityNormal Priority = "normal"
	// PriorityHigh scales the simulated delay down.
	PriorityHigh Priority = "high"
	// PriorityUrgent scales the simulated delay down the most.
	PriorityUrgent Priority = "urgent"
)

// Source identifies where an order originated.
type Source string

const (
	// SourceManual marks orders placed by a human.
	SourceManual Source = "manual"
	// SourceAlgorithm marks orders placed by a strategy.
	SourceAlgorithm Source = "algorithm"
	// SourceCopyTrading marks orders mirrored from another account.
	SourceCopyTrading Source = "copy-trading"
)

// Metadata carries the optional free-form annotations of an order.
type Metadata struct {
	Strategy           string  `json:"strategy,omitempty"`
	Source             Source  `json:"source,omitempty"`
	RiskLevel          int     `json:"riskLevel,omitempty"`
	MaxSlippage        float64 `json:"maxSlippage,omitempty"`
	Notes              string  `json:"notes,omitempty"`
	CancellationReason string  `json:"cancellationReason,omitempty"`
	RejectionReason    string  `json:"rejectionReason,omitempty"`
}

// Order represents a single order in the engine.
type Order struct {
	ID                string      `json:"id"`
	ClientOrderID     string      `json:"clientOrderID,omitempty"`
	Symbol            string      `json:"symbol"`
	Kind              Kind        `json:"kind"`
	Side              Side        `json:"side"`
	Quantity          float64     `json:"quantity"`
	Price             float64     `json:"price,omitempty"`
	StopPrice         float64     `json:"stopPrice,omitempty"`
	TimeInForce       TimeInForce `json:"timeInForce"`
	Status            Status      `json:"status"`
	FilledQuantity    float64     `json:"filledQuantity"`
	RemainingQuantity float64     `json:"remainingQuantity"`
	AvgFillPrice      float64     `json:"avgFillPrice,omitempty"`
	Fees              float64     `json:"fees"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
	ExecutedAt        *time.Time  `json:"executedAt,omitempty"`
	ParentOrderID     string      `json:"parentOrderID,omitempty"`
	ChildOrderIDs     []string    `json:"childOrderIDs,omitempty"`
	ModificationCount int         `json:"modificationCount"`
	Priority          Priority    `json:"priority"`
	Metadata          Metadata    `json:"metadata"`
}

// NewOrder builds an Order from a submission request, assigning a fresh id
// and stamping creation time. The request must already be validated.
func NewOrder(req SubmitRequest, now time.Time) *Order {
	kind := req.Kind
	if kind == "" {
		kind = KindMarket
	}
	tif := req.TimeInForce
	if tif == "" {
		tif = TIFGoodTilCancelled
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}

	return &Order{
		ID:                ulid.Make().String(),
		ClientOrderID:     req.ClientOrderID,
		Symbol:            req.Symbol,
		Kind:              kind,
		Side:              req.Side,
		Quantity:          req.Quantity,
		Price:             req.Price,
		StopPrice:         req.StopPrice,
		TimeInForce:       tif,
		Status:            StatusPending,
		FilledQuantity:    0,
		RemainingQuantity: req.Quantity,
		Fees:              0,
		CreatedAt:         now,
		UpdatedAt:         now,
		ParentOrderID:     req.ParentOrderID,
		ModificationCount: 0,
		Priority:          priority,
		Metadata:          req.Metadata,
	}
}

// IsBuy checks if the order is a buy order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell checks if the order is a sell order.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}

// Clone returns a copy of the order safe to hand to callers.
func (o *Order) Clone() *Order {
	cp := *o
	if o.ExecutedAt != nil {
		t := *o.ExecutedAt
		cp.ExecutedAt = &t
	}
	if len(o.ChildOrderIDs) > 0 {
		cp.ChildOrderIDs = append([]string(nil), o.ChildOrderIDs...)
	}
	return &cp
}
