package marketdatav1

import (
	"context"
	"time"
)

// Tick represents a single price update for a symbol.
type Tick struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceSource exposes the last known market price per symbol.
// The engine only ever reads from it.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=marketdatav1_mock
type PriceSource interface {
	// CurrentPrice returns the latest price for symbol, and false when
	// no quote has been seen for it.
	CurrentPrice(symbol string) (float64, bool)
}

// TickReader reads price ticks from the market data transport.
type TickReader interface {
	// ReadTick blocks until the next tick arrives or ctx is done.
	ReadTick(ctx context.Context) (Tick, error)
	// Close closes the reader.
	Close() error
}
