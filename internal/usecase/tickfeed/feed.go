package tickfeed

import (
	"context"
	"sync"
	"time"

	marketdatav1 "github.com/fxdesk/order-engine/internal/domain/marketdata/v1"
	"github.com/fxdesk/order-engine/pkg/logger"
)

// Feed maintains the last observed price per symbol from a tick reader.
// It implements the marketdatav1.PriceSource interface the engine reads.
type Feed struct {
	mu     sync.RWMutex
	prices map[string]float64
	reader marketdatav1.TickReader
	logger *logger.Logger
}

// NewFeed creates a feed backed by the given tick reader.
func NewFeed(reader marketdatav1.TickReader, log *logger.Logger) *Feed {
	return &Feed{
		prices: make(map[string]float64),
		reader: reader,
		logger: log,
	}
}

// CurrentPrice returns the latest price for symbol, and false when no tick
// for it has been seen yet.
func (f *Feed) CurrentPrice(symbol string) (float64, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	price, ok := f.prices[symbol]
	return price, ok
}

// Apply records a single tick. Exposed for tests and in-process feeds.
func (f *Feed) Apply(tick marketdatav1.Tick) {
	if tick.Symbol == "" || tick.Price <= 0 {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.prices[tick.Symbol] = tick.Price
}

// Run consumes ticks until ctx is done. Read failures back off briefly and
// keep the loop alive.
func (f *Feed) Run(ctx context.Context) {
	f.logger.Info("tick feed started")

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("tick feed shutting down")
			if err := f.reader.Close(); err != nil {
				f.logger.Error(err, logger.Field{Key: "action", Value: "close_tick_reader"})
			}
			return
		default:
			tick, err := f.reader.ReadTick(ctx)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				f.logger.ErrorContext(ctx, err, logger.Field{
					Key:   "action",
					Value: "read_tick",
				})
				time.Sleep(100 * time.Millisecond)
				continue
			}

			f.Apply(tick)
		}
	}
}
