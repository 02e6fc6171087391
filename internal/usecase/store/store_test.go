package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
)

func newTestOrder(symbol string, side orderv1.Side, createdAt time.Time) *orderv1.Order {
	order := orderv1.NewOrder(orderv1.SubmitRequest{
		Symbol:   symbol,
		Side:     side,
		Quantity: 1.0,
	}, createdAt)
	return order
}

func TestStorePutAndGet(t *testing.T) {
	s := NewStore()
	order := newTestOrder("EURUSD", orderv1.SideBuy, time.Now())

	s.Put(order)

	got, ok := s.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "EURUSD", got.Symbol)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore()
	order := newTestOrder("EURUSD", orderv1.SideBuy, time.Now())
	s.Put(order)

	got, ok := s.Get(order.ID)
	require.True(t, ok)

	// mutating the copy must not leak back into the store
	got.Status = orderv1.StatusFilled
	got.Quantity = 999

	fresh, ok := s.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, orderv1.StatusPending, fresh.Status)
	assert.Equal(t, 1.0, fresh.Quantity)
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore()
	order := newTestOrder("EURUSD", orderv1.SideSell, time.Now())
	s.Put(order)

	updated, found, err := s.Update(order.ID, func(o *orderv1.Order) error {
		o.Status = orderv1.StatusCancelled
		return nil
	})
	require.True(t, found)
	require.NoError(t, err)
	assert.Equal(t, orderv1.StatusCancelled, updated.Status)

	stored, _ := s.Get(order.ID)
	assert.Equal(t, orderv1.StatusCancelled, stored.Status)
}

func TestStoreUpdateUnknownOrder(t *testing.T) {
	s := NewStore()

	_, found, err := s.Update("missing", func(o *orderv1.Order) error {
		t.Fatal("update fn must not run for unknown orders")
		return nil
	})
	assert.False(t, found)
	assert.NoError(t, err)
}

func TestStoreUpdatePropagatesError(t *testing.T) {
	s := NewStore()
	order := newTestOrder("EURUSD", orderv1.SideBuy, time.Now())
	s.Put(order)

	wantErr := fmt.Errorf("invalid transition")
	_, found, err := s.Update(order.ID, func(o *orderv1.Order) error {
		return wantErr
	})
	assert.True(t, found)
	assert.Equal(t, wantErr, err)
}

func TestStoreListNewestFirst(t *testing.T) {
	s := NewStore()
	base := time.Now()

	oldest := newTestOrder("EURUSD", orderv1.SideBuy, base.Add(-2*time.Hour))
	middle := newTestOrder("GBPUSD", orderv1.SideSell, base.Add(-time.Hour))
	newest := newTestOrder("EURUSD", orderv1.SideBuy, base)
	s.Put(oldest)
	s.Put(middle)
	s.Put(newest)

	listed := s.List(orderv1.Filter{})
	require.Len(t, listed, 3)
	assert.Equal(t, newest.ID, listed[0].ID)
	assert.Equal(t, middle.ID, listed[1].ID)
	assert.Equal(t, oldest.ID, listed[2].ID)
}

func TestStoreListFiltered(t *testing.T) {
	s := NewStore()
	now := time.Now()

	eurBuy := newTestOrder("EURUSD", orderv1.SideBuy, now)
	eurSell := newTestOrder("EURUSD", orderv1.SideSell, now)
	gbpBuy := newTestOrder("GBPUSD", orderv1.SideBuy, now)
	s.Put(eurBuy)
	s.Put(eurSell)
	s.Put(gbpBuy)

	listed := s.List(orderv1.Filter{Symbol: "EURUSD", Side: orderv1.SideBuy})
	require.Len(t, listed, 1)
	assert.Equal(t, eurBuy.ID, listed[0].ID)

	listed = s.List(orderv1.Filter{Symbol: "EURUSD"})
	assert.Len(t, listed, 2)

	listed = s.List(orderv1.Filter{Status: orderv1.StatusFilled})
	assert.Empty(t, listed)
}

func TestStoreSummary(t *testing.T) {
	s := NewStore()
	now := time.Now()

	for i := 0; i < 25; i++ {
		order := newTestOrder("EURUSD", orderv1.SideBuy, now.Add(time.Duration(i)*time.Second))
		order.UpdatedAt = order.CreatedAt
		if i%2 == 0 {
			order.Symbol = "GBPUSD"
		}
		s.Put(order)
	}

	_, _, err := s.Update(s.List(orderv1.Filter{})[0].ID, func(o *orderv1.Order) error {
		o.Status = orderv1.StatusCancelled
		return nil
	})
	require.NoError(t, err)

	summary := s.Summary()
	assert.Len(t, summary.ByStatus[orderv1.StatusPending], 24)
	assert.Len(t, summary.ByStatus[orderv1.StatusCancelled], 1)
	assert.Len(t, summary.BySymbol["GBPUSD"], 13)
	assert.Len(t, summary.BySymbol["EURUSD"], 12)
	assert.Len(t, summary.RecentActivity, 20)

	// recent activity is ordered by update time descending
	for i := 1; i < len(summary.RecentActivity); i++ {
		assert.False(t, summary.RecentActivity[i].UpdatedAt.After(summary.RecentActivity[i-1].UpdatedAt))
	}
}

func TestStoreInvariantFilledPlusRemaining(t *testing.T) {
	s := NewStore()
	order := newTestOrder("EURUSD", orderv1.SideBuy, time.Now())
	s.Put(order)

	check := func() {
		got, ok := s.Get(order.ID)
		require.True(t, ok)
		if got.Status != orderv1.StatusCancelled && got.Status != orderv1.StatusRejected {
			assert.Equal(t, got.Quantity, got.FilledQuantity+got.RemainingQuantity)
		}
	}

	check()

	_, _, err := s.Update(order.ID, func(o *orderv1.Order) error {
		o.Status = orderv1.StatusFilled
		o.FilledQuantity = o.Quantity
		o.RemainingQuantity = 0
		return nil
	})
	require.NoError(t, err)

	check()
}
