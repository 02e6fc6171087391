package store

import (
	"sort"
	"sync"

	orderv1 "github.com/fxdesk/order-engine/internal/domain/order/v1"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 20

// Store is the authoritative in-memory mapping from order id to order.
// All mutation goes through the engine and the public API; callers only
// ever receive copies.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*orderv1.Order
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{
		orders: make(map[string]*orderv1.Order),
	}
}

// Put inserts or replaces an order.
func (s *Store) Put(order *orderv1.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

// Get returns a copy of the order with the given id.
func (s *Store) Get(orderID string) (*orderv1.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, false
	}
	return order.Clone(), true
}

// Update applies fn to the stored order under the write lock and returns a
// copy of the result. The second return is false when the order is unknown.
func (s *Store) Update(orderID string, fn func(*orderv1.Order) error) (*orderv1.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, false, nil
	}
	if err := fn(order); err != nil {
		return nil, true, err
	}
	return order.Clone(), true, nil
}

// List returns copies of all orders matching the filter, newest first.
func (s *Store) List(filter orderv1.Filter) []*orderv1.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*orderv1.Order
	for _, order := range s.orders {
		if filter.Matches(order) {
			result = append(result, order.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			// ULIDs of equal timestamps still sort by creation order
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Summary groups all orders by status and symbol and returns the most
// recently updated ones for dashboard views.
func (s *Store) Summary() *orderv1.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := &orderv1.Summary{
		ByStatus: make(map[orderv1.Status][]*orderv1.Order),
		BySymbol: make(map[string][]*orderv1.Order),
	}

	var all []*orderv1.Order
	for _, order := range s.orders {
		cp := order.Clone()
		summary.ByStatus[cp.Status] = append(summary.ByStatus[cp.Status], cp)
		summary.BySymbol[cp.Symbol] = append(summary.BySymbol[cp.Symbol], cp)
		all = append(all, cp)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})
	if len(all) > recentActivityLimit {
		all = all[:recentActivityLimit]
	}
	summary.RecentActivity = all

	return summary
}
