package queue

import "sync"

// AdmissionQueue is a FIFO buffer of order ids awaiting execution.
// Priority never reorders the queue; it only scales the per-order
// simulated delay during execution.
type AdmissionQueue struct {
	mu  sync.Mutex
	ids []string
}

// NewAdmissionQueue creates an empty admission queue.
func NewAdmissionQueue() *AdmissionQueue {
	return &AdmissionQueue{}
}

// Push appends an order id to the back of the queue.
func (q *AdmissionQueue) Push(orderID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ids = append(q.ids, orderID)
}

// Drain removes and returns up to max ids from the front of the queue
// in submission order.
func (q *AdmissionQueue) Drain(max int) []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if max <= 0 || len(q.ids) == 0 {
		return nil
	}

	n := max
	if n > len(q.ids) {
		n = len(q.ids)
	}

	batch := make([]string, n)
	copy(batch, q.ids[:n])
	q.ids = q.ids[n:]

	return batch
}

// Len returns the number of queued ids.
func (q *AdmissionQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ids)
}
