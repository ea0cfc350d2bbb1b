package inmem

import (
	"sync"

	"fulfillment/internal/core/ports"
)

// RetryQueue is a mutex-guarded FIFO backlog of undelivered notifications.
type RetryQueue struct {
	mu      sync.Mutex
	pending []ports.PendingNotification
}

// NewRetryQueue creates an empty queue.
func NewRetryQueue() *RetryQueue {
	return &RetryQueue{}
}

// Enqueue appends a pending notification to the backlog.
func (q *RetryQueue) Enqueue(n ports.PendingNotification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, n)
}

// Dequeue pops the oldest pending notification.
func (q *RetryQueue) Dequeue() (ports.PendingNotification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return ports.PendingNotification{}, false
	}

	n := q.pending[0]
	q.pending = q.pending[1:]
	return n, true
}

// Len returns the number of pending notifications.
func (q *RetryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}
