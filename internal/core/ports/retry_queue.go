package ports

import "fulfillment/internal/core/domain/model/kernel"

// PendingNotification is an order confirmation that could not be delivered
// and is waiting for a retry. Attempts counts delivery attempts made so far.
type PendingNotification struct {
	CustomerID kernel.UUID
	Message    string
	Attempts   int
}

// RetryQueue is the backlog of undelivered notifications. The order workflow
// enqueues failed confirmations; the retry job drains the queue and
// re-enqueues messages that keep failing.
type RetryQueue interface {
	Enqueue(n PendingNotification)

	// Dequeue pops the oldest pending notification.
	// The boolean is false when the queue is empty.
	Dequeue() (PendingNotification, bool)

	// Len returns the number of pending notifications.
	Len() int
}
