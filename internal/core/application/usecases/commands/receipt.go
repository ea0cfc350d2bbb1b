package commands

import "fulfillment/internal/core/domain/model/kernel"

// Receipt summarizes a successfully placed order. The order is only
// considered placed when payment was captured and a rider claimed, so a
// Receipt always carries a rider assignment. Notified reports whether the
// confirmation reached the customer synchronously; an undelivered
// confirmation is queued for retry and does not fail the order.
type Receipt struct {
	Total            int64
	RiderID          kernel.UUID
	RemainingBalance int64
	Notified         bool
}
