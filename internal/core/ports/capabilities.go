package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrInsufficientFunds is returned by PaymentAccount.Pay when the balance
	// does not cover the amount. The balance is left unchanged.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrDeliveryFailed is returned by NotificationChannel.Notify when the
	// message could not be delivered.
	ErrDeliveryFailed = errors.New("notification delivery failed")
)

// PaymentAccount is the payment capability attached to a customer.
// Implementations own their balance; Pay is the only capture operation and
// is not automatically reversible. The orchestrator issues Refund as an
// explicit compensating credit when a captured payment must be returned.
type PaymentAccount interface {
	// Pay captures amount and returns the new balance.
	// Fails with ErrInsufficientFunds, leaving the balance unchanged.
	Pay(ctx context.Context, amount int64) (int64, error)

	// Refund credits amount back and returns the new balance.
	Refund(ctx context.Context, amount int64) (int64, error)
}

// NotificationChannel is the notification capability attached to a customer.
// Notify is fire-and-forget with a success or failure result; failures are
// reported with ErrDeliveryFailed.
type NotificationChannel interface {
	Notify(ctx context.Context, message string) error
}

// CartStore is the cart capability attached to a customer: per-item quantity
// bookkeeping. Present entries always have quantity >= 1; removing the last
// unit deletes the entry.
type CartStore interface {
	// Add increments the quantity of the item, creating the entry at 1.
	Add(itemID kernel.UUID)

	// Remove decrements the quantity of the item, deleting the entry when it
	// would drop to zero. Removing an absent item is a no-op.
	Remove(itemID kernel.UUID)

	// Items returns a snapshot of the cart contents.
	Items() map[kernel.UUID]int

	// Clear empties the cart.
	Clear()
}
