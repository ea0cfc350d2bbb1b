package commands

import (
	"errors"
	"fmt"
)

// ErrItemNotOnMenu is returned when a cart references an item the restaurant
// does not price. The whole order is aborted; nothing is charged.
var ErrItemNotOnMenu = errors.New("item is not on the restaurant menu")

// FailureKind classifies why an order could not be placed. The kind is
// sufficient for a caller to decide whether a retry makes sense.
type FailureKind int

const (
	// FailureOther covers unmodeled failures.
	FailureOther FailureKind = iota
	// FailureNoCart: the customer never added anything to a cart.
	FailureNoCart
	// FailureUnknownRestaurant: the restaurant id is not in the catalog.
	FailureUnknownRestaurant
	// FailureItemNotOnMenu: a cart item is missing from the restaurant menu.
	FailureItemNotOnMenu
	// FailureNoPaymentAccount: the customer has no payment account attached.
	FailureNoPaymentAccount
	// FailureInsufficientFunds: the account balance does not cover the total.
	FailureInsufficientFunds
	// FailureNoRiderAvailable: no rider was assignable; any captured payment
	// has been refunded.
	FailureNoRiderAvailable
	// FailureNoNotificationChannel: the customer has no notification channel
	// attached. Non-fatal for a placed order; used for reporting only.
	FailureNoNotificationChannel
	// FailureNotificationDelivery: the confirmation could not be delivered.
	// Non-fatal for a placed order; the message is queued for retry.
	FailureNotificationDelivery
	// FailureCompensation: a compensating refund itself failed. Money is
	// committed with no service rendered and no automatic recovery; this
	// requires operator attention.
	FailureCompensation
)

func failureKindStrings() map[FailureKind]string {
	return map[FailureKind]string{
		FailureOther:                 "Other",
		FailureNoCart:                "NoCart",
		FailureUnknownRestaurant:     "UnknownRestaurant",
		FailureItemNotOnMenu:         "ItemNotOnMenu",
		FailureNoPaymentAccount:      "NoPaymentAccount",
		FailureInsufficientFunds:     "InsufficientFunds",
		FailureNoRiderAvailable:      "NoRiderAvailable",
		FailureNoNotificationChannel: "NoNotificationChannel",
		FailureNotificationDelivery:  "NotificationDeliveryFailed",
		FailureCompensation:          "CompensationFailed",
	}
}

// String returns the name of the failure kind.
func (k FailureKind) String() string {
	if s, ok := failureKindStrings()[k]; ok {
		return s
	}
	return "Other"
}

// OrderFailure is the tagged failure returned by PlaceOrder. It carries the
// classification and wraps the underlying cause, so callers can switch on
// Kind or match sentinels with errors.Is.
type OrderFailure struct {
	kind  FailureKind
	cause error
}

// NewOrderFailure creates a failure of the given kind wrapping cause.
func NewOrderFailure(kind FailureKind, cause error) *OrderFailure {
	return &OrderFailure{
		kind:  kind,
		cause: cause,
	}
}

// Kind returns the failure classification.
func (f *OrderFailure) Kind() FailureKind {
	return f.kind
}

func (f *OrderFailure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("place order failed: %s (cause: %s)", f.kind, f.cause)
	}
	return fmt.Sprintf("place order failed: %s", f.kind)
}

func (f *OrderFailure) Unwrap() error {
	return f.cause
}

// FailureKindOf extracts the failure classification from an error.
// Errors that are not an OrderFailure classify as FailureOther.
func FailureKindOf(err error) FailureKind {
	var failure *OrderFailure
	if errors.As(err, &failure) {
		return failure.Kind()
	}
	return FailureOther
}
