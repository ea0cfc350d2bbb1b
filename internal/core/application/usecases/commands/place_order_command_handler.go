package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/core/ports"
)

// PlaceOrderCommandHandler runs the order placement workflow: resolve the
// cart and restaurant, bill the cart against the menu, capture payment,
// claim the nearest rider and confirm to the customer.
//
// The workflow is a sequence of steps with one compensation: when payment
// was captured but no rider could be claimed, the captured amount is
// refunded before the failure is surfaced. Notification failures never fail
// a placed order; undelivered confirmations are queued for retry instead.
//
// All work for one customer runs under that customer's lock, so two
// overlapping orders from the same customer cannot double-bill one cart.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(
//	    customers, restaurants, carts, payments, notifications,
//	    retries, pool, locker, logger,
//	)
//	cmd, _ := NewPlaceOrderCommand(customerID, restaurantID)
//
//	receipt, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Payment captured, rider claimed, cart cleared.
type PlaceOrderCommandHandler struct {
	customers     ports.CustomerDirectory
	restaurants   ports.RestaurantCatalog
	carts         ports.CartRegistry
	payments      ports.PaymentRegistry
	notifications ports.NotificationRegistry
	retries       ports.RetryQueue
	riders        RiderMatcher
	locker        Locker
	logger        *slog.Logger

	capabilityTimeout time.Duration
}

// PlaceOrderOption tunes handler behavior.
type PlaceOrderOption func(*PlaceOrderCommandHandler)

// WithCapabilityTimeout bounds every payment and notification call with a
// per-call deadline. Zero or negative values leave calls unbounded.
func WithCapabilityTimeout(timeout time.Duration) PlaceOrderOption {
	return func(h *PlaceOrderCommandHandler) {
		h.capabilityTimeout = timeout
	}
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	customers ports.CustomerDirectory,
	restaurants ports.RestaurantCatalog,
	carts ports.CartRegistry,
	payments ports.PaymentRegistry,
	notifications ports.NotificationRegistry,
	retries ports.RetryQueue,
	riders RiderMatcher,
	locker Locker,
	logger *slog.Logger,
	opts ...PlaceOrderOption,
) PlaceOrderCommandHandler {
	handler := PlaceOrderCommandHandler{
		customers:     customers,
		restaurants:   restaurants,
		carts:         carts,
		payments:      payments,
		notifications: notifications,
		retries:       retries,
		riders:        riders,
		locker:        locker,
		logger:        logger.With("component", "place_order"),
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle processes the order placement command and returns a Receipt on
// success. On failure it returns an *OrderFailure whose Kind classifies the
// step that failed; after a payment has been captured, any failure path
// refunds it before returning.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return Receipt{}, err
	}

	h.locker.Lock(cmd.CustomerID().String())
	defer h.locker.Unlock(cmd.CustomerID().String())

	cart, err := h.carts.Get(cmd.CustomerID())
	if err != nil {
		return Receipt{}, NewOrderFailure(FailureNoCart, err)
	}

	rest, err := h.restaurants.Get(cmd.RestaurantID())
	if err != nil {
		return Receipt{}, NewOrderFailure(FailureUnknownRestaurant, err)
	}

	cust, err := h.customers.Get(cmd.CustomerID())
	if err != nil {
		return Receipt{}, NewOrderFailure(FailureOther, err)
	}

	total, err := billTotal(cart, rest.Menu())
	if err != nil {
		return Receipt{}, NewOrderFailure(FailureItemNotOnMenu, err)
	}

	account, err := h.payments.Get(cmd.CustomerID())
	if err != nil {
		return Receipt{}, NewOrderFailure(FailureNoPaymentAccount, err)
	}

	balance, err := h.pay(ctx, account, total)
	if err != nil {
		if errors.Is(err, ports.ErrInsufficientFunds) {
			return Receipt{}, NewOrderFailure(FailureInsufficientFunds, err)
		}
		return Receipt{}, NewOrderFailure(FailureOther, err)
	}

	matched, err := h.riders.MatchNearest(cust.Location())
	if err != nil {
		return Receipt{}, h.compensatePayment(ctx, account, total, err)
	}

	message := fmt.Sprintf(
		"Order of ₹%d from %s processed. Rider %s assigned. Balance: ₹%d",
		total, rest.Name(), matched.ID(), balance,
	)
	notified := h.notify(ctx, cmd.CustomerID(), message)

	cart.Clear()

	h.logger.Info("order placed",
		"customer_id", cmd.CustomerID(),
		"restaurant_id", cmd.RestaurantID(),
		"rider_id", matched.ID(),
		"total", total,
		"balance", balance,
		"notified", notified,
	)

	return Receipt{
		Total:            total,
		RiderID:          matched.ID(),
		RemainingBalance: balance,
		Notified:         notified,
	}, nil
}

// billTotal prices every cart line against the menu.
// An item the menu does not price aborts the whole bill.
func billTotal(cart ports.CartStore, menu restaurant.Menu) (int64, error) {
	var total int64
	for itemID, quantity := range cart.Items() {
		price, ok := menu.Price(itemID)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrItemNotOnMenu, itemID)
		}
		total += price * int64(quantity)
	}
	return total, nil
}

// pay captures total from the account under the capability deadline.
func (h *PlaceOrderCommandHandler) pay(
	ctx context.Context, account ports.PaymentAccount, total int64,
) (int64, error) {
	ctx, cancel := h.capabilityContext(ctx)
	defer cancel()

	return account.Pay(ctx, total)
}

// compensatePayment refunds a captured payment after rider matching failed.
// A refund that itself fails leaves money committed with no delivery and is
// escalated as FailureCompensation.
func (h *PlaceOrderCommandHandler) compensatePayment(
	ctx context.Context, account ports.PaymentAccount, total int64, matchErr error,
) error {
	refundCtx, cancel := h.capabilityContext(ctx)
	defer cancel()

	if _, refundErr := account.Refund(refundCtx, total); refundErr != nil {
		h.logger.Error("refund after failed rider match did not complete",
			"amount", total,
			"match_error", matchErr,
			"refund_error", refundErr,
		)
		return NewOrderFailure(FailureCompensation, errors.Join(matchErr, refundErr))
	}

	return NewOrderFailure(FailureNoRiderAvailable, matchErr)
}

// notify sends the order confirmation. A missing channel or a failed send
// is logged and reported through the returned flag; failed sends are queued
// for the retry job.
func (h *PlaceOrderCommandHandler) notify(ctx context.Context, customerID kernel.UUID, message string) bool {
	channel, err := h.notifications.Get(customerID)
	if err != nil {
		h.logger.Warn("no notification channel attached, confirmation skipped",
			"customer_id", customerID,
			"reason", FailureNoNotificationChannel.String(),
		)
		return false
	}

	notifyCtx, cancel := h.capabilityContext(ctx)
	defer cancel()

	if err := channel.Notify(notifyCtx, message); err != nil {
		h.logger.Warn("confirmation delivery failed, queued for retry",
			"customer_id", customerID,
			"reason", FailureNotificationDelivery.String(),
			"error", err,
		)
		h.retries.Enqueue(ports.PendingNotification{
			CustomerID: customerID,
			Message:    message,
			Attempts:   1,
		})
		return false
	}

	return true
}

func (h *PlaceOrderCommandHandler) capabilityContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.capabilityTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.capabilityTimeout)
}
