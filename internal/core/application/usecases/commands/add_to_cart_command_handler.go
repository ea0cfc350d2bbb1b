package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AddToCartCommandHandler adds items to a customer's cart, creating the cart
// on the first add. Adding is intentionally permissive: items are priced
// against a restaurant menu only at order placement.
type AddToCartCommandHandler struct {
	carts   ports.CartRegistry
	factory CartFactory
	locker  Locker
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(
	carts ports.CartRegistry, factory CartFactory, locker Locker,
) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		carts:   carts,
		factory: factory,
		locker:  locker,
	}
}

// Handle adds one unit of the item to the customer's cart. A customer
// without a cart gets a fresh one attached first.
func (h *AddToCartCommandHandler) Handle(_ context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.locker.Lock(cmd.CustomerID().String())
	defer h.locker.Unlock(cmd.CustomerID().String())

	cart, err := h.carts.Get(cmd.CustomerID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		cart = h.factory.Create()
		h.carts.Attach(cmd.CustomerID(), cart)
	}

	cart.Add(cmd.ItemID())
	return nil
}
