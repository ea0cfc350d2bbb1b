package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RemoveFromCartCommandHandler removes items from a customer's cart.
// Removal mirrors cart semantics: removing from a missing cart or removing
// an item that is not in the cart succeeds without effect.
type RemoveFromCartCommandHandler struct {
	carts  ports.CartRegistry
	locker Locker
}

// NewRemoveFromCartCommandHandler creates a handler for cart removals.
func NewRemoveFromCartCommandHandler(carts ports.CartRegistry, locker Locker) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		carts:  carts,
		locker: locker,
	}
}

// Handle removes one unit of the item from the customer's cart.
func (h *RemoveFromCartCommandHandler) Handle(_ context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.locker.Lock(cmd.CustomerID().String())
	defer h.locker.Unlock(cmd.CustomerID().String())

	cart, err := h.carts.Get(cmd.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	cart.Remove(cmd.ItemID())
	return nil
}
