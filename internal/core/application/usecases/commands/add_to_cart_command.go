package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand represents a request to add one unit of a menu item to
// the customer's cart.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add an item to a customer's cart.
// Both ids must be valid.
func NewAddToCartCommand(customerID, itemID kernel.UUID) (AddToCartCommand, error) {
	cartCommand := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setCustomerID(customerID),
		cartCommand.setItemID(itemID),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddToCartCommandIsNotConstructed if validation fails.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the identifier of the item to add.
func (c AddToCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
