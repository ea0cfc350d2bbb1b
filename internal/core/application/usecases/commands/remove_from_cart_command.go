package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand represents a request to remove one unit of an item
// from the customer's cart.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a command to remove an item from a
// customer's cart. Both ids must be valid.
func NewRemoveFromCartCommand(customerID, itemID kernel.UUID) (RemoveFromCartCommand, error) {
	cartCommand := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setCustomerID(customerID),
		cartCommand.setItemID(itemID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveFromCartCommandIsNotConstructed if validation fails.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c RemoveFromCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the identifier of the item to remove.
func (c RemoveFromCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveFromCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveFromCartCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
