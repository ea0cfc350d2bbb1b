package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a rider reporting an order delivered,
// returning the rider to the available pool.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to finish the rider's active
// delivery. The rider id must be valid.
func NewCompleteDeliveryCommand(riderID kernel.UUID) (CompleteDeliveryCommand, error) {
	deliveryCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryCommand.setRiderID(riderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// RiderID returns the identifier of the rider completing a delivery.
func (c CompleteDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *CompleteDeliveryCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
