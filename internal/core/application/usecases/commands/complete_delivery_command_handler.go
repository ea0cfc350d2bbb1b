package commands

import "context"

// CompleteDeliveryCommandHandler returns riders to the available pool once
// they report a delivery done.
type CompleteDeliveryCommandHandler struct {
	riders RiderReleaser
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(riders RiderReleaser) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		riders: riders,
	}
}

// Handle marks the rider's active delivery as done. Fails when the rider is
// unknown or has no delivery in progress.
func (h *CompleteDeliveryCommandHandler) Handle(_ context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.riders.Release(cmd.RiderID())
}
