package inmem

import (
	"context"
	"log/slog"

	"fulfillment/internal/pkg/errs"
)

// EmailChannel is a NotificationChannel that records deliveries through the
// structured logger. Concrete mail transport stays outside this core; this
// adapter stands in for it in the single-process setup.
type EmailChannel struct {
	address string
	logger  *slog.Logger
}

// NewEmailChannel creates a channel delivering to the given address.
func NewEmailChannel(address string, logger *slog.Logger) (*EmailChannel, error) {
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &EmailChannel{
		address: address,
		logger:  logger.With("component", "email_channel"),
	}, nil
}

// Address returns the delivery address.
func (e *EmailChannel) Address() string {
	return e.address
}

// Notify delivers the message.
func (e *EmailChannel) Notify(ctx context.Context, message string) error {
	e.logger.InfoContext(ctx, "Sending notification", "address", e.address, "message", message)
	return nil
}
