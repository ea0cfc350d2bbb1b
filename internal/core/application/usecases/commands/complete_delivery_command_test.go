package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteDeliveryCommand_ValidInput(t *testing.T) {
	riderID := kernel.NewUUID()

	cmd, err := commands.NewCompleteDeliveryCommand(riderID)
	require.NoError(t, err)
	assert.Equal(t, riderID, cmd.RiderID())
	require.NoError(t, cmd.Validate())
}

func TestNewCompleteDeliveryCommand_InvalidRiderID(t *testing.T) {
	_, err := commands.NewCompleteDeliveryCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCompleteDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CompleteDeliveryCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteDeliveryCommandIsNotConstructed)
}
