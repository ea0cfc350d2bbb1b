package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddToCartCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cmd, err := commands.NewAddToCartCommand(customerID, itemID)
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, itemID, cmd.ItemID())
	require.NoError(t, cmd.Validate())
}

func TestNewAddToCartCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAddToCartCommand(kernel.UUID{}, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAddToCartCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AddToCartCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddToCartCommandIsNotConstructed)
}
