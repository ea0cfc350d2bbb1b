package customer_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		c, err := customer.NewCustomer(id, "Shivank", kernel.NewLocation(1, 2))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Shivank", c.Name())
		assert.Equal(t, kernel.NewLocation(1, 2), c.Location())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", kernel.NewLocation(1, 2))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := customer.NewCustomer(zero, "Shivank", kernel.NewLocation(1, 2))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c customer.Customer
		require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_MoveTo(t *testing.T) {
	c, _ := customer.NewCustomer(kernel.NewUUID(), "Ajay", kernel.NewLocation(1, 3))

	c.MoveTo(kernel.NewLocation(4, 4))

	assert.Equal(t, kernel.NewLocation(4, 4), c.Location())
}
