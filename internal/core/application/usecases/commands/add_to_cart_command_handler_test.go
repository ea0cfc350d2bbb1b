package commands_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/adapters/out/inmem"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartFactory struct{ mock.Mock }

func (m *MockCartFactory) Create() ports.CartStore {
	args := m.Called()
	return args.Get(0).(ports.CartStore)
}

func TestAddToCartCommandHandler_Handle_ExistingCart(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cart := inmem.NewCart()
	carts := new(MockCartRegistry)
	carts.On("Get", customerID).Return(cart, nil).Once()

	factory := new(MockCartFactory)
	handler := commands.NewAddToCartCommandHandler(carts, factory, locker.NewKeyedMutex())

	cmd, err := commands.NewAddToCartCommand(customerID, itemID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, map[kernel.UUID]int{itemID: 1}, cart.Items())
	factory.AssertNotCalled(t, "Create")
}

func TestAddToCartCommandHandler_Handle_CreatesCartOnFirstAdd(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cart := inmem.NewCart()
	carts := new(MockCartRegistry)
	factory := new(MockCartFactory)

	mock.InOrder(
		carts.On("Get", customerID).Return(nil, errs.NewObjectNotFoundError("cart", customerID)).Once(),
		factory.On("Create").Return(cart).Once(),
		carts.On("Attach", customerID, cart).Once(),
	)

	handler := commands.NewAddToCartCommandHandler(carts, factory, locker.NewKeyedMutex())

	cmd, err := commands.NewAddToCartCommand(customerID, itemID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, map[kernel.UUID]int{itemID: 1}, cart.Items())
	carts.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_RegistryError(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	carts := new(MockCartRegistry)
	carts.On("Get", customerID).Return(nil, errors.New("registry unavailable")).Once()

	factory := new(MockCartFactory)
	handler := commands.NewAddToCartCommandHandler(carts, factory, locker.NewKeyedMutex())

	cmd, err := commands.NewAddToCartCommand(customerID, kernel.NewUUID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.EqualError(t, err, "registry unavailable")
	factory.AssertNotCalled(t, "Create")
}

func TestAddToCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AddToCartCommand{} // not constructed properly

	carts := new(MockCartRegistry)
	handler := commands.NewAddToCartCommandHandler(carts, new(MockCartFactory), locker.NewKeyedMutex())

	err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddToCartCommandIsNotConstructed)
	carts.AssertNotCalled(t, "Get", mock.Anything)
}

func TestAddToCartCommandHandler_Handle_AccumulatesQuantity(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	cart := inmem.NewCart()
	carts := new(MockCartRegistry)
	carts.On("Get", customerID).Return(cart, nil).Times(3)

	handler := commands.NewAddToCartCommandHandler(carts, new(MockCartFactory), locker.NewKeyedMutex())

	cmd, err := commands.NewAddToCartCommand(customerID, itemID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, handler.Handle(ctx, cmd))
	}

	assert.Equal(t, map[kernel.UUID]int{itemID: 3}, cart.Items())
}
