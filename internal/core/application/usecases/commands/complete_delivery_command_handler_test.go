package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	pool := services.NewRiderPool()
	r := makeLocatedRider(t, 2, 2)
	require.NoError(t, pool.Register(r))

	matched, err := pool.MatchNearest(kernel.NewLocation(1, 2))
	require.NoError(t, err)
	require.False(t, matched.IsAvailable())

	handler := commands.NewCompleteDeliveryCommandHandler(pool)

	cmd, err := commands.NewCompleteDeliveryCommand(matched.ID())
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.True(t, r.IsAvailable())

	_, hasTarget := r.Target()
	assert.False(t, hasTarget)
}

func TestCompleteDeliveryCommandHandler_Handle_UnknownRider(t *testing.T) {
	ctx := context.Background()

	handler := commands.NewCompleteDeliveryCommandHandler(services.NewRiderPool())

	cmd, err := commands.NewCompleteDeliveryCommand(kernel.NewUUID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCompleteDeliveryCommandHandler_Handle_NoActiveDelivery(t *testing.T) {
	ctx := context.Background()

	pool := services.NewRiderPool()
	r := makeLocatedRider(t, 2, 2)
	require.NoError(t, pool.Register(r))

	handler := commands.NewCompleteDeliveryCommandHandler(pool)

	cmd, err := commands.NewCompleteDeliveryCommand(r.ID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, rider.ErrNoActiveDelivery)
}

func TestCompleteDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CompleteDeliveryCommand{} // not constructed properly

	handler := commands.NewCompleteDeliveryCommandHandler(services.NewRiderPool())

	err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCompleteDeliveryCommandIsNotConstructed)
}
