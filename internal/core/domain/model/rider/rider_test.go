package rider_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRider(t *testing.T) {
	t.Run("starts available with unknown location", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsAvailable())
		assert.False(t, r.IsAssignable())

		_, known := r.Location()
		assert.False(t, known)
		_, assigned := r.Target()
		assert.False(t, assigned)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := rider.NewRider(zero)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r rider.Rider
		require.ErrorIs(t, r.Validate(), rider.ErrRiderIsNotConstructed)
	})
}

func TestRider_UpdateLocation(t *testing.T) {
	r, _ := rider.NewRider(kernel.NewUUID())

	r.UpdateLocation(kernel.NewLocation(2, 2))

	loc, known := r.Location()
	assert.True(t, known)
	assert.Equal(t, kernel.NewLocation(2, 2), loc)
	assert.True(t, r.IsAssignable())

	t.Run("does not change availability", func(t *testing.T) {
		require.NoError(t, r.AcceptDelivery(kernel.NewLocation(5, 5)))
		r.UpdateLocation(kernel.NewLocation(3, 3))
		assert.False(t, r.IsAvailable())
	})
}

func TestRider_AcceptDelivery(t *testing.T) {
	t.Run("records target and makes rider unavailable", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID())
		r.UpdateLocation(kernel.NewLocation(1, 1))

		require.NoError(t, r.AcceptDelivery(kernel.NewLocation(4, 4)))

		assert.False(t, r.IsAvailable())
		target, assigned := r.Target()
		assert.True(t, assigned)
		assert.Equal(t, kernel.NewLocation(4, 4), target)
	})

	t.Run("fails with unknown location", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID())

		err := r.AcceptDelivery(kernel.NewLocation(4, 4))

		require.ErrorIs(t, err, rider.ErrLocationIsUnknown)
		assert.True(t, r.IsAvailable())
	})

	t.Run("fails when already delivering", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID())
		r.UpdateLocation(kernel.NewLocation(1, 1))
		require.NoError(t, r.AcceptDelivery(kernel.NewLocation(4, 4)))

		err := r.AcceptDelivery(kernel.NewLocation(6, 6))

		require.ErrorIs(t, err, rider.ErrRiderNotAvailable)
		target, _ := r.Target()
		assert.Equal(t, kernel.NewLocation(4, 4), target)
	})
}

func TestRider_CompleteDelivery(t *testing.T) {
	t.Run("returns rider to the pool and clears target", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID())
		r.UpdateLocation(kernel.NewLocation(1, 1))
		require.NoError(t, r.AcceptDelivery(kernel.NewLocation(4, 4)))

		require.NoError(t, r.CompleteDelivery())

		assert.True(t, r.IsAvailable())
		_, assigned := r.Target()
		assert.False(t, assigned)
	})

	t.Run("fails without active delivery", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID())

		err := r.CompleteDelivery()

		require.ErrorIs(t, err, rider.ErrNoActiveDelivery)
	})
}
