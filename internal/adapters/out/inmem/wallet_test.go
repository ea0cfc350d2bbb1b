package inmem_test

import (
	"context"
	"testing"

	"fulfillment/internal/adapters/out/inmem"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w, err := inmem.NewWallet("shivank", 100)

		require.NoError(t, err)
		assert.Equal(t, int64(100), w.Balance())
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		_, err := inmem.NewWallet("", 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative opening balance is rejected", func(t *testing.T) {
		_, err := inmem.NewWallet("shivank", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWallet_Pay(t *testing.T) {
	ctx := context.Background()

	t.Run("captures amount and returns new balance", func(t *testing.T) {
		w, _ := inmem.NewWallet("shivank", 100)

		balance, err := w.Pay(ctx, 26)

		require.NoError(t, err)
		assert.Equal(t, int64(74), balance)
		assert.Equal(t, int64(74), w.Balance())
	})

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		w, _ := inmem.NewWallet("shivank", 10)

		_, err := w.Pay(ctx, 24)

		require.ErrorIs(t, err, ports.ErrInsufficientFunds)
		assert.Equal(t, int64(10), w.Balance())
	})

	t.Run("exact balance is accepted", func(t *testing.T) {
		w, _ := inmem.NewWallet("shivank", 24)

		balance, err := w.Pay(ctx, 24)

		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		w, _ := inmem.NewWallet("shivank", 100)

		_, err := w.Pay(ctx, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWallet_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("credits the amount back", func(t *testing.T) {
		w, _ := inmem.NewWallet("shivank", 100)
		_, err := w.Pay(ctx, 26)
		require.NoError(t, err)

		balance, err := w.Refund(ctx, 26)

		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		w, _ := inmem.NewWallet("shivank", 100)

		_, err := w.Refund(ctx, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
