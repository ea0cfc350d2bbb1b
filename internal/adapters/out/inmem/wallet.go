package inmem

import (
	"context"
	"fmt"
	"sync"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Wallet is a balance-backed PaymentAccount. The balance never goes
// negative: Pay fails with ports.ErrInsufficientFunds and leaves the
// balance unchanged when it does not cover the amount.
type Wallet struct {
	mu      sync.Mutex
	id      string
	balance int64
}

// NewWallet creates a wallet with the given owner id and opening balance.
// The opening balance must not be negative.
func NewWallet(id string, balance int64) (*Wallet, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if balance < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("balance",
			fmt.Errorf("%d is negative", balance))
	}

	return &Wallet{
		id:      id,
		balance: balance,
	}, nil
}

// Balance returns the current balance.
func (w *Wallet) Balance() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.balance
}

// Pay captures amount and returns the new balance.
func (w *Wallet) Pay(_ context.Context, amount int64) (int64, error) {
	if amount < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.balance < amount {
		return 0, ports.ErrInsufficientFunds
	}

	w.balance -= amount
	return w.balance, nil
}

// Refund credits amount back and returns the new balance.
func (w *Wallet) Refund(_ context.Context, amount int64) (int64, error) {
	if amount < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.balance += amount
	return w.balance, nil
}
