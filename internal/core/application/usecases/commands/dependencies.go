// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: a guarded command
// struct with a validating constructor, and a handler that serializes
// conflicting work, invokes the capabilities and surfaces classifiable
// failures.
package commands

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"
	"fulfillment/internal/core/ports"
)

// Consumer-side abstractions over the rider pool and the per-customer lock.
// Handlers depend on these rather than on concrete types so that tests can
// substitute them.
type (
	// RiderMatcher claims the nearest available rider for a delivery target.
	// The claim is atomic: a matched rider is unavailable before the call
	// returns.
	RiderMatcher interface {
		MatchNearest(target kernel.Location) (*rider.Rider, error)
	}

	// RiderReleaser finishes a rider's active delivery, making the rider
	// available again.
	RiderReleaser interface {
		Release(riderID kernel.UUID) error
	}

	// Locker serializes work per key. Handlers lock the customer id for the
	// duration of any operation touching that customer's capabilities, which
	// keeps overlapping requests of one customer mutually exclusive without
	// blocking other customers.
	Locker interface {
		Lock(key string)
		Unlock(key string)
	}

	// CartFactory creates an empty cart for a customer's first add.
	CartFactory interface {
		Create() ports.CartStore
	}
)
