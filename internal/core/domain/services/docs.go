// Package services provides domain services that coordinate business
// operations across multiple entities.
//
// The package includes:
//   - RiderPool: the stateful matching engine that tracks rider
//     availability and claims the nearest available rider for a delivery
//
// The pool is the one place in the system with a genuine race (two
// concurrent orders competing for the same rider), so it owns the lock
// that makes scan-and-claim a single atomic step.
package services
