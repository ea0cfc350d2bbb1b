package services

import (
	"errors"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rider"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNoRiderAvailable is returned when no rider is both available and
	// location-known at match time.
	ErrNoRiderAvailable = errors.New("no rider available")
	// ErrRiderAlreadyRegistered is returned when registering a rider id twice.
	ErrRiderAlreadyRegistered = errors.New("rider is already registered")
)

// RiderPool tracks the riders of a fulfillment operator and matches the
// nearest available one to a delivery target.
//
// The pool owns all rider state mutations. A single pool-wide mutex is held
// across the scan and the claim in MatchNearest, so two concurrent order
// placements can never select the same rider: the chosen rider is flipped to
// unavailable before the lock is released.
//
// Selection rules:
//   - only available riders with a known location are candidates;
//     a rider that has never reported a location is silently skipped
//   - the candidate minimizing the Euclidean distance to the target wins
//   - ties go to the earliest-registered candidate (iteration follows
//     registration order, which makes the result deterministic)
type RiderPool struct {
	mu     sync.Mutex
	riders []*rider.Rider
	index  map[kernel.UUID]*rider.Rider
}

// NewRiderPool creates an empty rider pool.
func NewRiderPool() *RiderPool {
	return &RiderPool{
		index: make(map[kernel.UUID]*rider.Rider),
	}
}

// Register adds a rider to the pool in its current state.
// Registration order is preserved; it decides match tie-breaks.
func (p *RiderPool) Register(r *rider.Rider) error {
	if err := r.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.index[r.ID()]; exists {
		return ErrRiderAlreadyRegistered
	}

	p.riders = append(p.riders, r)
	p.index[r.ID()] = r
	return nil
}

// UpdateLocation records a rider's current position.
// Availability is unaffected.
func (p *RiderPool) UpdateLocation(riderID kernel.UUID, location kernel.Location) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, err := p.get(riderID)
	if err != nil {
		return err
	}

	r.UpdateLocation(location)
	return nil
}

// MatchNearest selects the available, located rider closest to target,
// atomically claims it for the delivery and returns it. The scan and the
// claim happen under one lock acquisition.
//
// Fails with ErrNoRiderAvailable when the whole pool yields no eligible
// candidate.
func (p *RiderPool) MatchNearest(target kernel.Location) (*rider.Rider, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var best *rider.Rider
	var bestDistance float64

	for _, r := range p.riders {
		if !r.IsAssignable() {
			continue
		}

		location, _ := r.Location()
		distance := location.Distance(target)
		if best == nil || distance < bestDistance {
			best = r
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, ErrNoRiderAvailable
	}

	if err := best.AcceptDelivery(target); err != nil {
		return nil, err
	}

	return best, nil
}

// Release finishes a rider's active delivery, returning it to the available
// pool with its target cleared.
func (p *RiderPool) Release(riderID kernel.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, err := p.get(riderID)
	if err != nil {
		return err
	}

	return r.CompleteDelivery()
}

// RiderSnapshot is a point-in-time view of one rider for read models.
type RiderSnapshot struct {
	ID        kernel.UUID
	Location  kernel.Location
	Located   bool
	Available bool
}

// Snapshot returns a point-in-time view of every rider in registration
// order. The returned slice is detached from pool state.
func (p *RiderPool) Snapshot() []RiderSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshots := make([]RiderSnapshot, 0, len(p.riders))
	for _, r := range p.riders {
		location, located := r.Location()
		snapshots = append(snapshots, RiderSnapshot{
			ID:        r.ID(),
			Location:  location,
			Located:   located,
			Available: r.IsAvailable(),
		})
	}
	return snapshots
}

// get must be called with p.mu held.
func (p *RiderPool) get(riderID kernel.UUID) (*rider.Rider, error) {
	r, ok := p.index[riderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("riderId", riderID.String())
	}
	return r, nil
}
