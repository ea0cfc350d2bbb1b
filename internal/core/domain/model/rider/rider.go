package rider

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderNotAvailable is returned when assigning a delivery to a rider
	// that is already on one.
	ErrRiderNotAvailable = errors.New("rider is not available")
	// ErrLocationIsUnknown is returned when assigning a delivery to a rider
	// that has never reported a location.
	ErrLocationIsUnknown = errors.New("rider location is unknown")
	// ErrNoActiveDelivery is returned when completing a delivery for a rider
	// that has none in progress.
	ErrNoActiveDelivery = errors.New("rider has no active delivery")
)

// Rider is the aggregate for a delivery rider. A rider starts Available with
// no known location; location updates never change availability. Accepting a
// delivery flips the rider to unavailable and records the target location;
// completing it returns the rider to the available pool and clears the
// target. A rider carries at most one active target at a time.
//
// Rider is not safe for concurrent use on its own; the rider pool serializes
// access to all riders it owns.
type Rider struct {
	id        kernel.UUID
	location  *kernel.Location
	target    *kernel.Location
	available bool

	isConstructed bool
}

// NewRider creates an available rider with an unknown location.
func NewRider(id kernel.UUID) (*Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Rider{
		id:            id,
		available:     true,
		isConstructed: true,
	}, nil
}

// Validate ensures the Rider was created through NewRider.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Location returns the rider's last reported location.
// The boolean is false until the first UpdateLocation call.
func (r *Rider) Location() (kernel.Location, bool) {
	if r.location == nil {
		return kernel.Location{}, false
	}
	return *r.location, true
}

// Target returns the delivery target of the rider's active delivery.
// The boolean is false when the rider has no delivery in progress.
func (r *Rider) Target() (kernel.Location, bool) {
	if r.target == nil {
		return kernel.Location{}, false
	}
	return *r.target, true
}

// IsAvailable reports whether the rider can take a delivery.
func (r *Rider) IsAvailable() bool {
	return r.available
}

// IsAssignable reports whether the rider is a matching candidate:
// available and with a known location.
func (r *Rider) IsAssignable() bool {
	return r.available && r.location != nil
}

// UpdateLocation records the rider's current position.
// Availability is unaffected; riders report positions while delivering too.
func (r *Rider) UpdateLocation(location kernel.Location) {
	r.location = &location
}

// AcceptDelivery assigns a delivery towards target and makes the rider
// unavailable. It fails if the rider is already on a delivery or has no
// known location.
func (r *Rider) AcceptDelivery(target kernel.Location) error {
	if !r.available {
		return ErrRiderNotAvailable
	}
	if r.location == nil {
		return ErrLocationIsUnknown
	}

	r.target = &target
	r.available = false
	return nil
}

// CompleteDelivery finishes the active delivery: the target is cleared and
// the rider returns to the available pool. It fails if no delivery is in
// progress.
func (r *Rider) CompleteDelivery() error {
	if r.available {
		return ErrNoActiveDelivery
	}

	r.target = nil
	r.available = true
	return nil
}
