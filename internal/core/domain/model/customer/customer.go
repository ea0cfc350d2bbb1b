package customer

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents an ordering customer: an identity, a display name and
// a current location. The location is where a matched rider delivers to.
//
// Capability registries never hold a Customer, only its ID as a key; the
// customer directory is the single owner of Customer records.
type Customer struct {
	id       kernel.UUID
	name     string
	location kernel.Location

	isConstructed bool
}

// NewCustomer creates a customer with the given identity, display name and
// current location. The name must be non-empty.
func NewCustomer(id kernel.UUID, name string, location kernel.Location) (*Customer, error) {
	c := &Customer{
		location:      location,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Location returns the customer's current location.
func (c *Customer) Location() kernel.Location {
	return c.location
}

// MoveTo updates the customer's current location.
func (c *Customer) MoveTo(location kernel.Location) {
	c.location = location
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
