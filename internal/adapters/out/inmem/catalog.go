package inmem

import (
	"sync"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/pkg/errs"
)

// Catalog is the in-memory RestaurantCatalog. Restaurants are loaded during
// setup and only read afterwards.
type Catalog struct {
	mu          sync.RWMutex
	restaurants map[kernel.UUID]*restaurant.Restaurant
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		restaurants: make(map[kernel.UUID]*restaurant.Restaurant),
	}
}

// Add stores a restaurant, overwriting any prior entry with the same id.
func (c *Catalog) Add(r *restaurant.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.restaurants[r.ID()] = r
	return nil
}

// Get resolves a restaurant by id.
func (c *Catalog) Get(restaurantID kernel.UUID) (*restaurant.Restaurant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.restaurants[restaurantID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurantId", restaurantID.String())
	}
	return r, nil
}

// Directory is the in-memory CustomerDirectory.
type Directory struct {
	mu        sync.RWMutex
	customers map[kernel.UUID]*customer.Customer
}

// NewDirectory creates an empty customer directory.
func NewDirectory() *Directory {
	return &Directory{
		customers: make(map[kernel.UUID]*customer.Customer),
	}
}

// Add stores a customer record, overwriting any prior entry with the same id.
func (d *Directory) Add(c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.customers[c.ID()] = c
	return nil
}

// Get resolves a customer by id.
func (d *Directory) Get(customerID kernel.UUID) (*customer.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.customers[customerID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
	}
	return c, nil
}
