package restaurant

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDuplicateMenuItem is returned when a menu is built with the same item id twice.
	ErrDuplicateMenuItem = errors.New("menu contains duplicate item id")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Menu maps item ids to prices in minor currency units. Menus are built once
// via NewMenu and read-only thereafter.
type Menu struct {
	prices map[kernel.UUID]int64
}

// NewMenu builds a menu from the given items. Item ids must be unique.
func NewMenu(items ...Item) (Menu, error) {
	prices := make(map[kernel.UUID]int64, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Menu{}, err
		}
		if _, exists := prices[item.ID()]; exists {
			return Menu{}, ErrDuplicateMenuItem
		}
		prices[item.ID()] = item.Price()
	}
	return Menu{prices: prices}, nil
}

// Price returns the price of the item and whether the item is on the menu.
func (m Menu) Price(itemID kernel.UUID) (int64, bool) {
	price, ok := m.prices[itemID]
	return price, ok
}

// Size returns the number of items on the menu.
func (m Menu) Size() int {
	return len(m.prices)
}

// Restaurant is an aggregate describing a restaurant: identity, display name,
// pickup location and priced menu. Restaurants are created once and read-only
// afterwards; the orchestrator only ever looks prices up.
type Restaurant struct {
	id       kernel.UUID
	name     string
	location kernel.Location
	menu     Menu

	isConstructed bool
}

// NewRestaurant creates a restaurant with the given identity, name, location
// and menu. The name must be non-empty.
func NewRestaurant(id kernel.UUID, name string, location kernel.Location, menu Menu) (*Restaurant, error) {
	r := &Restaurant{
		location:      location,
		menu:          menu,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Location returns the restaurant's pickup location.
func (r *Restaurant) Location() kernel.Location {
	return r.location
}

// Menu returns the restaurant's menu.
func (r *Restaurant) Menu() Menu {
	return r.menu
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
