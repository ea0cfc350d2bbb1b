package ports

import (
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
)

// Capability registries map a customer id to exactly one capability
// instance. Attach overwrites any previously attached instance
// (replace-on-reattach); Get fails with an errs.ErrObjectNotFound-based
// error when nothing is attached. Registries own the instances they hold
// and never reference the Customer itself, only its id.
type (
	// CartRegistry holds each customer's cart.
	CartRegistry interface {
		Attach(customerID kernel.UUID, cart CartStore)
		Get(customerID kernel.UUID) (CartStore, error)
	}

	// PaymentRegistry holds each customer's payment account.
	PaymentRegistry interface {
		Attach(customerID kernel.UUID, account PaymentAccount)
		Get(customerID kernel.UUID) (PaymentAccount, error)
	}

	// NotificationRegistry holds each customer's notification channel.
	NotificationRegistry interface {
		Attach(customerID kernel.UUID, channel NotificationChannel)
		Get(customerID kernel.UUID) (NotificationChannel, error)
	}
)

// CustomerDirectory resolves customer ids to Customer records.
// It is the single owner of Customer state.
type CustomerDirectory interface {
	Add(c *customer.Customer) error
	Get(customerID kernel.UUID) (*customer.Customer, error)
}

// RestaurantCatalog resolves restaurant ids to Restaurant records.
// Restaurants are loaded once and read-only to the order workflow.
type RestaurantCatalog interface {
	Add(r *restaurant.Restaurant) error
	Get(restaurantID kernel.UUID) (*restaurant.Restaurant, error)
}
