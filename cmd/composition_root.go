package cmd

import (
	"log/slog"
	"time"

	"fulfillment/internal/adapters/out/inmem"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/locker"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	directory     *inmem.Directory
	catalog       *inmem.Catalog
	carts         *inmem.Registry[ports.CartStore]
	payments      *inmem.Registry[ports.PaymentAccount]
	notifications *inmem.Registry[ports.NotificationChannel]
	retries       *inmem.RetryQueue
	pool          *services.RiderPool
	customerLocks *locker.KeyedMutex
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:        config,
		logger:        logger,
		directory:     inmem.NewDirectory(),
		catalog:       inmem.NewCatalog(),
		carts:         inmem.NewRegistry[ports.CartStore]("cart"),
		payments:      inmem.NewRegistry[ports.PaymentAccount]("payment account"),
		notifications: inmem.NewRegistry[ports.NotificationChannel]("notification channel"),
		retries:       inmem.NewRetryQueue(),
		pool:          services.NewRiderPool(),
		customerLocks: locker.NewKeyedMutex(),
	}
}

// Directory exposes the customer directory for seeding and lookups.
func (c *CompositionRoot) Directory() *inmem.Directory {
	return c.directory
}

// Catalog exposes the restaurant catalog for seeding and lookups.
func (c *CompositionRoot) Catalog() *inmem.Catalog {
	return c.catalog
}

// Payments exposes the payment registry for attaching accounts.
func (c *CompositionRoot) Payments() *inmem.Registry[ports.PaymentAccount] {
	return c.payments
}

// Notifications exposes the notification registry for attaching channels.
func (c *CompositionRoot) Notifications() *inmem.Registry[ports.NotificationChannel] {
	return c.notifications
}

// Pool exposes the rider pool for registration and location updates.
func (c *CompositionRoot) Pool() *services.RiderPool {
	return c.pool
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var opts []commands.PlaceOrderOption
	if c.config.CapabilityTimeout != "" {
		timeout, err := time.ParseDuration(c.config.CapabilityTimeout)
		if err != nil {
			c.logger.Warn("invalid capability timeout, calls stay unbounded",
				"value", c.config.CapabilityTimeout,
				"error", err,
			)
		} else {
			opts = append(opts, commands.WithCapabilityTimeout(timeout))
		}
	}

	return commands.NewPlaceOrderCommandHandler(
		c.directory,
		c.catalog,
		c.carts,
		c.payments,
		c.notifications,
		c.retries,
		c.pool,
		c.customerLocks,
		c.logger,
		opts...,
	)
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.CartFactory = FuncCartFactory(func() ports.CartStore {
		return inmem.NewCart()
	})
	return commands.NewAddToCartCommandHandler(c.carts, f, c.customerLocks)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	return commands.NewRemoveFromCartCommandHandler(c.carts, c.customerLocks)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.pool)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts)
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.pool)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.retries, c.notifications, c.logger)
}

type FuncCartFactory func() ports.CartStore

func (f FuncCartFactory) Create() ports.CartStore {
	return f()
}
