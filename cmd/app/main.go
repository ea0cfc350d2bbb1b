package main

import (
	"context"
	"log/slog"
	"os"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/inmem"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/core/domain/model/rider"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	root := cmd.NewCompositionRoot(configs, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	if err := run(context.Background(), &root, logger); err != nil {
		logger.Error("demo run failed", "error", err)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		LogLevel:          goDotEnvVariable("LOG_LEVEL"),
		CapabilityTimeout: goDotEnvVariable("CAPABILITY_TIMEOUT"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// run walks two customers through a complete ordering day: seed the world,
// fill the carts, place both orders, finish one delivery and read the pool
// back out.
func run(ctx context.Context, root *cmd.CompositionRoot, logger *slog.Logger) error {
	dosa, err := restaurant.NewItem(kernel.NewUUID(), 12)
	if err != nil {
		return err
	}
	tikka, err := restaurant.NewItem(kernel.NewUUID(), 14)
	if err != nil {
		return err
	}

	menu, err := restaurant.NewMenu(dosa, tikka)
	if err != nil {
		return err
	}
	dhaba, err := restaurant.NewRestaurant(kernel.NewUUID(), "Karnot Dhaba", kernel.NewLocation(1, 1), menu)
	if err != nil {
		return err
	}
	if err = root.Catalog().Add(dhaba); err != nil {
		return err
	}

	shivank, err := seedCustomer(root, "Shivank", kernel.NewLocation(1, 2), 100, "shivank@example.com", logger)
	if err != nil {
		return err
	}
	ajay, err := seedCustomer(root, "Ajay", kernel.NewLocation(1, 3), 150, "ajay@example.com", logger)
	if err != nil {
		return err
	}

	if err = seedRider(root, kernel.NewLocation(2, 2)); err != nil {
		return err
	}
	if err = seedRider(root, kernel.NewLocation(3, 3)); err != nil {
		return err
	}

	addToCart := root.CreateAddToCartCommandHandler()
	for _, item := range []restaurant.Item{dosa, tikka} {
		for _, cust := range []*customer.Customer{shivank, ajay} {
			addCmd, cmdErr := commands.NewAddToCartCommand(cust.ID(), item.ID())
			if cmdErr != nil {
				return cmdErr
			}
			if err = addToCart.Handle(ctx, addCmd); err != nil {
				return err
			}
		}
	}

	placeOrder := root.CreatePlaceOrderCommandHandler()

	var firstRider kernel.UUID
	for _, cust := range []*customer.Customer{shivank, ajay} {
		orderCmd, cmdErr := commands.NewPlaceOrderCommand(cust.ID(), dhaba.ID())
		if cmdErr != nil {
			return cmdErr
		}

		receipt, orderErr := placeOrder.Handle(ctx, orderCmd)
		if orderErr != nil {
			logger.Warn("order was not placed",
				"customer", cust.Name(),
				"reason", commands.FailureKindOf(orderErr).String(),
				"error", orderErr,
			)
			continue
		}

		logger.Info("order placed",
			"customer", cust.Name(),
			"total", receipt.Total,
			"rider_id", receipt.RiderID,
			"balance", receipt.RemainingBalance,
			"notified", receipt.Notified,
		)

		if firstRider == (kernel.UUID{}) {
			firstRider = receipt.RiderID
		}
	}

	if firstRider != (kernel.UUID{}) {
		completeCmd, cmdErr := commands.NewCompleteDeliveryCommand(firstRider)
		if cmdErr != nil {
			return cmdErr
		}
		completeDelivery := root.CreateCompleteDeliveryCommandHandler()
		if err = completeDelivery.Handle(ctx, completeCmd); err != nil {
			return err
		}
		logger.Info("delivery completed", "rider_id", firstRider)
	}

	availableRiders := root.CreateGetAvailableRidersQueryHandler()
	riders, err := availableRiders.Handle(ctx, queries.NewGetAvailableRidersQuery())
	if err != nil {
		return err
	}
	for _, r := range riders {
		logger.Info("rider available", "rider_id", r.ID, "location", r.Location)
	}

	return nil
}

func seedCustomer(
	root *cmd.CompositionRoot,
	name string,
	location kernel.Location,
	balance int64,
	email string,
	logger *slog.Logger,
) (*customer.Customer, error) {
	cust, err := customer.NewCustomer(kernel.NewUUID(), name, location)
	if err != nil {
		return nil, err
	}
	if err = root.Directory().Add(cust); err != nil {
		return nil, err
	}

	wallet, err := inmem.NewWallet("wallet-"+cust.ID().String(), balance)
	if err != nil {
		return nil, err
	}
	root.Payments().Attach(cust.ID(), wallet)

	channel, err := inmem.NewEmailChannel(email, logger)
	if err != nil {
		return nil, err
	}
	root.Notifications().Attach(cust.ID(), channel)

	return cust, nil
}

func seedRider(root *cmd.CompositionRoot, location kernel.Location) error {
	r, err := rider.NewRider(kernel.NewUUID())
	if err != nil {
		return err
	}
	r.UpdateLocation(location)
	return root.Pool().Register(r)
}
