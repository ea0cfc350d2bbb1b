// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the contents of one customer's cart.
//
// Example:
//
//	query, err := NewGetCartQuery(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid cart query: %w", err)
//	}
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read cart: %w", err)
//	}
//
//	for _, line := range lines {
//	    fmt.Printf("%s x%d\n", line.ItemID, line.Quantity)
//	}
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer's cart contents.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	cartQuery := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartQuery.setCustomerID(customerID); err != nil {
		return GetCartQuery{}, err
	}

	return cartQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCartQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetCartQueryResponse is one cart line in the read model.
type GetCartQueryResponse struct {
	ItemID   kernel.UUID
	Quantity int
}
