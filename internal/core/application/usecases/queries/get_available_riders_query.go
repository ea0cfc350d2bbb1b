package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
	"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
)

// GetAvailableRidersQuery retrieves the riders that could be matched right
// now, with their last reported locations.
type GetAvailableRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates a query to list matchable riders.
// This is a parameterless query over the whole pool.
func NewGetAvailableRidersQuery() GetAvailableRidersQuery {
	return GetAvailableRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableRidersQueryIsNotConstructed if validation fails.
func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// GetAvailableRidersQueryResponse is one matchable rider in the read model.
type GetAvailableRidersQueryResponse struct {
	ID       kernel.UUID
	Location kernel.Location
}
