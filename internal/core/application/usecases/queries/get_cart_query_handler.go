package queries

import (
	"context"
	"errors"
	"sort"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetCartQueryHandler reads cart contents from the cart registry.
// A customer without a cart reads as an empty cart.
type GetCartQueryHandler struct {
	carts ports.CartRegistry
}

// NewGetCartQueryHandler creates a handler for cart read queries.
func NewGetCartQueryHandler(carts ports.CartRegistry) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

// Handle returns the customer's cart lines sorted by item id, so repeated
// reads of the same cart produce identical output.
func (h GetCartQueryHandler) Handle(
	_ context.Context,
	query GetCartQuery,
) ([]GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cart, err := h.carts.Get(query.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return []GetCartQueryResponse{}, nil
		}
		return nil, err
	}

	items := cart.Items()
	lines := make([]GetCartQueryResponse, 0, len(items))
	for itemID, quantity := range items {
		lines = append(lines, GetCartQueryResponse{
			ItemID:   itemID,
			Quantity: quantity,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ItemID.String() < lines[j].ItemID.String()
	})

	return lines, nil
}
