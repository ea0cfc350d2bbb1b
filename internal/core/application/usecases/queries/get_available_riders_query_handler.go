package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// PoolSnapshotter exposes a point-in-time view of the rider pool.
type PoolSnapshotter interface {
	Snapshot() []services.RiderSnapshot
}

// GetAvailableRidersQueryHandler lists riders that a match could claim:
// available and with a known location.
type GetAvailableRidersQueryHandler struct {
	pool PoolSnapshotter
}

// NewGetAvailableRidersQueryHandler creates a handler for rider listing.
func NewGetAvailableRidersQueryHandler(pool PoolSnapshotter) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{pool: pool}
}

// Handle returns matchable riders in registration order. Riders that are on
// a delivery or have never reported a location are excluded.
func (h GetAvailableRidersQueryHandler) Handle(
	_ context.Context,
	query GetAvailableRidersQuery,
) ([]GetAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots := h.pool.Snapshot()
	riders := make([]GetAvailableRidersQueryResponse, 0, len(snapshots))
	for _, s := range snapshots {
		if !s.Available || !s.Located {
			continue
		}
		riders = append(riders, GetAvailableRidersQueryResponse{
			ID:       s.ID,
			Location: s.Location,
		})
	}

	return riders, nil
}
