// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models instead of aggregates.
package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderReader is the read side of the order store. Both store adapters
// provide one outside of any unit of work.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	List(ctx context.Context, filter *order.Status) ([]*order.Order, error)
}

// OrderResponse is the read model of a single order.
type OrderResponse struct {
	ID         kernel.UUID
	ItemName   string
	Quantity   int
	CustomerID string
	Status     order.Status
}

// NewOrderResponse projects an aggregate onto the read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID(),
		ItemName:   o.ItemName(),
		Quantity:   o.Quantity(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
	}
}
