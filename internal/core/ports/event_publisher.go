package ports

import (
	"context"
	"time"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderStatusChanged describes a committed status transition.
type OrderStatusChanged struct {
	OrderID    kernel.UUID
	CustomerID string
	OldStatus  order.Status
	NewStatus  order.Status
	OccurredAt time.Time
}

// OrderEventPublisher delivers order events to the outside world.
// Publishing happens after commit, so an error never undoes the change.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
