// Package ports defines the persistence contracts of the order tracker.
// Adapters under internal/adapters/out implement them; use cases depend only
// on these interfaces.
package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// Returns an ObjectAlreadyExistsError if an order with the same id is stored.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id and holds it exclusively until the
	// surrounding unit of work commits or rolls back. Outside a unit of work it
	// behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders in insertion order. A nil filter returns every order,
	// otherwise only orders whose status equals *filter.
	List(ctx context.Context, filter *order.Status) ([]*order.Order, error)

	// UpdateStatus persists a new status for an existing order and returns the
	// stored aggregate. It does not check the transition table; callers do.
	// Returns an ObjectNotFoundError if the order does not exist.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) (*order.Order, error)
}
