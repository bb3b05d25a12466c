package memory

import (
	"context"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on top of a UnitOfWork.
// Reads see committed state plus the unit of work's own pending changes.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stages a new order.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.uow.active {
		return r.uow.store.apply([]*order.Order{aggregate}, nil)
	}

	if r.pending(aggregate.ID()) != nil {
		return errs.NewObjectAlreadyExistsError("order", aggregate.ID().String())
	}
	exists, err := r.uow.store.contains(aggregate.ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("order", aggregate.ID().String())
	}

	r.uow.added = append(r.uow.added, aggregate.Clone())
	return nil
}

// Get returns the order as this unit of work sees it.
func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if !r.uow.active {
		return r.uow.store.Get(ctx, id)
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	current := r.pending(id)
	if current == nil {
		stored, err := r.uow.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		current = stored
	}

	return r.overlay(current)
}

// GetForUpdate locks the order until Commit or Rollback, then reads it.
// Orders staged by this unit of work are invisible to others and need no lock.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if !r.uow.active {
		return r.uow.store.Get(ctx, id)
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	if r.pending(id) != nil {
		return r.Get(ctx, id)
	}
	if err := r.uow.acquire(ctx, id); err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// List returns committed and staged orders in insertion order.
func (r *OrderRepository) List(ctx context.Context, filter *order.Status) ([]*order.Order, error) {
	if !r.uow.active {
		return r.uow.store.List(ctx, filter)
	}

	committed, err := r.uow.store.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	result := make([]*order.Order, 0, len(committed)+len(r.uow.added))
	for _, o := range append(committed, r.uow.added...) {
		current, overlayErr := r.overlay(o)
		if overlayErr != nil {
			return nil, overlayErr
		}
		if filter != nil && current.Status() != *filter {
			continue
		}
		result = append(result, current)
	}

	return result, nil
}

// UpdateStatus stages a new status for an existing order.
func (r *OrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	status order.Status,
) (*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if !r.uow.active {
		if err := r.uow.store.apply(nil, map[kernel.UUID]order.Status{id: status}); err != nil {
			return nil, err
		}
		return r.uow.store.Get(ctx, id)
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.uow.statuses[id] = status
	return withStatus(current, status)
}

func (r *OrderRepository) pending(id kernel.UUID) *order.Order {
	for _, o := range r.uow.added {
		if o.ID().IsEqual(id) {
			return o.Clone()
		}
	}
	return nil
}

func (r *OrderRepository) overlay(o *order.Order) (*order.Order, error) {
	status, ok := r.uow.statuses[o.ID()]
	if !ok {
		return o.Clone(), nil
	}
	return withStatus(o, status)
}
