package memory

import (
	"context"
	"errors"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

var (
	// ErrNoActiveTransaction is returned by Commit and Rollback without Begin.
	ErrNoActiveTransaction = errors.New("no active transaction")
)

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh, inactive unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers changes to the Store until Commit.
// A UnitOfWork is used by one goroutine at a time.
type UnitOfWork struct {
	store  *Store
	active bool

	held     map[kernel.UUID]keyLock
	added    []*order.Order
	statuses map[kernel.UUID]order.Status
}

// Begin starts a transaction. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	if uow.store.isClosed() {
		return ErrStoreClosed
	}

	uow.active = true
	uow.held = make(map[kernel.UUID]keyLock)
	uow.added = make([]*order.Order, 0)
	uow.statuses = make(map[kernel.UUID]order.Status)
	return nil
}

// Commit applies every buffered change at once and releases held order locks.
// On error nothing is applied.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	err := uow.store.apply(uow.added, uow.statuses)
	uow.finish()
	return err
}

// Rollback discards buffered changes and releases held order locks.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

// OrderRepository returns a repository bound to this unit of work. Without an
// active transaction its writes go straight to the store.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) finish() {
	for _, l := range uow.held {
		l.unlock()
	}
	uow.active = false
	uow.held = nil
	uow.added = nil
	uow.statuses = nil
}

func (uow *UnitOfWork) acquire(ctx context.Context, id kernel.UUID) error {
	if _, ok := uow.held[id]; ok {
		return nil
	}

	l, err := uow.store.lockFor(id)
	if err != nil {
		return err
	}
	if err = l.lock(ctx); err != nil {
		return err
	}
	uow.held[id] = l
	return nil
}
