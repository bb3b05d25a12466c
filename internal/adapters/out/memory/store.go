// Package memory provides the in-process order store and its Unit of Work.
//
// The Store is owned by the composition root: it is created once at startup
// with NewStore and closed at shutdown. Units of work buffer their writes and
// apply them under the store lock on Commit, so readers never observe a
// partially applied change. GetForUpdate takes a per-order lock that is held
// until the unit of work commits or rolls back, which serializes status
// updates of the same order.
//
// Example:
//
//	store := memory.NewStore()
//	defer store.Close()
//
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"
	"sync"

	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

var (
	// ErrStoreClosed is returned by every operation after Close.
	ErrStoreClosed = errors.New("order store is closed")
)

// keyLock is a mutex whose Lock can be abandoned when the context ends.
type keyLock chan struct{}

func newKeyLock() keyLock {
	return make(keyLock, 1)
}

func (l keyLock) lock(ctx context.Context) error {
	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l keyLock) unlock() {
	<-l
}

// Store keeps orders in memory in insertion order.
type Store struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
	ids    []kernel.UUID
	locks  map[kernel.UUID]keyLock
	closed bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]*order.Order),
		ids:    make([]kernel.UUID, 0),
		locks:  make(map[kernel.UUID]keyLock),
	}
}

// Close releases the store. Later calls fail with ErrStoreClosed.
// Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// Get returns a copy of the committed order.
func (s *Store) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	stored, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return stored.Clone(), nil
}

// List returns copies of committed orders in insertion order, keeping only
// those with the filter status when filter is not nil.
func (s *Store) List(_ context.Context, filter *order.Status) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	result := make([]*order.Order, 0, len(s.ids))
	for _, id := range s.ids {
		stored := s.orders[id]
		if filter != nil && stored.Status() != *filter {
			continue
		}
		result = append(result, stored.Clone())
	}

	return result, nil
}

func (s *Store) contains(id kernel.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, ErrStoreClosed
	}

	_, ok := s.orders[id]
	return ok, nil
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

// lockFor returns the lock guarding a committed order, creating it on first
// use. Unknown ids get no lock, so locks never outnumber orders.
func (s *Store) lockFor(id kernel.UUID) (keyLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if _, ok := s.orders[id]; !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	l, ok := s.locks[id]
	if !ok {
		l = newKeyLock()
		s.locks[id] = l
	}
	return l, nil
}

// apply writes a batch of inserts and status changes at once. Nothing is
// written if any insert collides or any status change targets a missing order.
func (s *Store) apply(added []*order.Order, statuses map[kernel.UUID]order.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	fresh := make(map[kernel.UUID]struct{}, len(added))
	for _, o := range added {
		if _, ok := s.orders[o.ID()]; ok {
			return errs.NewObjectAlreadyExistsError("order", o.ID().String())
		}
		if _, ok := fresh[o.ID()]; ok {
			return errs.NewObjectAlreadyExistsError("order", o.ID().String())
		}
		fresh[o.ID()] = struct{}{}
	}

	for id, status := range statuses {
		if err := status.Validate(); err != nil {
			return err
		}
		_, stored := s.orders[id]
		_, inserted := fresh[id]
		if !stored && !inserted {
			return errs.NewObjectNotFoundError("order", id.String())
		}
	}

	for _, o := range added {
		s.orders[o.ID()] = o.Clone()
		s.ids = append(s.ids, o.ID())
	}

	for id, status := range statuses {
		updated, err := withStatus(s.orders[id], status)
		if err != nil {
			return err
		}
		s.orders[id] = updated
	}

	return nil
}

func withStatus(o *order.Order, status order.Status) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.ItemName(), o.Quantity(), o.CustomerID(), status)
}
