package store

import (
	"context"
	"sync"

	"attarshop/domain"
)

// OrderStore owns the list of placed orders, kept newest first.
// Orders are append-only; there is no edit or cancel path.
type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderStore constructs an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Append prepends the order so the most recent order is first. IDs are
// time-derived by the placement service and assumed unique in this
// single-process system, so no duplicate check is done.
func (s *OrderStore) Append(ctx context.Context, order domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]domain.Order{order}, s.orders...)
	return nil
}

// Get returns the order with the given ID.
func (s *OrderStore) Get(ctx context.Context, id string) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.NewOrderNotFoundError(id)
}

// List returns orders newest first.
func (s *OrderStore) List(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// Replace swaps the whole collection, used when loading a snapshot.
func (s *OrderStore) Replace(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]domain.Order, len(orders))
	copy(s.orders, orders)
}
