// Package store provides the in-memory collections that hold the shop's
// working state: oils, orders and companies.
package store

import (
	"context"
	"sync"

	"attarshop/domain"
)

// InventoryStore owns the mapping of oil ID to oil record. Iteration
// order is insertion order, so listings stay stable across edits.
type InventoryStore struct {
	mu    sync.RWMutex
	index map[string]int
	oils  []domain.Oil
}

// NewInventoryStore constructs an empty InventoryStore.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		index: make(map[string]int),
	}
}

// Add inserts a new oil. The record must carry a unique ID.
func (s *InventoryStore) Add(ctx context.Context, oil domain.Oil) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateOil(oil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[oil.ID]; exists {
		return domain.NewDuplicateOilError(oil.ID)
	}
	s.index[oil.ID] = len(s.oils)
	s.oils = append(s.oils, oil)
	return nil
}

// Get returns the oil with the given ID.
func (s *InventoryStore) Get(ctx context.Context, id string) (domain.Oil, error) {
	if err := ctx.Err(); err != nil {
		return domain.Oil{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Oil{}, domain.NewOilNotFoundError(id)
	}
	return s.oils[i], nil
}

// Update merges the set fields of the patch into the existing record.
// ID and AddedDate are never altered.
func (s *InventoryStore) Update(ctx context.Context, id string, patch domain.OilPatch) (domain.Oil, error) {
	if err := ctx.Err(); err != nil {
		return domain.Oil{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Oil{}, domain.NewOilNotFoundError(id)
	}
	updated := patch.Apply(s.oils[i])
	updated.ID = s.oils[i].ID
	updated.AddedDate = s.oils[i].AddedDate
	if err := domain.ValidateOil(updated); err != nil {
		return domain.Oil{}, err
	}
	s.oils[i] = updated
	return updated, nil
}

// Delete removes the record. Deleting an absent ID is a no-op: the UI
// confirms first, then removes unconditionally.
func (s *InventoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil
	}
	s.oils = append(s.oils[:i], s.oils[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.oils); j++ {
		s.index[s.oils[j].ID] = j
	}
	return nil
}

// List returns all oils in insertion order.
func (s *InventoryStore) List(ctx context.Context) ([]domain.Oil, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Oil, len(s.oils))
	copy(out, s.oils)
	return out, nil
}

// DeductAll applies the inventory side of a committed order: every
// line's weight is subtracted from its oil. The whole batch is checked
// against live stock before anything is touched, so a rejection leaves
// every record unchanged. Requests for the same oil are summed first in
// case the caller did not merge its lines.
func (s *InventoryStore) DeductAll(ctx context.Context, items []domain.SaleItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	need := make(map[string]float64, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		if it.WeightSold <= 0 {
			return domain.NewInvalidOilError("weightSold", "must be positive", it.WeightSold)
		}
		if _, seen := need[it.OilID]; !seen {
			order = append(order, it.OilID)
		}
		need[it.OilID] += it.WeightSold
	}
	for _, id := range order {
		i, ok := s.index[id]
		if !ok {
			return domain.NewUnknownOilError(id)
		}
		if need[id] > s.oils[i].CurrentWeight {
			return domain.NewInsufficientStockError(id, s.oils[i].Name, need[id], s.oils[i].CurrentWeight)
		}
	}
	for _, id := range order {
		s.oils[s.index[id]].CurrentWeight -= need[id]
	}
	return nil
}

// Restock increases an oil's current weight by the given grams. This is
// the only path besides Update that increases stock.
func (s *InventoryStore) Restock(ctx context.Context, id string, grams float64) (domain.Oil, error) {
	if err := ctx.Err(); err != nil {
		return domain.Oil{}, err
	}
	if grams <= 0 {
		return domain.Oil{}, domain.NewInvalidOilError("currentWeight", "restock must be positive", grams)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Oil{}, domain.NewOilNotFoundError(id)
	}
	s.oils[i].CurrentWeight += grams
	return s.oils[i], nil
}

// Replace swaps the whole collection, used when loading a snapshot.
func (s *InventoryStore) Replace(oils []domain.Oil) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.oils = make([]domain.Oil, len(oils))
	copy(s.oils, oils)
	s.index = make(map[string]int, len(oils))
	for i, o := range s.oils {
		s.index[o.ID] = i
	}
}
