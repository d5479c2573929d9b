// Package shop wires the in-memory collections to the persistence
// bridge. It is the application-state container: every CLI operation
// goes through it, and every successful mutation commits the full
// snapshot.
package shop

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"attarshop/domain"
	"attarshop/persist"
	"attarshop/sales"
	"attarshop/store"
)

// Shop holds the whole working state of one store: inventory, order
// history, supplier register and settings.
type Shop struct {
	mu        sync.Mutex
	inventory *store.InventoryStore
	orders    *store.OrderStore
	companies *store.CompanyStore
	placement *sales.Service
	bridge    persist.Store
	shopName  string
	now       func() time.Time
}

// Open loads the persisted snapshot and builds a ready Shop around it.
func Open(ctx context.Context, bridge persist.Store) (*Shop, error) {
	snap, err := bridge.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shop state: %w", err)
	}

	s := &Shop{
		inventory: store.NewInventoryStore(),
		orders:    store.NewOrderStore(),
		companies: store.NewCompanyStore(),
		bridge:    bridge,
		shopName:  snap.ShopName,
		now:       time.Now,
	}
	s.inventory.Replace(snap.Oils)
	s.orders.Replace(snap.Orders)
	s.companies.Replace(snap.Companies)
	s.placement = sales.NewService(s.inventory, s.orders)

	slog.Info("shop loaded",
		"oils", len(snap.Oils),
		"orders", len(snap.Orders),
		"companies", len(snap.Companies),
	)
	return s, nil
}

// commit rewrites the full snapshot. Callers hold s.mu.
func (s *Shop) commit(ctx context.Context) error {
	oils, err := s.inventory.List(ctx)
	if err != nil {
		return err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return err
	}
	companies, err := s.companies.List(ctx)
	if err != nil {
		return err
	}
	snap := persist.Snapshot{
		Oils:      oils,
		Orders:    orders,
		Companies: companies,
		ShopName:  s.shopName,
	}
	if err := s.bridge.Save(ctx, snap); err != nil {
		return fmt.Errorf("save shop state: %w", err)
	}
	return nil
}

// AddOil assigns the new oil an ID and creation date and stores it.
func (s *Shop) AddOil(ctx context.Context, oil domain.Oil) (domain.Oil, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if oil.ID == "" {
		oil.ID = uuid.NewString()
	}
	oil.AddedDate = s.now().UTC().Format(time.RFC3339)
	if err := s.inventory.Add(ctx, oil); err != nil {
		return domain.Oil{}, err
	}
	return oil, s.commit(ctx)
}

// UpdateOil merges the patch into an existing oil.
func (s *Shop) UpdateOil(ctx context.Context, id string, patch domain.OilPatch) (domain.Oil, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	oil, err := s.inventory.Update(ctx, id, patch)
	if err != nil {
		return domain.Oil{}, err
	}
	return oil, s.commit(ctx)
}

// DeleteOil removes an oil. Absent IDs are a no-op.
func (s *Shop) DeleteOil(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inventory.Delete(ctx, id); err != nil {
		return err
	}
	return s.commit(ctx)
}

// RestockOil increases an oil's stock by the given grams.
func (s *Shop) RestockOil(ctx context.Context, id string, grams float64) (domain.Oil, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	oil, err := s.inventory.Restock(ctx, id, grams)
	if err != nil {
		return domain.Oil{}, err
	}
	return oil, s.commit(ctx)
}

// Oil returns one oil by ID.
func (s *Shop) Oil(ctx context.Context, id string) (domain.Oil, error) {
	return s.inventory.Get(ctx, id)
}

// Oils lists the inventory in insertion order.
func (s *Shop) Oils(ctx context.Context) ([]domain.Oil, error) {
	return s.inventory.List(ctx)
}

// ImportOils adds a batch of oil records. The whole batch is validated
// first; a bad record rejects the import with nothing added.
func (s *Shop) ImportOils(ctx context.Context, oils []domain.Oil) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(oils))
	prepared := make([]domain.Oil, 0, len(oils))
	for i, oil := range oils {
		if oil.ID == "" {
			oil.ID = uuid.NewString()
		}
		if oil.AddedDate == "" {
			oil.AddedDate = s.now().UTC().Format(time.RFC3339)
		}
		if err := domain.ValidateOil(oil); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if seen[oil.ID] {
			return fmt.Errorf("record %d: %w", i, domain.NewDuplicateOilError(oil.ID))
		}
		if _, err := s.inventory.Get(ctx, oil.ID); err == nil {
			return fmt.Errorf("record %d: %w", i, domain.NewDuplicateOilError(oil.ID))
		}
		seen[oil.ID] = true
		prepared = append(prepared, oil)
	}
	for _, oil := range prepared {
		if err := s.inventory.Add(ctx, oil); err != nil {
			return err
		}
	}
	return s.commit(ctx)
}

// PlaceOrder commits a cart as one order, deducting inventory.
func (s *Shop) PlaceOrder(ctx context.Context, cart *sales.Cart, customerName string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.placement.Place(ctx, cart, customerName)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.commit(ctx); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// Orders lists placed orders newest first.
func (s *Shop) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// Order returns one order by ID, for invoice reprints.
func (s *Shop) Order(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.Get(ctx, id)
}

// AddCompany registers a new supplier name.
func (s *Shop) AddCompany(ctx context.Context, name string) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.companies.Add(ctx, name)
	if err != nil {
		return domain.Company{}, err
	}
	return c, s.commit(ctx)
}

// RemoveCompany deletes a supplier. Oils carrying the name keep it;
// the company is a copied label, not a reference.
func (s *Shop) RemoveCompany(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.companies.Remove(ctx, id); err != nil {
		return err
	}
	return s.commit(ctx)
}

// Companies lists the supplier register in insertion order.
func (s *Shop) Companies(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

// ShopName returns the configured shop name.
func (s *Shop) ShopName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shopName
}

// SetShopName updates the shop name shown on invoices.
func (s *Shop) SetShopName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("shop name cannot be empty")
	}
	s.shopName = name
	return s.commit(ctx)
}
