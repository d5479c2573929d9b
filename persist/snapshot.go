// Package persist mirrors the shop's in-memory state to a durable
// key-value layer. The whole snapshot is rewritten on every change; no
// backend does partial updates.
package persist

import (
	"context"

	"attarshop/domain"
)

// Fixed keys under which the collections are stored. They match the
// names the shop has always saved under, so existing data loads as-is.
const (
	KeyOils      = "perfume_oils"
	KeyOrders    = "perfume_orders"
	KeyCompanies = "perfume_companies"
	KeyShopName  = "perfume_shop_name"
)

// Snapshot is the full persisted state of the shop.
type Snapshot struct {
	Oils      []domain.Oil     `json:"perfume_oils"`
	Orders    []domain.Order   `json:"perfume_orders"`
	Companies []domain.Company `json:"perfume_companies"`
	ShopName  string           `json:"perfume_shop_name"`
}

// Store is the persistence bridge: load once at startup, save the full
// snapshot whenever any collection changes.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}

// DefaultSnapshot is the state of a shop that has never been saved:
// empty inventory and order history, the seed supplier register, and
// the default shop name.
func DefaultSnapshot() Snapshot {
	companies := make([]domain.Company, len(domain.DefaultCompanies))
	copy(companies, domain.DefaultCompanies)
	return Snapshot{
		Oils:      []domain.Oil{},
		Orders:    []domain.Order{},
		Companies: companies,
		ShopName:  domain.DefaultShopName,
	}
}

// withDefaults fills any key missing from a loaded snapshot with its
// in-code default, per-key, so partially written data still loads.
func withDefaults(snap Snapshot) Snapshot {
	def := DefaultSnapshot()
	if snap.Oils == nil {
		snap.Oils = def.Oils
	}
	if snap.Orders == nil {
		snap.Orders = def.Orders
	}
	if snap.Companies == nil {
		snap.Companies = def.Companies
	}
	if snap.ShopName == "" {
		snap.ShopName = def.ShopName
	}
	return snap
}
