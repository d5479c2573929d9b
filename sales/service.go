package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"attarshop/domain"
)

// orderDateLayout keeps the order date human-readable, as it appears on
// printed invoices. Ordering comes from the order store, never from
// parsing this field.
const orderDateLayout = "02/01/2006, 03:04:05 PM"

// Inventory is the slice of the inventory store the placement service
// needs: resolving oils and applying the committed deduction.
type Inventory interface {
	Get(ctx context.Context, id string) (domain.Oil, error)
	DeductAll(ctx context.Context, items []domain.SaleItem) error
}

// Orders is where committed orders are recorded.
type Orders interface {
	Append(ctx context.Context, order domain.Order) error
}

// Service converts a cart and the current inventory into one committed
// order plus the corresponding inventory deduction.
type Service struct {
	inventory Inventory
	orders    Orders
	now       func() time.Time
}

// NewService constructs a placement service over the given stores.
func NewService(inventory Inventory, orders Orders) *Service {
	return &Service{
		inventory: inventory,
		orders:    orders,
		now:       time.Now,
	}
}

// Place validates the whole cart, snapshots each line's name and current
// sale price, builds the immutable order and commits it: deduction
// first (all-or-nothing), then the append that cannot fail. A rejected
// cart (empty, unknown oil, or exceeding stock) leaves both stores
// untouched.
func (s *Service) Place(ctx context.Context, cart *Cart, customerName string) (domain.Order, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return domain.Order{}, domain.NewEmptyCartError()
	}

	items := make([]domain.SaleItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		oil, err := s.inventory.Get(ctx, line.OilID)
		if err != nil {
			if domain.IsOilNotFoundError(err) {
				return domain.Order{}, domain.NewUnknownOilError(line.OilID)
			}
			return domain.Order{}, err
		}
		item := domain.SaleItem{
			OilID:       oil.ID,
			OilName:     oil.Name,
			WeightSold:  line.WeightSold,
			PriceAtSale: oil.SalePricePerGram,
		}
		items = append(items, item)
		total += item.LineTotal()
	}

	name := strings.TrimSpace(customerName)
	if name == "" {
		name = domain.DefaultCustomerName
	}
	now := s.now()
	order := domain.Order{
		ID:           fmt.Sprintf("ORD-%d", now.UnixMilli()),
		CustomerName: name,
		Date:         now.Format(orderDateLayout),
		Items:        items,
		TotalAmount:  total,
	}

	if err := s.inventory.DeductAll(ctx, items); err != nil {
		return domain.Order{}, err
	}
	if err := s.orders.Append(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
