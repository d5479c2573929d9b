// Package report renders the read-only views of the shop: the
// dashboard summary and the printable invoice.
package report

import (
	"attarshop/domain"
)

// recentOrderCount bounds the dashboard's recent-activity list.
const recentOrderCount = 5

// Summary is the dashboard view over the current state.
type Summary struct {
	OilCount         int
	OrderCount       int
	TotalStockWeight float64
	TotalSales       float64
	PurchaseValue    float64
	LowStock         []domain.Oil
	RecentOrders     []domain.Order
}

// BuildSummary computes the dashboard figures from the current oils and
// the order history (orders newest first).
func BuildSummary(oils []domain.Oil, orders []domain.Order) Summary {
	s := Summary{
		OilCount:   len(oils),
		OrderCount: len(orders),
	}
	for _, o := range oils {
		s.TotalStockWeight += o.CurrentWeight
		s.PurchaseValue += o.CurrentWeight * o.PurchasePricePerGram
		if o.CurrentWeight <= domain.LowStockThreshold {
			s.LowStock = append(s.LowStock, o)
		}
	}
	for _, o := range orders {
		s.TotalSales += o.TotalAmount
	}
	n := len(orders)
	if n > recentOrderCount {
		n = recentOrderCount
	}
	s.RecentOrders = orders[:n]
	return s
}
