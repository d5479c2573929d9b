// Package sales implements cart assembly and order placement, the one
// path through which inventory may be deducted.
package sales

import (
	"attarshop/domain"
)

// Cart is the in-progress, not-yet-committed set of sale lines for one
// order. Lines for the same oil merge by summing weight, so an oil
// appears at most once.
type Cart struct {
	lines []domain.SaleItem
}

// NewCart constructs an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddLine adds weight grams of the given oil to the cart, merging with
// an existing line for the same oil. The merged weight is checked
// against the oil's live stock; the check is advisory, placement
// re-validates the whole cart atomically.
func (c *Cart) AddLine(oil domain.Oil, weight float64) error {
	if weight <= 0 {
		return domain.NewInvalidOilError("weightSold", "must be positive", weight)
	}
	for i, line := range c.lines {
		if line.OilID == oil.ID {
			merged := line.WeightSold + weight
			if merged > oil.CurrentWeight {
				return domain.NewInsufficientStockError(oil.ID, oil.Name, merged, oil.CurrentWeight)
			}
			c.lines[i].WeightSold = merged
			return nil
		}
	}
	if weight > oil.CurrentWeight {
		return domain.NewInsufficientStockError(oil.ID, oil.Name, weight, oil.CurrentWeight)
	}
	c.lines = append(c.lines, domain.SaleItem{
		OilID:       oil.ID,
		OilName:     oil.Name,
		WeightSold:  weight,
		PriceAtSale: oil.SalePricePerGram,
	})
	return nil
}

// RemoveLine drops the line for the given oil, if present.
func (c *Cart) RemoveLine(oilID string) {
	for i, line := range c.lines {
		if line.OilID == oilID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart lines in order of entry.
func (c *Cart) Lines() []domain.SaleItem {
	out := make([]domain.SaleItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the running sum of the cart's line totals.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.LineTotal()
	}
	return total
}
