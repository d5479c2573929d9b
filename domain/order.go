package domain

// SaleItem is one line of a cart or committed order. OilName and
// PriceAtSale are point-in-time copies taken at sale time; later edits
// to the Oil record do not change them.
type SaleItem struct {
	OilID       string  `json:"oilId"`
	OilName     string  `json:"oilName"`
	WeightSold  float64 `json:"weightSold"`
	PriceAtSale float64 `json:"priceAtSale"`
}

// LineTotal returns the sale value of this line.
func (i SaleItem) LineTotal() float64 {
	return i.WeightSold * i.PriceAtSale
}

// Order is an immutable committed sale. TotalAmount is fixed at
// creation and never recomputed, even if prices change afterwards.
type Order struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Date         string     `json:"date"`
	Items        []SaleItem `json:"items"`
	TotalAmount  float64    `json:"totalAmount"`
}
