package domain

// LowStockThreshold is the weight in grams at or below which an oil is
// flagged for replenishment. Display concern only; it never blocks a sale.
const LowStockThreshold = 50.0

// DefaultShopName is used until the owner configures one.
const DefaultShopName = "دار اروما للعطور"

// DefaultCustomerName labels orders placed without a customer name.
const DefaultCustomerName = "زبون عام"

// Categories lists the fragrance categories the shop stocks.
var Categories = []string{"فرنسي", "شرقي", "عود", "زهري", "خشبي", "مسك"}

// DefaultCompanies seeds the supplier register on first run.
var DefaultCompanies = []Company{
	{ID: "1", Name: "اروما حسن الساعدي"},
	{ID: "2", Name: "saa"},
	{ID: "3", Name: "ارفكس"},
	{ID: "4", Name: "dhh دانا"},
	{ID: "5", Name: "KH استاذ هيثم"},
	{ID: "6", Name: "كارنزا"},
	{ID: "7", Name: "جنييل"},
	{ID: "8", Name: "جوفيدان"},
	{ID: "9", Name: "بيبي اصنص"},
	{ID: "10", Name: "pb اصنص"},
}
