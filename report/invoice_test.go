package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attarshop/domain"
)

func TestMoney_GroupsDigits(t *testing.T) {
	assert.Equal(t, "0", Money(0))
	assert.Equal(t, "500", Money(500))
	assert.Equal(t, "15,000", Money(15000))
	assert.Equal(t, "1,250,000", Money(1250000))
}

func TestRenderInvoice(t *testing.T) {
	order := domain.Order{
		ID:           "ORD-1748766600000",
		CustomerName: "زبون عام",
		Date:         "01/06/2025, 02:30:00 PM",
		Items: []domain.SaleItem{
			{OilID: "a", OilName: "عود ملكي", WeightSold: 30, PriceAtSale: 500},
			{OilID: "b", OilName: "مسك ابيض", WeightSold: 5, PriceAtSale: 500},
		},
		TotalAmount: 17500,
	}

	var buf strings.Builder
	require.NoError(t, RenderInvoice(&buf, "دار اروما للعطور", order))
	out := buf.String()

	assert.Contains(t, out, "دار اروما للعطور")
	assert.Contains(t, out, "ORD-1748766600000")
	assert.Contains(t, out, "زبون عام")
	assert.Contains(t, out, "01/06/2025, 02:30:00 PM")
	assert.Contains(t, out, "عود ملكي")
	assert.Contains(t, out, "15,000 د.ع", "line totals are grouped")
	assert.Contains(t, out, "2,500 د.ع")
	assert.Contains(t, out, "17,500 د.ع")
}

func TestRenderInvoice_SingleLine(t *testing.T) {
	order := domain.Order{
		ID:           "ORD-1",
		CustomerName: "أحمد",
		Items:        []domain.SaleItem{{OilName: "ياسمين", WeightSold: 2.5, PriceAtSale: 1000}},
		TotalAmount:  2500,
	}

	var buf strings.Builder
	require.NoError(t, RenderInvoice(&buf, "X", order))

	assert.Equal(t, 1, strings.Count(buf.String(), "غ"), "one item line")
}
