package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attarshop/domain"
	"attarshop/store"
)

func newFixture(t *testing.T, oils ...domain.Oil) (*Service, *store.InventoryStore, *store.OrderStore) {
	t.Helper()
	inv := store.NewInventoryStore()
	for _, o := range oils {
		if o.AddedDate == "" {
			o.AddedDate = "2024-01-01T00:00:00Z"
		}
		require.NoError(t, inv.Add(context.Background(), o))
	}
	orders := store.NewOrderStore()
	svc := NewService(inv, orders)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	}
	return svc, inv, orders
}

func TestPlace_HappyPath(t *testing.T) {
	svc, inv, orders := newFixture(t, testOil("x", "عود ملكي", 100, 500))
	ctx := context.Background()

	cart := NewCart()
	oil, err := inv.Get(ctx, "x")
	require.NoError(t, err)
	require.NoError(t, cart.AddLine(oil, 30))

	order, err := svc.Place(ctx, cart, "أحمد")
	require.NoError(t, err)

	assert.Equal(t, "أحمد", order.CustomerName)
	assert.NotEmpty(t, order.ID)
	assert.Contains(t, order.ID, "ORD-")
	require.Len(t, order.Items, 1)
	assert.Equal(t, domain.SaleItem{OilID: "x", OilName: "عود ملكي", WeightSold: 30, PriceAtSale: 500}, order.Items[0])
	assert.Equal(t, 15000.0, order.TotalAmount)

	got, err := inv.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 70.0, got.CurrentWeight)

	listed, err := orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, order.ID, listed[0].ID)
}

func TestPlace_EmptyCart(t *testing.T) {
	svc, inv, orders := newFixture(t, testOil("x", "X", 100, 500))
	ctx := context.Background()

	_, err := svc.Place(ctx, NewCart(), "A")
	assert.True(t, domain.IsEmptyCartError(err))

	got, _ := inv.Get(ctx, "x")
	assert.Equal(t, 100.0, got.CurrentWeight)
	listed, _ := orders.List(ctx)
	assert.Empty(t, listed)
}

func TestPlace_InsufficientStockRejectsWholeCart(t *testing.T) {
	svc, inv, orders := newFixture(t,
		testOil("x", "X", 100, 500),
		testOil("y", "Y", 20, 300),
	)
	ctx := context.Background()

	// build the cart from a stale view so the y line overdraws
	cart := NewCart()
	require.NoError(t, cart.AddLine(testOil("x", "X", 100, 500), 30))
	require.NoError(t, cart.AddLine(testOil("y", "Y", 100, 300), 30))

	_, err := svc.Place(ctx, cart, "A")
	require.Error(t, err)
	assert.True(t, domain.IsInsufficientStockError(err))

	x, _ := inv.Get(ctx, "x")
	y, _ := inv.Get(ctx, "y")
	assert.Equal(t, 100.0, x.CurrentWeight, "no line may commit when any line fails")
	assert.Equal(t, 20.0, y.CurrentWeight)
	listed, _ := orders.List(ctx)
	assert.Empty(t, listed)
}

func TestPlace_RejectedScenarioFromStaleCart(t *testing.T) {
	// oil has 20g; a cart built earlier asks for 30g
	svc, inv, orders := newFixture(t, testOil("x", "X", 20, 500))
	ctx := context.Background()

	cart := NewCart()
	require.NoError(t, cart.AddLine(testOil("x", "X", 50, 500), 30))

	_, err := svc.Place(ctx, cart, "")
	assert.True(t, domain.IsInsufficientStockError(err))

	got, _ := inv.Get(ctx, "x")
	assert.Equal(t, 20.0, got.CurrentWeight)
	listed, _ := orders.List(ctx)
	assert.Empty(t, listed)
}

func TestPlace_UnknownOilFailsWholeOrder(t *testing.T) {
	svc, inv, orders := newFixture(t, testOil("x", "X", 100, 500))
	ctx := context.Background()

	cart := NewCart()
	require.NoError(t, cart.AddLine(testOil("x", "X", 100, 500), 30))
	require.NoError(t, cart.AddLine(testOil("ghost", "Ghost", 100, 100), 5))

	_, err := svc.Place(ctx, cart, "A")
	require.Error(t, err)
	assert.True(t, domain.IsUnknownOilError(err))

	got, _ := inv.Get(ctx, "x")
	assert.Equal(t, 100.0, got.CurrentWeight, "valid lines must not commit alongside an unknown oil")
	listed, _ := orders.List(ctx)
	assert.Empty(t, listed)
}

func TestPlace_SnapshotsCurrentSalePriceNotCartPrice(t *testing.T) {
	svc, inv, _ := newFixture(t, testOil("x", "X", 100, 500))
	ctx := context.Background()

	// cart was assembled when the price was different
	cart := NewCart()
	require.NoError(t, cart.AddLine(testOil("x", "X", 100, 350), 10))

	order, err := svc.Place(ctx, cart, "A")
	require.NoError(t, err)
	assert.Equal(t, 500.0, order.Items[0].PriceAtSale, "placement uses the oil's current sale price")
	assert.Equal(t, 5000.0, order.TotalAmount)

	// later price edits must not touch the committed order
	newPrice := 900.0
	_, err = inv.Update(ctx, "x", domain.OilPatch{SalePricePerGram: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 500.0, order.Items[0].PriceAtSale)
	assert.Equal(t, 5000.0, order.TotalAmount)
}

func TestPlace_DefaultCustomerNameAndDate(t *testing.T) {
	svc, inv, _ := newFixture(t, testOil("x", "X", 100, 500))
	ctx := context.Background()

	cart := NewCart()
	oil, _ := inv.Get(ctx, "x")
	require.NoError(t, cart.AddLine(oil, 1))

	order, err := svc.Place(ctx, cart, "   ")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCustomerName, order.CustomerName)
	assert.Equal(t, "01/06/2025, 02:30:00 PM", order.Date)
}

func TestPlace_OrdersListNewestFirst(t *testing.T) {
	svc, inv, orders := newFixture(t, testOil("x", "X", 100, 500))
	ctx := context.Background()

	times := []time.Time{
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	}
	i := 0
	svc.now = func() time.Time { t := times[i]; i++; return t }

	for range times {
		cart := NewCart()
		oil, _ := inv.Get(ctx, "x")
		require.NoError(t, cart.AddLine(oil, 1))
		_, err := svc.Place(ctx, cart, "A")
		require.NoError(t, err)
	}

	listed, err := orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "11:00:00 AM", listed[0].Date[12:])
	assert.Equal(t, "10:00:00 AM", listed[1].Date[12:])
}
