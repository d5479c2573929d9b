package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attarshop/domain"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Oils: []domain.Oil{
			{ID: "x", Name: "عود ملكي", Company: "ارفكس", CurrentWeight: 70, SalePricePerGram: 500, AddedDate: "2024-01-01T00:00:00Z"},
		},
		Orders: []domain.Order{
			{ID: "ORD-1", CustomerName: "أحمد", Date: "01/06/2025, 02:30:00 PM",
				Items:       []domain.SaleItem{{OilID: "x", OilName: "عود ملكي", WeightSold: 30, PriceAtSale: 500}},
				TotalAmount: 15000},
		},
		Companies: []domain.Company{{ID: "c1", Name: "ارفكس"}},
		ShopName:  "متجر الاختبار",
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.json")
	s := NewFileStore(path)
	ctx := context.Background()

	want := sampleSnapshot()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// no leftover temp file
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_MissingFileLoadsDefaults(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Oils)
	assert.Empty(t, got.Orders)
	assert.Equal(t, domain.DefaultCompanies, got.Companies)
	assert.Equal(t, domain.DefaultShopName, got.ShopName)
}

func TestFileStore_MissingKeysFallBackPerKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	// a file written before companies and shop name existed
	require.NoError(t, os.WriteFile(path, []byte(`{"perfume_oils":[{"id":"x","name":"X","currentWeight":5}]}`), 0o644))

	got, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Oils, 1)
	assert.Equal(t, "x", got.Oils[0].ID)
	assert.Equal(t, domain.DefaultCompanies, got.Companies)
	assert.Equal(t, domain.DefaultShopName, got.ShopName)
	assert.Empty(t, got.Orders)
}

func TestFileStore_FullOverwriteOnEverySave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.json")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleSnapshot()))

	second := sampleSnapshot()
	second.Oils = nil
	second.ShopName = "بعد التعديل"
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Oils, "save replaces the whole document")
	assert.Equal(t, "بعد التعديل", got.ShopName)
}

func TestFileStore_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "shop.json")
	require.NoError(t, NewFileStore(path).Save(context.Background(), sampleSnapshot()))
	_, err := os.Stat(path)
	require.NoError(t, err)
}
