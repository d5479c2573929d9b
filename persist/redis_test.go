package persist

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attarshop/domain"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisStore_RoundTrip(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	want := sampleSnapshot()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisStore_MissingKeysLoadDefaults(t *testing.T) {
	s := newTestRedisStore(t)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Oils)
	assert.Empty(t, got.Orders)
	assert.Equal(t, domain.DefaultCompanies, got.Companies)
	assert.Equal(t, domain.DefaultShopName, got.ShopName)
}

func TestRedisStore_UsesTheFixedKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(mr.Addr())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(context.Background(), sampleSnapshot()))

	for _, key := range []string{KeyOils, KeyOrders, KeyCompanies, KeyShopName} {
		assert.True(t, mr.Exists(key), "expected key %s", key)
	}
	name, err := mr.Get(KeyShopName)
	require.NoError(t, err)
	assert.Equal(t, "متجر الاختبار", name)
}

func TestNewRedisStore_UnreachableServer(t *testing.T) {
	_, err := NewRedisStore("127.0.0.1:1")
	require.Error(t, err)
}
