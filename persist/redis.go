package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"attarshop/domain"
)

// RedisStore persists the snapshot under the four fixed keys on a local
// redis server. A key-value bridge, not a sync protocol: the shop is
// still the only writer.
type RedisStore struct {
	client *redis.Client
}

// compile-time assertion
var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to redis at the given address and pings it.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) getBytes(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *RedisStore) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	if v, err := s.getBytes(ctx, KeyOils); err != nil {
		return Snapshot{}, err
	} else if v != nil {
		var oils []domain.Oil
		if err := json.Unmarshal(v, &oils); err != nil {
			return Snapshot{}, err
		}
		snap.Oils = oils
	}
	if v, err := s.getBytes(ctx, KeyOrders); err != nil {
		return Snapshot{}, err
	} else if v != nil {
		var orders []domain.Order
		if err := json.Unmarshal(v, &orders); err != nil {
			return Snapshot{}, err
		}
		snap.Orders = orders
	}
	if v, err := s.getBytes(ctx, KeyCompanies); err != nil {
		return Snapshot{}, err
	} else if v != nil {
		var companies []domain.Company
		if err := json.Unmarshal(v, &companies); err != nil {
			return Snapshot{}, err
		}
		snap.Companies = companies
	}
	name, err := s.client.Get(ctx, KeyShopName).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Snapshot{}, err
	}
	snap.ShopName = name
	return withDefaults(snap), nil
}

func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	oils, err := json.Marshal(snap.Oils)
	if err != nil {
		return err
	}
	orders, err := json.Marshal(snap.Orders)
	if err != nil {
		return err
	}
	companies, err := json.Marshal(snap.Companies)
	if err != nil {
		return err
	}
	pipe := s.client.Pipeline()
	pipe.Set(ctx, KeyOils, oils, 0)
	pipe.Set(ctx, KeyOrders, orders, 0)
	pipe.Set(ctx, KeyCompanies, companies, 0)
	pipe.Set(ctx, KeyShopName, snap.ShopName, 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
