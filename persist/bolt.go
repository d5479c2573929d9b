package persist

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"attarshop/domain"
)

var boltBucket = []byte("attarshop")

// BoltStore persists the snapshot in a bbolt file, one entry per fixed
// key under a single bucket.
type BoltStore struct {
	db *bolt.DB
}

// compile-time assertion
var _ Store = (*BoltStore)(nil)

// NewBoltStore opens (or creates) the bbolt file at the given path.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		if v := b.Get([]byte(KeyOils)); v != nil {
			var oils []domain.Oil
			if err := json.Unmarshal(v, &oils); err != nil {
				return err
			}
			snap.Oils = oils
		}
		if v := b.Get([]byte(KeyOrders)); v != nil {
			var orders []domain.Order
			if err := json.Unmarshal(v, &orders); err != nil {
				return err
			}
			snap.Orders = orders
		}
		if v := b.Get([]byte(KeyCompanies)); v != nil {
			var companies []domain.Company
			if err := json.Unmarshal(v, &companies); err != nil {
				return err
			}
			snap.Companies = companies
		}
		if v := b.Get([]byte(KeyShopName)); v != nil {
			snap.ShopName = string(v)
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return withDefaults(snap), nil
}

func (s *BoltStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

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
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		if err := b.Put([]byte(KeyOils), oils); err != nil {
			return err
		}
		if err := b.Put([]byte(KeyOrders), orders); err != nil {
			return err
		}
		if err := b.Put([]byte(KeyCompanies), companies); err != nil {
			return err
		}
		return b.Put([]byte(KeyShopName), []byte(snap.ShopName))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
