package persist

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"attarshop/domain"
)

// kvRow is one fixed key and its serialized value.
type kvRow struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (kvRow) TableName() string { return "shop_kv" }

// SQLiteStore persists the snapshot in an embedded sqlite database, one
// row per fixed key.
type SQLiteStore struct {
	db *gorm.DB
}

// compile-time assertion
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the sqlite database at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var row kvRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	if v, err := s.get(ctx, KeyOils); err != nil {
		return Snapshot{}, err
	} else if v != nil {
		var oils []domain.Oil
		if err := json.Unmarshal(v, &oils); err != nil {
			return Snapshot{}, err
		}
		snap.Oils = oils
	}
	if v, err := s.get(ctx, KeyOrders); err != nil {
		return Snapshot{}, err
	} else if v != nil {
		var orders []domain.Order
		if err := json.Unmarshal(v, &orders); err != nil {
			return Snapshot{}, err
		}
		snap.Orders = orders
	}
	if v, err := s.get(ctx, KeyCompanies); err != nil {
		return Snapshot{}, err
	} else if v != nil {
		var companies []domain.Company
		if err := json.Unmarshal(v, &companies); err != nil {
			return Snapshot{}, err
		}
		snap.Companies = companies
	}
	if v, err := s.get(ctx, KeyShopName); err != nil {
		return Snapshot{}, err
	} else if v != nil {
		snap.ShopName = string(v)
	}
	return withDefaults(snap), nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap Snapshot) error {
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
	rows := []kvRow{
		{Key: KeyOils, Value: oils},
		{Key: KeyOrders, Value: orders},
		{Key: KeyCompanies, Value: companies},
		{Key: KeyShopName, Value: []byte(snap.ShopName)},
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rows).Error
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
