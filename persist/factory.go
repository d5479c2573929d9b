package persist

import (
	"fmt"
)

// Default file locations per backend kind, used when no path is given.
const (
	defaultJSONPath   = "data/attarshop.json"
	defaultBoltPath   = "data/attarshop.db"
	defaultSQLitePath = "data/attarshop.sqlite"
)

// NewStore constructs a Store by kind: "json", "bolt", "sqlite",
// "redis" or "memory". path applies to the file-backed kinds and falls
// back to a per-kind default; redisAddr applies to "redis" only.
func NewStore(kind, path, redisAddr string) (Store, error) {
	switch kind {
	case "json", "file":
		if path == "" {
			path = defaultJSONPath
		}
		return NewFileStore(path), nil
	case "bolt":
		if path == "" {
			path = defaultBoltPath
		}
		return NewBoltStore(path)
	case "sqlite":
		if path == "" {
			path = defaultSQLitePath
		}
		return NewSQLiteStore(path)
	case "redis":
		if redisAddr == "" {
			return nil, fmt.Errorf("redis address required for redis store")
		}
		return NewRedisStore(redisAddr)
	case "memory", "mem":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
