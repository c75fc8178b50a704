package kvstore

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payledger/internal/domain/port/persistence"
)

// Supported drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config selects and configures a KeyValueStore
type Config struct {
	Driver string
	Path   string
	Redis  RedisOptions
}

// Open creates the store named by cfg.Driver
func Open(ctx context.Context, cfg Config) (persistence.KeyValueStore, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil
	case DriverSQLite:
		return OpenSQLiteStore(ctx, cfg.Path)
	case DriverRedis:
		return OpenRedisStore(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
