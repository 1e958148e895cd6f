package container

import (
	"context"
	"fmt"

	"github.com/oksasatya/chirper/config"
	pginfra "github.com/oksasatya/chirper/internal/infrastructure/postgres"
	"github.com/oksasatya/chirper/internal/infrastructure/sqlite"
)

// OpenStore connects the configured store, applies its schema and registers
// it in the container. The returned func releases the connection.
func OpenStore(ctx context.Context, c *config.Config) (func(), error) {
	switch c.StoreDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(c.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		SetSQLite(db)
		return func() { _ = db.Close() }, nil
	default:
		pool, err := pginfra.NewPool(ctx, pginfra.PoolOptionsFrom(c), GetLogger())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pginfra.Migrate(c.PostgresDSN(), c.MigrationsDir, GetLogger()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		SetPGPool(pool)
		return pool.Close, nil
	}
}
