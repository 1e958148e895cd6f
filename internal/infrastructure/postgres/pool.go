package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/chirper/config"
)

// PoolOptions sizes the pgx pool.
type PoolOptions struct {
	DSN         string
	MaxConns    int32
	MinConns    int32
	MaxConnLife time.Duration
}

func PoolOptionsFrom(c *config.Config) PoolOptions {
	return PoolOptions{DSN: c.PostgresDSN(), MaxConns: c.DBMaxConns, MinConns: c.DBMinConns, MaxConnLife: c.DBMaxConnLife}
}

// NewPool opens a pgx pool and verifies it with a ping. With a logger at
// debug level every query is traced through it.
func NewPool(ctx context.Context, opts PoolOptions, logger *logrus.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = opts.MaxConns
	cfg.MinConns = opts.MinConns
	cfg.MaxConnLifetime = opts.MaxConnLife
	if logger != nil && logger.IsLevelEnabled(logrus.DebugLevel) {
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{Logger: queryLogger(logger), LogLevel: tracelog.LogLevelDebug}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func queryLogger(logger *logrus.Logger) tracelog.Logger {
	entry := logger.WithField("component", "postgres")
	return tracelog.LoggerFunc(func(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		e := entry.WithFields(data)
		switch level {
		case tracelog.LogLevelError:
			e.Error(msg)
		case tracelog.LogLevelWarn:
			e.Warn(msg)
		default:
			e.Debug(msg)
		}
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}
