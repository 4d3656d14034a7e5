// Package storage opens the local key-value store selected in the
// configuration and defines its keys.
package storage

import (
	"context"
	"fmt"

	"career-passport/internal/adapter"
	"career-passport/internal/config"
	"career-passport/internal/database"
	"career-passport/internal/domain"
	"career-passport/internal/logger"
	"career-passport/internal/repository"

	"go.uber.org/zap"
)

// Store is an opened domain.KeyValueStore together with the resources
// that must be released when the process ends.
type Store struct {
	domain.KeyValueStore
	Driver  string
	closeFn func() error
}

// Close releases the backing connection or database. Safe on nil.
func (s *Store) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// Open connects the store named by cfg.Storage.Driver. SQL stores are
// migrated to the latest schema before use.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	driver := cfg.Storage.Driver
	log := logger.Get().With(zap.String("driver", driver))

	switch driver {
	case config.StorageDriverMemory:
		return &Store{KeyValueStore: adapter.NewMemoryStoreAdapter(), Driver: driver}, nil

	case config.StorageDriverSQLite, "":
		db, err := database.NewSQLiteDB(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if err := database.MigrateSQLite(db.DB, database.Up); err != nil {
			db.Close()
			return nil, err
		}
		repo, err := repository.NewKVDatabaseAdapter(db, repository.DialectSQLite)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Debug("Local store ready", zap.String("path", cfg.Storage.SQLite.Path))
		return &Store{KeyValueStore: repo, Driver: config.StorageDriverSQLite, closeFn: db.Close}, nil

	case config.StorageDriverOracle:
		db, err := database.NewSQLXOracleDB(cfg.GetOracleDSN())
		if err != nil {
			return nil, err
		}
		if err := database.MigrateOracle(db.DB, database.Up); err != nil {
			db.Close()
			return nil, err
		}
		repo, err := repository.NewKVDatabaseAdapter(db, repository.DialectOracle)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Debug("Local store ready", zap.String("host", cfg.Storage.Oracle.Host))
		return &Store{KeyValueStore: repo, Driver: driver, closeFn: db.Close}, nil

	case config.StorageDriverPostgres:
		db, err := database.NewPostgresDB(cfg.Storage.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if err := database.MigratePostgres(db.DB, database.Up); err != nil {
			db.Close()
			return nil, err
		}
		repo, err := repository.NewKVDatabaseAdapter(db, repository.DialectPostgres)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Debug("Local store ready")
		return &Store{KeyValueStore: repo, Driver: driver, closeFn: db.Close}, nil

	case config.StorageDriverRedis:
		client, err := NewRedisClient(ctx, cfg.Storage.Redis)
		if err != nil {
			return nil, err
		}
		log.Debug("Local store ready", zap.String("address", cfg.Storage.Redis.Address))
		return &Store{KeyValueStore: adapter.NewRedisStoreAdapter(client), Driver: driver, closeFn: client.Close}, nil

	case config.StorageDriverBadger:
		b, err := adapter.OpenBadgerStore(cfg.Storage.Badger.Path)
		if err != nil {
			return nil, err
		}
		log.Debug("Local store ready", zap.String("path", cfg.Storage.Badger.Path))
		return &Store{KeyValueStore: b, Driver: driver, closeFn: b.Close}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
