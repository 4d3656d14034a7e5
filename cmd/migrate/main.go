// Command migrate applies or rolls back the local store schema.
//
//	migrate [up|down]
package main

import (
	"log"
	"os"

	"career-passport/internal/config"
	"career-passport/internal/database"
	"career-passport/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	dir := database.Up
	if len(os.Args) > 1 {
		dir = database.Direction(os.Args[1])
	}
	if dir != database.Up && dir != database.Down {
		l.Fatal("Usage: migrate [up|down]", zap.String("direction", string(dir)))
	}

	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		db, err := database.NewSQLiteDB(cfg.Storage.SQLite.Path)
		if err != nil {
			l.Fatal("Failed to open database", zap.Error(err))
		}
		defer db.Close()
		if err := database.MigrateSQLite(db.DB, dir); err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}

	case config.StorageDriverOracle:
		db, err := database.NewSQLXOracleDB(cfg.GetOracleDSN())
		if err != nil {
			l.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := database.MigrateOracle(db.DB, dir); err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}

	case config.StorageDriverPostgres:
		db, err := database.NewPostgresDB(cfg.Storage.Postgres.DSN)
		if err != nil {
			l.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		if err := database.MigratePostgres(db.DB, dir); err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}

	default:
		l.Info("Storage driver has no schema, nothing to migrate", zap.String("driver", cfg.Storage.Driver))
	}
}
