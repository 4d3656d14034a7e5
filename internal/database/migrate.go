package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"career-passport/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Direction of a migration run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// MigrateSQLite applies (or rolls back) the embedded SQLite migrations.
// Being already at the target version is not an error.
func MigrateSQLite(db *sql.DB, dir Direction) error {
	drv, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}
	return runMigrations("sqlite", DriverSQLite, drv, dir)
}

// MigratePostgres applies (or rolls back) the embedded PostgreSQL
// migrations through the pgx driver.
func MigratePostgres(db *sql.DB, dir Direction) error {
	drv, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres migration driver: %w", err)
	}
	return runMigrations("postgres", "pgx5", drv, dir)
}

func runMigrations(flavour, driverName string, drv database.Driver, dir Direction) error {
	src, err := iofs.New(migrationsFS, "migrations/"+flavour)
	if err != nil {
		return fmt.Errorf("could not open %s migrations: %w", flavour, err)
	}
	m, err := migrate.NewWithInstance("iofs", src, driverName, drv)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s migration %s failed: %w", flavour, dir, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed",
		zap.String("schema", flavour),
		zap.String("direction", string(dir)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

// MigrateOracle executes the embedded Oracle scripts in file order (or
// reverse order for Down). Up skips the scripts when kv_store exists.
func MigrateOracle(db *sql.DB, dir Direction) error {
	exists, err := oracleTableExists(db, "KV_STORE")
	if err != nil {
		return err
	}
	if dir == Up && exists {
		logger.Get().Info("Oracle schema already up to date")
		return nil
	}
	if dir == Down && !exists {
		logger.Get().Info("Oracle schema already rolled back")
		return nil
	}

	files, err := migrationFiles("migrations/oracle", dir)
	if err != nil {
		return err
	}
	for _, name := range files {
		content, err := migrationsFS.ReadFile("migrations/oracle/" + name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Oracle migrations completed", zap.String("direction", string(dir)))
	return nil
}

func oracleTableExists(db *sql.DB, table string) (bool, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM user_tables WHERE table_name = :1", table).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("could not inspect oracle schema: %w", err)
	}
	return n > 0, nil
}

// migrationFiles lists the scripts of one direction under root, ordered
// for execution.
func migrationFiles(root string, dir Direction) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, root)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	suffix := "." + string(dir) + ".sql"
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}
