package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles(t *testing.T) {
	up, err := migrationFiles("migrations/oracle", Up)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_create_kv_store.up.sql"}, up)

	down, err := migrationFiles("migrations/sqlite", Down)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_create_kv_store.down.sql"}, down)

	pg, err := migrationFiles("migrations/postgres", Up)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_create_kv_store.up.sql"}, pg)
}

func TestMigrateSQLite_UpIsIdempotent(t *testing.T) {
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "state", "passport.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(db.DB, Up))
	require.NoError(t, MigrateSQLite(db.DB, Up))

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM kv_store"))
	assert.Equal(t, 0, n)

	require.NoError(t, MigrateSQLite(db.DB, Down))
	assert.Error(t, db.Get(&n, "SELECT COUNT(*) FROM kv_store"))
}

func TestSQLiteDSN(t *testing.T) {
	dsn := sqliteDSN("/var/lib/passport.db")
	assert.Equal(t, "file:/var/lib/passport.db?_pragma=journal_mode%28WAL%29&_pragma=synchronous%28NORMAL%29&_pragma=busy_timeout%285000%29", dsn)
}
