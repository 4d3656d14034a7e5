package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"career-passport/internal/domain"

	"github.com/jmoiron/sqlx"
)

// Dialect selects the SQL flavour of the key-value table.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectOracle   Dialect = "oracle"
	DialectPostgres Dialect = "postgres"
)

// KVTable is the table created by the kv_store migrations.
const KVTable = "kv_store"

type kvQueries struct {
	get    string
	upsert string
	remove string
}

var dialectQueries = map[Dialect]kvQueries{
	DialectSQLite: {
		get: "SELECT store_value FROM kv_store WHERE store_key = ?",
		upsert: `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(store_key) DO UPDATE SET store_value = excluded.store_value, updated_at = excluded.updated_at`,
		remove: "DELETE FROM kv_store WHERE store_key = ?",
	},
	DialectOracle: {
		get: "SELECT store_value FROM kv_store WHERE store_key = :1",
		upsert: `MERGE INTO kv_store t
USING (SELECT :1 AS store_key, :2 AS store_value, :3 AS updated_at FROM dual) s
ON (t.store_key = s.store_key)
WHEN MATCHED THEN UPDATE SET t.store_value = s.store_value, t.updated_at = s.updated_at
WHEN NOT MATCHED THEN INSERT (store_key, store_value, updated_at) VALUES (s.store_key, s.store_value, s.updated_at)`,
		remove: "DELETE FROM kv_store WHERE store_key = :1",
	},
	DialectPostgres: {
		get: "SELECT store_value FROM kv_store WHERE store_key = $1",
		upsert: `INSERT INTO kv_store (store_key, store_value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (store_key) DO UPDATE SET store_value = EXCLUDED.store_value, updated_at = EXCLUDED.updated_at`,
		remove: "DELETE FROM kv_store WHERE store_key = $1",
	},
}

// KVDatabaseAdapter implements domain.KeyValueStore on a single SQL table.
type KVDatabaseAdapter struct {
	db      DBTX
	queries kvQueries
	now     func() time.Time
}

// NewKVDatabaseAdapter creates a store over db using the given dialect.
func NewKVDatabaseAdapter(db *sqlx.DB, dialect Dialect) (*KVDatabaseAdapter, error) {
	q, ok := dialectQueries[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}
	return &KVDatabaseAdapter{db: db, queries: q, now: time.Now}, nil
}

// Get returns domain.ErrKeyNotFound when no row has the key.
func (r *KVDatabaseAdapter) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, r.queries.get, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// Set inserts the key or replaces its value.
func (r *KVDatabaseAdapter) Set(ctx context.Context, key string, value string) error {
	_, err := r.db.ExecContext(ctx, r.queries.upsert, key, value, r.now().UTC())
	return err
}

// Remove deletes the key's row. Deleting nothing is not an error.
func (r *KVDatabaseAdapter) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, r.queries.remove, key)
	return err
}
