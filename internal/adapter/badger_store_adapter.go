package adapter

import (
	"context"
	"errors"
	"fmt"

	"career-passport/internal/domain"
	"career-passport/internal/logger"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// BadgerStoreAdapter implements domain.KeyValueStore on an embedded
// Badger database directory.
type BadgerStoreAdapter struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) the database at path. An empty path
// opens an in-memory database.
func OpenBadgerStore(path string) (*BadgerStoreAdapter, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store at %q: %w", path, err)
	}
	logger.Get().Debug("Badger store opened", zap.String("path", path), zap.Bool("in_memory", path == ""))
	return &BadgerStoreAdapter{db: db}, nil
}

// NewBadgerStoreAdapter wraps an open database.
func NewBadgerStoreAdapter(db *badger.DB) *BadgerStoreAdapter {
	return &BadgerStoreAdapter{db: db}
}

func (b *BadgerStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return string(val), nil
}

func (b *BadgerStoreAdapter) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (b *BadgerStoreAdapter) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (b *BadgerStoreAdapter) Close() error {
	return b.db.Close()
}
