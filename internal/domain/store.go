package domain

import (
	"context"
)

// StoreError represents an error originating from a key-value store.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrKeyNotFound is returned when a key is not present in the store.
const ErrKeyNotFound = StoreError("store: key not found")

// KeyValueStore is the local persisted storage port: string keys, string
// (JSON) values, and every call is atomic on its own.
// Implementations live in the adapter and repository packages.
type KeyValueStore interface {
	// Get returns ErrKeyNotFound if the key is not present.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the key. It does not return an error if the key is absent.
	Remove(ctx context.Context, key string) error
}
