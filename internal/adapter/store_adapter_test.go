package adapter

import (
	"context"
	"testing"

	"career-passport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the KeyValueStore contract against an implementation.
func exerciseStore(t *testing.T, store domain.KeyValueStore) {
	t.Helper()
	ctx := context.Background()
	key := "careerpassport:bookmarks:collection"

	_, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, key, `[]`))
	val, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	require.NoError(t, store.Set(ctx, key, `[{"id":"career-1"}]`))
	val, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"career-1"}]`, val)

	require.NoError(t, store.Remove(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	assert.NoError(t, store.Remove(ctx, key), "removing a missing key is a no-op")
}

func TestMemoryStoreAdapter(t *testing.T) {
	store := NewMemoryStoreAdapter()
	exerciseStore(t, store)
	assert.Equal(t, 0, store.Len())
}

func TestBadgerStoreAdapter(t *testing.T) {
	store, err := OpenBadgerStore("")
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestBadgerStoreAdapter_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenBadgerStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "careerpassport:visits:counter", "812"))
	require.NoError(t, store.Close())

	store, err = OpenBadgerStore(dir)
	require.NoError(t, err)
	defer store.Close()

	val, err := store.Get(ctx, "careerpassport:visits:counter")
	require.NoError(t, err)
	assert.Equal(t, "812", val)
}

func TestBadgerStoreAdapter_CancelledContext(t *testing.T) {
	store, err := OpenBadgerStore("")
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
}
