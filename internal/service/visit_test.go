package service

import (
	"context"
	"errors"
	"testing"

	"career-passport/internal/adapter"
	"career-passport/internal/domain"
	"career-passport/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVisitService_SeedsThenIncrements(t *testing.T) {
	ctx := context.Background()
	store := adapter.NewMemoryStoreAdapter()
	svc := NewVisitService(store)

	first, err := svc.RecordVisit(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, first, 501)
	assert.LessOrEqual(t, first, 1500)

	second, err := svc.RecordVisit(ctx)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}

func TestVisitService_ReseedsGarbage(t *testing.T) {
	ctx := context.Background()
	store := adapter.NewMemoryStoreAdapter()
	require.NoError(t, store.Set(ctx, storage.VisitCounterKey, "lots"))
	svc := &visitService{store: store, seed: func() int { return 700 }}

	n, err := svc.RecordVisit(ctx)

	require.NoError(t, err)
	assert.Equal(t, 701, n)
	raw, _ := store.Get(ctx, storage.VisitCounterKey)
	assert.Equal(t, "701", raw)
}

func TestVisitService_StoreFailure(t *testing.T) {
	store := new(MockKeyValueStore)
	store.On("Get", mock.Anything, storage.VisitCounterKey).Return("", errors.New("locked"))
	svc := NewVisitService(store)

	_, err := svc.RecordVisit(context.Background())

	assert.Equal(t, domain.ErrStorage, domain.CodeOf(err))
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
