package storage_test

import (
	"context"
	"testing"

	"labelguard-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLocalStore_PutGetRoundtrip(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "food_labeling", []byte(`{"chunks":[]}`)))

	data, err := store.Get(ctx, "food_labeling")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"chunks":[]}`), data)
}

func TestLocalStore_PutReplacesExisting(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "food_labeling", []byte("v1")))
	require.NoError(t, store.Put(ctx, "food_labeling", []byte("v2")))

	data, err := store.Get(ctx, "food_labeling")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestLocalStore_GetMissingKey(t *testing.T) {
	store := newLocalStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLocalStore_Delete(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "origin_labeling", []byte("data")))
	require.NoError(t, store.Delete(ctx, "origin_labeling"))

	_, err := store.Get(ctx, "origin_labeling")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting a key that was never stored is a no-op.
	assert.NoError(t, store.Delete(ctx, "origin_labeling"))
}

func TestLocalStore_List(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "food_labeling", []byte("a")))
	require.NoError(t, store.Put(ctx, "packaging_standards", []byte("b")))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"food_labeling", "packaging_standards"}, keys)
}
