package storage_test

import (
	"context"
	"testing"

	"labelguard-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetRoundtrip(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "food_labeling", []byte("snapshot")))

	data, err := store.Get(ctx, "food_labeling")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), data)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "food_labeling", []byte("original")))

	data, err := store.Get(ctx, "food_labeling")
	require.NoError(t, err)
	data[0] = 'X'

	again, err := store.Get(ctx, "food_labeling")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestMemoryStore_DeleteAndList(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "food_labeling", []byte("a")))
	require.NoError(t, store.Put(ctx, "origin_labeling", []byte("b")))
	require.NoError(t, store.Delete(ctx, "food_labeling"))
	require.NoError(t, store.Delete(ctx, "never_stored"))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"origin_labeling"}, keys)
}
