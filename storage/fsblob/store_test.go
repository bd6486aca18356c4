package fsblob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mGaurav-dev/SIH-25/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	data := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}
	ref, err := store.Save(ctx, "abc123", data)
	require.NoError(t, err)
	assert.Equal(t, "abc123.mp3", ref)

	got, err := store.Open(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestOpen_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open(context.Background(), "missing.mp3")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "gone", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, ref))
	_, err = store.Open(ctx, ref)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	// Removing again is not an error.
	assert.NoError(t, store.Remove(ctx, ref))
}

func TestSave_RejectsPathEscape(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(context.Background(), "../evil", []byte("data"))
	assert.Error(t, err)
}

func TestCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	oldRef, err := store.Save(ctx, "old", []byte("old"))
	require.NoError(t, err)
	_, err = store.Save(ctx, "new", []byte("new"))
	require.NoError(t, err)

	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, oldRef), stale, stale))

	removed, err := store.CleanupOlderThan(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Open(ctx, oldRef)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = store.Open(ctx, "new.mp3")
	assert.NoError(t, err)
}
