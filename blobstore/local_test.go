package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QSI-BAQS/pathsearch/internal/fs"
)

func testStoreLifecycle(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	data := []byte(`{"graph":[[1],[0]]}`)
	require.NoError(t, store.Put(ctx, "ghz_jabalize.json", data))
	require.NoError(t, store.Put(ctx, "ghz_analyzed.json", []byte("old")))
	require.NoError(t, store.Put(ctx, "ghz_analyzed.json", []byte("new")))
	require.NoError(t, store.Put(ctx, "nested/qft_analyzed.json.zst", []byte("z")))

	got, err := store.Get(ctx, "ghz_jabalize.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	got, err = store.Get(ctx, "ghz_analyzed.json")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ghz_analyzed.json", "ghz_jabalize.json", "nested/qft_analyzed.json.zst"}, names)

	names, err = store.List(ctx, "ghz_a")
	require.NoError(t, err)
	assert.Equal(t, []string{"ghz_analyzed.json"}, names)

	require.NoError(t, store.Delete(ctx, "ghz_analyzed.json"))
	require.NoError(t, store.Delete(ctx, "ghz_analyzed.json"))
	_, err = store.Get(ctx, "ghz_analyzed.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	testStoreLifecycle(t, NewLocalStore(dir))

	// Verify the file is on disk and no temp files were left behind
	_, err := os.Stat(filepath.Join(dir, "ghz_jabalize.json"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewLocalStore(t.TempDir())
	assert.ErrorIs(t, store.Put(ctx, "x", nil), context.Canceled)
	_, err := store.Get(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_FailedPutKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	ffs := fs.NewFaultyFS(nil)
	store := NewLocalStoreFS(dir, ffs)
	require.NoError(t, store.Put(ctx, "ghz_analyzed.json", []byte("v1")))

	faults := map[string]fs.Fault{
		"write":  {FailAfterBytes: 1},
		"sync":   {FailAfterBytes: -1, FailOnSync: true},
		"close":  {FailAfterBytes: -1, FailOnClose: true},
		"rename": {FailAfterBytes: -1, FailOnRename: true},
	}
	for name, fault := range faults {
		t.Run(name, func(t *testing.T) {
			ffs.AddRule("ghz_analyzed.json", fault)
			err := store.Put(ctx, "ghz_analyzed.json", []byte("v2"))
			assert.ErrorIs(t, err, fs.ErrInjected)

			got, err := store.Get(ctx, "ghz_analyzed.json")
			require.NoError(t, err)
			assert.Equal(t, "v1", string(got))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary file removed")
		})
	}
}

func TestMemoryStore_Lifecycle(t *testing.T) {
	testStoreLifecycle(t, NewMemoryStore())
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "a", data))
	data[0] = 'x'

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
