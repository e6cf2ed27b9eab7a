package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/robalyx/blogchain/internal/engine/storage"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := t.Context()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "key", []byte("value")))

	value, found, err := store.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("value"), value)

	// Mutating the returned slice must not leak into the store.
	value[0] = 'X'

	value, _, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	require.NoError(t, store.Remove(ctx, "key"))

	_, found, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreApplyBatch(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	ctx := t.Context()

	require.NoError(t, store.Set(ctx, "old", []byte("1")))

	err := store.ApplyBatch(ctx, map[string][]byte{
		"a": []byte("2"),
		"b": []byte("3"),
	}, []string{"old"})
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())

	_, found, err := store.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTxStagesUntilCommit(t *testing.T) {
	t.Parallel()
	base := storage.NewMemoryStore()
	ctx := t.Context()

	require.NoError(t, base.Set(ctx, "existing", []byte("base")))

	tx := storage.NewTx(base)

	require.NoError(t, tx.Set(ctx, "staged", []byte("new")))
	require.NoError(t, tx.Remove(ctx, "existing"))
	assert.Equal(t, 2, tx.Pending())

	// The overlay sees its own staged state.
	value, found, err := tx.Get(ctx, "staged")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("new"), value)

	_, found, err = tx.Get(ctx, "existing")
	require.NoError(t, err)
	assert.False(t, found)

	// The base is untouched before commit.
	_, found, err = base.Get(ctx, "staged")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = base.Get(ctx, "existing")
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, tx.Commit(ctx))

	_, found, err = base.Get(ctx, "staged")
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = base.Get(ctx, "existing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTxDiscard(t *testing.T) {
	t.Parallel()
	base := storage.NewMemoryStore()
	ctx := t.Context()

	tx := storage.NewTx(base)
	require.NoError(t, tx.Set(ctx, "abandoned", []byte("1")))

	// Dropping the overlay without commit leaves the base empty.
	assert.Equal(t, 0, base.Len())
}

func TestTxSetAfterRemove(t *testing.T) {
	t.Parallel()
	base := storage.NewMemoryStore()
	ctx := t.Context()

	tx := storage.NewTx(base)

	require.NoError(t, tx.Remove(ctx, "key"))
	require.NoError(t, tx.Set(ctx, "key", []byte("back")))

	value, found, err := tx.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("back"), value)

	require.NoError(t, tx.Commit(ctx))

	value, found, err = base.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("back"), value)
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	store, err := storage.OpenBadger(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "key", []byte("value")))

	value, found, err := store.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("value"), value)

	err = store.ApplyBatch(ctx, map[string][]byte{"other": []byte("2")}, []string{"key"})
	require.NoError(t, err)

	_, found, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err = store.Get(ctx, "other")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("2"), value)
}
