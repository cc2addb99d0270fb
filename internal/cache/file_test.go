package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayload struct {
	Handle string `json:"handle"`
	Count  int    `json:"count"`
}

func TestFileStore_PutGetRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	err = store.Put(ctx, "github", "octocat", fakePayload{Handle: "octocat", Count: 8})
	require.NoError(t, err)

	entry, err := store.Get(ctx, "github", "octocat", time.Hour)
	require.NoError(t, err)
	require.NotNil(t, entry)

	var got fakePayload
	require.NoError(t, Decode(entry, &got))
	assert.Equal(t, "octocat", got.Handle)
	assert.Equal(t, 8, got.Count)
}

func TestFileStore_MissReturnsNil(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	entry, err := store.Get(context.Background(), "github", "nobody", time.Hour)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestFileStore_StaleEntryIsAMiss(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "kaggle", "someone", fakePayload{Handle: "someone"}))

	// Rewrite the entry with an old timestamp to simulate expiry.
	path := store.path("kaggle", "someone")
	stale := Entry{
		FetchedAt: time.Now().Add(-48 * time.Hour),
		Payload:   json.RawMessage(`{"handle":"someone"}`),
	}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	entry, err := store.Get(ctx, "kaggle", "someone", DefaultTTL)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestFileStore_SanitizesHandleInPath(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "linkedin", "in/jane-doe", fakePayload{Handle: "jane-doe"}))

	entry, err := store.Get(ctx, "linkedin", "in/jane-doe", time.Hour)
	require.NoError(t, err)
	require.NotNil(t, entry)

	// The written file must not contain a path separator from the handle.
	matches, err := filepath.Glob(filepath.Join(store.dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestFileStore_CorruptEntryIsAMiss(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(store.path("github", "broken"), []byte("{not json"), 0o644))

	entry, err := store.Get(ctx, "github", "broken", time.Hour)
	require.NoError(t, err)
	assert.Nil(t, entry)
}
