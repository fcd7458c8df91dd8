package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.json")
	store, err := New(path)
	require.NoError(t, err)
	return store
}

func TestNewWritesDefaults(t *testing.T) {
	store := newTestStore(t)

	// First use creates the file with the canonical set
	_, err := os.Stat(store.Path())
	require.NoError(t, err)

	set, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), set)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	set := map[string]string{
		KeyCategorization:   "custom categorize",
		KeyActionExtraction: "custom extract",
		KeySummarization:    "custom summarize",
		KeyAutoReply:        "custom reply",
		"extra":             "unknown keys survive",
	}
	require.NoError(t, store.Save(set))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
}

func TestUpdatePersistsWholeSet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Update(KeySummarization, "one-line summaries only"))

	// A second store over the same file sees the update and the
	// untouched defaults
	reopened, err := New(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "one-line summaries only", reopened.Get(KeySummarization))
	assert.Equal(t, Defaults()[KeyCategorization], reopened.Get(KeyCategorization))
}

func TestResetToDefaults(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Update(KeyCategorization, "mangled"))
	require.NoError(t, store.ResetToDefaults())

	set, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), set)
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.Remove(store.Path()))

	set, err := store.Load()
	assert.Error(t, err)
	assert.Empty(t, set)
	// Cache is cleared too: no stale reads after a failed load
	assert.Equal(t, "", store.Get(KeyCategorization))
}

func TestLoadCorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0644))

	set, err := store.Load()
	assert.Error(t, err)
	assert.Empty(t, set)
}

func TestGetUnknownKey(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, "", store.Get("no_such_prompt"))
}

func TestCacheIsolation(t *testing.T) {
	store := newTestStore(t)

	set := store.All()
	set[KeyAutoReply] = "mutated copy"
	assert.Equal(t, Defaults()[KeyAutoReply], store.Get(KeyAutoReply))
}

func TestSaveFailureKeepsCache(t *testing.T) {
	store := newTestStore(t)

	// Point the store at an unwritable location
	store.path = filepath.Join(store.Path(), "impossible", "prompts.json")
	err := store.Save(map[string]string{KeyAutoReply: "x"})
	assert.Error(t, err)

	// The cached set still serves the previous values
	assert.Equal(t, Defaults()[KeyAutoReply], store.Get(KeyAutoReply))
}
