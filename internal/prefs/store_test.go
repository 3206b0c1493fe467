package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/signature-studio/internal/types"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "prefs.json"))
}

func TestStore_LoadMissingFileYieldsDefaults(t *testing.T) {
	opts, err := tempStore(t).Load()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultDesignOptions(), opts)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)

	opts := types.DefaultDesignOptions()
	opts.NameColor = "#112233"
	opts.SeparatorStyle = "bullet"
	opts.AddBackground = true

	require.NoError(t, store.Save(opts))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "#112233", loaded.NameColor)
	assert.Equal(t, "bullet", loaded.SeparatorStyle)
	assert.True(t, loaded.AddBackground)
}

func TestStore_SaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "prefs.json")
	store := NewStore(path)

	require.NoError(t, store.Save(types.DefaultDesignOptions()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_KeysArePrefixed(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(types.DefaultDesignOptions()))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sig_nameColor"`)
	assert.NotContains(t, string(data), `"nameColor"`)
}

func TestStore_LoadIgnoresUnknownKeys(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte(`{"sig_nameColor": "#112233", "sig_mystery": "x", "unrelated": "y"}`), 0o644))

	opts, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "#112233", opts.NameColor)
}

func TestStore_LoadInvalidColorFallsBack(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte(`{"sig_nameColor": "chartreuse"}`), 0o644))

	opts, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultDesignOptions().NameColor, opts.NameColor)
}

func TestStore_LoadMalformedBoolFallsBack(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte(`{"sig_addBackground": "maybe"}`), 0o644))

	opts, err := store.Load()
	require.NoError(t, err)
	assert.False(t, opts.AddBackground)
}

func TestStore_LoadCorruptFileErrors(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("not json"), 0o644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestStore_Reset(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(types.DefaultDesignOptions()))
	require.NoError(t, store.Reset())

	_, err := os.Stat(store.path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_ResetMissingFileIsNoop(t *testing.T) {
	assert.NoError(t, tempStore(t).Reset())
}
