package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTreeRegistersNestedDirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "accounts", "east")
	require.NoError(t, os.MkdirAll(nested, 0755))
	// Files must not end up on the watch list, only directories.
	require.NoError(t, os.WriteFile(filepath.Join(root, "p.json"), []byte(`{}`), 0644))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, watchTree(watcher, root))
	watched := watcher.WatchList()
	assert.Contains(t, watched, root)
	assert.Contains(t, watched, filepath.Join(root, "accounts"))
	assert.Contains(t, watched, nested)
	assert.NotContains(t, watched, filepath.Join(root, "p.json"))

	// A directory created after the walk is picked up by re-rooting the
	// walk at it, the way the event loop does on directory creates.
	late := filepath.Join(root, "late")
	require.NoError(t, os.MkdirAll(late, 0755))
	require.NoError(t, watchTree(watcher, late))
	assert.Contains(t, watcher.WatchList(), late)
}

func TestWatchLoopUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"v1"}`), 0644))

	w := &watchLoop{fingerprints: make(map[string]string)}

	// First sighting records the fingerprint.
	assert.False(t, w.unchanged(path))
	// Same content again is filtered.
	assert.True(t, w.unchanged(path))

	require.NoError(t, os.WriteFile(path, []byte(`{"id":"v2","more":1}`), 0644))
	assert.False(t, w.unchanged(path))

	// Deleted files always count as changed.
	require.NoError(t, os.Remove(path))
	assert.False(t, w.unchanged(path))
}
