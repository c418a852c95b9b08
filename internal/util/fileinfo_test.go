package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"p1"}`), 0644))

	info, err := GetFileInfo(path)
	require.NoError(t, err)
	assert.Equal(t, int64(11), info.Size)
	assert.NotZero(t, info.Inode)
	assert.NotZero(t, info.ModTime)
}

func TestGetFileInfoMissing(t *testing.T) {
	_, err := GetFileInfo(filepath.Join(t.TempDir(), "gone.json"))
	assert.Error(t, err)
}

func TestFingerprintChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"v1"}`), 0644))

	before, err := GetFileInfo(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"id":"v2","extra":true}`), 0644))
	after, err := GetFileInfo(path)
	require.NoError(t, err)

	assert.NotEqual(t, before.Fingerprint(), after.Fingerprint())
}
