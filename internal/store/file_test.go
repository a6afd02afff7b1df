package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { fs.Close() }) //nolint:errcheck
	return fs
}

func TestFileStore_RoundTrip(t *testing.T) {
	fs := newTestFileStore(t)

	require.NoError(t, fs.SetRaw("user_alice_resumeData", []byte(`{"a":1}`)))

	data, found, err := fs.GetRaw("user_alice_resumeData")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(data))

	keys, err := fs.Keys()
	require.NoError(t, err)
	assert.Contains(t, keys, "user_alice_resumeData")
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.SetRaw("user_alice_resumeData", []byte(`{"a":1}`)))
	require.NoError(t, fs.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close() //nolint:errcheck

	data, found, err := reopened.GetRaw("user_alice_resumeData")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(data))
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	fs := newTestFileStore(t)

	require.NoError(t, fs.SetRaw("user_alice_resumeData", []byte(`{}`)))
	require.NoError(t, fs.Delete("user_alice_resumeData"))
	require.NoError(t, fs.Delete("user_alice_resumeData"))

	_, found, err := fs.GetRaw("user_alice_resumeData")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_WatcherPicksUpExternalWrite(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	defer fs.Close() //nolint:errcheck

	// Simulate another process rewriting the key file directly.
	path := filepath.Join(dir, "user_alice_resumeData.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":2}`), 0o644))

	require.Eventually(t, func() bool {
		data, found, err := fs.GetRaw("user_alice_resumeData")
		return err == nil && found && string(data) == `{"a":2}`
	}, 2*time.Second, 10*time.Millisecond, "mirror should pick up the external write")
}
