package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/store"
)

func seeded(t *testing.T, namespace string) store.Store {
	t.Helper()
	s := store.NewMemStore()
	require.NoError(t, s.SetRaw(store.StorageKey(namespace, store.KeyResumeData), []byte(`{"basics":{"name":"Jane"}}`)))
	require.NoError(t, s.SetRaw(store.StorageKey(namespace, store.KeySelectedTemplate), []byte(`"modern"`)))
	require.NoError(t, s.SetRaw(store.StorageKey(namespace, store.KeyIsPremium), []byte(`true`)))
	return s
}

func TestExport_CollectsPresentKeysOnly(t *testing.T) {
	s := seeded(t, "default")

	snap, err := Export(s, "default")
	require.NoError(t, err)

	assert.Len(t, snap, 3)
	assert.Contains(t, snap, "user_default_resumeData")
	assert.Contains(t, snap, "user_default_selectedTemplate")
	assert.Contains(t, snap, "user_default_isPremium")
	assert.NotContains(t, snap, "user_default_coverLetterData")
}

func TestExport_SkipsOtherNamespaces(t *testing.T) {
	s := seeded(t, "default")
	require.NoError(t, s.SetRaw(store.StorageKey("other", store.KeyResumeData), []byte(`{}`)))

	snap, err := Export(s, "default")
	require.NoError(t, err)
	assert.NotContains(t, snap, "user_other_resumeData")
}

func TestRestore_RoundTripIsIdempotent(t *testing.T) {
	src := seeded(t, "default")

	snap, err := Export(src, "default")
	require.NoError(t, err)
	data, err := Marshal(snap)
	require.NoError(t, err)

	dst := store.NewMemStore()
	require.NoError(t, Restore(dst, "default", data))

	snap2, err := Export(dst, "default")
	require.NoError(t, err)
	data2, err := Marshal(snap2)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(data2))
}

func TestRestore_RejectsUnrecognizedKeys(t *testing.T) {
	dst := store.NewMemStore()
	err := Restore(dst, "default", []byte(`{"user_default_resumeData": {}, "user_default_malware": {}}`))

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Message, "unrecognized key")

	// Nothing was written.
	keys, kerr := dst.Keys()
	require.NoError(t, kerr)
	assert.Empty(t, keys)
}

func TestRestore_RejectsWrongNamespace(t *testing.T) {
	dst := store.NewMemStore()
	err := Restore(dst, "default", []byte(`{"user_other_resumeData": {}}`))
	assert.Error(t, err)
}

func TestRestore_RejectsGarbage(t *testing.T) {
	dst := store.NewMemStore()
	assert.Error(t, Restore(dst, "default", []byte(`not json`)))
	assert.Error(t, Restore(dst, "default", []byte(`{}`)))
}
