// Package backup exports and restores a profile's stored values as a
// single JSON document. Values travel verbatim: backup never reshapes
// what the store holds, and restore writes recognized keys back byte
// for byte so backup-then-restore is idempotent.
package backup

import (
	"encoding/json"
	"log"

	"github.com/jonathan/resume-studio/internal/store"
)

// Snapshot maps namespaced storage keys to their raw stored values.
type Snapshot map[string]json.RawMessage

// Export collects every backup key present in the namespace. Missing
// keys are skipped, not errors: a fresh profile simply produces a
// smaller snapshot.
func Export(s store.Store, namespace string) (Snapshot, error) {
	snap := make(Snapshot, len(store.BackupKeys))
	for _, key := range store.BackupKeys {
		full := store.StorageKey(namespace, key)
		raw, ok, err := s.GetRaw(full)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		snap[full] = json.RawMessage(raw)
	}
	return snap, nil
}

// Marshal renders a snapshot as indented JSON for writing to a file.
func Marshal(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Restore writes a snapshot's values back into the store. Every key in
// the snapshot must be a recognized backup key for the namespace;
// anything else fails the whole restore before any write happens.
func Restore(s store.Store, namespace string, data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return &FormatError{Message: "backup file is not valid JSON", Cause: err}
	}
	if len(snap) == 0 {
		return &FormatError{Message: "backup file contains no values"}
	}

	recognized := make(map[string]bool, len(store.BackupKeys))
	for _, key := range store.BackupKeys {
		recognized[store.StorageKey(namespace, key)] = true
	}

	for key := range snap {
		if !recognized[key] {
			return &FormatError{Message: "unrecognized key " + key}
		}
	}

	for key, raw := range snap {
		if err := s.SetRaw(key, raw); err != nil {
			return err
		}
	}

	log.Printf("[BACKUP] Restored %d values into namespace %s", len(snap), namespace)
	return nil
}
