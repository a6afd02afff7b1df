// Package store provides a namespaced key-value persistence layer with
// schema merge on read. Values are JSON; keys are namespaced per logical
// profile as "user_<namespace>_<key>" so multiple profiles never collide.
// All reads are served from an in-memory mirror that every write updates,
// and file-backed stores keep that mirror current when another process
// rewrites a key (last-write-wins; concurrent edits are not merged).
package store

import (
	"encoding/json"
	"fmt"
	"log"
)

// Store is the raw byte-level contract. Typed access goes through Load
// and Save. Implementations: FileStore (durable) and MemStore (tests).
type Store interface {
	// GetRaw returns the stored bytes for a storage key, with a found flag.
	GetRaw(storageKey string) ([]byte, bool, error)
	// SetRaw durably writes value under the storage key and updates the
	// in-memory mirror before returning.
	SetRaw(storageKey string, value []byte) error
	// Keys lists every storage key currently present.
	Keys() ([]string, error)
	// Delete removes a storage key. Missing keys are not an error.
	Delete(storageKey string) error
	// Close releases watcher resources, if any.
	Close() error
}

// StorageKey builds the namespaced key for a profile-scoped value.
func StorageKey(namespace, key string) string {
	return fmt.Sprintf("user_%s_%s", namespace, key)
}

// Load reads the value stored under (namespace, key), merging object
// values against def so fields added to the default schema after the
// value was written are backfilled. Behavior:
//
//   - no stored value: def is written through and returned
//   - stored JSON object: recursive merge, stored arrays/scalars win
//   - stored array/scalar: returned as-is
//   - malformed stored JSON: logged, def returned, nothing rewritten
func Load[T any](s Store, namespace, key string, def T) (T, error) {
	storageKey := StorageKey(namespace, key)

	raw, found, err := s.GetRaw(storageKey)
	if err != nil {
		return def, &ReadError{Key: storageKey, Cause: err}
	}

	if !found {
		if err := Save(s, namespace, key, def); err != nil {
			return def, err
		}
		return def, nil
	}

	merged, err := mergeWithDefault(raw, def)
	if err != nil {
		// Corrupt data must never crash the read path.
		log.Printf("[STORE] corrupt value for %s, falling back to default: %v", storageKey, err)
		return def, nil
	}
	return merged, nil
}

// Save marshals v and writes it through under (namespace, key).
func Save[T any](s Store, namespace, key string, v T) error {
	storageKey := StorageKey(namespace, key)
	data, err := json.Marshal(v)
	if err != nil {
		return &WriteError{Key: storageKey, Cause: err}
	}
	if err := s.SetRaw(storageKey, data); err != nil {
		return &WriteError{Key: storageKey, Cause: err}
	}
	return nil
}

// mergeWithDefault decodes raw, applying the recursive schema merge when
// both the stored value and the default are JSON objects.
func mergeWithDefault[T any](raw []byte, def T) (T, error) {
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err == nil && stored != nil {
		defRaw, err := json.Marshal(def)
		if err != nil {
			return def, err
		}
		var defMap map[string]any
		if err := json.Unmarshal(defRaw, &defMap); err != nil || defMap == nil {
			// Default is not an object; stored value wins untouched.
			return decodeInto(raw, def)
		}
		mergedMap := ensureSchema(defMap, stored)
		mergedRaw, err := json.Marshal(mergedMap)
		if err != nil {
			return def, err
		}
		return decodeInto(mergedRaw, def)
	}

	// Arrays and scalars are taken verbatim.
	return decodeInto(raw, def)
}

func decodeInto[T any](raw []byte, def T) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def, err
	}
	return out, nil
}
