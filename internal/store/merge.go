package store

// ensureSchema recursively backfills keys present in the default shape
// but missing from the stored value. Stored arrays and scalars always win
// over the default; only nested non-array objects recurse.
//
// Known limitation: arrays are taken wholesale from the stored value, so
// if a later default changes the shape of elements inside a default
// array, old stored arrays do not pick up the new element fields.
func ensureSchema(def, stored map[string]any) map[string]any {
	result := make(map[string]any, len(def)+len(stored))
	for k, v := range def {
		result[k] = v
	}
	for k, v := range stored {
		result[k] = v
	}

	for k, defVal := range def {
		defMap, ok := defVal.(map[string]any)
		if !ok {
			continue
		}
		storedMap, ok := result[k].(map[string]any)
		if !ok {
			// Missing or non-object in stored data: default subtree stands.
			result[k] = defMap
			continue
		}
		result[k] = ensureSchema(defMap, storedMap)
	}

	return result
}
