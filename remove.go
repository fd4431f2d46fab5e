package qstring

import (
	"slices"

	"github.com/oxlip/qstring/specs"
)

// RemoveFirst removes the first occurrence of key.
func (qs *QueryString) RemoveFirst(key string) string {
	if indices := qs.state[key]; len(indices) > 0 {
		qs.state[key] = indices[1:]
	}
	return qs.Reconstruct()
}

// RemoveAll removes every occurrence of each given key.
func (qs *QueryString) RemoveAll(keys []string) string {
	for _, key := range keys {
		delete(qs.state, key)
	}
	return qs.Reconstruct()
}

// RemoveN removes the first n occurrences of key. Non-positive n is a
// no-op; n at or above the occurrence count drops the whole key without
// element-wise removal.
func (qs *QueryString) RemoveN(key string, n int) string {
	if n <= 0 {
		return qs.Reconstruct()
	}
	if indices, has := qs.state[key]; has {
		if n >= len(indices) {
			delete(qs.state, key)
		} else {
			qs.state[key] = indices[n:]
		}
	}
	return qs.Reconstruct()
}

// RemoveNth removes the occurrence of key at the given relative index,
// if in bounds.
func (qs *QueryString) RemoveNth(key string, relativeIndex int) string {
	if indices := qs.state[key]; relativeIndex >= 0 && relativeIndex < len(indices) {
		qs.state[key] = slices.Delete(indices, relativeIndex, relativeIndex+1)
	}
	return qs.Reconstruct()
}

// RemoveManyNth removes every occurrence of key whose relative index is
// in relativeIndexes, keeping the relative order of survivors.
func (qs *QueryString) RemoveManyNth(key string, relativeIndexes []int) string {
	if indices := qs.state[key]; len(indices) > 0 {
		kept := indices[:0]
		for i, kvi := range indices {
			if !slices.Contains(relativeIndexes, i) {
				kept = append(kept, kvi)
			}
		}
		qs.state[key] = kept
	}
	return qs.Reconstruct()
}

// RemoveKeyMatchingValue removes every occurrence of key whose value
// equals match exactly, in unescaped form.
func (qs *QueryString) RemoveKeyMatchingValue(key, match string) string {
	if indices, has := qs.state[key]; has {
		qs.state[key] = slices.DeleteFunc(indices, func(kvi specs.KeyValueIndex) bool {
			return kvi.KeyValue.Value == match
		})
	}
	return qs.Reconstruct()
}

// RemoveAnyKeyMatchingValue removes, across every key, each occurrence
// whose value equals match exactly.
func (qs *QueryString) RemoveAnyKeyMatchingValue(match string) string {
	for key, indices := range qs.state {
		qs.state[key] = slices.DeleteFunc(indices, func(kvi specs.KeyValueIndex) bool {
			return kvi.KeyValue.Value == match
		})
	}
	return qs.Reconstruct()
}
