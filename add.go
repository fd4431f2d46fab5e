package qstring

import (
	"slices"

	"github.com/oxlip/qstring/specs"
)

// Add appends key=value at the logical end of the query string. A pair
// whose exact value already exists under key is ignored, as is an empty
// key or value.
func (qs *QueryString) Add(key, value string) string {
	if key == "" || value == "" || slices.Contains(qs.AllValues(key), value) {
		return qs.Reconstruct()
	}
	qs.append(specs.KeyValue{Key: key, Value: value})
	return qs.Reconstruct()
}

// AddAll appends each pair in order. Pairs with an empty key or value
// are silently skipped. Each append computes the next absolute position
// fresh, so a batch keeps the input order on reconstruction.
func (qs *QueryString) AddAll(pairs []specs.KeyValue) string {
	for _, kv := range pairs {
		if kv.Key == "" || kv.Value == "" {
			continue
		}
		qs.append(kv)
	}
	return qs.Reconstruct()
}

func (qs *QueryString) append(kv specs.KeyValue) {
	qs.state[kv.Key] = append(qs.state[kv.Key], kv.WithIndex(qs.nextIndex()))
}
