package specs

import "strings"

// KeyValue is an immutable key/value pair in unescaped form.
// Both sides are non-empty for any pair accepted into an index.
type KeyValue struct {
	Key, Value string
}

// CutPair parses a single "key=value" chunk into a KeyValue.
// The chunk must split on '=' into exactly two non-empty tokens,
// otherwise ok is false.
func CutPair(pair string) (kv KeyValue, ok bool) {
	key, value, found := strings.Cut(pair, "=")
	if !found || key == "" || value == "" || strings.Contains(value, "=") {
		return KeyValue{}, false
	}
	return KeyValue{Key: key, Value: value}, true
}

// Escape renders the pair as "key=value" with both sides passed
// through the given escape function.
func (kv KeyValue) Escape(escape func(string) string) string {
	return escape(kv.Key) + "=" + escape(kv.Value)
}

// WithIndex wraps the pair with its absolute position in the query string.
func (kv KeyValue) WithIndex(index int) KeyValueIndex {
	return KeyValueIndex{Index: index, KeyValue: kv}
}

func (kv KeyValue) String() string {
	return kv.Key + "=" + kv.Value
}

// KeyValueIndex pins a KeyValue to its absolute position among all
// pairs of the original query string, which is what lets a keyed
// multimap reconstruct the original total ordering.
type KeyValueIndex struct {
	Index    int
	KeyValue KeyValue
}

// WithValue returns a copy carrying the new value at the same position.
func (kvi KeyValueIndex) WithValue(value string) KeyValueIndex {
	return KeyValueIndex{
		Index:    kvi.Index,
		KeyValue: KeyValue{Key: kvi.KeyValue.Key, Value: value},
	}
}
