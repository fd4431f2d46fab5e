package qstring

// FirstValue returns the value of the first occurrence of key.
func (qs *QueryString) FirstValue(key string) (string, bool) {
	indices := qs.state[key]
	if len(indices) == 0 {
		return "", false
	}
	return indices[0].KeyValue.Value, true
}

// AllValues returns the values of every occurrence of key in relative
// order, or an empty slice when the key is absent.
func (qs *QueryString) AllValues(key string) []string {
	indices := qs.state[key]
	values := make([]string, len(indices))
	for i, kvi := range indices {
		values[i] = kvi.KeyValue.Value
	}
	return values
}

// Contains reports whether at least one occurrence of key is present.
func (qs *QueryString) Contains(key string) bool {
	return len(qs.state[key]) > 0
}
