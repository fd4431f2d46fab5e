package qstring

// ReplaceFirst replaces the value of the first occurrence of key,
// keeping its absolute position. An empty key or value is a no-op.
func (qs *QueryString) ReplaceFirst(key, value string) string {
	if key != "" && value != "" {
		if indices := qs.state[key]; len(indices) > 0 {
			indices[0] = indices[0].WithValue(value)
		}
	}
	return qs.Reconstruct()
}

// ReplaceN replaces the first occurrences of key with the corresponding
// values, by relative index. Extra values beyond the current occurrence
// count are ignored, never appended.
func (qs *QueryString) ReplaceN(key string, values []string) string {
	indices := qs.state[key]
	for i := 0; i < len(indices) && i < len(values); i++ {
		indices[i] = indices[i].WithValue(values[i])
	}
	return qs.Reconstruct()
}

// replacement is one decoded state change: set the occurrence of key
// at relativeIndex to value.
type replacement struct {
	key           string
	relativeIndex int
	value         string
}

// ReplaceNth replaces selected occurrences per key by relative index.
// changes maps key to a relative index to new value mapping, e.g.
//
//	{"sort": {1: "address,desc"}}
//
// replaces the second sort parameter. Out-of-range indexes and unknown
// keys are skipped. Replacements are independent of each other, so the
// map iteration order does not affect the result.
func (qs *QueryString) ReplaceNth(changes map[string]map[int]string) string {
	if changes == nil {
		return qs.Reconstruct()
	}

	// Flatten the untyped-boundary shape into typed triples first.
	var instructions []replacement
	for key, byIndex := range changes {
		for relativeIndex, value := range byIndex {
			instructions = append(instructions, replacement{key, relativeIndex, value})
		}
	}
	return qs.applyReplacements(instructions)
}

func (qs *QueryString) applyReplacements(instructions []replacement) string {
	for _, repl := range instructions {
		indices := qs.state[repl.key]
		if repl.relativeIndex >= 0 && repl.relativeIndex < len(indices) {
			indices[repl.relativeIndex] = indices[repl.relativeIndex].WithValue(repl.value)
		}
	}
	return qs.Reconstruct()
}
