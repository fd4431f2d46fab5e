package qstring

import (
	"sync"

	"github.com/oxlip/qstring/specs"
)

// queryCollector builds the state map by assigning each accepted pair
// the next absolute position in encounter order and grouping entries
// by key.
//
// Position assignment is a side-effecting counter tied to encounter
// order, so accumulation must run strictly sequentially. Concurrent
// accumulation is a programming error in the caller, not a data error,
// and panics instead of returning.
type queryCollector struct {
	mu    sync.Mutex
	index int
	state map[string][]specs.KeyValueIndex
}

func newQueryCollector() *queryCollector {
	return &queryCollector{state: make(map[string][]specs.KeyValueIndex)}
}

// collect consumes one "key=value" chunk of the unescaped query string.
// Malformed or value-empty chunks are skipped without consuming a
// position.
func (c *queryCollector) collect(pair string) {
	if !c.mu.TryLock() {
		panic("qstring: concurrent query index accumulation")
	}
	defer c.mu.Unlock()

	kv, ok := specs.CutPair(pair)
	if !ok {
		return
	}
	c.state[kv.Key] = append(c.state[kv.Key], kv.WithIndex(c.index))
	c.index++
}
