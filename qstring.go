// Package qstring manipulates URL query strings while preserving the
// original ordering of parameters and the relative ordering of repeated
// keys.
//
// A query string is indexed into a keyed multimap where every pair also
// carries its absolute position in the original string. Mutations edit
// the multimap in place and each operation returns the freshly
// reconstructed, re-escaped query string.
package qstring

import (
	"iter"
	"slices"
	"strings"

	"github.com/oxlip/qstring/specs"
	"golang.org/x/net/http/httpguts"
)

// QueryString is the mutable representation of a single query string.
//
// An instance is built once per input and intended for one owner
// performing one operation at a time; it is not safe for concurrent
// use without external synchronization.
type QueryString struct {
	raw     string
	escaper specs.Escaper
	state   map[string][]specs.KeyValueIndex
}

// MustParse is a helper function that parses a query string with the
// default escaper and panics if it fails.
func MustParse(raw string) *QueryString {
	qs, err := Parse(raw, nil)
	if err != nil {
		panic(err)
	}
	return qs
}

// Parse validates, unescapes and indexes a raw query string.
//
// The raw string must be non-empty ASCII and every '&'-separated
// candidate must split on '=' into exactly two tokens with a non-empty
// key. A pair with an empty value passes validation but is dropped
// during indexing.
//
// A nil escaper selects [specs.QueryEscaping]. The raw string is
// unescaped once here so reconstruction never double-escapes.
func Parse(raw string, escaper specs.Escaper) (*QueryString, error) {
	if raw == "" {
		return nil, specs.ErrEmptyQuery
	}
	if !httpguts.ValidHeaderFieldValue(raw) {
		return nil, specs.ErrInvalidChar
	}
	for _, pair := range strings.Split(raw, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" || strings.Contains(value, "=") {
			return nil, specs.ErrInvalidPair
		}
	}

	if escaper == nil {
		escaper = specs.QueryEscaping
	}
	unescaped, err := escaper.Unescape(raw)
	if err != nil {
		return nil, specs.NewOpError("parse", "%w", err)
	}

	collector := newQueryCollector()
	for _, pair := range strings.Split(unescaped, "&") {
		collector.collect(pair)
	}

	return &QueryString{
		raw:     unescaped,
		escaper: escaper,
		state:   collector.state,
	}, nil
}

// Raw returns the unescaped original query string.
func (qs *QueryString) Raw() string {
	return qs.raw
}

// All yields every entry in ascending absolute position order.
func (qs *QueryString) All() iter.Seq[specs.KeyValueIndex] {
	flat := make([]specs.KeyValueIndex, 0, len(qs.state))
	for _, indices := range qs.state {
		flat = append(flat, indices...)
	}
	slices.SortFunc(flat, func(a, b specs.KeyValueIndex) int {
		return a.Index - b.Index
	})
	return slices.Values(flat)
}

// Reconstruct serializes the current state back into an escaped query
// string. Entries are emitted in ascending absolute position order;
// keys whose sequence is empty contribute nothing, which is how
// removals disappear from the output.
func (qs *QueryString) Reconstruct() string {
	var buf strings.Builder
	for kvi := range qs.All() {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(kvi.KeyValue.Escape(qs.escaper.Escape))
	}
	return buf.String()
}

// nextIndex returns the absolute position for the next appended entry:
// one past the current maximum, or 0 for an empty state. Computed fresh
// before each append so batched appends stay strictly increasing.
func (qs *QueryString) nextIndex() int {
	next := 0
	for _, indices := range qs.state {
		for _, kvi := range indices {
			if kvi.Index >= next {
				next = kvi.Index + 1
			}
		}
	}
	return next
}
