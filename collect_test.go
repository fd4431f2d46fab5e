package qstring

import (
	"reflect"
	"testing"

	"github.com/oxlip/qstring/specs"
)

func TestQueryCollector(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []string
		expected map[string][]specs.KeyValueIndex
	}{
		{
			name:  "Sequential positions in encounter order",
			pairs: []string{"a=1", "b=2", "a=3"},
			expected: map[string][]specs.KeyValueIndex{
				"a": {
					{Index: 0, KeyValue: specs.KeyValue{Key: "a", Value: "1"}},
					{Index: 2, KeyValue: specs.KeyValue{Key: "a", Value: "3"}},
				},
				"b": {
					{Index: 1, KeyValue: specs.KeyValue{Key: "b", Value: "2"}},
				},
			},
		},
		{
			name:  "Malformed pairs skipped without consuming a position",
			pairs: []string{"a=1", "broken", "b=", "=2", "c=3"},
			expected: map[string][]specs.KeyValueIndex{
				"a": {
					{Index: 0, KeyValue: specs.KeyValue{Key: "a", Value: "1"}},
				},
				"c": {
					{Index: 1, KeyValue: specs.KeyValue{Key: "c", Value: "3"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := newQueryCollector()
			for _, pair := range tt.pairs {
				collector.collect(pair)
			}
			if !reflect.DeepEqual(collector.state, tt.expected) {
				t.Errorf("collect() state = %v, want %v", collector.state, tt.expected)
			}
		})
	}
}

func TestQueryCollector_SequentialGuard(t *testing.T) {
	collector := newQueryCollector()
	collector.mu.Lock()
	defer collector.mu.Unlock()

	defer func() {
		if recover() == nil {
			t.Fatal("collect() expected panic on concurrent accumulation")
		}
	}()
	collector.collect("a=1")
}
