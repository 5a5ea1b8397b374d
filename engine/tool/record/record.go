// Package record implements keyed lookups over small read-only tables of
// ordered records, such as orders, tickets, and employees.
package record

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Field is one key/value pair of a record.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered list of fields. Values are scalars, []any, or nested Records.
type Record []Field

func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Entry pairs a record with its lookup key.
type Entry struct {
	Key    string
	Record Record
}

// ParseTable decodes a YAML mapping of key → record, keeping document order.
func ParseTable(data []byte) ([]Entry, error) {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse record table: %w", err)
	}
	entries := make([]Entry, 0, len(doc))
	for _, item := range doc {
		key := fmt.Sprint(item.Key)
		fields, ok := item.Value.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("record %q is not a mapping", key)
		}
		entries = append(entries, Entry{Key: key, Record: fromMapSlice(fields)})
	}
	return entries, nil
}

// ParseRecord decodes a single YAML mapping into a Record.
func ParseRecord(data []byte) (Record, error) {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}
	return fromMapSlice(doc), nil
}

// Encode renders the record as an ordered YAML mapping.
func (r Record) Encode() ([]byte, error) {
	return yaml.Marshal(toMapSlice(r))
}

func fromMapSlice(ms yaml.MapSlice) Record {
	out := make(Record, 0, len(ms))
	for _, item := range ms {
		out = append(out, Field{Key: fmt.Sprint(item.Key), Value: fromYAMLValue(item.Value)})
	}
	return out
}

func fromYAMLValue(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		return fromMapSlice(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = fromYAMLValue(item)
		}
		return items
	default:
		return val
	}
}

func toMapSlice(r Record) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(r))
	for _, f := range r {
		out = append(out, yaml.MapItem{Key: f.Key, Value: toYAMLValue(f.Value)})
	}
	return out
}

func toYAMLValue(v any) any {
	switch val := v.(type) {
	case Record:
		return toMapSlice(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = toYAMLValue(item)
		}
		return items
	default:
		return val
	}
}
