package record

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")

// Repository is a read-only keyed store. Lookup returns ErrNotFound on a miss.
type Repository interface {
	Lookup(ctx context.Context, key string) (Record, error)
	Keys(ctx context.Context) ([]string, error)
}

// MemoryRepository serves records held in process.
type MemoryRepository struct {
	keys    []string
	records map[string]Record
}

func NewMemoryRepository(entries []Entry) *MemoryRepository {
	repo := &MemoryRepository{
		keys:    make([]string, 0, len(entries)),
		records: make(map[string]Record, len(entries)),
	}
	for _, e := range entries {
		if _, dup := repo.records[e.Key]; !dup {
			repo.keys = append(repo.keys, e.Key)
		}
		repo.records[e.Key] = e.Record
	}
	return repo
}

func (m *MemoryRepository) Lookup(_ context.Context, key string) (Record, error) {
	r, ok := m.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return r, nil
}

func (m *MemoryRepository) Keys(_ context.Context) ([]string, error) {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out, nil
}

// Entries returns the stored records in insertion order.
func (m *MemoryRepository) Entries() []Entry {
	out := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry{Key: k, Record: m.records[k]}
	}
	return out
}
