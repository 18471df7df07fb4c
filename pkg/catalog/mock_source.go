package catalog

import (
	"context"
	"slices"
	"sync"

	listview "github.com/goliatone/go-listview/components/listview"
)

// MockSource serves an in-memory working set and supports bulk deletion.
type MockSource[T any] struct {
	mu      sync.RWMutex
	id      func(T) string
	records []T
}

var (
	_ listview.Source[Customer] = (*MockSource[Customer])(nil)
	_ listview.Deleter          = (*MockSource[Customer])(nil)
)

// NewMockSource seeds a source; id extracts the record identifier used by Delete.
func NewMockSource[T any](id func(T) string, records []T) *MockSource[T] {
	return &MockSource[T]{id: id, records: slices.Clone(records)}
}

// List returns a copy of the records.
func (s *MockSource[T]) List(context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), nil
}

// Delete removes records whose id is in ids.
func (s *MockSource[T]) Delete(_ context.Context, ids []string) error {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.DeleteFunc(s.records, func(rec T) bool {
		_, ok := drop[s.id(rec)]
		return ok
	})
	return nil
}

// Replace swaps the working set.
func (s *MockSource[T]) Replace(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
}

// Len returns the number of records.
func (s *MockSource[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
