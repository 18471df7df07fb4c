package listview

import (
	"context"
	"slices"
)

// Source supplies the full working set of a list. Implementations may read
// from memory or call a remote API; the list performs no server side querying.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function into a Source.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

// List calls f.
func (f SourceFunc[T]) List(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// Deleter is implemented by sources that support bulk deletion.
type Deleter interface {
	Delete(ctx context.Context, ids []string) error
}

// StaticSource returns a source that always serves a copy of records.
func StaticSource[T any](records []T) Source[T] {
	return SourceFunc[T](func(context.Context) ([]T, error) {
		return slices.Clone(records), nil
	})
}
