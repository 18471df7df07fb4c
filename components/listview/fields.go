package listview

import (
	"fmt"
	"strings"

	"github.com/ettle/strcase"
)

// Accessor extracts a field value from a record.
type Accessor[T any] func(T) Value

// Field names a record attribute that lists can search, filter, or sort on.
type Field[T any] struct {
	Name  string
	Label string
	Get   Accessor[T]
}

// Schema describes the identity and addressable fields of a record type.
type Schema[T any] struct {
	id     func(T) string
	fields map[string]Field[T]
	order  []string
}

// NewSchema registers the id extractor and fields of a record type.
func NewSchema[T any](id func(T) string, fields ...Field[T]) (*Schema[T], error) {
	if id == nil {
		return nil, fmt.Errorf("%w: schema id accessor is required", ErrInvalidConfig)
	}
	s := &Schema[T]{
		id:     id,
		fields: make(map[string]Field[T], len(fields)),
	}
	for _, f := range fields {
		if err := s.add(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustSchema is NewSchema for package level schema literals.
func MustSchema[T any](id func(T) string, fields ...Field[T]) *Schema[T] {
	s, err := NewSchema(id, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema[T]) add(f Field[T]) error {
	name := FieldName(f.Name)
	if name == "" {
		return fmt.Errorf("%w: field name is required", ErrInvalidConfig)
	}
	if f.Get == nil {
		return fmt.Errorf("%w: field %s has no accessor", ErrInvalidConfig, name)
	}
	if _, exists := s.fields[name]; exists {
		return fmt.Errorf("%w: duplicate field %s", ErrInvalidConfig, name)
	}
	f.Name = name
	if f.Label == "" {
		f.Label = labelFor(name)
	}
	s.fields[name] = f
	s.order = append(s.order, name)
	return nil
}

// ID returns the stable identifier of a record.
func (s *Schema[T]) ID(rec T) string { return s.id(rec) }

// Field looks up a field by name; names are matched in snake case.
func (s *Schema[T]) Field(name string) (Field[T], bool) {
	f, ok := s.fields[FieldName(name)]
	return f, ok
}

// Fields returns all fields in registration order.
func (s *Schema[T]) Fields() []Field[T] {
	out := make([]Field[T], 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.fields[name])
	}
	return out
}

// Resolve maps field names to fields, failing on the first unknown name.
func (s *Schema[T]) Resolve(names ...string) ([]Field[T], error) {
	out := make([]Field[T], 0, len(names))
	for _, name := range names {
		f, ok := s.Field(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		out = append(out, f)
	}
	return out, nil
}

// Project converts a record into a row keyed by field name plus "id".
func (s *Schema[T]) Project(rec T) map[string]any {
	row := make(map[string]any, len(s.order)+1)
	row["id"] = s.id(rec)
	for _, name := range s.order {
		row[name] = s.fields[name].Get(rec).Interface()
	}
	return row
}

// FieldName normalizes user supplied field and filter keys.
func FieldName(name string) string {
	return strcase.ToSnake(strings.TrimSpace(name))
}

func labelFor(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
