package listview

import (
	"fmt"
	"slices"
	"strings"
)

// SortDirection is the ordering applied to the active sort key.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// SortState captures the active sort key. An empty key means input order.
type SortState struct {
	Key       string        `json:"key,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

// Active reports whether a sort key is set.
func (s SortState) Active() bool { return s.Key != "" }

// String renders the state as "key:direction".
func (s SortState) String() string {
	if !s.Active() {
		return ""
	}
	return s.Key + ":" + string(s.normalized().Direction)
}

func (s SortState) normalized() SortState {
	if s.Key == "" {
		return SortState{}
	}
	if s.Direction != SortDescending {
		s.Direction = SortAscending
	}
	return s
}

// ParseSort reads "key", "key:asc" or "key:desc".
func ParseSort(raw string) (SortState, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortState{}, nil
	}
	key, dir, _ := strings.Cut(raw, ":")
	state := SortState{Key: FieldName(key), Direction: SortAscending}
	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
	case "desc":
		state.Direction = SortDescending
	default:
		return SortState{}, fmt.Errorf("listview: invalid sort direction %q", dir)
	}
	if state.Key == "" {
		return SortState{}, fmt.Errorf("listview: sort key is required in %q", raw)
	}
	return state, nil
}

// NextSort applies the header click policy: the same key flips direction,
// a different key starts ascending.
func NextSort(current SortState, key string) SortState {
	key = FieldName(key)
	if current.Key == key {
		return SortState{Key: key, Direction: current.normalized().Direction.Toggle()}
	}
	return SortState{Key: key, Direction: SortAscending}
}

// Sort returns a stably ordered copy of records. A nil field keeps input order.
// Descending inverts the comparator so equal keys keep their input order in
// both directions.
func Sort[T any](records []T, field *Field[T], dir SortDirection) []T {
	out := slices.Clone(records)
	if field == nil || field.Get == nil {
		return out
	}
	get := field.Get
	if dir == SortDescending {
		slices.SortStableFunc(out, func(a, b T) int { return Compare(get(b), get(a)) })
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int { return Compare(get(a), get(b)) })
	return out
}
