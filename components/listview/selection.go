package listview

import (
	"maps"
	"slices"
)

// Selection tracks selected record ids across pages. Ids of records that are
// no longer present stay selected until Prune runs.
type Selection struct {
	ids map[string]struct{}
}

// SelectAllState is the derived state of a select-all checkbox.
type SelectAllState struct {
	Checked       bool `json:"checked"`
	Indeterminate bool `json:"indeterminate"`
}

// NewSelection builds a selection seeded with ids.
func NewSelection(ids ...string) *Selection {
	s := &Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Select(id, true)
	}
	return s
}

// Select adds or removes a single id.
func (s *Selection) Select(id string, checked bool) {
	if id == "" {
		return
	}
	if checked {
		s.ids[id] = struct{}{}
		return
	}
	delete(s.ids, id)
}

// SelectAll adds or removes only the given ids.
func (s *Selection) SelectAll(ids []string, checked bool) {
	for _, id := range ids {
		s.Select(id, checked)
	}
}

// Prune drops every id not in valid and returns how many were removed.
func (s *Selection) Prune(valid []string) int {
	keep := make(map[string]struct{}, len(valid))
	for _, id := range valid {
		keep[id] = struct{}{}
	}
	removed := 0
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
			removed++
		}
	}
	return removed
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in sorted order.
func (s *Selection) IDs() []string {
	return slices.Sorted(maps.Keys(s.ids))
}

// Clear removes every id.
func (s *Selection) Clear() { clear(s.ids) }

// Status derives the select-all checkbox for the visible ids.
func (s *Selection) Status(visible []string) SelectAllState {
	selected := 0
	for _, id := range visible {
		if s.Has(id) {
			selected++
		}
	}
	return SelectAllState{
		Checked:       len(visible) > 0 && selected == len(visible),
		Indeterminate: selected > 0 && selected < len(visible),
	}
}
