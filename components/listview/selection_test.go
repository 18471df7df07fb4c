package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionStatus(t *testing.T) {
	s := NewSelection("a", "b")
	assert.Equal(t, SelectAllState{Checked: true}, s.Status([]string{"a", "b"}))
	assert.Equal(t, SelectAllState{Indeterminate: true}, s.Status([]string{"a", "c"}))
	assert.Equal(t, SelectAllState{}, s.Status([]string{"c"}))
	assert.Equal(t, SelectAllState{}, s.Status(nil))
}

func TestSelectionSelectAllAndPrune(t *testing.T) {
	s := NewSelection()
	s.SelectAll([]string{"c", "a", "b"}, true)
	s.Select("", true)
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	assert.Equal(t, 2, s.Prune([]string{"b", "z"}))
	assert.Equal(t, []string{"b"}, s.IDs())
	assert.True(t, s.Has("b"))

	s.SelectAll([]string{"b"}, false)
	assert.Zero(t, s.Len())
}

func TestSelectionClear(t *testing.T) {
	s := NewSelection("a")
	s.Clear()
	assert.Empty(t, s.IDs())
}
