package listview

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FilterKey names an exact-match filter configured for a list.
type FilterKey string

// Filters maps filter keys to their selected value. Empty values impose no
// constraint.
type Filters map[FilterKey]string

// Clone returns a copy without empty values.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Filter is an exact-match predicate between a key and a record field.
type Filter[T any] struct {
	Key     FilterKey
	Label   string
	Options []string
	Match   Accessor[T]
}

// SearchOptions tunes free text matching.
type SearchOptions struct {
	FoldDiacritics bool
}

// Evaluate returns the records that pass both the search and filter stages,
// preserving input order. Active keys without a configured filter are ignored.
func Evaluate[T any](records []T, term string, searchFields []Field[T], filters []Filter[T], active Filters) []T {
	return evaluate(records, term, searchFields, filters, active, SearchOptions{})
}

func evaluate[T any](records []T, term string, searchFields []Field[T], filters []Filter[T], active Filters, opts SearchOptions) []T {
	folder := newTextFolder(opts)
	needle := folder.fold(term)
	constraints := activeConstraints(filters, active)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if !matchesSearch(rec, needle, searchFields, folder) {
			continue
		}
		if !matchesFilters(rec, constraints) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

type constraint[T any] struct {
	match Accessor[T]
	value string
}

func activeConstraints[T any](filters []Filter[T], active Filters) []constraint[T] {
	if len(active) == 0 {
		return nil
	}
	var out []constraint[T]
	for _, f := range filters {
		value := active[f.Key]
		if value == "" || f.Match == nil {
			continue
		}
		out = append(out, constraint[T]{match: f.Match, value: value})
	}
	return out
}

func matchesSearch[T any](rec T, needle string, fields []Field[T], folder *textFolder) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(folder.fold(f.Get(rec).Text()), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](rec T, constraints []constraint[T]) bool {
	for _, c := range constraints {
		if c.match(rec).Text() != c.value {
			return false
		}
	}
	return true
}

// textFolder lower-cases text and, when accents is set, strips combining
// marks. It is built once per evaluation and is not safe for concurrent use.
type textFolder struct {
	accents transform.Transformer
}

func newTextFolder(opts SearchOptions) *textFolder {
	if !opts.FoldDiacritics {
		return &textFolder{}
	}
	return &textFolder{accents: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)}
}

func (f *textFolder) fold(s string) string {
	s = strings.ToLower(s)
	if f.accents == nil || s == "" {
		return s
	}
	out, _, err := transform.String(f.accents, s)
	if err != nil {
		return s
	}
	return out
}
