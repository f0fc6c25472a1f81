package column

import (
	"maps"
	"slices"
)

// ValueSet is a set of non-empty strings.
type ValueSet struct {
	values map[string]struct{}
}

// NewValueSet returns an empty set.
func NewValueSet() *ValueSet {
	return &ValueSet{values: make(map[string]struct{})}
}

// Add inserts v and reports whether it was new. Empty strings are never
// stored.
func (s *ValueSet) Add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := s.values[v]; ok {
		return false
	}
	s.values[v] = struct{}{}
	return true
}

// Len returns the number of values.
func (s *ValueSet) Len() int {
	return len(s.values)
}

// Sorted returns the values in ascending byte order.
func (s *ValueSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s.values))
}
