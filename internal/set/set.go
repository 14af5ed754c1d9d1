// Package set provides a small generic set, used to find duplicates while loading rules.
package set

import (
	"cmp"
	"slices"
)

// Set formalizes set semantics for a map of comparable values.
type Set[T cmp.Ordered] map[T]struct{}

// New creates a new [Set] from the given values.
func New[T cmp.Ordered](vals ...T) Set[T] {
	s := Set[T]{}
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// AddNew adds val, and reports whether it wasn't already present.
func (s Set[T]) AddNew(val T) bool {
	if s.Has(val) {
		return false
	}
	s[val] = struct{}{}
	return true
}

// Sorted returns the values in ascending order, or nil if the [Set] is empty.
func (s Set[T]) Sorted() []T {
	if len(s) == 0 {
		return nil
	}
	vals := make([]T, 0, len(s))
	for val := range s {
		vals = append(vals, val)
	}
	slices.Sort(vals)
	return vals
}
