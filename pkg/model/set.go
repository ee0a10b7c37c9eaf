package model

import (
	"slices"
	"strings"
)

// Set is an insertion-ordered set of strings. Order is kept for display,
// membership is what counts for equality of content.
type Set []string

// Add appends v unless it is already present. It reports whether v was added.
func (s *Set) Add(v string) bool {
	if s.Contains(v) {
		return false
	}
	*s = append(*s, v)
	return true
}

// Contains reports whether v is in the set.
func (s Set) Contains(v string) bool {
	return slices.Contains(s, v)
}

// Values returns a copy of the elements in insertion order.
func (s Set) Values() []string {
	return slices.Clone(s)
}

// Len returns the number of elements.
func (s Set) Len() int {
	return len(s)
}

// String renders the set as a union, e.g. "Code | AliasCode".
func (s Set) String() string {
	return strings.Join(s, " | ")
}
