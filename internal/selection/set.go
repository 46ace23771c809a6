package selection

import "sort"

// Set is an immutable set of item identifiers.
// Every operation returns a new Set and leaves the receiver untouched.
type Set struct {
	ids map[string]struct{}
}

// NewSet creates a set holding the given ids
func NewSet(ids ...string) Set {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return Set{ids: m}
}

// Has reports whether id is in the set
func (s Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of ids in the set
func (s Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in sorted order
func (s Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same ids
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// With returns a copy of s with ids added
func (s Set) With(ids ...string) Set {
	next := s.clone(len(ids))
	for _, id := range ids {
		next.ids[id] = struct{}{}
	}
	return next
}

// Without returns a copy of s with ids removed
func (s Set) Without(ids ...string) Set {
	next := s.clone(0)
	for _, id := range ids {
		delete(next.ids, id)
	}
	return next
}

// Diff returns the ids present in s but not in prev, and the ids present in
// prev but not in s. Both slices are sorted.
func (s Set) Diff(prev Set) (added, removed []string) {
	for _, id := range s.IDs() {
		if !prev.Has(id) {
			added = append(added, id)
		}
	}
	for _, id := range prev.IDs() {
		if !s.Has(id) {
			removed = append(removed, id)
		}
	}
	return added, removed
}

func (s Set) clone(extra int) Set {
	m := make(map[string]struct{}, len(s.ids)+extra)
	for id := range s.ids {
		m[id] = struct{}{}
	}
	return Set{ids: m}
}
