package domain

import "sort"

// Store is a keyed collection of units. A key maps to at most one
// value; inserting under an existing key overwrites it.
type Store[T any] map[string]T

func NewStore[T any]() Store[T] {
	return make(Store[T])
}

func (s Store[T]) Get(key string) (T, bool) {
	v, ok := s[key]
	return v, ok
}

func (s Store[T]) Insert(key string, value T) {
	s[key] = value
}

func (s Store[T]) Remove(key string) {
	delete(s, key)
}

func (s Store[T]) Len() int {
	return len(s)
}

func (s Store[T]) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StringSet is an unordered set of strings.
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	set := make(StringSet, len(items))
	for _, item := range items {
		set.Add(item)
	}
	return set
}

func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

func (s StringSet) Len() int {
	return len(s)
}

// Slice returns the members in sorted order.
func (s StringSet) Slice() []string {
	items := make([]string, 0, len(s))
	for v := range s {
		items = append(items, v)
	}
	sort.Strings(items)
	return items
}
