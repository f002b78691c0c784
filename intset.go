package fsa

import "slices"

// IntSet A set of state ids usable as a HashMap key.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable, sorted set of state ids. state is the id of the automaton state the set
// was assigned to, or -1.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals Two int sets are equal when they hold the same ids.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if f == nil || isNilIntSet(is) {
		return f == nil && isNilIntSet(is)
	}
	return f.Hash() == is.Hash() && slices.Equal(f.GetArray(), is.GetArray())
}

func isNilIntSet(s IntSet) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *FrozenIntSet:
		return v == nil
	case *StateSet:
		return v == nil
	}
	return false
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

var _ IntSet = &StateSet{}

// StateSet A mutable set of state ids. Its hash is cached until the next insertion.
type StateSet struct {
	inner       map[int]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		inner: make(map[int]struct{}),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for key := range s.inner {
		s.hashCode += uint64(mix(key))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return s.Hash() == is.Hash() && slices.Equal(s.GetArray(), is.GetArray())
}

// GetArray Returns the ids in ascending order.
func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, len(s.inner))

	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) Contains(state int) bool {
	_, ok := s.inner[state]
	return ok
}

// Add Inserts state and reports whether it was new.
func (s *StateSet) Add(state int) bool {
	if s.Contains(state) {
		return false
	}
	s.inner[state] = struct{}{}
	s.hashUpdated = false
	return true
}

// Freeze Returns an immutable copy of the set assigned to state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}
