// internal/world/ordered_set.go
package world

import "automata-defense/internal/types"

// orderedSet is an insertion-ordered set of handles with O(1) add and remove.
// Removal leaves a hole that is compacted away once holes outnumber entries.
type orderedSet struct {
	items []types.EntityID
	index map[types.EntityID]int
	holes int
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[types.EntityID]int)}
}

func (s *orderedSet) Add(id types.EntityID) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, id)
}

func (s *orderedSet) Remove(id types.EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	s.items[i] = types.EntityID{}
	s.holes++
	if s.holes > len(s.index) {
		s.compact()
	}
}

func (s *orderedSet) Has(id types.EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *orderedSet) Len() int {
	return len(s.index)
}

// Items returns the members in insertion order as a fresh slice.
func (s *orderedSet) Items() []types.EntityID {
	res := make([]types.EntityID, 0, len(s.index))
	for _, id := range s.items {
		if !id.IsZero() {
			res = append(res, id)
		}
	}
	return res
}

func (s *orderedSet) compact() {
	live := s.items[:0]
	for _, id := range s.items {
		if !id.IsZero() {
			s.index[id] = len(live)
			live = append(live, id)
		}
	}
	for i := len(live); i < len(s.items); i++ {
		s.items[i] = types.EntityID{}
	}
	s.items = live
	s.holes = 0
}
