// internal/entity/arena.go
package entity

import "automata-defense/internal/types"

type slot struct {
	gen    uint32
	entity *Entity
}

// Arena owns entities and hands out generational handles.
// A released handle is never handed out again because its slot's generation moves on.
type Arena struct {
	slots []slot
	free  []uint32
	live  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Insert stores e and assigns its ID. An entity already in the arena keeps its ID.
func (a *Arena) Insert(e *Entity) types.EntityID {
	if a.Get(e.ID) == e {
		return e.ID
	}

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}

	s := &a.slots[idx]
	s.gen++
	s.entity = e
	e.ID = types.EntityID{Index: idx, Gen: s.gen}
	a.live++
	return e.ID
}

// Get resolves a handle. Stale or zero handles return nil.
func (a *Arena) Get(id types.EntityID) *Entity {
	if id.IsZero() || int(id.Index) >= len(a.slots) {
		return nil
	}
	s := a.slots[id.Index]
	if s.gen != id.Gen {
		return nil
	}
	return s.entity
}

// Release frees the slot behind id. It reports whether the handle was live.
func (a *Arena) Release(id types.EntityID) bool {
	if a.Get(id) == nil {
		return false
	}
	s := &a.slots[id.Index]
	s.entity = nil
	// bump so the stale handle stops resolving and the next insert gets a fresh one
	s.gen++
	a.free = append(a.free, id.Index)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.live
}
