// internal/system/agent.go
package system

import (
	"automata-defense/internal/entity"
	"automata-defense/internal/world"
)

// Wander moves e into the first passable neighbour in random order.
// It reports whether e moved.
func Wander(w *world.World, e *entity.Entity) bool {
	pos, ok := w.Pos(e)
	if !ok {
		return false
	}
	for _, n := range w.ShuffledNeighbors(pos) {
		if w.CanMoveTo(e, n) {
			w.SetPos(e, n)
			return true
		}
	}
	return false
}
