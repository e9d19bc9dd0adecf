package component

import "automata-defense/internal/types"

// Robot holds the goal-seeking state of a worker bot.
type Robot struct {
	Path Path
	// Carrying is the single item the robot holds. The item is not placed in the world.
	Carrying types.EntityID
}

// IsCarrying reports whether the robot holds an item.
func (r *Robot) IsCarrying() bool {
	return !r.Carrying.IsZero()
}
