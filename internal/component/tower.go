// internal/component/tower.go
package component

import "automata-defense/internal/types"

// Spawner is a robot factory. It owns at most one robot at a time.
type Spawner struct {
	Robot        types.EntityID
	RobotKind    types.Kind
	BuildCountup int
}

// Marker is a pending construction, sale or upgrade.
type Marker struct {
	// Target is the entity to build, sell or upgrade.
	Target types.EntityID
	// Replacement is the tower an upgrade puts in place of Target.
	Replacement types.EntityID
	// TargetGlyph is what a construction marker blinks to.
	TargetGlyph string
	Activations int
	Required    int
	Resolved    bool
}
