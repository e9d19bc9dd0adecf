// internal/event/types.go
package event

import (
	"automata-defense/internal/types"
	"automata-defense/pkg/grid"
)

const (
	GeometryChanged EventType = "GeometryChanged" // towers or markers changed the map
	EnemyKilled     EventType = "EnemyKilled"     // Data: EntityData
	WaveStarted     EventType = "WaveStarted"     // Data: WaveData
	MarkerResolved  EventType = "MarkerResolved"  // Data: EntityData of the marker
	ItemScored      EventType = "ItemScored"      // Data: EntityData of the item
	GameOver        EventType = "GameOver"
)

// EntityData is the payload of entity-related events.
type EntityData struct {
	ID   types.EntityID
	Kind types.Kind
	Cell grid.Cell
}

// WaveData is the payload of WaveStarted.
type WaveData struct {
	Level   int
	Tier    int
	Enemies int
}
