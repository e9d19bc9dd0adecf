// internal/world/build.go
package world

import (
	"automata-defense/internal/entity"
	"automata-defense/internal/types"
	"automata-defense/pkg/grid"
)

// CanBuildAt reports whether a new tower may be ordered at c.
// The cell must hold no blocking occupant, marker, spawn zone or tower.
func (w *World) CanBuildAt(e *entity.Entity, c grid.Cell) bool {
	if !w.InBounds(c) {
		return false
	}
	for _, o := range w.EntitiesInCell(c, nil) {
		if o.Solidity() != 0 {
			return false
		}
		if o.Is(types.CapBuildMarker) || o.Is(types.CapSpawnZone) || o.Is(types.CapTower) {
			return false
		}
	}
	return true
}

// RequestBuildAt places a construction marker for e at c.
// It reports false, and changes nothing, when the cell cannot be built on.
func (w *World) RequestBuildAt(e *entity.Entity, c grid.Cell) bool {
	if !w.CanBuildAt(e, c) {
		return false
	}
	w.Add(e)
	marker := w.factory.NewBuildNewMarker(e)
	w.SetPos(marker, c)
	w.MarkGeometryChanged()
	w.logger.Debug("requested build", "kind", e.Kind, "cell", c, "marker", marker.ID)
	return true
}
