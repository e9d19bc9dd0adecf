// internal/system/robot.go
package system

import (
	"automata-defense/internal/component"
	"automata-defense/internal/entity"
	"automata-defense/internal/interfaces"
	"automata-defense/internal/pathfind"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

// actRobot runs one decision of a robot. Every move costs one unit of charge.
// An idle robot first tries its goal action in place, then heads for a goal
// it can reach on its remaining charge, then for a charging station. A robot
// with nowhere to go wanders.
func (b *Behaviors) actRobot(w *world.World, s interfaces.Scene, e *entity.Entity) {
	path := &e.Robot.Path

	if !path.Empty() {
		switch pathfind.Perform(path.Next(), e, w) {
		case component.Done:
			path.Advance()
		case component.Failed:
			path.Clear()
		}
		e.SpendCharge(1)
		return
	}

	path.Clear()
	if b.tryGoalAction(w, s, e) {
		return
	}
	if e.Charge() > 0 {
		steps := pathfind.FindBestPath(e, w, goalLocations(w, e), component.MoveTo)
		if steps != nil && float64(len(steps)) < e.Charge()-1 {
			path.Set(steps)
			return
		}
	}
	if steps := pathfind.FindBestPath(e, w, chargingLocations(w, e), component.MoveTo); steps != nil {
		// An empty path means the robot already sits on a station.
		path.Set(steps)
		return
	}
	Wander(w, e)
	e.SpendCharge(1)
}

func (b *Behaviors) tryGoalAction(w *world.World, s interfaces.Scene, e *entity.Entity) bool {
	pos := w.MustPos(e)
	switch e.Kind {
	case types.BuildBot:
		for _, n := range w.ShuffledNeighbors(pos) {
			for _, m := range w.EntitiesInCell(n, world.HasCap(types.CapBuildMarker)) {
				if ActivateMarker(w, s, m) {
					return true
				}
			}
		}
	case types.MineBot:
		if carryOrDeliver(w, s, e, types.CapStoneItem) {
			return true
		}
		for _, n := range w.ShuffledNeighbors(pos) {
			for _, rock := range w.EntitiesInCell(n, (*entity.Entity).IsActiveRock) {
				return Mine(w, rock)
			}
		}
	case types.ScavengerBot:
		if carryOrDeliver(w, s, e, types.CapGoldIngot) {
			return true
		}
	}
	return tryCharge(w, e, pos)
}

// carryOrDeliver picks up an item of the given capability from the robot's
// cell, or scores the carried item when a heart is next door.
func carryOrDeliver(w *world.World, s interfaces.Scene, e *entity.Entity, item types.Capability) bool {
	pos := w.MustPos(e)
	r := e.Robot
	if !r.IsCarrying() {
		items := w.EntitiesInCell(pos, world.HasCap(item))
		if len(items) == 0 {
			return false
		}
		w.Remove(items[0])
		r.Carrying = items[0].ID
		return true
	}
	if len(w.EntitiesAdjacentTo(pos, world.HasCap(types.CapHeart))) == 0 {
		return false
	}
	if carried := w.Get(r.Carrying); carried != nil {
		s.ScoreItem(carried)
		w.Release(carried.ID)
	}
	r.Carrying = types.EntityID{}
	return true
}

func tryCharge(w *world.World, e *entity.Entity, pos grid.Cell) bool {
	if e.Charge() >= e.MaxCharge() {
		return false
	}
	for _, sp := range w.EntitiesInCell(pos, world.HasCap(types.CapSpawner)) {
		if sp.CanCharge(e) {
			e.AddCharge(sp.Stat(stat.ChargeRate))
			return true
		}
	}
	return false
}

func goalLocations(w *world.World, e *entity.Entity) []grid.Cell {
	switch e.Kind {
	case types.BuildBot:
		return w.EmptyCellsAdjacentTo(w.Positions(w.BuildMarkers()), nil)
	case types.MineBot:
		if e.Robot.IsCarrying() {
			return w.EmptyCellsAdjacentTo(w.Positions(w.Hearts()), nil)
		}
		cells := w.Positions(w.StoneItems())
		return append(cells, w.EmptyCellsAdjacentTo(w.Positions(w.ActiveRocks()), e)...)
	case types.ScavengerBot:
		if e.Robot.IsCarrying() {
			return w.EmptyCellsAdjacentTo(w.Positions(w.Hearts()), nil)
		}
		return w.Positions(w.GoldIngots())
	}
	return nil
}

func chargingLocations(w *world.World, e *entity.Entity) []grid.Cell {
	var cells []grid.Cell
	for _, sp := range w.Spawners() {
		if sp.CanCharge(e) {
			cells = append(cells, w.MustPos(sp))
		}
	}
	return cells
}
