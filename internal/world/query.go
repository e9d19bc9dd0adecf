// internal/world/query.go
package world

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"automata-defense/internal/entity"
	"automata-defense/internal/types"
	"automata-defense/pkg/grid"
)

// Predicate filters entities in queries. A nil Predicate matches everything.
type Predicate func(e *entity.Entity) bool

// HasCap matches entities with every capability in c.
func HasCap(c types.Capability) Predicate {
	return func(e *entity.Entity) bool { return e.Is(c) }
}

// Solid matches entities that block movement in any way.
func Solid(e *entity.Entity) bool {
	return e.Solidity() != 0
}

func (w *World) resolve(ids []types.EntityID, pred Predicate) []*entity.Entity {
	var res []*entity.Entity
	for _, id := range ids {
		e := w.arena.Get(id)
		if e != nil && (pred == nil || pred(e)) {
			res = append(res, e)
		}
	}
	return res
}

// All returns every placed entity in placement order.
func (w *World) All() []*entity.Entity {
	return w.resolve(w.placed.Items(), nil)
}

// Count returns the number of placed entities.
func (w *World) Count() int {
	return w.placed.Len()
}

func (w *World) withCap(c types.Capability) []*entity.Entity {
	return w.resolve(w.caches[capIndex(c)].Items(), nil)
}

func (w *World) Hearts() []*entity.Entity       { return w.withCap(types.CapHeart) }
func (w *World) Spawners() []*entity.Entity     { return w.withCap(types.CapSpawner) }
func (w *World) Enemies() []*entity.Entity      { return w.withCap(types.CapEnemy) }
func (w *World) Robots() []*entity.Entity       { return w.withCap(types.CapRobot) }
func (w *World) Towers() []*entity.Entity       { return w.withCap(types.CapTower) }
func (w *World) Rocks() []*entity.Entity        { return w.withCap(types.CapRock) }
func (w *World) StoneItems() []*entity.Entity   { return w.withCap(types.CapStoneItem) }
func (w *World) GoldIngots() []*entity.Entity   { return w.withCap(types.CapGoldIngot) }
func (w *World) BuildMarkers() []*entity.Entity { return w.withCap(types.CapBuildMarker) }
func (w *World) Decorations() []*entity.Entity  { return w.withCap(types.CapDecoration) }
func (w *World) AttackTowers() []*entity.Entity { return w.withCap(types.CapAttackTower) }
func (w *World) SpawnZones() []*entity.Entity   { return w.withCap(types.CapSpawnZone) }

// ActiveRocks returns the rocks that can be mined now.
func (w *World) ActiveRocks() []*entity.Entity {
	return w.resolve(w.caches[capIndex(types.CapRock)].Items(), (*entity.Entity).IsActiveRock)
}

func capIndex(c types.Capability) int {
	for i := 0; i < types.CapabilityCount; i++ {
		if c == types.Capability(1<<i) {
			return i
		}
	}
	panic("not a single capability bit")
}

// Positions maps entities to their cells.
func (w *World) Positions(es []*entity.Entity) []grid.Cell {
	res := make([]grid.Cell, 0, len(es))
	for _, e := range es {
		if c, ok := w.Pos(e); ok {
			res = append(res, c)
		}
	}
	return res
}

// EntitiesInCell returns the occupants of c in insertion order.
func (w *World) EntitiesInCell(c grid.Cell, pred Predicate) []*entity.Entity {
	if !w.InBounds(c) {
		return nil
	}
	return w.resolve(w.cells[w.cellIndex(c)], pred)
}

// CellsInRange returns the in-bounds cells whose centre lies within radius of center, row by row.
func (w *World) CellsInRange(center grid.Cell, radius float64) []grid.Cell {
	var res []grid.Cell
	minY, maxY := int(math.Floor(float64(center.Y)-radius)), int(math.Ceil(float64(center.Y)+radius))
	minX, maxX := int(math.Floor(float64(center.X)-radius)), int(math.Ceil(float64(center.X)+radius))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := grid.Cell{X: x, Y: y}
			if w.InBounds(c) && center.Dist(c) <= radius {
				res = append(res, c)
			}
		}
	}
	return res
}

// EntitiesInRange returns the matching occupants of every cell within radius of center.
func (w *World) EntitiesInRange(center grid.Cell, radius float64, pred Predicate) []*entity.Entity {
	var res []*entity.Entity
	for _, c := range w.CellsInRange(center, radius) {
		res = append(res, w.EntitiesInCell(c, pred)...)
	}
	return res
}

// ShuffledNeighbors returns the four neighbours of c in random order.
func (w *World) ShuffledNeighbors(c grid.Cell) []grid.Cell {
	ns := c.Neighbors()
	res := ns[:]
	w.rng.Shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	return res
}

// EntitiesAdjacentTo returns the matching occupants of the four neighbours of c.
// Neighbours are visited in random order.
func (w *World) EntitiesAdjacentTo(c grid.Cell, pred Predicate) []*entity.Entity {
	var res []*entity.Entity
	for _, n := range w.ShuffledNeighbors(c) {
		res = append(res, w.EntitiesInCell(n, pred)...)
	}
	return res
}

// EmptyCellsAdjacentTo returns the de-duplicated neighbours of cells that are not
// themselves in cells and are open. With passableFor set, "open" means that entity
// could move there; otherwise it means solidity 0.
func (w *World) EmptyCellsAdjacentTo(cells []grid.Cell, passableFor *entity.Entity) []grid.Cell {
	sources := mapset.New[grid.Cell]()
	for _, c := range cells {
		sources.Put(c)
	}

	seen := mapset.New[grid.Cell]()
	var res []grid.Cell
	for _, c := range cells {
		for _, n := range c.Neighbors() {
			if !w.InBounds(n) || sources.Has(n) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			if passableFor == nil && w.Solidity(n) == 0 || passableFor != nil && w.CanMoveTo(passableFor, n) {
				res = append(res, n)
			}
		}
	}
	return res
}
