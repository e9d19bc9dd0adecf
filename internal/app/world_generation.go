// internal/app/world_generation.go
package app

import (
	"automata-defense/internal/config"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

var (
	startSpawner = grid.Cell{X: 5, Y: 5}
	startHeart   = grid.Cell{X: 6, Y: 6}
	spawnZones   = []grid.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
)

// depositCandidates is how many random cells are tried per deposit.
const depositCandidates = 8

// minDepositClearance keeps deposits off the starting base and the spawn corner.
const minDepositClearance = 3

// GenerateWorld lays out the starting map: a build-bot factory next to the
// heart, four spawn zones in the top-left corner, and scattered rock and gold
// ore deposits. Cells outside the grid are skipped.
func GenerateWorld(w *world.World, s config.Settings) {
	f := w.Factory()
	for _, c := range spawnZones {
		if w.InBounds(c) {
			w.SetPos(f.Create(types.EnemySpawnZone), c)
		}
	}
	if w.InBounds(startSpawner) {
		w.SetPos(f.Create(types.BuildBotSpawner), startSpawner)
	}
	if w.InBounds(startHeart) {
		w.SetPos(f.Create(types.HeartTower), startHeart)
	}

	critical := append([]grid.Cell{startSpawner, startHeart}, spawnZones...)
	var deposits []grid.Cell
	place := func(kind types.Kind, n int) {
		for i := 0; i < n; i++ {
			c, ok := pickDepositCell(w, critical, deposits)
			if !ok {
				return
			}
			w.SetPos(f.Create(kind), c)
			deposits = append(deposits, c)
		}
	}
	place(types.RockTower, s.Rocks)
	place(types.GoldOreTower, s.GoldOres)

	w.Logger().Debug("world generated", "width", w.Width(), "height", w.Height(), "deposits", len(deposits))
}

// pickDepositCell samples a few free cells away from the critical ones and
// keeps the one farthest from the deposits placed so far.
func pickDepositCell(w *world.World, critical, deposits []grid.Cell) (grid.Cell, bool) {
	var candidates []grid.Cell
	for tries := 0; tries < depositCandidates*10 && len(candidates) < depositCandidates; tries++ {
		c := w.RandCell()
		if len(w.EntitiesInCell(c, nil)) > 0 || tooClose(c, critical) {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return grid.Cell{}, false
	}
	return findFarthestCell(candidates, deposits), true
}

func tooClose(c grid.Cell, critical []grid.Cell) bool {
	for _, o := range critical {
		if c.Manhattan(o) < minDepositClearance {
			return true
		}
	}
	return false
}

func findFarthestCell(candidates, existing []grid.Cell) grid.Cell {
	best := candidates[0]
	bestDist := -1
	for _, c := range candidates {
		total := 0
		for _, o := range existing {
			total += c.Manhattan(o)
		}
		if total > bestDist {
			bestDist = total
			best = c
		}
	}
	return best
}
