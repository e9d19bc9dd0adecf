package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata-defense/internal/component"
	"automata-defense/internal/config"
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

func cell(x, y int) grid.Cell { return grid.Cell{X: x, Y: y} }

func place(w *world.World, kind types.Kind, c grid.Cell) *entity.Entity {
	e := w.Factory().Create(kind)
	w.SetPos(e, c)
	return e
}

func assertContiguous(t *testing.T, start grid.Cell, path []component.Action) {
	t.Helper()
	prev := start
	for _, a := range path {
		assert.True(t, prev.IsAdjacent(a.Cell), "%s -> %s", prev, a.Cell)
		prev = a.Cell
	}
}

func TestOpenGridPathIsManhattanOptimal(t *testing.T) {
	w := world.New(10, 10)
	bot := place(w, types.BuildBot, cell(1, 1))

	for _, goal := range []grid.Cell{cell(7, 4), cell(1, 9), cell(0, 0), cell(9, 9)} {
		path := FindBestPath(bot, w, []grid.Cell{goal}, component.MoveTo)
		require.NotNil(t, path)
		assert.Len(t, path, cell(1, 1).Manhattan(goal))
		assert.Equal(t, goal, path[len(path)-1].Cell)
		assertContiguous(t, cell(1, 1), path)
	}
}

func TestPicksNearestEndpoint(t *testing.T) {
	w := world.New(10, 10)
	bot := place(w, types.BuildBot, cell(5, 5))

	path := FindBestPath(bot, w, []grid.Cell{cell(0, 0), cell(5, 7), cell(9, 9)}, component.MoveTo)
	require.Len(t, path, 2)
	assert.Equal(t, cell(5, 7), path[1].Cell)
}

func TestStartOnEndpointGivesEmptyPath(t *testing.T) {
	w := world.New(10, 10)
	bot := place(w, types.BuildBot, cell(5, 5))

	path := FindBestPath(bot, w, []grid.Cell{cell(5, 5)}, component.MoveTo)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	assert.Nil(t, FindBestPath(bot, w, nil, component.MoveTo))
	assert.Nil(t, FindBestPath(w.Factory().Create(types.BuildBot), w, []grid.Cell{cell(1, 1)}, component.MoveTo))
}

func TestWalledEndpointIsUnreachable(t *testing.T) {
	w := world.New(10, 10)
	bot := place(w, types.MineBot, cell(0, 0))
	goal := cell(5, 5)
	for _, n := range goal.Neighbors() {
		place(w, types.WallTower, n)
	}

	path, expanded := search(bot, w, cell(0, 0), []grid.Cell{goal}, component.MoveTo)
	assert.Nil(t, path)
	// every open cell except the start and the sealed goal, once each
	assert.Equal(t, 100-4-1-1, expanded)
}

func TestRobotsPathThroughDoors(t *testing.T) {
	w := world.New(5, 1)
	bot := place(w, types.BuildBot, cell(0, 0))
	enemy := place(w, types.Enemy, cell(0, 0))
	place(w, types.DoorTower, cell(2, 0))

	assert.Len(t, FindBestPath(bot, w, []grid.Cell{cell(4, 0)}, component.MoveTo), 4)
	assert.Nil(t, FindBestPath(enemy, w, []grid.Cell{cell(4, 0)}, component.MoveTo))
	assert.Len(t, FindBestPath(enemy, w, []grid.Cell{cell(4, 0)}, component.AttackAndMove), 4)
}

func TestHitsToKill(t *testing.T) {
	assert.Equal(t, 4.0, HitsToKill(20, 5, 0))
	assert.Equal(t, 5.0, HitsToKill(21, 5, 0))
	assert.Equal(t, 0.0, HitsToKill(0, 5, 0))
	assert.Equal(t, 20.0*config.UnbreakableHitFactor, HitsToKill(20, 0, 0))
	// 1, 3, 5, 7 damage
	assert.Equal(t, 4.0, HitsToKill(10, 1, 2))
	assert.Equal(t, 3.0, HitsToKill(9, 1, 2))
	// 0, 2 damage
	assert.Equal(t, 2.0, HitsToKill(2, 0, 2))
}

func TestAttackAndMoveCostScenario(t *testing.T) {
	w := world.New(5, 5)
	attacker := place(w, types.Enemy, cell(0, 0))
	attacker.SetStat(stat.Damage, 5)
	attacker.SetStat(stat.Rampage, 0)
	attacker.SetStat(stat.Aggression, 3)

	defender := place(w, types.WallTower, cell(1, 0))
	defender.SetStat(stat.HP, 20)
	defender.SetHP(20)
	defender.SetStat(stat.Armor, 0)

	tpa := attacker.TicksPerAction()
	disc := attacker.AggressionDiscount()
	assert.InDelta(t, 0.7, disc, 1e-9)
	assert.InDelta(t, 4*tpa*disc, BlockerClearingCost(attacker, cell(1, 0), w), 1e-9)
	assert.InDelta(t, 4*tpa*disc+tpa, Cost(AttackMove(cell(1, 0)), attacker, w), 1e-9)
	assert.Equal(t, tpa, Cost(AttackMove(cell(0, 1)), attacker, w))
}

func TestCostMonotonicInDefenderHP(t *testing.T) {
	for _, ramp := range []float64{0, 0.5, 3} {
		w := world.New(3, 1)
		attacker := place(w, types.Enemy, cell(0, 0))
		attacker.SetStat(stat.Rampage, ramp)
		defender := place(w, types.WallTower, cell(1, 0))
		defender.SetStat(stat.HP, 1000)

		prev := -1.0
		for hp := 1.0; hp <= 1000; hp += 7 {
			defender.SetHP(hp)
			cost := Cost(AttackMove(cell(1, 0)), attacker, w)
			assert.GreaterOrEqual(t, cost, prev, "ramp %v hp %v", ramp, hp)
			prev = cost
		}
	}
}

func TestAttackPathPrefersWeakBlockers(t *testing.T) {
	w := world.New(5, 3)
	enemy := place(w, types.Enemy, cell(0, 1))
	heart := place(w, types.HeartTower, cell(4, 1))
	place(w, types.WallTower, cell(2, 1))
	place(w, types.WallTower, cell(2, 2))
	weak := place(w, types.WallTower, cell(2, 0))
	weak.SetHP(1)

	path := FindBestPath(enemy, w, w.Positions([]*entity.Entity{heart}), component.AttackAndMove)
	require.NotNil(t, path)
	var cells []grid.Cell
	for _, a := range path {
		cells = append(cells, a.Cell)
	}
	assert.Contains(t, cells, cell(2, 0))
	assert.Equal(t, cell(4, 1), cells[len(cells)-1])
	assertContiguous(t, cell(0, 1), path)
}

func TestPerform(t *testing.T) {
	w := world.New(5, 5)
	enemy := place(w, types.Enemy, cell(0, 0))
	wall := place(w, types.WallTower, cell(1, 0))

	assert.Equal(t, component.Failed, Perform(Move(cell(1, 0)), enemy, w))
	assert.Equal(t, component.Failed, Perform(AttackMove(cell(3, 3)), enemy, w))

	hp := wall.HP()
	assert.Equal(t, component.InProgress, Perform(AttackMove(cell(1, 0)), enemy, w))
	assert.Less(t, wall.HP(), hp)

	assert.Equal(t, component.Done, Perform(Move(cell(0, 1)), enemy, w))
	pos, _ := w.Pos(enemy)
	assert.Equal(t, cell(0, 1), pos)
}
