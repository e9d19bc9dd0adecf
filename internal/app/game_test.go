package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/event"
	"automata-defense/internal/stat"
	"automata-defense/internal/system"
	"automata-defense/internal/types"
	"automata-defense/pkg/grid"
)

func cell(x, y int) grid.Cell { return grid.Cell{X: x, Y: y} }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	s := config.Default()
	s.Seed = 11
	s.Width, s.Height = 20, 12
	s.Rocks, s.GoldOres = 0, 0
	s.IdleSpawns = false
	return NewGame(s, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func kindsAt(g *Game, c grid.Cell) []types.Kind {
	var res []types.Kind
	for _, e := range g.World.EntitiesInCell(c, nil) {
		res = append(res, e.Kind)
	}
	return res
}

func TestGenerateWorld(t *testing.T) {
	s := config.Default()
	s.Seed = 5
	g := NewGame(s)
	w := g.World

	assert.Equal(t, []types.Kind{types.BuildBotSpawner}, kindsAt(g, cell(5, 5)))
	assert.Equal(t, []types.Kind{types.HeartTower}, kindsAt(g, cell(6, 6)))
	assert.Len(t, w.SpawnZones(), 4)
	for _, c := range []grid.Cell{cell(0, 0), cell(0, 1), cell(1, 0), cell(1, 1)} {
		assert.Equal(t, []types.Kind{types.EnemySpawnZone}, kindsAt(g, c))
	}

	rocks := 0
	gold := 0
	for _, r := range w.Rocks() {
		if r.Kind == types.GoldOreTower {
			gold++
		} else {
			rocks++
		}
		assert.GreaterOrEqual(t, w.MustPos(r).Manhattan(cell(6, 6)), minDepositClearance)
	}
	assert.Equal(t, s.Rocks, rocks)
	assert.Equal(t, s.GoldOres, gold)
}

func TestFindFarthestCell(t *testing.T) {
	got := findFarthestCell([]grid.Cell{cell(1, 1), cell(9, 9), cell(5, 5)}, []grid.Cell{cell(0, 0)})
	assert.Equal(t, cell(9, 9), got)
	assert.Equal(t, cell(1, 1), findFarthestCell([]grid.Cell{cell(1, 1), cell(2, 2)}, nil))
}

func TestFirstRobotStaysHome(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 120; i++ {
		g.Update()
	}
	robots := g.World.Robots()
	require.Len(t, robots, 1)
	assert.Equal(t, cell(5, 5), g.World.MustPos(robots[0]))
}

func TestBuildPaysAndPlacesMarker(t *testing.T) {
	g := newTestGame(t)
	gun := g.lib.Get(types.GunTower)

	require.NoError(t, g.Build(types.GunTower, cell(8, 8)))
	assert.Equal(t, config.StartingCash-gun.Stats.Get(stat.BuyPrice), g.Cash())
	assert.Equal(t, config.StartingStone-gun.Stats.Get(stat.StonePrice), g.Stone())
	assert.Equal(t, []types.Kind{types.BuildNewMarker}, kindsAt(g, cell(8, 8)))

	err := g.Build(types.GunTower, cell(8, 8))
	assert.True(t, errors.Is(err, ErrCannotBuild))
	err = g.Build(types.GunTower, cell(0, 0))
	assert.ErrorIs(t, err, ErrCannotBuild)
	err = g.Build(types.Enemy, cell(9, 9))
	assert.ErrorIs(t, err, ErrCannotBuild)
}

func TestBuildRejectsWhenBroke(t *testing.T) {
	g := newTestGame(t)
	g.cash = 10
	err := g.Build(types.GunTower, cell(8, 8))
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 10.0, g.Cash())
	assert.Empty(t, g.World.BuildMarkers())
}

func TestBuildBotFinishesOrder(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Build(types.WallTower, cell(8, 5)))

	for i := 0; i < 3000 && len(g.World.BuildMarkers()) > 0; i++ {
		g.Update()
	}
	assert.Empty(t, g.World.BuildMarkers())
	assert.Equal(t, []types.Kind{types.WallTower}, kindsAt(g, cell(8, 5)))
}

func TestCancelRefunds(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Build(types.GunTower, cell(8, 8)))
	require.NoError(t, g.Cancel(cell(8, 8)))
	assert.Equal(t, float64(config.StartingCash), g.Cash())
	assert.Equal(t, float64(config.StartingStone), g.Stone())
	assert.Empty(t, kindsAt(g, cell(8, 8)))

	assert.ErrorIs(t, g.Cancel(cell(8, 8)), ErrNoMarker)
}

func TestSellAndUpgradeOrders(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	wall := w.Factory().Create(types.WallTower)
	w.SetPos(wall, cell(9, 9))

	assert.ErrorIs(t, g.Sell(cell(9, 8)), ErrNothingToSell)
	assert.ErrorIs(t, g.Sell(startHeart), ErrNothingToSell)

	require.Equal(t, []types.Kind{types.DoorTower}, g.Upgrades(cell(9, 9)))
	assert.ErrorIs(t, g.Upgrade(cell(9, 9), 1), ErrNoUpgrade)
	cash := g.Cash()
	require.NoError(t, g.Upgrade(cell(9, 9), 0))
	door := g.lib.Get(types.DoorTower)
	assert.Equal(t, cash-door.Stats.Get(stat.BuyPrice), g.Cash())

	// An order is already pending on the wall.
	assert.ErrorIs(t, g.Sell(cell(9, 9)), ErrNothingToSell)
	assert.ErrorIs(t, g.Upgrade(cell(9, 9), 0), ErrNoUpgrade)

	require.NoError(t, g.Cancel(cell(9, 9)))
	assert.Equal(t, cash, g.Cash())

	require.NoError(t, g.Sell(cell(9, 9)))
	markers := w.BuildMarkers()
	require.Len(t, markers, 1)
	markers[0].Marker.Required = 1
	system.ActivateMarker(w, g, markers[0])
	assert.Equal(t, cash+wall.SellPrice(), g.Cash())
	assert.Empty(t, kindsAt(g, cell(9, 9)))
}

func TestScoreItem(t *testing.T) {
	g := newTestGame(t)
	var scored int
	g.Dispatcher().Subscribe(event.ItemScored, event.ListenerFunc(func(event.Event) { scored++ }))
	f := g.World.Factory()

	g.ScoreItem(f.NewGoldIngot(30))
	g.ScoreItem(f.NewStoneItem())
	assert.Equal(t, config.StartingCash+30.0, g.Cash())
	assert.Equal(t, config.StartingStone+1.0, g.Stone())
	assert.Equal(t, 1, g.Delivered(types.GoldIngot))
	assert.Equal(t, 2, scored)
}

func TestSpeedAndPause(t *testing.T) {
	g := newTestGame(t)

	g.Update()
	assert.Equal(t, 1, g.World.Ticks())

	assert.Equal(t, SpeedDouble, g.CycleSpeed())
	g.Update()
	assert.Equal(t, 3, g.World.Ticks())

	assert.Equal(t, SpeedHalf, g.CycleSpeed())
	g.Update()
	assert.False(t, g.ShouldSkipThisFrame())
	g.Update()
	assert.True(t, g.ShouldSkipThisFrame())
	assert.Equal(t, SpeedNormal, g.CycleSpeed())

	g.TogglePause()
	assert.True(t, g.IsPaused())
	before := g.Waves.Level()
	for i := 0; i < config.WaveEndDelayTicks+10; i++ {
		g.Update()
	}
	assert.Equal(t, before, g.Waves.Level())
}

func TestGameOverWhenHeartFalls(t *testing.T) {
	g := newTestGame(t)
	var over int
	g.Dispatcher().Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { over++ }))

	heart := g.World.Hearts()[0]
	heart.SetHP(0)
	g.Update()
	g.Update()

	assert.True(t, g.IsGameOver())
	assert.Equal(t, 1, over)
	assert.ErrorIs(t, g.Build(types.WallTower, cell(9, 9)), ErrGameOver)
}

func TestInfoAndView(t *testing.T) {
	g := newTestGame(t)
	assert.Nil(t, g.Info(cell(10, 10), 30))
	assert.Nil(t, g.Info(cell(-1, 0), 30))

	lines := g.Info(startHeart, 30)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Energy Crystal (♦):", lines[0].Text)

	assert.True(t, g.View(cell(10, 10), 0).Empty)
	v := g.View(startHeart, 0)
	assert.Equal(t, "♦", v.Glyph)
	assert.False(t, v.Empty)
}

func TestShop(t *testing.T) {
	g := newTestGame(t)
	shop := g.Shop()
	require.Len(t, shop, len(defs.Shop))
	assert.Equal(t, types.BuildBotSpawner, shop[0].Kind)
	assert.Equal(t, types.KindNone, shop[3].Kind)
	for _, e := range shop {
		if e.Kind != types.KindNone {
			assert.Equal(t, g.canAfford(e.Gold, e.Stone), e.Affordable)
		}
	}
}
