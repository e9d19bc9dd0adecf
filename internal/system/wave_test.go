package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/event"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/utils"
	"automata-defense/internal/world"
)

func newController(t *testing.T, w *world.World) *EnemySpawnController {
	t.Helper()
	return NewEnemySpawnController(NewEnemyFactory(w.RNG(), w.Factory()), w.RNG(), w.Dispatcher(), nil)
}

func TestPlanWave(t *testing.T) {
	tests := []struct {
		level     int
		tier      int
		headcount int
		points    int
		pulse     int
	}{
		{level: 1, tier: 0, headcount: 3, points: 2, pulse: 1},
		{level: 4, tier: 0, headcount: 5, points: 4, pulse: 1},
		{level: 5, tier: 2, headcount: 5, points: 6, pulse: 1},
		{level: 10, tier: 3, headcount: 1, points: 99, pulse: 2},
		{level: 100, tier: 3, headcount: 1, points: 7704, pulse: 6},
		{level: 99, tier: 3, headcount: 40, points: 188, pulse: 6},
	}
	for _, tt := range tests {
		plan := PlanWave(tt.level)
		assert.Equal(t, tt.tier, plan.Tier, "tier of level %d", tt.level)
		assert.Equal(t, tt.headcount, plan.Headcount, "headcount of level %d", tt.level)
		assert.Equal(t, tt.points, plan.Points, "points of level %d", tt.level)
		assert.Equal(t, tt.pulse, plan.PulseSize, "pulse size of level %d", tt.level)
	}

	assert.Greater(t, PlanWave(1).PulseDelay, PlanWave(20).PulseDelay)
	assert.GreaterOrEqual(t, PlanWave(200).PulseDelay, float64(config.PulseDelayFloor))
}

func TestWaveReleasesEveryEnemy(t *testing.T) {
	w := world.New(10, 10, world.WithRNG(utils.NewPRNGService(3)))
	w.SetPos(w.Factory().Create(types.EnemySpawnZone), cell(0, 0))
	w.SetPos(w.Factory().Create(types.EnemySpawnZone), cell(0, 1))
	c := newController(t, w)

	var started []event.WaveData
	w.Dispatcher().Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		started = append(started, e.Data.(event.WaveData))
	}))

	for i := 0; i < config.WaveEndDelayTicks; i++ {
		c.Update(w)
	}
	assert.Equal(t, 0, c.Level())
	c.Update(w)
	require.Len(t, started, 1)
	assert.Equal(t, 1, c.Level())
	assert.Equal(t, 3, c.Pending())

	for i := 0; i < 500; i++ {
		c.Update(w)
	}
	assert.Equal(t, 1, c.Level())
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, 3, c.Placed())
	assert.Len(t, w.Enemies(), 3)
	for _, e := range w.Enemies() {
		assert.True(t, len(w.EntitiesInCell(w.MustPos(e), world.HasCap(types.CapSpawnZone))) > 0)
	}

	for i := 0; i < config.WaveEndDelayTicks; i++ {
		c.Update(w)
	}
	assert.Equal(t, 2, c.Level())
	assert.Len(t, started, 2)
}

func TestWaveWaitsForSpawnZones(t *testing.T) {
	w := world.New(10, 10)
	c := newController(t, w)
	for i := 0; i < config.WaveEndDelayTicks+1; i++ {
		c.Update(w)
	}
	require.Equal(t, 1, c.Level())

	for i := 0; i < 1000; i++ {
		c.Update(w)
	}
	assert.Equal(t, 3, c.Pending())
	assert.Equal(t, 0, c.Placed())

	w.SetPos(w.Factory().Create(types.EnemySpawnZone), cell(4, 4))
	c.Update(w)
	assert.Equal(t, 1, c.Placed())
}

func TestControllerCountsKills(t *testing.T) {
	w := world.New(10, 10)
	c := newController(t, w)
	w.Dispatcher().Dispatch(event.Event{Type: event.EnemyKilled})
	w.Dispatcher().Dispatch(event.Event{Type: event.WaveStarted})
	assert.Equal(t, 1, c.Kills())
}

func TestProfileRespectsCaps(t *testing.T) {
	f := NewEnemyFactory(utils.NewPRNGService(1), nil)

	base := f.Profile(0)
	assert.Equal(t, 50.0, base.Get(stat.HP))

	maxed := f.Profile(100000)
	for _, u := range defs.EnemyStatUpgrades {
		v := maxed.Get(u.Stat)
		assert.LessOrEqual(t, v, u.Cap+capEpsilon, u.Stat.String())
		assert.Greater(t, v+u.Step, u.Cap+capEpsilon, u.Stat.String())
	}

	some := f.Profile(7)
	spent := 0.0
	for _, u := range defs.EnemyStatUpgrades {
		spent += (some.Get(u.Stat) - base.Get(u.Stat)) / u.Step
	}
	assert.InDelta(t, 7, spent, 1e-6)
}

func TestSpawnUsesTierData(t *testing.T) {
	f := NewEnemyFactory(utils.NewPRNGService(1), nil)
	tier := defs.Tier(3)

	e := f.SpawnRandom(3, 5)
	assert.Equal(t, types.Enemy, e.Kind)
	assert.Equal(t, 3, e.Enemy.Tier)
	assert.Contains(t, tier.Glyphs, e.Glyph(0))
	assert.Equal(t, tier.DeathReward, e.Stat(stat.DeathReward))
	assert.Contains(t, e.Description, "A legendary entity known only as")
	// The legendary tier always drops gold.
	assert.GreaterOrEqual(t, e.SellPrice(), 30.0)
	assert.LessOrEqual(t, e.SellPrice(), 100.0)

	clamped := f.SpawnRandom(17, 0)
	assert.Equal(t, defs.MaxTier(), clamped.Enemy.Tier)
}
