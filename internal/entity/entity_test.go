package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/utils"
	"automata-defense/pkg/render"
)

func newFactory() *Factory {
	return NewFactory(defs.NewLibrary())
}

func TestArenaGenerations(t *testing.T) {
	a := NewArena()
	f := newFactory()

	first := f.Create(types.WallTower)
	id1 := a.Insert(first)
	assert.False(t, id1.IsZero())
	assert.Same(t, first, a.Get(id1))
	assert.Equal(t, id1, a.Insert(first), "re-inserting keeps the handle")
	assert.Equal(t, 1, a.Len())

	require.True(t, a.Release(id1))
	assert.Nil(t, a.Get(id1))
	assert.False(t, a.Release(id1))

	second := f.Create(types.WallTower)
	id2 := a.Insert(second)
	assert.Equal(t, id1.Index, id2.Index, "slot is recycled")
	assert.NotEqual(t, id1, id2, "handle is not")
	assert.Nil(t, a.Get(id1))
	assert.Same(t, second, a.Get(id2))
}

func TestNewSetsComponentsByKind(t *testing.T) {
	f := newFactory()
	assert.NotNil(t, f.Create(types.MineBot).Robot)
	assert.NotNil(t, f.Create(types.Enemy).Enemy)
	assert.NotNil(t, f.Create(types.GoldOreTower).Rock)
	assert.NotNil(t, f.Create(types.SellMarker).Marker)

	sp := f.Create(types.ScavengerBotSpawner)
	require.NotNil(t, sp.Spawner)
	assert.Equal(t, types.ScavengerBot, sp.Spawner.RobotKind)
	assert.True(t, sp.CanCharge(f.Create(types.ScavengerBot)))
	assert.False(t, sp.CanCharge(f.Create(types.BuildBot)))
}

func TestStartsWithFullHealthAndCharge(t *testing.T) {
	bot := newFactory().Create(types.MineBot)
	assert.Equal(t, 50.0, bot.HP())
	assert.Equal(t, 72.0, bot.Charge())

	bot.SpendCharge(100)
	assert.Equal(t, 0.0, bot.Charge())
	bot.AddCharge(500)
	assert.Equal(t, 72.0, bot.Charge())
}

func TestTicksPerAction(t *testing.T) {
	e := newFactory().Create(types.GunTower)
	assert.Equal(t, 15.0, e.TicksPerAction())

	e.SetStat(stat.Slowed, 3)
	assert.Equal(t, 30.0, e.TicksPerAction())

	e.SetStat(stat.APS, 0)
	assert.Equal(t, float64(config.NeverTicks), e.TicksPerAction())
}

func TestUpdateActsOnFirstTickThenWaits(t *testing.T) {
	rng := utils.NewPRNGService(1)
	e := newFactory().Create(types.GunTower)

	assert.False(t, e.Update(false), "inactive scenes never act")
	require.True(t, e.Update(true))
	e.ScheduleNextAction(rng)

	wait := e.TicksUntilAction()
	assert.InDelta(t, 15, wait, 1)
	for i := 0; i < wait; i++ {
		assert.False(t, e.Update(true))
	}
	assert.True(t, e.Update(true))
}

func TestScheduleWithZeroSpeed(t *testing.T) {
	e := newFactory().Create(types.EnemySpawnZone)
	e.SetStat(stat.APS, 0)
	e.ScheduleNextAction(utils.NewPRNGService(1))
	assert.Equal(t, config.NeverTicks, e.TicksUntilAction())
}

func TestCalcDamage(t *testing.T) {
	f := newFactory()
	gun := f.Create(types.GunTower)
	wall := f.Create(types.WallTower)
	enemy := f.Create(types.Enemy)

	assert.Equal(t, 10.0, gun.CalcDamageAgainst(wall))
	assert.Equal(t, 15.0, gun.CalcDamageAgainst(enemy))

	enemy.SetStat(stat.Armor, 40)
	assert.Equal(t, 0.0, gun.CalcDamageAgainst(enemy))

	enemy.SetStat(stat.Armor, 0)
	enemy.SetStat(stat.Weakened, 2)
	assert.Equal(t, 22.0, gun.CalcDamageAgainst(enemy))
}

func TestGiveDamageAppliesVampirismAndRampage(t *testing.T) {
	f := newFactory()
	attacker := f.Create(types.Enemy)
	target := f.Create(types.WallTower)

	attacker.SetStat(stat.Vampirism, 50)
	attacker.SetStat(stat.Rampage, 2)
	attacker.SetHP(10)

	dealt := attacker.GiveDamageTo(target)
	assert.Equal(t, 10.0, dealt)
	assert.Equal(t, 240.0, target.HP())
	assert.Equal(t, 15.0, attacker.HP())
	assert.Equal(t, 2.0, attacker.Stat(stat.BonusDamage))

	attacker.GiveDamageTo(target)
	assert.Equal(t, 228.0, target.HP())
	assert.Equal(t, 4.0, attacker.Stat(stat.BonusDamage))
}

func TestGiveDamageAppliesStatuses(t *testing.T) {
	f := newFactory()
	slow := f.Create(types.SlowTower)
	enemy := f.Create(types.Enemy)

	slow.GiveDamageTo(enemy)
	assert.Equal(t, 8.0, enemy.Stat(stat.Slowed))
	assert.True(t, enemy.Perturbation.Active())
	assert.Equal(t, render.White, enemy.Color(ViewNormal))
}

func TestHPClampsAndDeath(t *testing.T) {
	e := newFactory().Create(types.WallTower)
	e.TakeDamageFrom(1000, nil)
	assert.Equal(t, 0.0, e.HP())
	assert.True(t, e.IsDead())
	e.SetHP(1e6)
	assert.Equal(t, 250.0, e.HP())
}

func TestAggressionDiscount(t *testing.T) {
	e := newFactory().Create(types.Enemy)
	assert.Equal(t, 1.0, e.AggressionDiscount())
	e.SetStat(stat.Aggression, 5)
	assert.InDelta(t, 0.5, e.AggressionDiscount(), 1e-9)
	e.SetStat(stat.Aggression, 50)
	assert.InDelta(t, 0.1, e.AggressionDiscount(), 1e-9)
	e.SetStat(stat.Aggression, -5)
	assert.Equal(t, 1.0, e.AggressionDiscount())
}

func TestGlyphs(t *testing.T) {
	f := newFactory()
	bot := f.Create(types.BuildBot)
	assert.Equal(t, "☻", bot.Glyph(0))
	bot.SpendCharge(bot.Charge())
	assert.Equal(t, "☺", bot.Glyph(0))

	wall := f.Create(types.WallTower)
	marker := f.NewBuildNewMarker(wall)
	assert.Equal(t, "█", marker.Glyph(0))
	assert.Equal(t, "!", marker.Glyph(config.MarkerBlinkTicks))
	assert.Equal(t, 10, marker.Marker.Required)
}

func TestColors(t *testing.T) {
	f := newFactory()
	heart := f.Create(types.HeartTower)
	assert.Equal(t, render.Cyan, heart.Color(ViewNormal))
	heart.SetHP(0)
	assert.Equal(t, render.Black, heart.BaseColor())

	rock := f.Create(types.RockTower)
	rock.Rock.Countdown = 3
	assert.Equal(t, render.DarkGray, rock.Color(ViewNormal))

	wall := f.Create(types.WallTower)
	assert.Equal(t, render.Green, wall.Color(ViewShowHP))

	enemy := f.Create(types.Enemy)
	assert.Equal(t, render.Red, enemy.Color(ViewShowHP))
}

func TestUpgradeMarkerUsesReplacementBuildTime(t *testing.T) {
	f := newFactory()
	a := NewArena()
	wall := f.Create(types.WallTower)
	door := f.Create(types.DoorTower)
	door.SetStat(stat.BuildTime, 4)
	a.Insert(wall)
	a.Insert(door)

	m := f.NewUpgradeMarker(wall, door)
	assert.Equal(t, 4, m.Marker.Required)
	assert.Equal(t, wall.ID, m.Marker.Target)
	assert.Equal(t, door.ID, m.Marker.Replacement)
}

func TestInfoTextWraps(t *testing.T) {
	e := newFactory().Create(types.WeaknessTower)
	lines := e.InfoText(20)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Weakness Tower (W):", lines[0].Text)
	for _, l := range lines {
		if len([]rune(l.Text)) > 20 {
			// wordwrap never breaks inside a word
			assert.NotContains(t, l.Text, " ")
		}
	}

	var found bool
	for _, l := range lines {
		if l.Text == "Cost: $35" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGoldIngot(t *testing.T) {
	g := newFactory().NewGoldIngot(15)
	assert.Equal(t, 15.0, g.SellPrice())
	assert.Equal(t, "Gold Bar ($15)", g.Name)
	assert.Equal(t, 0, g.Solidity())
}
