// internal/system/enemy_factory.go
package system

import (
	"fmt"

	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/utils"
)

// capEpsilon absorbs float drift when fractional steps approach a cap.
const capEpsilon = 1e-9

// EnemyFactory generates enemies of a tier with stat points spent on top of the base enemy.
type EnemyFactory struct {
	rng   *utils.PRNGService
	units *entity.Factory
}

// NewEnemyFactory creates an enemy factory drawing from rng.
func NewEnemyFactory(rng *utils.PRNGService, units *entity.Factory) *EnemyFactory {
	if units == nil {
		units = entity.NewFactory(nil)
	}
	return &EnemyFactory{rng: rng, units: units}
}

// Profile spends points on the enemy upgrade stats, one step per point, in a
// random round-robin order. Stats at their cap are skipped. Points left over
// once every stat is capped are lost.
func (f *EnemyFactory) Profile(points int) stat.Block {
	block := f.units.Lib.Get(types.Enemy).Stats
	upgrades := append([]defs.StatUpgrade(nil), defs.EnemyStatUpgrades...)
	f.rng.Shuffle(len(upgrades), func(i, j int) { upgrades[i], upgrades[j] = upgrades[j], upgrades[i] })

	next := 0
	for ; points > 0; points-- {
		spent := false
		for range upgrades {
			u := upgrades[next%len(upgrades)]
			next++
			if v := block.Get(u.Stat) + u.Step; v <= u.Cap+capEpsilon {
				block.Set(u.Stat, v)
				spent = true
				break
			}
		}
		if !spent {
			break
		}
	}
	return block
}

// Spawn creates an unplaced enemy of tier with the given stats.
// Tiers outside the table are clamped.
func (f *EnemyFactory) Spawn(tier int, profile stat.Block) *entity.Entity {
	tier = max(0, min(tier, defs.MaxTier()))
	t := defs.Tier(tier)

	def := f.units.Lib.Get(types.Enemy)
	def.Glyph = t.Glyphs[f.rng.Intn(len(t.Glyphs))]
	def.Description = fmt.Sprintf("%s known only as %q.", t.Adjective, def.Glyph)
	def.Color = t.Color
	def.Stats = profile
	def.Stats.Set(stat.DeathReward, t.DeathReward)
	if f.rng.Chance(t.GoldDropChance) {
		def.Stats.Set(stat.SellPrice, float64(f.rng.IntRange(t.GoldDropMin, t.GoldDropMax)*10))
	} else {
		def.Stats.Set(stat.SellPrice, 0)
	}

	e := entity.New(def)
	e.Enemy.Tier = tier
	return e
}

// SpawnRandom creates an enemy of tier with points spent on a fresh profile.
func (f *EnemyFactory) SpawnRandom(tier, points int) *entity.Entity {
	return f.Spawn(tier, f.Profile(points))
}
