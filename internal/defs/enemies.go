// internal/defs/enemies.go
package defs

import (
	"image/color"

	"automata-defense/internal/stat"
	"automata-defense/pkg/render"
)

// EnemyTier holds the static data for one difficulty tier of generated enemies.
type EnemyTier struct {
	Glyphs         []string
	Adjective      string
	DeathReward    float64
	GoldDropChance float64
	// Gold drops are GoldDropMin..GoldDropMax tens.
	GoldDropMin, GoldDropMax int
	Color                    color.RGBA
}

// EnemyTiers is indexed by tier, easiest first.
var EnemyTiers = []EnemyTier{
	{
		Glyphs:    splitGlyphs("abcdefghijklmnopqrstuvwxyz"),
		Adjective: "A weak entity", DeathReward: 0, GoldDropChance: 0.01,
		GoldDropMin: 3, GoldDropMax: 10, Color: render.Red,
	},
	{
		Glyphs:    splitGlyphs("üéâäàåçêëèïîìæôöòûùÿáíóúñ"),
		Adjective: "An entity", DeathReward: 10, GoldDropChance: 0.05,
		GoldDropMin: 3, GoldDropMax: 10, Color: render.Red,
	},
	{
		Glyphs:    splitGlyphs("αßΓπΣσµτΦΘΩδ∞φε∩≡"),
		Adjective: "An otherworldly entity", DeathReward: 20, GoldDropChance: 0.25,
		GoldDropMin: 3, GoldDropMax: 10, Color: render.DarkRed,
	},
	{
		Glyphs:    splitGlyphs("£¥₧ƒÄÅÉÆÇ"),
		Adjective: "A legendary entity", DeathReward: 50, GoldDropChance: 1.0,
		GoldDropMin: 3, GoldDropMax: 10, Color: render.Purple,
	},
}

// MaxTier is the hardest tier index.
func MaxTier() int {
	return len(EnemyTiers) - 1
}

// Tier returns the tier data, clamping out-of-range indices.
func Tier(i int) EnemyTier {
	if i < 0 {
		i = 0
	}
	if i > MaxTier() {
		i = MaxTier()
	}
	return EnemyTiers[i]
}

func splitGlyphs(s string) []string {
	var res []string
	for _, r := range s {
		res = append(res, string(r))
	}
	return res
}

// StatUpgrade describes one stat a wave may spend points on.
type StatUpgrade struct {
	Stat stat.Type
	Step float64 // added per point
	Cap  float64 // value never exceeded
}

// EnemyStatUpgrades are the stats wave points are distributed across.
var EnemyStatUpgrades = []StatUpgrade{
	{Stat: stat.HP, Step: 10, Cap: 600},
	{Stat: stat.APS, Step: 0.1, Cap: 4},
	{Stat: stat.Damage, Step: 2, Cap: 80},
	{Stat: stat.Armor, Step: 1, Cap: 12},
	{Stat: stat.Aggression, Step: 1, Cap: 9},
	{Stat: stat.Rampage, Step: 0.5, Cap: 5},
	{Stat: stat.Vampirism, Step: 5, Cap: 50},
}
