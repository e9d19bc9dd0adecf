package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata-defense/internal/stat"
	"automata-defense/internal/types"
)

func TestLibraryCoversEveryKind(t *testing.T) {
	lib := NewLibrary()
	for _, k := range types.AllKinds() {
		d, ok := lib[k]
		require.True(t, ok, k.String())
		assert.Equal(t, k, d.Kind)
		assert.NotEmpty(t, d.Glyph, k.String())
	}
}

func TestVariantStats(t *testing.T) {
	lib := NewLibrary()

	wall := lib.Get(types.WallTower).Stats
	assert.Equal(t, 250.0, wall.Get(stat.HP))
	assert.Equal(t, 5.0, wall.Get(stat.Armor))
	assert.Equal(t, 1.0, wall.Get(stat.Solidity))

	door := lib.Get(types.DoorTower).Stats
	assert.Equal(t, 2.0, door.Get(stat.Solidity))

	mine := lib.Get(types.MineBot).Stats
	assert.Equal(t, 72.0, mine.Get(stat.MaxCharge))
	assert.Equal(t, 0.0, mine.Get(stat.Solidity))

	heart := lib.Get(types.HeartTower).Stats
	assert.Equal(t, 100.0, heart.Get(stat.HP))
	assert.Equal(t, 25.0, heart.Get(stat.BuyPrice))
}

func TestUpgrades(t *testing.T) {
	lib := NewLibrary()
	assert.Equal(t, []types.Kind{types.GoldOreTower}, lib.UpgradesOf(types.RockTower))
	assert.Equal(t, []types.Kind{types.DoorTower}, lib.UpgradesOf(types.WallTower))
	assert.Equal(t, []types.Kind{types.PoisonTower}, lib.UpgradesOf(types.SlowTower))
	assert.Empty(t, lib.UpgradesOf(types.GunTower))
}

func TestApplyOverrides(t *testing.T) {
	lib := NewLibrary()
	err := lib.ApplyOverrides([]byte(`
units:
  GunTower:
    Damage: 20
    Range: 4
`))
	require.NoError(t, err)
	gun := lib.Get(types.GunTower).Stats
	assert.Equal(t, 20.0, gun.Get(stat.Damage))
	assert.Equal(t, 4.0, gun.Get(stat.Range))
	assert.Equal(t, 50.0, gun.Get(stat.HP))
}

func TestApplyOverridesRejectsUnknownNames(t *testing.T) {
	lib := NewLibrary()
	assert.Error(t, lib.ApplyOverrides([]byte("units:\n  Dragon:\n    Damage: 1\n")))
	assert.Error(t, lib.ApplyOverrides([]byte("units:\n  GunTower:\n    Luck: 1\n")))
	assert.Equal(t, 15.0, lib.Get(types.GunTower).Stats.Get(stat.Damage))
}

func TestLoadLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units:\n  WallTower:\n    Max Health: 400\n"), 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, 400.0, lib.Get(types.WallTower).Stats.Get(stat.HP))

	_, err = LoadLibrary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBaseTierForLevel(t *testing.T) {
	assert.Equal(t, 0, BaseTierForLevel(1))
	assert.Equal(t, 1, BaseTierForLevel(5))
	assert.Equal(t, 1, BaseTierForLevel(14))
	assert.Equal(t, 2, BaseTierForLevel(15))
	assert.Equal(t, 3, BaseTierForLevel(31))
}

func TestTierClamps(t *testing.T) {
	assert.Equal(t, EnemyTiers[0].Adjective, Tier(-3).Adjective)
	assert.Equal(t, EnemyTiers[MaxTier()].Adjective, Tier(99).Adjective)
	assert.Len(t, EnemyTiers[3].Glyphs, 9)
}
