// internal/defs/units.go
package defs

import (
	"image/color"

	"automata-defense/internal/config"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/pkg/render"
)

// UnitDefinition holds all the static data for one entity kind.
type UnitDefinition struct {
	Kind        types.Kind
	Name        string
	Description string
	Glyph       string
	ShopIcon    string
	Color       color.RGBA
	Stats       stat.Block
	Attack      AttackPattern
	Upgrades    []types.Kind
}

// Library maps every kind to its definition.
type Library map[types.Kind]UnitDefinition

type statMap = map[stat.Type]float64

func merge(layers ...statMap) stat.Block {
	b := stat.Defaults()
	for _, l := range layers {
		b = b.With(l)
	}
	return b
}

var (
	towerStats   = statMap{stat.BuyPrice: 25, stat.SellPrice: 15, stat.StonePrice: 5}
	spawnerStats = statMap{stat.Solidity: 2}
	agentStats   = statMap{stat.Solidity: 0}
	robotStats   = statMap{stat.MaxCharge: 64, stat.APS: 2.5}
	attackStats  = statMap{
		stat.Range: 2, stat.BuyPrice: 25, stat.SellPrice: 15, stat.StonePrice: 5,
		stat.APS: 2, stat.HP: 75, stat.Damage: 5, stat.Armor: 0, stat.Solidity: 1,
	}
	rockStats = statMap{stat.HP: 200, stat.Solidity: 1, stat.APS: 1, stat.StonePrice: 85}
	flatStats = statMap{stat.Solidity: 0}
)

// EnemyBaseStats are the stats every generated enemy starts from.
var EnemyBaseStats = statMap{
	stat.HP: 50, stat.APS: 1.5, stat.Damage: 15, stat.Armor: 0, stat.Aggression: 0,
}

// NewLibrary returns the built-in unit catalogue.
func NewLibrary() Library {
	lib := Library{}
	add := func(d UnitDefinition) {
		if d.ShopIcon == "" {
			d.ShopIcon = d.Glyph
		}
		lib[d.Kind] = d
	}

	add(UnitDefinition{
		Kind: types.HeartTower, Name: "Energy Crystal", Glyph: "♦", Color: render.Cyan,
		Description: "Protect this tower at all costs!\nGold and stones are delivered here.",
		Stats:       merge(towerStats, statMap{stat.Repairable: 0, stat.HP: 100, stat.Solidity: 1}),
	})
	add(UnitDefinition{
		Kind: types.BuildBotSpawner, Name: "Build-Bot Factory", Glyph: "B", ShopIcon: "Blder/☻", Color: render.Green,
		Description: "A tower that creates Build-Bots.",
		Stats:       merge(towerStats, spawnerStats, statMap{stat.StonePrice: 0, stat.BuyPrice: 25, stat.SellPrice: 10}),
	})
	add(UnitDefinition{
		Kind: types.MineBotSpawner, Name: "Mine-Bot Factory", Glyph: "M", ShopIcon: "Miner/☻", Color: render.MidGray,
		Description: "A tower that creates Mine-Bots.",
		Stats:       merge(towerStats, spawnerStats, statMap{stat.StonePrice: 0, stat.BuyPrice: 50, stat.SellPrice: 20}),
	})
	add(UnitDefinition{
		Kind: types.ScavengerBotSpawner, Name: "Scavenger-Bot Factory", Glyph: "S", ShopIcon: "Scvgr/☻", Color: render.Yellow,
		Description: "A tower that creates Scavenger-Bots.",
		Stats:       merge(towerStats, spawnerStats, statMap{stat.StonePrice: 0, stat.BuyPrice: 150, stat.SellPrice: 50}),
	})
	add(UnitDefinition{
		Kind: types.RockTower, Name: "Rock", Glyph: "▒", ShopIcon: "Rock", Color: render.LightGray,
		Description: "A large rock. Can be mined for stone.",
		Stats:       merge(towerStats, rockStats),
		Upgrades:    []types.Kind{types.GoldOreTower},
	})
	add(UnitDefinition{
		Kind: types.GoldOreTower, Name: "Gold Ore", Glyph: "▒", Color: render.DarkYellow,
		Description: "A rock with veins of gold.\nCan be mined for stone and gold.",
		Stats:       merge(towerStats, rockStats),
	})
	add(UnitDefinition{
		Kind: types.WallTower, Name: "Wall", Glyph: "█", ShopIcon: "Wall", Color: render.LightGray,
		Description: "An impassible wall.\nCan be upgraded to a door.",
		Stats: merge(towerStats, statMap{
			stat.Solidity: 1, stat.HP: 250, stat.StonePrice: 15, stat.BuyPrice: 15, stat.SellPrice: 0, stat.Armor: 5,
		}),
		Upgrades: []types.Kind{types.DoorTower},
	})
	add(UnitDefinition{
		Kind: types.DoorTower, Name: "Door", Glyph: "◘", Color: render.LightGray,
		Description: "A door that only bots can pass through.",
		Stats:       merge(towerStats, statMap{stat.Solidity: 2, stat.StonePrice: 20, stat.BuyPrice: 50, stat.SellPrice: 20}),
	})
	add(UnitDefinition{
		Kind: types.GunTower, Name: "Gun Tower", Glyph: "G", ShopIcon: "Gun Twr", Color: render.Brown,
		Description: "A basic tower that shoots enemies.",
		Attack:      AttackSingle,
		Stats: merge(towerStats, attackStats, statMap{
			stat.Range: 3, stat.BuyPrice: 25, stat.SellPrice: 15, stat.StonePrice: 2, stat.APS: 2, stat.HP: 50, stat.Damage: 15,
		}),
	})
	add(UnitDefinition{
		Kind: types.ExplosionTower, Name: "Explosion Tower", Glyph: "E", ShopIcon: "Expl Twr", Color: render.Orange,
		Description: "A tower that deals damage to all enemies\nwithin its radius.",
		Attack:      AttackAll,
		Stats: merge(towerStats, attackStats, statMap{
			stat.Range: 2, stat.BuyPrice: 75, stat.SellPrice: 20, stat.StonePrice: 8, stat.APS: 1.2, stat.HP: 65, stat.Damage: 10,
		}),
	})
	add(UnitDefinition{
		Kind: types.WeaknessTower, Name: "Weakness Tower", Glyph: "W", ShopIcon: "Weak Twr", Color: render.Blue,
		Description: "A tower that weakens enemies and makes them\ntake more damage.",
		Attack:      AttackSingle,
		Stats: merge(towerStats, attackStats, statMap{
			stat.Range: 3, stat.BuyPrice: 35, stat.SellPrice: 20, stat.StonePrice: 5, stat.APS: 1.5, stat.HP: 75, stat.Damage: 3,
			stat.WeaknessOnHit: 10,
		}),
	})
	add(UnitDefinition{
		Kind: types.SlowTower, Name: "Slowing Tower", Glyph: "S", ShopIcon: "Slow Twr", Color: render.DarkPurple,
		Description: "A tower that slows enemies.\nCan be upgraded to poison enemies.",
		Attack:      AttackSingle,
		Stats: merge(towerStats, attackStats, statMap{
			stat.Range: 3, stat.BuyPrice: 60, stat.SellPrice: 15, stat.StonePrice: 5, stat.APS: 1.75, stat.HP: 75, stat.Damage: 5,
			stat.SlowOnHit: 8,
		}),
		Upgrades: []types.Kind{types.PoisonTower},
	})
	add(UnitDefinition{
		Kind: types.PoisonTower, Name: "Poison Tower", Glyph: "P", ShopIcon: "Pois Twr", Color: render.Purple,
		Description: "A tower that poisons enemies.",
		Attack:      AttackSingle,
		Stats: merge(towerStats, attackStats, statMap{
			stat.Range: 3, stat.BuyPrice: 100, stat.SellPrice: 50, stat.StonePrice: 0, stat.APS: 2, stat.HP: 100, stat.Damage: 8,
			stat.PoisonOnHit: 12,
		}),
	})
	add(UnitDefinition{
		Kind: types.BuildBot, Name: "Build-Bot", Glyph: "☻", Color: render.Green,
		Description: "A robot that builds (and sells) towers.",
		Stats:       merge(agentStats, robotStats),
	})
	add(UnitDefinition{
		Kind: types.MineBot, Name: "Mine-Bot", Glyph: "☻", Color: render.MidGray,
		Description: "A robot that can mine resources.",
		Stats:       merge(agentStats, robotStats, statMap{stat.MaxCharge: 72, stat.APS: 1.5}),
	})
	add(UnitDefinition{
		Kind: types.ScavengerBot, Name: "Scavenger-Bot", Glyph: "☻", Color: render.Yellow,
		Description: "A robot that collects and delivers gold.",
		Stats:       merge(agentStats, robotStats, statMap{stat.MaxCharge: 64, stat.APS: 2}),
	})
	add(UnitDefinition{
		Kind: types.Enemy, Name: "Enemy", Glyph: "a", Color: render.Red,
		Description: "A weak entity.",
		Stats:       merge(agentStats, EnemyBaseStats),
	})
	add(UnitDefinition{
		Kind: types.GoldIngot, Name: "Gold Bar", Glyph: "$", Color: render.DarkYellow,
		Description: "A valuable piece of gold.\nCan be delivered to an energy crystal.",
		Stats:       merge(flatStats),
	})
	add(UnitDefinition{
		Kind: types.StoneItem, Name: "Piece of Stone", Glyph: "•", Color: render.LightGray,
		Description: "A piece of stone, used for building.\nCan be delivered to an energy crystal.",
		Stats:       merge(flatStats),
	})
	add(UnitDefinition{
		Kind: types.BuildNewMarker, Name: "Construction", Glyph: "!", Color: render.White,
		Description: "(Waiting for Build-Bot)",
		Stats:       merge(flatStats),
	})
	add(UnitDefinition{
		Kind: types.SellMarker, Name: "Sale", Glyph: "$", Color: render.White,
		Description: "(Waiting for Build-Bot)",
		Stats:       merge(flatStats),
	})
	add(UnitDefinition{
		Kind: types.UpgradeMarker, Name: "Upgrade", Glyph: "↑", Color: render.White,
		Description: "(Waiting for Build-Bot)",
		Stats:       merge(flatStats),
	})
	add(UnitDefinition{
		Kind: types.EnemySpawnZone, Name: "Enemy Spawn Zone", Glyph: "x", Color: render.DarkRed,
		Description: "Cannot build here.\nEnemies are invincible while standing here.",
		Stats:       merge(flatStats, statMap{stat.APS: config.SpawnZoneAPS}),
	})

	return lib
}

// Get returns the definition of kind. It panics for kinds missing from the library.
func (l Library) Get(kind types.Kind) UnitDefinition {
	d, ok := l[kind]
	if !ok {
		panic("no unit definition for " + kind.String())
	}
	return d
}

// Shop lists the purchasable kinds in display order. KindNone separates groups.
var Shop = []types.Kind{
	types.BuildBotSpawner,
	types.MineBotSpawner,
	types.ScavengerBotSpawner,
	types.KindNone,
	types.GunTower,
	types.ExplosionTower,
	types.WeaknessTower,
	types.SlowTower,
	types.KindNone,
	types.WallTower,
	types.RockTower,
}
