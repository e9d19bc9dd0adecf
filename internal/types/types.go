// internal/types/types.go
package types

import "fmt"

// EntityID is a generational handle into the entity arena.
// The zero value refers to no entity.
type EntityID struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether the handle refers to no entity.
func (id EntityID) IsZero() bool {
	return id.Gen == 0
}

func (id EntityID) String() string {
	return fmt.Sprintf("#%d.%d", id.Index, id.Gen)
}

// Kind is the closed set of entity variants.
type Kind int

const (
	KindNone Kind = iota
	HeartTower
	BuildBotSpawner
	MineBotSpawner
	ScavengerBotSpawner
	RockTower
	GoldOreTower
	WallTower
	DoorTower
	GunTower
	ExplosionTower
	WeaknessTower
	SlowTower
	PoisonTower
	BuildBot
	MineBot
	ScavengerBot
	Enemy
	GoldIngot
	StoneItem
	BuildNewMarker
	SellMarker
	UpgradeMarker
	EnemySpawnZone

	kindCount
)

// AllKinds lists every real kind in declaration order.
func AllKinds() []Kind {
	res := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		res = append(res, k)
	}
	return res
}

var kindNames = [kindCount]string{
	KindNone:            "None",
	HeartTower:          "HeartTower",
	BuildBotSpawner:     "BuildBotSpawner",
	MineBotSpawner:      "MineBotSpawner",
	ScavengerBotSpawner: "ScavengerBotSpawner",
	RockTower:           "RockTower",
	GoldOreTower:        "GoldOreTower",
	WallTower:           "WallTower",
	DoorTower:           "DoorTower",
	GunTower:            "GunTower",
	ExplosionTower:      "ExplosionTower",
	WeaknessTower:       "WeaknessTower",
	SlowTower:           "SlowTower",
	PoisonTower:         "PoisonTower",
	BuildBot:            "BuildBot",
	MineBot:             "MineBot",
	ScavengerBot:        "ScavengerBot",
	Enemy:               "Enemy",
	GoldIngot:           "GoldIngot",
	StoneItem:           "StoneItem",
	BuildNewMarker:      "BuildNewMarker",
	SellMarker:          "SellMarker",
	UpgradeMarker:       "UpgradeMarker",
	EnemySpawnZone:      "EnemySpawnZone",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind looks a kind up by its String form.
func ParseKind(name string) (Kind, bool) {
	for k := KindNone + 1; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindNone, false
}

// Capability is a bitset of the predicates the world partitions entities by.
type Capability uint16

const (
	CapTower Capability = 1 << iota
	CapRobot
	CapEnemy
	CapHeart
	CapSpawner
	CapRock
	CapStoneItem
	CapGoldIngot
	CapBuildMarker
	CapDecoration
	CapAttackTower
	CapSpawnZone

	// CapabilityCount is the number of distinct capability bits.
	CapabilityCount = iota
)

// Has reports whether every bit of o is set in c.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

// Capabilities returns the predicate bits of a kind.
func (k Kind) Capabilities() Capability {
	switch k {
	case HeartTower:
		return CapTower | CapHeart
	case BuildBotSpawner, MineBotSpawner, ScavengerBotSpawner:
		return CapTower | CapSpawner
	case RockTower, GoldOreTower:
		return CapTower | CapRock
	case WallTower, DoorTower:
		return CapTower
	case GunTower, ExplosionTower, WeaknessTower, SlowTower, PoisonTower:
		return CapTower | CapAttackTower
	case BuildBot, MineBot, ScavengerBot:
		return CapRobot
	case Enemy:
		return CapEnemy
	case GoldIngot:
		return CapGoldIngot
	case StoneItem:
		return CapStoneItem
	case BuildNewMarker, SellMarker, UpgradeMarker:
		return CapBuildMarker
	case EnemySpawnZone:
		return CapDecoration | CapSpawnZone
	case KindNone:
		return 0
	default:
		panic(fmt.Sprintf("unknown entity kind %d", int(k)))
	}
}

func (k Kind) IsTower() bool       { return k.Capabilities().Has(CapTower) }
func (k Kind) IsRobot() bool       { return k.Capabilities().Has(CapRobot) }
func (k Kind) IsEnemy() bool       { return k.Capabilities().Has(CapEnemy) }
func (k Kind) IsHeart() bool       { return k.Capabilities().Has(CapHeart) }
func (k Kind) IsSpawner() bool     { return k.Capabilities().Has(CapSpawner) }
func (k Kind) IsRock() bool        { return k.Capabilities().Has(CapRock) }
func (k Kind) IsStoneItem() bool   { return k.Capabilities().Has(CapStoneItem) }
func (k Kind) IsGoldIngot() bool   { return k.Capabilities().Has(CapGoldIngot) }
func (k Kind) IsBuildMarker() bool { return k.Capabilities().Has(CapBuildMarker) }
func (k Kind) IsDecoration() bool  { return k.Capabilities().Has(CapDecoration) }
func (k Kind) IsAttackTower() bool { return k.Capabilities().Has(CapAttackTower) }
func (k Kind) IsSpawnZone() bool   { return k.Capabilities().Has(CapSpawnZone) }

// RobotFor returns the robot kind a spawner produces.
func (k Kind) RobotFor() (Kind, bool) {
	switch k {
	case BuildBotSpawner:
		return BuildBot, true
	case MineBotSpawner:
		return MineBot, true
	case ScavengerBotSpawner:
		return ScavengerBot, true
	}
	return KindNone, false
}
