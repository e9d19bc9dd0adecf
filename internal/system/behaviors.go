// internal/system/behaviors.go
package system

import (
	"fmt"

	"automata-defense/internal/entity"
	"automata-defense/internal/interfaces"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
)

// Behaviors runs the per-kind logic of every entity. It implements world.Behavior.
type Behaviors struct {
	enemies    *EnemyFactory
	idleSpawns bool
}

// NewBehaviors creates the behaviour set. Spawn zones use enemies to create
// stragglers when idleSpawns is set.
func NewBehaviors(enemies *EnemyFactory, idleSpawns bool) *Behaviors {
	return &Behaviors{enemies: enemies, idleSpawns: idleSpawns}
}

var _ world.Behavior = (*Behaviors)(nil)

// Act runs one decision of e.
func (b *Behaviors) Act(w *world.World, s interfaces.Scene, e *entity.Entity) {
	switch e.Kind {
	case types.BuildBotSpawner, types.MineBotSpawner, types.ScavengerBotSpawner:
		b.actSpawner(w, e)
	case types.RockTower, types.GoldOreTower:
		actRock(e)
	case types.GunTower, types.ExplosionTower, types.WeaknessTower, types.SlowTower, types.PoisonTower:
		actAttackTower(w, e)
	case types.BuildBot, types.MineBot, types.ScavengerBot:
		b.actRobot(w, s, e)
	case types.Enemy:
		actEnemy(w, e)
	case types.EnemySpawnZone:
		b.actSpawnZone(w, e)
	case types.HeartTower, types.WallTower, types.DoorTower,
		types.GoldIngot, types.StoneItem,
		types.BuildNewMarker, types.SellMarker, types.UpgradeMarker:
		// passive
	default:
		panic(fmt.Sprintf("no behaviour for %s", e.Kind))
	}
}

// OnDeath runs just before a dead entity is taken off the grid.
func (b *Behaviors) OnDeath(w *world.World, s interfaces.Scene, e *entity.Entity) {
	switch {
	case e.Enemy != nil:
		onEnemyDeath(w, s, e)
	case e.Robot != nil:
		if e.Robot.IsCarrying() {
			w.Release(e.Robot.Carrying)
			e.Robot.Carrying = types.EntityID{}
		}
	}
}
