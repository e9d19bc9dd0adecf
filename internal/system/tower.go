// internal/system/tower.go
package system

import (
	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
	"automata-defense/pkg/render"
)

// actAttackTower shoots at enemies within range. Enemies still standing on a
// spawn zone cannot be targeted.
func actAttackTower(w *world.World, e *entity.Entity) {
	pos := w.MustPos(e)
	targets := w.EntitiesInRange(pos, e.Stat(stat.Range), func(o *entity.Entity) bool {
		return o.Is(types.CapEnemy) && !o.IsDead() && !onSpawnZone(w, o)
	})
	if len(targets) == 0 {
		return
	}

	switch e.Attack {
	case defs.AttackAll:
		for _, t := range targets {
			e.GiveDamageTo(t)
		}
	case defs.AttackSingle:
		e.GiveDamageTo(targets[w.RNG().Intn(len(targets))])
	default:
		return
	}
	e.Perturb(render.White, config.DamagePerturbDuration)
}

func onSpawnZone(w *world.World, e *entity.Entity) bool {
	pos, ok := w.Pos(e)
	return ok && len(w.EntitiesInCell(pos, world.HasCap(types.CapSpawnZone))) > 0
}
