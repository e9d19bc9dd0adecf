// internal/system/spawn_zone.go
package system

import (
	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
)

// actSpawnZone releases a single straggler between waves when nothing stands on the zone.
func (b *Behaviors) actSpawnZone(w *world.World, e *entity.Entity) {
	if !b.idleSpawns || b.enemies == nil {
		return
	}
	pos := w.MustPos(e)
	if len(w.EntitiesInCell(pos, world.HasCap(types.CapEnemy))) > 0 {
		return
	}
	rng := w.RNG()
	idx := rng.ChooseWeighted(defs.Weights(defs.SpawnZoneTiers))
	if idx < 0 {
		return
	}
	tier := defs.SpawnZoneTiers[idx].Tier
	enemy := b.enemies.SpawnRandom(tier, rng.Intn(defs.StragglerPointsMax+1))
	w.SetPos(enemy, pos)
	w.Logger().Debug("straggler spawned", "tier", tier, "cell", pos)
}
