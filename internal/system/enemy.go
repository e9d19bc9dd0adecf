// internal/system/enemy.go
package system

import (
	"automata-defense/internal/component"
	"automata-defense/internal/entity"
	"automata-defense/internal/event"
	"automata-defense/internal/interfaces"
	"automata-defense/internal/pathfind"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
)

// actEnemy advances an enemy one step along its route to the nearest heart,
// tearing down whatever blocks it. Routes are replanned whenever the map changes.
func actEnemy(w *world.World, e *entity.Entity) {
	DecayStatusEffects(e)
	if e.IsDead() {
		return
	}

	path := &e.Enemy.Path
	if !path.Empty() {
		switch pathfind.Perform(path.Next(), e, w) {
		case component.Done:
			path.Advance()
		case component.Failed:
			path.Clear()
		}
		return
	}

	hearts := w.Positions(w.Hearts())
	if len(hearts) == 0 {
		Wander(w, e)
		return
	}
	steps := pathfind.FindBestPath(e, w, hearts, component.AttackAndMove)
	if steps == nil {
		w.Logger().Warn("failed to find path to hearts", "enemy", e.ID, "cell", w.MustPos(e))
		Wander(w, e)
		return
	}
	path.Set(steps)
}

// onEnemyDeath drops the enemy's gold where it fell and pays out its bounty.
func onEnemyDeath(w *world.World, s interfaces.Scene, e *entity.Entity) {
	pos := w.MustPos(e)

	if drop := e.SellPrice(); drop > 0 {
		if ingots := w.EntitiesInCell(pos, world.HasCap(types.CapGoldIngot)); len(ingots) > 0 {
			entity.SetIngotValue(ingots[0], ingots[0].SellPrice()+drop)
		} else {
			w.SetPos(w.Factory().NewGoldIngot(drop), pos)
		}
	}

	if reward := e.Stat(stat.DeathReward); reward > 0 {
		s.ScoreItem(w.Factory().NewGoldIngot(reward))
	}

	w.Dispatcher().Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EntityData{ID: e.ID, Kind: e.Kind, Cell: pos},
	})
}
