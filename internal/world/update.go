// internal/world/update.go
package world

import (
	"automata-defense/internal/event"
	"automata-defense/internal/interfaces"
)

// UpdateAll advances the simulation by one tick.
//
// Entities act in placement order as of the start of the tick. Entities placed
// during the tick wait for the next one and entities removed during it are skipped.
// Unless the scene is paused the dead are then reaped. The spawn controller
// advances only on frames that are neither skipped nor past game over.
func (w *World) UpdateAll(scene interfaces.Scene) {
	snapshot := w.placed.Items()

	if w.geometryChanged {
		w.geometryChanged = false
		for _, e := range w.Enemies() {
			e.Enemy.Path.Clear()
		}
		w.dispatcher.Dispatch(event.Event{Type: event.GeometryChanged})
	}

	active := !scene.IsPaused() && !scene.IsGameOver() && !scene.ShouldSkipThisFrame()
	for _, id := range snapshot {
		e := w.arena.Get(id)
		if e == nil || !w.placed.Has(id) {
			continue
		}
		if e.Update(active) {
			if w.behavior != nil {
				w.behavior.Act(w, scene, e)
			}
			e.ScheduleNextAction(w.rng)
		}
	}

	if !scene.IsPaused() {
		for _, e := range w.All() {
			if !e.IsDead() {
				continue
			}
			if w.behavior != nil {
				w.behavior.OnDeath(w, scene, e)
			}
			w.Release(e.ID)
		}
		if !scene.IsGameOver() && !scene.ShouldSkipThisFrame() && w.spawner != nil {
			w.spawner.Update(w)
		}
	}
	w.ticks++
}
