// internal/system/spawner.go
package system

import (
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
	"automata-defense/internal/world"
)

// actSpawner keeps the spawner's robot alive and charges it while it stands on the spawner.
// The first robot appears at once. A lost robot is rebuilt after one action period of acts.
func (b *Behaviors) actSpawner(w *world.World, e *entity.Entity) {
	sp := e.Spawner
	pos := w.MustPos(e)

	if sp.Robot.IsZero() {
		b.spawnRobot(w, e)
		return
	}

	robot := w.Get(sp.Robot)
	switch {
	case robot == nil || robot.IsDead():
		sp.BuildCountup++
		if float64(sp.BuildCountup) >= e.TicksPerAction() {
			b.spawnRobot(w, e)
		}
	case !w.Contains(robot):
		w.SetPos(robot, pos)
	case w.MustPos(robot) == pos:
		robot.AddCharge(e.Stat(stat.ChargeRate))
	}
}

func (b *Behaviors) spawnRobot(w *world.World, e *entity.Entity) {
	robot := w.Factory().Create(e.Spawner.RobotKind)
	w.SetPos(robot, w.MustPos(e))
	e.Spawner.Robot = robot.ID
	e.Spawner.BuildCountup = 0
	w.Logger().Debug("robot built", "spawner", e.Kind, "robot", robot.ID)
}
