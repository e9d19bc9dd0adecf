// internal/pathfind/action.go
package pathfind

import (
	"math"

	"automata-defense/internal/component"
	"automata-defense/internal/config"
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

// Move returns a plain move to c.
func Move(c grid.Cell) component.Action {
	return component.Action{Kind: component.MoveTo, Cell: c}
}

// AttackMove returns an attack-and-move to c.
func AttackMove(c grid.Cell) component.Action {
	return component.Action{Kind: component.AttackAndMove, Cell: c}
}

// Cost estimates how many ticks e needs to perform a.
func Cost(a component.Action, e *entity.Entity, w *world.World) float64 {
	switch a.Kind {
	case component.MoveTo:
		return e.TicksPerAction()
	case component.AttackAndMove:
		return BlockerClearingCost(e, a.Cell, w) + e.TicksPerAction()
	default:
		panic("unknown action kind " + a.Kind.String())
	}
}

// TotalCost is the cost of a plus everything before it on its path.
func TotalCost(a component.Action, e *entity.Entity, w *world.World) float64 {
	return a.PrevCost + Cost(a, e, w)
}

// IsPossible reports whether a may appear in a plan for e.
func IsPossible(a component.Action, e *entity.Entity, w *world.World) bool {
	switch a.Kind {
	case component.MoveTo:
		return w.CanMoveTo(e, a.Cell)
	case component.AttackAndMove:
		return w.InBounds(a.Cell)
	default:
		return false
	}
}

// Perform carries out one step of a for e.
func Perform(a component.Action, e *entity.Entity, w *world.World) component.ActionResult {
	cur, ok := w.Pos(e)
	if !ok || cur.Manhattan(a.Cell) > 1 {
		return component.Failed
	}

	if w.CanMoveTo(e, a.Cell) {
		w.SetPos(e, a.Cell)
		return component.Done
	}
	if a.Kind != component.AttackAndMove {
		return component.Failed
	}

	blockers := w.EntitiesInCell(a.Cell, world.Solid)
	if len(blockers) == 0 {
		// off the grid
		return component.Failed
	}
	e.GiveDamageTo(blockers[w.RNG().Intn(len(blockers))])
	return component.InProgress
}

// BlockerClearingCost estimates the ticks attacker needs to destroy everything
// blocking c, discounted by its aggression.
func BlockerClearingCost(attacker *entity.Entity, c grid.Cell, w *world.World) float64 {
	tpa := attacker.TicksPerAction()
	discount := attacker.AggressionDiscount()
	ramp := attacker.Stat(stat.Rampage)

	res := 0.0
	for _, b := range w.EntitiesInCell(c, world.Solid) {
		hits := HitsToKill(b.HP(), attacker.CalcDamageAgainst(b), ramp)
		res += hits * tpa * discount
	}
	return res
}

// HitsToKill returns the whole number of hits needed to deal hp damage when the
// first hit deals dmg and every later hit deals rampage more than the one before.
func HitsToKill(hp, dmg, rampage float64) float64 {
	switch {
	case hp <= 0:
		return 0
	case rampage <= 0 && dmg <= 0:
		return hp * config.UnbreakableHitFactor
	case rampage <= 0:
		return math.Ceil(hp / dmg)
	}
	// total after x hits: (rampage/2)x² + (dmg - rampage/2)x
	a := rampage / 2
	b := dmg - rampage/2
	c := -hp
	x := (-b + math.Sqrt(b*b-4*a*c)) / (2 * a)
	return math.Ceil(x - 1e-9)
}
