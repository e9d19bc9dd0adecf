// internal/component/action.go
package component

import (
	"fmt"

	"automata-defense/pkg/grid"
)

// ActionKind selects how an Action is costed and performed.
type ActionKind int

const (
	// MoveTo steps into a free neighbouring cell.
	MoveTo ActionKind = iota
	// AttackAndMove steps into a neighbouring cell, attacking whatever blocks it first.
	AttackAndMove
)

func (k ActionKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case AttackAndMove:
		return "AttackAndMove"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// ActionResult is the outcome of performing one step.
type ActionResult int

const (
	// Done means the step completed and the next one may run.
	Done ActionResult = iota
	// Failed aborts the rest of the path.
	Failed
	// InProgress means the step must be retried on the next act.
	InProgress
)

// Action is one atomic intent targeting a cell.
// Prev and PrevCost link it to the step before it during a search.
type Action struct {
	Kind     ActionKind
	Cell     grid.Cell
	Prev     *Action
	PrevCost float64
}

func (a Action) String() string {
	return fmt.Sprintf("%s%s", a.Kind, a.Cell)
}
