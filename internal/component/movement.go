// internal/component/movement.go
package component

import "automata-defense/pkg/grid"

// Path is a sequence of actions consumed from the front.
type Path struct {
	Steps []Action
}

// Set replaces the remaining steps.
func (p *Path) Set(steps []Action) {
	p.Steps = steps
}

// Clear drops every remaining step.
func (p *Path) Clear() {
	p.Steps = nil
}

// Empty reports whether no steps remain.
func (p *Path) Empty() bool {
	return len(p.Steps) == 0
}

// Next returns the step to perform. It panics on an empty path.
func (p *Path) Next() Action {
	return p.Steps[0]
}

// Advance drops the step that just completed.
func (p *Path) Advance() {
	if len(p.Steps) > 0 {
		p.Steps = p.Steps[1:]
	}
}

// Cells returns the cell of every remaining step.
func (p *Path) Cells() []grid.Cell {
	res := make([]grid.Cell, len(p.Steps))
	for i, s := range p.Steps {
		res[i] = s.Cell
	}
	return res
}
