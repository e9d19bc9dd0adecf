// internal/app/view.go
package app

import (
	"image/color"

	"automata-defense/internal/entity"
	"automata-defense/pkg/grid"
)

// CellView is what a front end draws for one cell.
type CellView struct {
	Glyph string
	Color color.RGBA
	Empty bool
}

// View returns the topmost occupant of c as a front end should draw it.
func (g *Game) View(c grid.Cell, mode entity.ViewMode) CellView {
	occupants := g.World.EntitiesInCell(c, nil)
	if len(occupants) == 0 {
		return CellView{Glyph: "·", Empty: true}
	}
	top := occupants[len(occupants)-1]
	return CellView{Glyph: top.Glyph(g.World.Ticks()), Color: top.Color(mode)}
}
