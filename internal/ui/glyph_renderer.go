// internal/ui/glyph_renderer.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"automata-defense/pkg/grid"
)

// NewMonoFace loads the built-in monospace face. It covers the box-drawing and
// symbol glyphs the board uses.
func NewMonoFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// GlyphRenderer draws the board as a grid of text cells.
type GlyphRenderer struct {
	Face             font.Face
	CellW, CellH     int
	OffsetX, OffsetY int
}

func NewGlyphRenderer(face font.Face, cellW, cellH, offsetX, offsetY int) *GlyphRenderer {
	return &GlyphRenderer{Face: face, CellW: cellW, CellH: cellH, OffsetX: offsetX, OffsetY: offsetY}
}

// CellAt maps a screen position to a board cell. The cell may lie off the board.
func (r *GlyphRenderer) CellAt(px, py int) grid.Cell {
	x := math.Floor(float64(px-r.OffsetX) / float64(r.CellW))
	y := math.Floor(float64(py-r.OffsetY) / float64(r.CellH))
	return grid.Cell{X: int(x), Y: int(y)}
}

func (r *GlyphRenderer) cellOrigin(c grid.Cell) (float32, float32) {
	return float32(r.OffsetX + c.X*r.CellW), float32(r.OffsetY + c.Y*r.CellH)
}

// FillCell paints the background of c.
func (r *GlyphRenderer) FillCell(dst *ebiten.Image, c grid.Cell, clr color.Color) {
	x, y := r.cellOrigin(c)
	vector.DrawFilledRect(dst, x, y, float32(r.CellW), float32(r.CellH), clr, false)
}

// DrawGlyph draws glyph centred in c.
func (r *GlyphRenderer) DrawGlyph(dst *ebiten.Image, glyph string, c grid.Cell, clr color.Color) {
	b := text.BoundString(r.Face, glyph)
	px := r.OffsetX + c.X*r.CellW + (r.CellW-b.Dx())/2 - b.Min.X
	py := r.OffsetY + (c.Y+1)*r.CellH - r.Face.Metrics().Descent.Ceil()
	text.Draw(dst, glyph, r.Face, px, py, clr)
}

// DrawRange outlines every cell whose centre lies within radius of c.
func (r *GlyphRenderer) DrawRange(dst *ebiten.Image, c grid.Cell, radius float64, clr color.Color) {
	n := int(radius)
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			o := grid.Cell{X: c.X + dx, Y: c.Y + dy}
			if c.Dist(o) <= radius {
				r.FillCell(dst, o, clr)
			}
		}
	}
}
