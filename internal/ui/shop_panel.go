// internal/ui/shop_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"automata-defense/internal/app"
	"automata-defense/internal/types"
)

var (
	panelBg     = color.RGBA{20, 20, 30, 230}
	panelBorder = color.RGBA{70, 100, 120, 255}
	textOn      = color.RGBA{255, 255, 255, 255}
	textOff     = color.RGBA{100, 100, 100, 255}
	textPicked  = color.RGBA{255, 220, 80, 255}
)

// ShopPanel lists the build menu. Entries are numbered from 1, skipping separators.
type ShopPanel struct {
	X, Y, Width int
	face        font.Face
}

func NewShopPanel(face font.Face, x, y, width int) *ShopPanel {
	return &ShopPanel{X: x, Y: y, Width: width, face: face}
}

// KindForKey returns the kind bound to the n-th numbered entry.
func KindForKey(entries []app.ShopEntry, n int) (types.Kind, bool) {
	i := 0
	for _, e := range entries {
		if e.Kind == types.KindNone {
			continue
		}
		i++
		if i == n {
			return e.Kind, true
		}
	}
	return types.KindNone, false
}

func (p *ShopPanel) Draw(screen *ebiten.Image, entries []app.ShopEntry, selected types.Kind) {
	lineHeight := p.face.Metrics().Height.Ceil()
	height := (len(entries) + 2) * lineHeight
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(height), panelBg, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(height), 2, panelBorder, false)

	y := p.Y + lineHeight
	text.Draw(screen, "Build", p.face, p.X+panelMargin, y, textOn)
	y += lineHeight
	n := 0
	for _, e := range entries {
		if e.Kind == types.KindNone {
			y += lineHeight / 2
			continue
		}
		n++
		clr := textOff
		switch {
		case e.Kind == selected:
			clr = textPicked
		case e.Affordable:
			clr = textOn
		}
		label := fmt.Sprintf("%d %-8s $%v", n, e.Icon, e.Gold)
		if e.Stone > 0 {
			label += fmt.Sprintf(" %v•", e.Stone)
		}
		text.Draw(screen, label, p.face, p.X+panelMargin, y, clr)
		y += lineHeight
	}
}
