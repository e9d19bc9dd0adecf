// internal/ui/info_panel.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"automata-defense/internal/entity"
)

const (
	panelMargin    = 8
	animationSpeed = 24.0
)

// InfoPanel shows the description of the inspected cell. It slides in from
// the right edge of the screen.
type InfoPanel struct {
	IsVisible     bool
	X, Y          int
	Width, Height int
	// Columns is the wrap width passed to entity.InfoText.
	Columns int

	face     font.Face
	lines    []entity.InfoLine
	currentX float64
	targetX  float64
	hiddenX  float64
}

func NewInfoPanel(face font.Face, x, y, width, height int) *InfoPanel {
	adv := font.MeasureString(face, "M").Ceil()
	return &InfoPanel{
		X: x, Y: y, Width: width, Height: height,
		Columns:  max(10, (width-2*panelMargin)/max(1, adv)),
		face:     face,
		currentX: float64(x + width),
		targetX:  float64(x + width),
		hiddenX:  float64(x + width),
	}
}

// SetLines shows lines. Passing nil hides the panel.
func (p *InfoPanel) SetLines(lines []entity.InfoLine) {
	p.lines = lines
	if len(lines) == 0 {
		p.Hide()
		return
	}
	p.IsVisible = true
	p.targetX = float64(p.X)
}

func (p *InfoPanel) Hide() {
	p.targetX = p.hiddenX
}

func (p *InfoPanel) Update() {
	if p.currentX == p.targetX {
		return
	}
	diff := p.targetX - p.currentX
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentX = p.targetX
	case diff > 0:
		p.currentX += animationSpeed
	default:
		p.currentX -= animationSpeed
	}
	if p.currentX >= p.hiddenX {
		p.IsVisible = false
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible {
		return
	}
	x := float32(p.currentX)
	vector.DrawFilledRect(screen, x, float32(p.Y), float32(p.Width), float32(p.Height), panelBg, false)
	vector.StrokeRect(screen, x, float32(p.Y), float32(p.Width), float32(p.Height), 2, panelBorder, false)

	lineHeight := p.face.Metrics().Height.Ceil()
	y := p.Y + panelMargin + lineHeight
	for _, l := range p.lines {
		if y > p.Y+p.Height-panelMargin {
			break
		}
		text.Draw(screen, l.Text, p.face, int(x)+panelMargin, y, l.Color)
		y += lineHeight
	}
}
