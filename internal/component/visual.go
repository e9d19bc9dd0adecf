package component

import (
	"image/color"

	"automata-defense/pkg/render"
)

// Perturbation tints an entity towards a colour for a few ticks.
type Perturbation struct {
	Color     color.RGBA
	Countdown int
	Duration  int
}

// Start begins a new perturbation, replacing any running one.
func (p *Perturbation) Start(c color.RGBA, ticks int) {
	p.Color = c
	p.Countdown = ticks
	p.Duration = ticks
}

// Tick advances the perturbation by one frame.
func (p *Perturbation) Tick() {
	if p.Countdown > 0 {
		p.Countdown--
	}
}

// Active reports whether the tint is still visible.
func (p *Perturbation) Active() bool {
	return p.Countdown > 0 && p.Duration > 0
}

// Apply blends base towards the perturbation colour, fading as the countdown runs out.
func (p *Perturbation) Apply(base color.RGBA) color.RGBA {
	if !p.Active() {
		return base
	}
	return render.LerpColor(base, p.Color, float64(p.Countdown)/float64(p.Duration))
}
