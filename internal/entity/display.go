// internal/entity/display.go
package entity

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"automata-defense/internal/config"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/pkg/render"
	"automata-defense/pkg/utils"
)

// ViewMode selects how entities are coloured.
type ViewMode int

const (
	ViewNormal ViewMode = iota
	ViewShowHP
)

// Glyph returns the character to draw at the given scene tick.
func (e *Entity) Glyph(tick int) string {
	switch {
	case e.Robot != nil && e.charge <= 0:
		return "☺"
	case e.Kind == types.BuildNewMarker && e.Marker != nil && e.Marker.TargetGlyph != "":
		if (tick/config.MarkerBlinkTicks)%2 == 0 {
			return e.Marker.TargetGlyph
		}
	}
	return e.glyph
}

// BaseColor is the colour before perturbation.
func (e *Entity) BaseColor() color.RGBA {
	switch e.Kind {
	case types.HeartTower:
		pcnt := utils.Clamp(e.HP()/e.MaxHP(), 0, 1)
		return render.LerpColor(e.baseColor, render.Black, 1-pcnt)
	case types.RockTower:
		if !e.IsActiveRock() {
			return render.DarkGray
		}
	case types.GoldOreTower:
		if !e.IsActiveRock() {
			return render.VeryDarkYellow
		}
	}
	return e.baseColor
}

func (e *Entity) canShowHP() bool {
	return !e.Is(types.CapEnemy) && !e.Is(types.CapDecoration)
}

// Color returns the colour to draw with.
func (e *Entity) Color(mode ViewMode) color.RGBA {
	if mode == ViewShowHP && e.canShowHP() && e.MaxHP() > 0 {
		return render.HealthColor(e.HP() / e.MaxHP())
	}
	return e.Perturbation.Apply(e.BaseColor())
}

// Perturb tints the entity towards c for the given number of ticks.
func (e *Entity) Perturb(c color.RGBA, ticks int) {
	e.Perturbation.Start(c, ticks)
}

// InfoLine is one line of an info panel.
type InfoLine struct {
	Text  string
	Color color.RGBA
}

// InfoText describes the entity for the info panel, wrapped to width columns.
func (e *Entity) InfoText(width int) []InfoLine {
	var lines []InfoLine
	add := func(s string, c color.RGBA) {
		for _, l := range strings.Split(wordwrap.WrapString(s, uint(width)), "\n") {
			lines = append(lines, InfoLine{Text: l, Color: c})
		}
	}

	add(fmt.Sprintf("%s (%s):", e.Name, e.glyph), e.baseColor)
	add(e.Description, e.baseColor)

	stats := e.Stats()
	for _, t := range stats.NonDefault() {
		if t == stat.HP {
			add(fmt.Sprintf("Health: %s/%s", stat.Num(e.HP()), stat.Num(e.MaxHP())), t.Lookup().Color)
			continue
		}
		if s := t.Describe(stats.Get(t)); s != "" {
			add(s, t.Lookup().Color)
		}
	}
	if e.Robot != nil {
		add(fmt.Sprintf("Charge: %s/%s", stat.Num(e.charge), stat.Num(e.MaxCharge())), render.Yellow)
	}
	return lines
}
