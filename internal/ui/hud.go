// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"automata-defense/internal/app"
	"automata-defense/internal/config"
	"automata-defense/pkg/render"
)

// HUD is the status line above the board.
type HUD struct {
	X, Y int
	face font.Face
}

func NewHUD(face font.Face, x, y int) *HUD {
	return &HUD{X: x, Y: y, face: face}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the session status and an optional message below it.
func (h *HUD) Draw(screen *ebiten.Image, g *app.Game, message string) {
	x := h.X
	draw := func(s string, clr color.Color) {
		text.Draw(screen, s, h.face, x, h.Y, clr)
		x += font.MeasureString(h.face, s+"   ").Ceil()
	}

	wave := g.Waves.Level()
	waveColor := color.Color(config.HUDColor)
	if wave > 0 && wave%config.BossWaveEvery == 0 {
		waveColor = render.Red
	}
	if wave > 0 {
		draw("Wave "+toRoman(wave), waveColor)
	} else {
		draw("Get ready", waveColor)
	}
	draw(fmt.Sprintf("$%v", g.Cash()), render.Yellow)
	draw(fmt.Sprintf("%v•", g.Stone()), render.LightGray)
	draw(fmt.Sprintf("Kills %d", g.Waves.Kills()), config.HUDColor)
	draw("Speed "+g.Speed().String(), config.HUDColor)
	switch {
	case g.IsGameOver():
		draw("GAME OVER (R to restart)", render.Red)
	case g.IsPaused():
		draw("PAUSED", render.Cyan)
	}

	if message != "" {
		lineHeight := h.face.Metrics().Height.Ceil()
		text.Draw(screen, message, h.face, h.X, h.Y+lineHeight, render.Orange)
	}
}
