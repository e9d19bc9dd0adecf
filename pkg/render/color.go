// pkg/render/color.go
package render

import (
	"image/color"

	"automata-defense/pkg/utils"
)

// Base palette. Channels follow the 0, 1/3, 1/2, 2/3, 1 steps of the classic ASCII look.
var (
	White          = color.RGBA{255, 255, 255, 255}
	LightGray      = color.RGBA{170, 170, 170, 255}
	MidGray        = color.RGBA{128, 128, 128, 255}
	DarkGray       = color.RGBA{85, 85, 85, 255}
	Black          = color.RGBA{0, 0, 0, 255}
	Red            = color.RGBA{255, 85, 85, 255}
	DarkRed        = color.RGBA{170, 0, 0, 255}
	Green          = color.RGBA{85, 255, 85, 255}
	Yellow         = color.RGBA{255, 255, 85, 255}
	DarkYellow     = color.RGBA{170, 170, 0, 255}
	VeryDarkYellow = color.RGBA{85, 85, 0, 255}
	Cyan           = color.RGBA{85, 255, 255, 255}
	Blue           = color.RGBA{85, 85, 255, 255}
	Purple         = color.RGBA{255, 85, 255, 255}
	DarkPurple     = color.RGBA{128, 0, 170, 255}
	Orange         = color.RGBA{255, 170, 0, 255}
	Brown          = color.RGBA{170, 85, 0, 255}
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor blends from a towards b. t is clamped to [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	ch := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// HealthColor maps a health fraction to red, yellow and green.
func HealthColor(pcnt float64) color.RGBA {
	pcnt = utils.Clamp(pcnt, 0, 1)
	if pcnt >= 0.5 {
		return LerpColor(Yellow, Green, (pcnt-0.5)/0.5)
	}
	return LerpColor(Red, Yellow, pcnt/0.5)
}
