// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"automata-defense/internal/config"
)

var instructions = []string{
	"AUTOMATA DEFENSE",
	"",
	"Protect the energy crystal (♦) from the waves.",
	"Your robots (☻) do all the work: build-bots build and sell,",
	"mine-bots haul stone, scavengers collect gold.",
	"",
	"1-9        pick a tower from the shop",
	"left click build the picked tower, or inspect a cell",
	"right click sell a tower, or cancel a pending order",
	"U          upgrade the tower under the cursor",
	"Esc        drop the picked tower",
	"P          pause",
	"F          change speed",
	"H          toggle health view",
	"",
	"Press SPACE to start.",
}

// MenuState shows the instructions until the player starts a game.
type MenuState struct {
	sm   *StateMachine
	opts Options
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.opts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	lineHeight := m.opts.Face.Metrics().Height.Ceil()
	y := config.BoardOffsetY + lineHeight
	for _, l := range instructions {
		text.Draw(screen, l, m.opts.Face, config.BoardOffsetX, y, config.HUDColor)
		y += lineHeight
	}
}

func (m *MenuState) Exit() {}
