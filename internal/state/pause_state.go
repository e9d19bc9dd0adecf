// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"automata-defense/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game screen under a dimmed overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	face          font.Face
}

func NewPauseState(sm *StateMachine, prev *GameState, face font.Face) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prev, face: face}
}

// Enter pauses the simulation so ticks stop while the overlay is up.
func (s *PauseState) Enter() {
	if !s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	msg := "PAUSED"
	w := font.MeasureString(s.face, msg).Ceil()
	text.Draw(screen, msg, s.face, (config.ScreenWidth-w)/2, config.ScreenHeight/2, color.White)
}

// Exit resumes the simulation.
func (s *PauseState) Exit() {
	if s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
}
