// internal/state/game_state.go
package state

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"automata-defense/internal/app"
	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/ui"
	"automata-defense/pkg/grid"
)

// messageSeconds is how long a rejected intent stays on the HUD.
const messageSeconds = 2.0

// Options carry what every state needs to start a game.
type Options struct {
	Settings config.Settings
	Library  defs.Library
	Logger   *slog.Logger
	Face     font.Face
}

var numberKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState is the playing screen.
type GameState struct {
	sm   *StateMachine
	opts Options
	game *app.Game

	renderer  *ui.GlyphRenderer
	hud       *ui.HUD
	shop      *ui.ShopPanel
	infoPanel *ui.InfoPanel

	selected   types.Kind
	inspecting grid.Cell
	inspect    bool
	viewMode   entity.ViewMode
	message    string
	messageAge float64
}

func NewGameState(sm *StateMachine, opts Options) *GameState {
	g := app.NewGame(opts.Settings, app.WithLogger(opts.Logger), app.WithLibrary(opts.Library))

	boardRight := config.BoardOffsetX + opts.Settings.Width*config.CellWidth
	boardBottom := config.BoardOffsetY + opts.Settings.Height*config.CellHeight
	return &GameState{
		sm:        sm,
		opts:      opts,
		game:      g,
		renderer:  ui.NewGlyphRenderer(opts.Face, config.CellWidth, config.CellHeight, config.BoardOffsetX, config.BoardOffsetY),
		hud:       ui.NewHUD(opts.Face, config.BoardOffsetX, config.BoardOffsetY/2),
		shop:      ui.NewShopPanel(opts.Face, config.BoardOffsetX, boardBottom+config.CellHeight, 300),
		infoPanel: ui.NewInfoPanel(opts.Face, boardRight+config.CellWidth, config.BoardOffsetY, config.ScreenWidth-boardRight-2*config.CellWidth, 400),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if g.message != "" {
		g.messageAge += deltaTime
		if g.messageAge > messageSeconds {
			g.message = ""
		}
	}

	g.handleKeys()
	g.handleMouse()

	g.game.Update()
	if g.inspect {
		g.infoPanel.SetLines(g.game.Info(g.inspecting, g.infoPanel.Columns))
	}
	g.infoPanel.Update()
}

func (g *GameState) handleKeys() {
	switch {
	case g.game.IsGameOver() && inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.sm.SetState(NewGameState(g.sm, g.opts))
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.sm.SetState(NewPauseState(g.sm, g, g.opts.Face))
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.game.CycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		if g.viewMode == entity.ViewNormal {
			g.viewMode = entity.ViewShowHP
		} else {
			g.viewMode = entity.ViewNormal
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.selected = types.KindNone
		g.inspect = false
		g.infoPanel.Hide()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.report(g.game.Upgrade(g.cursorCell(), 0))
	}

	for i, k := range numberKeys {
		if inpututil.IsKeyJustPressed(k) {
			if kind, ok := ui.KindForKey(g.game.Shop(), i+1); ok {
				g.selected = kind
			}
		}
	}
}

func (g *GameState) handleMouse() {
	c := g.cursorCell()
	if !g.game.World.InBounds(c) {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if g.selected != types.KindNone {
			g.report(g.game.Build(g.selected, c))
			return
		}
		g.inspecting = c
		g.inspect = true
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		err := g.game.Cancel(c)
		if errors.Is(err, app.ErrNoMarker) {
			err = g.game.Sell(c)
		}
		g.report(err)
	}
}

func (g *GameState) report(err error) {
	if err == nil {
		return
	}
	g.message = err.Error()
	g.messageAge = 0
	g.opts.Logger.Debug("intent rejected", "err", err)
}

func (g *GameState) cursorCell() grid.Cell {
	return g.renderer.CellAt(ebiten.CursorPosition())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w := g.game.World

	hover := g.cursorCell()
	if w.InBounds(hover) {
		for _, t := range w.EntitiesInCell(hover, nil) {
			if t.Is(types.CapAttackTower) {
				g.renderer.DrawRange(screen, hover, t.Stat(stat.Range), config.RangeColor)
			}
		}
		g.renderer.FillCell(screen, hover, config.SelectionColor)
	}

	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			v := g.game.View(c, g.viewMode)
			if v.Empty {
				g.renderer.DrawGlyph(screen, v.Glyph, c, config.EmptyCellColor)
				continue
			}
			g.renderer.DrawGlyph(screen, v.Glyph, c, v.Color)
		}
	}

	g.hud.Draw(screen, g.game, g.message)
	g.shop.Draw(screen, g.game.Shop(), g.selected)
	g.infoPanel.Draw(screen)
}
