// internal/app/game.go
package app

import (
	"errors"
	"log/slog"

	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/event"
	"automata-defense/internal/interfaces"
	"automata-defense/internal/system"
	"automata-defense/internal/types"
	"automata-defense/internal/utils"
	"automata-defense/internal/world"
)

// Rejections returned by player intents.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCannotBuild       = errors.New("cannot build there")
	ErrNothingToSell     = errors.New("nothing to sell")
	ErrNoUpgrade         = errors.New("no such upgrade")
	ErrNoMarker          = errors.New("no pending order")
	ErrGameOver          = errors.New("game is over")
)

// Speed is the simulation rate relative to the frame rate.
type Speed int

const (
	SpeedNormal Speed = iota
	SpeedDouble
	SpeedHalf
)

func (s Speed) String() string {
	switch s {
	case SpeedHalf:
		return "0.5x"
	case SpeedDouble:
		return "2x"
	default:
		return "1x"
	}
}

// Game is one play session. It owns the world and implements interfaces.Scene.
type Game struct {
	World    *world.World
	Waves    *system.EnemySpawnController
	Settings config.Settings

	lib        defs.Library
	logger     *slog.Logger
	dispatcher *event.Dispatcher

	cash, stone float64
	paused      bool
	gameOver    bool
	speed       Speed
	skipFrame   bool
	frames      int
	delivered   map[types.Kind]int
}

var _ interfaces.Scene = (*Game)(nil)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used by the game and its world.
func WithLogger(l *slog.Logger) Option { return func(g *Game) { g.logger = l } }

// WithLibrary replaces the built-in unit catalogue.
func WithLibrary(lib defs.Library) Option { return func(g *Game) { g.lib = lib } }

// NewGame creates a session and generates its starting world.
func NewGame(settings config.Settings, opts ...Option) *Game {
	g := &Game{
		Settings:   settings,
		logger:     slog.Default(),
		dispatcher: event.NewDispatcher(),
		cash:       settings.StartingCash,
		stone:      settings.StartingStone,
		delivered:  make(map[types.Kind]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.lib == nil {
		g.lib = defs.NewLibrary()
	}

	rng := utils.NewPRNGService(settings.Seed)
	units := entity.NewFactory(g.lib)
	enemies := system.NewEnemyFactory(rng, units)
	g.Waves = system.NewEnemySpawnController(enemies, rng, g.dispatcher, g.logger)
	g.World = world.New(settings.Width, settings.Height,
		world.WithLogger(g.logger),
		world.WithRNG(rng),
		world.WithDispatcher(g.dispatcher),
		world.WithFactory(units),
		world.WithBehavior(system.NewBehaviors(enemies, settings.IdleSpawns)),
		world.WithSpawnController(g.Waves),
	)
	GenerateWorld(g.World, settings)

	g.dispatcher.Subscribe(event.WaveStarted, g)
	g.logger.Info("game created", "seed", settings.Seed, "width", settings.Width, "height", settings.Height)
	return g
}

// OnEvent logs wave starts.
func (g *Game) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.WaveData); ok {
		g.logger.Debug("wave announced", "level", data.Level, "enemies", data.Enemies)
	}
}

// Dispatcher is the event bus shared by the game and its world.
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }

// Update runs one frame: half speed ticks every other frame and double speed ticks twice.
func (g *Game) Update() {
	ticks := 1
	g.skipFrame = false
	switch g.speed {
	case SpeedHalf:
		g.skipFrame = g.frames%2 == 1
	case SpeedDouble:
		ticks = 2
	}
	for i := 0; i < ticks; i++ {
		g.World.UpdateAll(g)
		g.checkGameOver()
	}
	g.frames++
}

func (g *Game) checkGameOver() {
	if g.gameOver || len(g.World.Hearts()) > 0 {
		return
	}
	g.gameOver = true
	g.logger.Info("game over", "wave", g.World.Wave(), "ticks", g.World.Ticks(), "kills", g.Waves.Kills())
	g.dispatcher.Dispatch(event.Event{Type: event.GameOver})
}

func (g *Game) IsPaused() bool            { return g.paused }
func (g *Game) IsGameOver() bool          { return g.gameOver }
func (g *Game) ShouldSkipThisFrame() bool { return g.skipFrame }

// ScoreItem credits a delivered item.
func (g *Game) ScoreItem(item *entity.Entity) {
	switch item.Kind {
	case types.GoldIngot:
		g.AddCash(item.SellPrice())
	case types.StoneItem:
		g.AddStone(config.StoneItemValue)
	default:
		return
	}
	g.delivered[item.Kind]++
	g.dispatcher.Dispatch(event.Event{
		Type: event.ItemScored,
		Data: event.EntityData{ID: item.ID, Kind: item.Kind},
	})
}

func (g *Game) AddCash(v float64)  { g.cash += v }
func (g *Game) AddStone(v float64) { g.stone += v }

func (g *Game) Cash() float64  { return g.cash }
func (g *Game) Stone() float64 { return g.stone }

// Delivered counts the items of kind scored so far.
func (g *Game) Delivered(kind types.Kind) int { return g.delivered[kind] }

func (g *Game) Speed() Speed { return g.speed }

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// CycleSpeed steps through normal, double and half speed.
func (g *Game) CycleSpeed() Speed {
	g.speed = (g.speed + 1) % 3
	return g.speed
}
