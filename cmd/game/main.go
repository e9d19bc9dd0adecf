// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/state"
	"automata-defense/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	defsPath := flag.String("defs", "", "YAML unit stat overrides")
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	skipMenu := flag.Bool("skip-menu", false, "start playing right away")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address")
	flag.Parse()

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		slog.Error("bad flag", "err", err)
		os.Exit(2)
	}
	logger := config.NewLogger(os.Stderr, level)
	slog.SetDefault(logger)

	settings := config.Default()
	if *configPath != "" {
		if settings, err = config.Load(*configPath); err != nil {
			logger.Error("failed to load settings", "err", err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	lib := defs.NewLibrary()
	if *defsPath != "" {
		if lib, err = defs.LoadLibrary(*defsPath); err != nil {
			logger.Error("failed to load unit definitions", "err", err)
			os.Exit(1)
		}
	}

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	face, err := ui.NewMonoFace(config.FontSize)
	if err != nil {
		logger.Error("failed to load font", "err", err)
		os.Exit(1)
	}

	opts := state.Options{Settings: settings, Library: lib, Logger: logger, Face: face}
	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, opts))
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}

	app := &AppGame{stateMachine: sm, lastUpdateTime: time.Now()}
	ebiten.SetTPS(config.TargetFPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Automata Defense")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}
