// cmd/sim/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"

	"automata-defense/internal/app"
	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/types"
	"automata-defense/pkg/grid"
)

// autopilotEvery is how often, in ticks, the autopilot considers a purchase.
const autopilotEvery = config.TargetFPS

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	defsPath := flag.String("defs", "", "YAML unit stat overrides")
	seed := flag.Int64("seed", 1, "world seed")
	ticks := flag.Int("ticks", 30*config.TargetFPS*60, "ticks to simulate")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	dumpEvery := flag.Int("dump-every", 0, "print the board every N ticks (0 prints only the last)")
	autopilot := flag.Bool("autopilot", true, "buy gun towers around the heart when affordable")
	noColor := flag.Bool("no-color", false, "print the board without colours")
	flag.Parse()

	if err := run(os.Stdout, *configPath, *defsPath, *seed, *ticks, *logLevel, *dumpEvery, *autopilot, *noColor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, configPath, defsPath string, seed int64, ticks int, logLevel string, dumpEvery int, autopilot, noColor bool) error {
	level, err := config.ParseLogLevel(logLevel)
	if err != nil {
		return err
	}
	logger := config.NewLogger(os.Stderr, level)

	settings := config.Default()
	if configPath != "" {
		if settings, err = config.Load(configPath); err != nil {
			return err
		}
	}
	settings.Seed = seed

	lib := defs.NewLibrary()
	if defsPath != "" {
		if lib, err = defs.LoadLibrary(defsPath); err != nil {
			return err
		}
	}

	color.Enable = !noColor
	g := app.NewGame(settings, app.WithLogger(logger), app.WithLibrary(lib))
	for t := 1; t <= ticks && !g.IsGameOver(); t++ {
		g.Update()
		if autopilot && t%autopilotEvery == 0 {
			buyGunTower(g, logger)
		}
		if dumpEvery > 0 && t%dumpEvery == 0 {
			dump(out, g)
		}
	}
	dump(out, g)
	return nil
}

// buyGunTower orders a gun tower on a random free cell near the first heart.
func buyGunTower(g *app.Game, logger *slog.Logger) {
	hearts := g.World.Hearts()
	if len(hearts) == 0 {
		return
	}
	center := g.World.MustPos(hearts[0])
	rng := g.World.RNG()
	for tries := 0; tries < 10; tries++ {
		c := grid.Cell{X: center.X + rng.IntRange(-3, 3), Y: center.Y + rng.IntRange(-3, 3)}
		err := g.Build(types.GunTower, c)
		switch {
		case err == nil:
			logger.Debug("autopilot ordered tower", "cell", c)
			return
		case errors.Is(err, app.ErrInsufficientFunds):
			return
		}
	}
}

func dump(out io.Writer, g *app.Game) {
	w := g.World
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d  wave %d  kills %d  cash $%v  stone %v  hearts %d\n",
		w.Ticks(), g.Waves.Level(), g.Waves.Kills(), g.Cash(), g.Stone(), len(w.Hearts()))
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			v := g.View(grid.Cell{X: x, Y: y}, entity.ViewNormal)
			if v.Empty {
				b.WriteString(color.RGB(85, 85, 85).Sprint(v.Glyph))
				continue
			}
			b.WriteString(color.RGB(v.Color.R, v.Color.G, v.Color.B).Sprint(v.Glyph))
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(out, b.String())
}
