// internal/system/wave.go
package system

import (
	"log/slog"
	"math"

	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/event"
	"automata-defense/internal/utils"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

// spawnItem is either a batch of enemies to release together or, when batch
// is nil, a pause of delay ticks.
type spawnItem struct {
	delay int
	batch []*entity.Entity
}

// EnemySpawnController releases waves of enemies onto the spawn zones.
// Each wave is generated when the previous one has been fully released and
// its closing pause has elapsed. It implements world.SpawnController.
type EnemySpawnController struct {
	rng        *utils.PRNGService
	enemies    *EnemyFactory
	dispatcher *event.Dispatcher
	logger     *slog.Logger

	level int
	// queue is stored in reverse; the next item is the last one.
	queue    []spawnItem
	waveSize int
	placed   int
	kills    int
}

var _ world.SpawnController = (*EnemySpawnController)(nil)

// NewEnemySpawnController creates a controller that starts with a grace
// period of one wave pause before the first wave.
func NewEnemySpawnController(enemies *EnemyFactory, rng *utils.PRNGService, dispatcher *event.Dispatcher, logger *slog.Logger) *EnemySpawnController {
	if logger == nil {
		logger = slog.Default()
	}
	c := &EnemySpawnController{
		rng:        rng,
		enemies:    enemies,
		dispatcher: dispatcher,
		logger:     logger,
		queue:      []spawnItem{{delay: config.WaveEndDelayTicks}},
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.EnemyKilled, c)
	}
	return c
}

// OnEvent counts kills.
func (c *EnemySpawnController) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		c.kills++
	}
}

// Level is the number of the current wave, 0 before the first.
func (c *EnemySpawnController) Level() int { return c.level }

// Kills is the number of enemies killed so far.
func (c *EnemySpawnController) Kills() int { return c.kills }

// Placed is the number of wave enemies put on the grid so far.
func (c *EnemySpawnController) Placed() int { return c.placed }

// WaveSize is the headcount of the current wave.
func (c *EnemySpawnController) WaveSize() int { return c.waveSize }

// Pending is the number of enemies of the current wave not yet released.
func (c *EnemySpawnController) Pending() int {
	n := 0
	for _, it := range c.queue {
		n += len(it.batch)
	}
	return n
}

// Update advances the controller by one tick.
func (c *EnemySpawnController) Update(w *world.World) {
	if len(c.queue) == 0 {
		c.startWave(c.level + 1)
		return
	}

	last := len(c.queue) - 1
	item := &c.queue[last]
	if item.batch == nil {
		item.delay--
		if item.delay <= 0 {
			c.queue = c.queue[:last]
		}
		return
	}

	zones := w.Positions(w.SpawnZones())
	if len(zones) == 0 {
		return
	}
	c.rng.Shuffle(len(zones), func(i, j int) { zones[i], zones[j] = zones[j], zones[i] })
	for i, e := range item.batch {
		var cell grid.Cell
		if i < len(zones) {
			cell = zones[i]
		} else {
			cell = zones[c.rng.Intn(len(zones))]
		}
		w.SetPos(e, cell)
	}
	c.placed += len(item.batch)
	c.queue = c.queue[:last]
}

// WavePlan is the shape of one generated wave.
type WavePlan struct {
	Level     int
	Tier      int
	Headcount int
	Points    int
	PulseSize int
	// PulseDelay is the mean pause between pulses, in ticks.
	PulseDelay float64
}

// PlanWave computes the shape of wave level. Every fifth wave is an elite wave
// one tier up. Every tenth is a boss wave of a single enemy two tiers up that
// gets the whole point budget.
func PlanWave(level int) WavePlan {
	l := float64(level)
	budget := config.WaveBasePoints + config.WaveLinearPoints*l + config.WaveQuadraticPoints*l*l

	tier := defs.BaseTierForLevel(level)
	headcount := min(config.WaveBaseHeadcount+level/2, config.WaveMaxHeadcount)
	switch {
	case level > 0 && level%config.BossWaveEvery == 0:
		tier += 2
		headcount = 1
	case level > 0 && level%config.EliteWaveEvery == 0:
		tier++
	}

	return WavePlan{
		Level:      level,
		Tier:       min(tier, defs.MaxTier()),
		Headcount:  headcount,
		Points:     int(budget / float64(headcount)),
		PulseSize:  min(1+level/8, config.WaveMaxPulseSize),
		PulseDelay: config.PulseDelayFloor + (config.PulseDelayStart-config.PulseDelayFloor)*math.Pow(config.PulseDelayDecay, l),
	}
}

func (c *EnemySpawnController) startWave(level int) {
	plan := PlanWave(level)
	profile := c.enemies.Profile(plan.Points)

	var items []spawnItem
	for remaining := plan.Headcount; remaining > 0; {
		n := min(plan.PulseSize, remaining)
		batch := make([]*entity.Entity, n)
		for i := range batch {
			batch[i] = c.enemies.Spawn(plan.Tier, profile)
		}
		items = append(items, spawnItem{batch: batch})
		remaining -= n
		if remaining > 0 {
			delay := int(math.Round(c.rng.Jitter(plan.PulseDelay, 2*config.PulseDelayJitter)))
			items = append(items, spawnItem{delay: max(1, delay)})
		}
	}
	items = append(items, spawnItem{delay: config.WaveEndDelayTicks})

	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	c.queue = items
	c.level = level
	c.waveSize = plan.Headcount

	c.logger.Info("wave started", "level", level, "tier", plan.Tier, "enemies", plan.Headcount, "points", plan.Points)
	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{
			Type: event.WaveStarted,
			Data: event.WaveData{Level: level, Tier: plan.Tier, Enemies: plan.Headcount},
		})
	}
}
