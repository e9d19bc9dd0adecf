// internal/world/world.go
package world

import (
	"errors"
	"fmt"
	"log/slog"

	"automata-defense/internal/entity"
	"automata-defense/internal/event"
	"automata-defense/internal/interfaces"
	"automata-defense/internal/types"
	"automata-defense/internal/utils"
	"automata-defense/pkg/grid"
)

// ErrOutOfBounds is wrapped by the panic raised when an entity is placed off the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Behavior runs the per-kind logic of entities.
type Behavior interface {
	Act(w *World, s interfaces.Scene, e *entity.Entity)
	OnDeath(w *World, s interfaces.Scene, e *entity.Entity)
}

// SpawnController advances the enemy wave schedule once per tick.
type SpawnController interface {
	Update(w *World)
	Level() int
}

// World is the authoritative spatial index of a game session.
// Each placed entity sits in exactly one cell. Every capability has an
// insertion-ordered partition kept in step with placement.
type World struct {
	width, height int

	arena     *entity.Arena
	cells     [][]types.EntityID
	positions map[types.EntityID]grid.Cell
	placed    *orderedSet
	caches    [types.CapabilityCount]*orderedSet

	geometryChanged bool
	ticks           int

	rng        *utils.PRNGService
	logger     *slog.Logger
	dispatcher *event.Dispatcher
	factory    *entity.Factory
	behavior   Behavior
	spawner    SpawnController
}

// Option configures a World.
type Option func(*World)

func WithLogger(l *slog.Logger) Option             { return func(w *World) { w.logger = l } }
func WithRNG(r *utils.PRNGService) Option          { return func(w *World) { w.rng = r } }
func WithDispatcher(d *event.Dispatcher) Option    { return func(w *World) { w.dispatcher = d } }
func WithFactory(f *entity.Factory) Option         { return func(w *World) { w.factory = f } }
func WithBehavior(b Behavior) Option               { return func(w *World) { w.behavior = b } }
func WithSpawnController(c SpawnController) Option { return func(w *World) { w.spawner = c } }

// New creates an empty width×height world.
func New(width, height int, opts ...Option) *World {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid world size %dx%d", width, height))
	}
	w := &World{
		width:     width,
		height:    height,
		arena:     entity.NewArena(),
		cells:     make([][]types.EntityID, width*height),
		positions: make(map[types.EntityID]grid.Cell),
		placed:    newOrderedSet(),
	}
	for i := range w.caches {
		w.caches[i] = newOrderedSet()
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.rng == nil {
		w.rng = utils.NewPRNGService(1)
	}
	if w.dispatcher == nil {
		w.dispatcher = event.NewDispatcher()
	}
	if w.factory == nil {
		w.factory = entity.NewFactory(nil)
	}
	return w
}

func (w *World) Width() int                    { return w.width }
func (w *World) Height() int                   { return w.height }
func (w *World) RNG() *utils.PRNGService       { return w.rng }
func (w *World) Logger() *slog.Logger          { return w.logger }
func (w *World) Dispatcher() *event.Dispatcher { return w.dispatcher }
func (w *World) Factory() *entity.Factory      { return w.factory }

// SetBehavior replaces the behaviour entities act with.
func (w *World) SetBehavior(b Behavior) { w.behavior = b }

// SetSpawnController replaces the wave controller.
func (w *World) SetSpawnController(c SpawnController) { w.spawner = c }

// SpawnController returns the attached wave controller, if any.
func (w *World) SpawnController() SpawnController { return w.spawner }

// Wave returns the current wave level, or 0 without a controller.
func (w *World) Wave() int {
	if w.spawner == nil {
		return 0
	}
	return w.spawner.Level()
}

// Ticks returns the number of completed UpdateAll calls.
func (w *World) Ticks() int { return w.ticks }

// InBounds reports whether c lies on the grid.
func (w *World) InBounds(c grid.Cell) bool {
	return c.X >= 0 && c.X < w.width && c.Y >= 0 && c.Y < w.height
}

// RandCell returns a uniformly random cell.
func (w *World) RandCell() grid.Cell {
	return grid.Cell{X: w.rng.Intn(w.width), Y: w.rng.Intn(w.height)}
}

func (w *World) cellIndex(c grid.Cell) int {
	return c.Y*w.width + c.X
}

// Add stores e in the arena without placing it and returns its handle.
func (w *World) Add(e *entity.Entity) types.EntityID {
	return w.arena.Insert(e)
}

// Get resolves a handle to its entity. Stale handles return nil.
func (w *World) Get(id types.EntityID) *entity.Entity {
	return w.arena.Get(id)
}

// Release removes e from the grid and frees its handle.
func (w *World) Release(id types.EntityID) {
	if e := w.arena.Get(id); e != nil {
		w.Remove(e)
		w.arena.Release(id)
	}
}

// Contains reports whether e is currently placed.
func (w *World) Contains(e *entity.Entity) bool {
	if e == nil || w.arena.Get(e.ID) != e {
		return false
	}
	_, ok := w.positions[e.ID]
	return ok
}

// Pos returns the cell of e, or false when it is not placed.
func (w *World) Pos(e *entity.Entity) (grid.Cell, bool) {
	if !w.Contains(e) {
		return grid.Cell{}, false
	}
	return w.positions[e.ID], true
}

// MustPos returns the cell of a placed entity and panics otherwise.
func (w *World) MustPos(e *entity.Entity) grid.Cell {
	c, ok := w.Pos(e)
	if !ok {
		panic(fmt.Sprintf("entity %s is not placed", e))
	}
	return c
}

// SetPos places or moves e. Entities not yet in the arena are adopted.
// Placing outside the grid is a programming error and panics.
func (w *World) SetPos(e *entity.Entity, c grid.Cell) {
	if !w.InBounds(c) {
		panic(fmt.Errorf("cannot place %s at %s: %w", e, c, ErrOutOfBounds))
	}
	id := w.arena.Insert(e)

	if old, ok := w.positions[id]; ok {
		if old == c {
			return
		}
		w.removeFromCell(id, old)
	} else {
		w.placed.Add(id)
		caps := e.Kind.Capabilities()
		for i, set := range w.caches {
			if caps.Has(types.Capability(1 << i)) {
				set.Add(id)
			}
		}
		if changesGeometry(e) {
			w.geometryChanged = true
		}
	}

	w.positions[id] = c
	idx := w.cellIndex(c)
	w.cells[idx] = append(w.cells[idx], id)
}

// Remove takes e off the grid. Its handle stays valid. Removing an unplaced entity is a no-op.
func (w *World) Remove(e *entity.Entity) {
	if !w.Contains(e) {
		return
	}
	id := e.ID
	w.removeFromCell(id, w.positions[id])
	delete(w.positions, id)
	w.placed.Remove(id)
	for _, set := range w.caches {
		set.Remove(id)
	}
	if changesGeometry(e) {
		w.geometryChanged = true
	}
}

func (w *World) removeFromCell(id types.EntityID, c grid.Cell) {
	idx := w.cellIndex(c)
	ids := w.cells[idx]
	for i, other := range ids {
		if other == id {
			w.cells[idx] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// changesGeometry reports whether placing or removing e can invalidate planned paths.
func changesGeometry(e *entity.Entity) bool {
	return e.Is(types.CapTower) || e.Is(types.CapBuildMarker)
}

// MarkGeometryChanged makes the next UpdateAll drop every enemy path.
func (w *World) MarkGeometryChanged() {
	w.geometryChanged = true
}

// Solidity returns 1 for cells holding a blocking occupant or lying off the grid,
// 2 for cells holding only doors and open occupants, and 0 otherwise.
func (w *World) Solidity(c grid.Cell) int {
	if !w.InBounds(c) {
		return 1
	}
	res := 0
	for _, id := range w.cells[w.cellIndex(c)] {
		switch w.arena.Get(id).Solidity() {
		case 1:
			return 1
		case 2:
			res = 2
		}
	}
	return res
}

// CanMoveTo reports whether e may step into c. Robots pass through doors.
func (w *World) CanMoveTo(e *entity.Entity, c grid.Cell) bool {
	s := w.Solidity(c)
	if e.Is(types.CapRobot) {
		return s == 0 || s == 2
	}
	return s == 0
}
