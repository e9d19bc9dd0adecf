// internal/entity/entity.go
package entity

import (
	"image/color"
	"math"

	"automata-defense/internal/component"
	"automata-defense/internal/config"
	"automata-defense/internal/defs"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
	"automata-defense/internal/utils"
	pkgutils "automata-defense/pkg/utils"
)

// Entity is one game object. Variant state lives in the optional components,
// which are set according to the kind's capabilities.
type Entity struct {
	ID          types.EntityID
	Kind        types.Kind
	Name        string
	Description string
	ShopIcon    string
	Attack      defs.AttackPattern

	glyph     string
	baseColor color.RGBA
	base      stat.Block
	stats     stat.Block

	hp     float64
	charge float64

	ticksUntilAction int
	Perturbation     component.Perturbation

	Robot   *component.Robot
	Enemy   *component.Enemy
	Spawner *component.Spawner
	Rock    *component.Rock
	Marker  *component.Marker
}

// New creates an unplaced entity from its definition.
func New(def defs.UnitDefinition) *Entity {
	e := &Entity{
		Kind:             def.Kind,
		Name:             def.Name,
		Description:      def.Description,
		ShopIcon:         def.ShopIcon,
		Attack:           def.Attack,
		glyph:            def.Glyph,
		baseColor:        def.Color,
		base:             def.Stats,
		stats:            def.Stats,
		ticksUntilAction: -1,
	}
	e.hp = e.MaxHP()
	e.charge = e.MaxCharge()

	caps := def.Kind.Capabilities()
	switch {
	case caps.Has(types.CapRobot):
		e.Robot = &component.Robot{}
	case caps.Has(types.CapEnemy):
		e.Enemy = &component.Enemy{}
	case caps.Has(types.CapSpawner):
		robotKind, _ := def.Kind.RobotFor()
		e.Spawner = &component.Spawner{RobotKind: robotKind}
	case caps.Has(types.CapRock):
		e.Rock = &component.Rock{}
	case caps.Has(types.CapBuildMarker):
		e.Marker = &component.Marker{}
	}
	return e
}

// Is reports whether the entity has every capability in c.
func (e *Entity) Is(c types.Capability) bool {
	return e.Kind.Capabilities().Has(c)
}

// Stat reads the live value of t.
func (e *Entity) Stat(t stat.Type) float64 {
	return e.stats[t]
}

// SetStat overwrites the live value of t.
func (e *Entity) SetStat(t stat.Type, v float64) {
	e.stats[t] = v
}

// AddStat adds delta to the live value of t.
func (e *Entity) AddStat(t stat.Type, delta float64) {
	e.stats[t] += delta
}

// BaseStats returns the variant's defining stats.
func (e *Entity) BaseStats() stat.Block {
	return e.base
}

// Stats returns a copy of the live stats.
func (e *Entity) Stats() stat.Block {
	return e.stats
}

// effectiveAPS applies the slow status to the speed stat.
func (e *Entity) effectiveAPS() float64 {
	aps := e.Stat(stat.APS)
	if e.Stat(stat.Slowed) > 0 {
		aps *= config.SlowFactor
	}
	return aps
}

// TicksPerAction is the number of ticks between two acts.
func (e *Entity) TicksPerAction() float64 {
	aps := e.effectiveAPS()
	if aps <= 0 {
		return config.NeverTicks
	}
	return config.TargetFPS / aps
}

// ScheduleNextAction resets the action timer with a little jitter.
func (e *Entity) ScheduleNextAction(rng *utils.PRNGService) {
	aps := e.effectiveAPS()
	if aps <= 0 {
		e.ticksUntilAction = config.NeverTicks
		return
	}
	e.ticksUntilAction = int(math.Round(rng.Jitter(config.TargetFPS/aps, config.ActionJitter)))
}

// TicksUntilAction returns the current value of the action timer.
func (e *Entity) TicksUntilAction() int {
	return e.ticksUntilAction
}

// Update advances the cosmetic and action timers by one tick.
// It reports whether the entity should act now. The caller acts and then
// calls ScheduleNextAction.
func (e *Entity) Update(active bool) bool {
	e.Perturbation.Tick()
	if !active {
		return false
	}
	if e.ticksUntilAction <= 0 {
		return true
	}
	e.ticksUntilAction--
	return false
}

func (e *Entity) HP() float64 {
	return math.Max(e.hp, 0)
}

func (e *Entity) MaxHP() float64 {
	return e.Stat(stat.HP)
}

// SetHP sets hit points, bounded to [0, MaxHP].
func (e *Entity) SetHP(v float64) {
	e.hp = pkgutils.Clamp(v, 0, e.MaxHP())
}

func (e *Entity) IsDead() bool {
	return e.HP() <= 0
}

func (e *Entity) Charge() float64 {
	return e.charge
}

func (e *Entity) MaxCharge() float64 {
	return e.Stat(stat.MaxCharge)
}

// AddCharge restores charge up to MaxCharge.
func (e *Entity) AddCharge(v float64) {
	e.charge = math.Min(e.MaxCharge(), e.charge+v)
}

// SpendCharge consumes charge. Charge never goes below zero.
func (e *Entity) SpendCharge(v float64) {
	e.charge = math.Max(0, e.charge-v)
}

// SetCharge sets charge, bounded to [0, MaxCharge].
func (e *Entity) SetCharge(v float64) {
	e.charge = pkgutils.Clamp(v, 0, e.MaxCharge())
}

// Solidity is 0 for open, 1 for blocking, 2 for doors.
func (e *Entity) Solidity() int {
	return int(e.Stat(stat.Solidity))
}

func (e *Entity) GoldCost() float64  { return e.Stat(stat.BuyPrice) }
func (e *Entity) StoneCost() float64 { return e.Stat(stat.StonePrice) }
func (e *Entity) SellPrice() float64 { return e.Stat(stat.SellPrice) }
func (e *Entity) BuildTime() float64 { return e.Stat(stat.BuildTime) }
func (e *Entity) CanSell() bool      { return e.SellPrice() >= 0 }

// CanCharge reports whether this spawner charges the given robot.
func (e *Entity) CanCharge(robot *Entity) bool {
	return e.Spawner != nil && robot != nil && e.Spawner.RobotKind == robot.Kind
}

// IsActiveRock reports whether this is a rock that can be mined now.
func (e *Entity) IsActiveRock() bool {
	return e.Rock != nil && e.Rock.IsActive()
}

func (e *Entity) String() string {
	return e.Name + e.ID.String()
}
