// internal/entity/damage.go
package entity

import (
	"math"

	"automata-defense/internal/config"
	"automata-defense/internal/stat"
	"automata-defense/pkg/render"
	"automata-defense/pkg/utils"
)

// CalcDamageAgainst returns the damage one hit would deal to other.
func (e *Entity) CalcDamageAgainst(other *Entity) float64 {
	dmg := e.Stat(stat.Damage) + e.Stat(stat.BonusDamage) - other.Stat(stat.Armor)
	if dmg <= 0 {
		return 0
	}
	if other.Stat(stat.Weakened) > 0 {
		dmg = math.Floor(dmg * config.WeaknessMultiplier)
	}
	return dmg
}

// GiveDamageTo hits other once and returns the damage dealt.
// The attacker heals by its vampirism share and its bonus damage grows by its rampage.
func (e *Entity) GiveDamageTo(other *Entity) float64 {
	dmg := e.CalcDamageAgainst(other)
	if dmg > 0 {
		other.TakeDamageFrom(dmg, e)

		heal := math.Floor(dmg * e.Stat(stat.Vampirism) / 100)
		e.SetHP(e.HP() + heal)

		applyStatus(other, stat.Weakened, e.Stat(stat.WeaknessOnHit))
		applyStatus(other, stat.Slowed, e.Stat(stat.SlowOnHit))
		applyStatus(other, stat.Poisoned, e.Stat(stat.PoisonOnHit))
	}
	e.AddStat(stat.BonusDamage, e.Stat(stat.Rampage))
	return dmg
}

// applyStatus refreshes a status counter without shortening it.
func applyStatus(target *Entity, status stat.Type, acts float64) {
	if acts > 0 && target.Stat(status) < acts {
		target.SetStat(status, acts)
	}
}

// TakeDamageFrom lowers hp. source may be nil for damage without an attacker.
func (e *Entity) TakeDamageFrom(amount float64, source *Entity) {
	e.SetHP(e.HP() - amount)
	if amount <= 0 {
		return
	}
	switch {
	case e.Enemy != nil:
		e.Perturb(render.White, config.DamagePerturbDuration)
	case source != nil:
		e.Perturb(source.Color(ViewNormal), config.DamagePerturbDuration)
	default:
		e.Perturb(render.Red, config.DamagePerturbDuration)
	}
}

// AggressionDiscount scales the combat time this entity expects when planning
// to fight through blockers. More aggressive entities expect it to be cheaper.
func (e *Entity) AggressionDiscount() float64 {
	return utils.Clamp(1-e.Stat(stat.Aggression)/10, 0.1, 1)
}
