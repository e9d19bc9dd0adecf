// internal/system/status_effect.go
package system

import (
	"automata-defense/internal/config"
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
)

var statusCounters = []stat.Type{stat.Weakened, stat.Slowed, stat.Poisoned}

// DecayStatusEffects ticks every status counter of e down by one act.
// A poisoned entity loses config.PoisonDamage hp without an attacker.
func DecayStatusEffects(e *entity.Entity) {
	poisoned := e.Stat(stat.Poisoned) > 0
	for _, st := range statusCounters {
		if v := e.Stat(st); v > 0 {
			e.SetStat(st, max(0, v-1))
		}
	}
	if poisoned {
		e.TakeDamageFrom(config.PoisonDamage, nil)
	}
}
