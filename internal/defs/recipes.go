package defs

import "automata-defense/internal/types"

// UpgradesOf returns the kinds a tower of the given kind can be upgraded into.
func (l Library) UpgradesOf(kind types.Kind) []types.Kind {
	d, ok := l[kind]
	if !ok {
		return nil
	}
	return d.Upgrades
}
