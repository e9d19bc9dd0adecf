package defs

// TierThresholds are the levels at which each harder tier unlocks.
// Level L uses the highest tier whose threshold is <= L.
var TierThresholds = []int{0, 5, 15, 30}

// BaseTierForLevel returns the tier unlocked at level, before milestone bonuses.
func BaseTierForLevel(level int) int {
	tier := 0
	for i, th := range TierThresholds {
		if level >= th {
			tier = i
		}
	}
	return tier
}

// StragglerPointsMax bounds the stat points given to an enemy spawned by an idle spawn zone.
const StragglerPointsMax = 25
