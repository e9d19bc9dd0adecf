// internal/defs/loot_tables.go
package defs

// TierWeight is one entry of a weighted tier table.
type TierWeight struct {
	Tier   int `yaml:"tier"`
	Weight int `yaml:"weight"`
}

// SpawnZoneTiers is the weighted table spawn zones draw stragglers from.
var SpawnZoneTiers = []TierWeight{
	{Tier: 0, Weight: 8},
	{Tier: 1, Weight: 4},
	{Tier: 2, Weight: 2},
	{Tier: 3, Weight: 1},
}

// Weights returns the weights of a table in order, for ChooseWeighted.
func Weights(table []TierWeight) []int {
	res := make([]int, len(table))
	for i, e := range table {
		res[i] = e.Weight
	}
	return res
}
