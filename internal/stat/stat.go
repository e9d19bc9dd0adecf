// internal/stat/stat.go
package stat

import (
	"fmt"
	"image/color"
	"strconv"

	"automata-defense/pkg/render"
)

// Type identifies one numeric attribute of an entity.
type Type int

const (
	HP Type = iota
	MaxCharge
	ChargeRate
	APS
	Damage
	BonusDamage
	Rampage
	Range
	Armor
	BuyPrice
	SellPrice
	StonePrice
	BuildTime
	Vampirism
	Solidity
	Repairable
	BuildSpeed
	Aggression
	DeathReward
	WeaknessOnHit
	SlowOnHit
	PoisonOnHit
	Weakened
	Slowed
	Poisoned

	// Count is the number of stat types.
	Count
)

// Info is the immutable metadata of a stat type.
type Info struct {
	Name     string
	Default  float64
	Color    color.RGBA
	Describe func(v float64) string
}

// Num formats a stat value without trailing zeros.
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func labelled(label, suffix string) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%s: %s%s", label, Num(v), suffix)
	}
}

func hidden(float64) string { return "" }

func describeRepairable(v float64) string {
	if v <= 0 {
		return "Cannot be repaired"
	}
	return ""
}

var registry = [Count]Info{
	HP:            {"Max Health", 50, render.Red, labelled("Max Health", "")},
	MaxCharge:     {"Max Charge", 0, render.Yellow, labelled("Max Charge", "")},
	ChargeRate:    {"Charge Rate", 10, render.LightGray, labelled("Charge Rate", "")},
	APS:           {"Speed", 2, render.LightGray, labelled("Speed", "/sec")},
	Damage:        {"Damage", 10, render.LightGray, labelled("Damage", "")},
	BonusDamage:   {"Bonus Damage", 0, render.LightGray, labelled("Bonus Damage", "")},
	Rampage:       {"Rampage", 0, render.Red, labelled("Damage on Hit", "")},
	Range:         {"Range", 1.5, render.Blue, labelled("Range", "")},
	Armor:         {"Armor", 0, render.MidGray, labelled("Armor", "")},
	BuyPrice:      {"Gold Cost", -1, render.Yellow, func(v float64) string { return "Cost: $" + Num(v) }},
	SellPrice:     {"Sell Price", -1, render.Green, func(v float64) string { return "Sell for: $" + Num(v) }},
	StonePrice:    {"Stone Cost", 0, render.LightGray, labelled("Stone Cost", "")},
	BuildTime:     {"Build Time", 10, render.LightGray, labelled("Build Time", "")},
	Vampirism:     {"Vampirism", 0, render.Purple, labelled("Vampirism", "%")},
	Solidity:      {"Solidity", 1, render.White, hidden},
	Repairable:    {"Repairable", 0, render.LightGray, describeRepairable},
	BuildSpeed:    {"Build Speed", 0, render.LightGray, labelled("Build Speed", "/sec")},
	Aggression:    {"Aggression", 0, render.Red, labelled("Aggression", "")},
	DeathReward:   {"Death Reward", 0, render.Yellow, labelled("Bounty", "")},
	WeaknessOnHit: {"Weakness on Hit", 0, render.Blue, labelled("Weakens for", " acts")},
	SlowOnHit:     {"Slow on Hit", 0, render.DarkPurple, labelled("Slows for", " acts")},
	PoisonOnHit:   {"Poison on Hit", 0, render.Purple, labelled("Poisons for", " acts")},
	Weakened:      {"Weakened", 0, render.Blue, labelled("Weakened", "")},
	Slowed:        {"Slowed", 0, render.DarkPurple, labelled("Slowed", "")},
	Poisoned:      {"Poisoned", 0, render.Purple, labelled("Poisoned", "")},
}

// Lookup returns the metadata of t.
func (t Type) Lookup() Info {
	return registry[t]
}

func (t Type) String() string {
	if t < 0 || t >= Count {
		return fmt.Sprintf("stat.Type(%d)", int(t))
	}
	return registry[t].Name
}

// Default returns the value used when a variant does not set t.
func (t Type) Default() float64 {
	return registry[t].Default
}

// Describe renders v for info panels. Hidden stats return "".
func (t Type) Describe(v float64) string {
	return registry[t].Describe(v)
}

// All lists every stat type in declaration order.
func All() []Type {
	res := make([]Type, Count)
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

// Parse looks a stat type up by name.
func Parse(name string) (Type, bool) {
	for i, info := range registry {
		if info.Name == name {
			return Type(i), true
		}
	}
	return 0, false
}

// Block is a full stat snapshot. Copying a Block copies all values.
type Block [Count]float64

// Defaults returns a block holding every type's default.
func Defaults() Block {
	var b Block
	for i, info := range registry {
		b[i] = info.Default
	}
	return b
}

// Get returns the value of t.
func (b Block) Get(t Type) float64 { return b[t] }

// Set overwrites the value of t.
func (b *Block) Set(t Type, v float64) { b[t] = v }

// With returns a copy of b with the given overrides applied.
func (b Block) With(overrides map[Type]float64) Block {
	for t, v := range overrides {
		b[t] = v
	}
	return b
}

// NonDefault lists the types whose value differs from the default.
func (b Block) NonDefault() []Type {
	var res []Type
	for i, v := range b {
		if v != registry[i].Default {
			res = append(res, Type(i))
		}
	}
	return res
}
