// internal/entity/factory.go
package entity

import (
	"fmt"

	"automata-defense/internal/defs"
	"automata-defense/internal/stat"
	"automata-defense/internal/types"
)

const waitingForBuilder = "\n(Waiting for Build-Bot)"

// Factory builds entities from a unit library.
type Factory struct {
	Lib defs.Library
}

// NewFactory creates a factory over lib.
func NewFactory(lib defs.Library) *Factory {
	if lib == nil {
		lib = defs.NewLibrary()
	}
	return &Factory{Lib: lib}
}

// Create builds a fresh entity of kind.
func (f *Factory) Create(kind types.Kind) *Entity {
	return New(f.Lib.Get(kind))
}

// NewGoldIngot creates a gold bar worth value.
func (f *Factory) NewGoldIngot(value float64) *Entity {
	e := f.Create(types.GoldIngot)
	SetIngotValue(e, value)
	return e
}

// SetIngotValue reprices a gold bar and renames it to match.
func SetIngotValue(e *Entity, value float64) {
	e.SetStat(stat.SellPrice, value)
	e.Name = fmt.Sprintf("Gold Bar ($%s)", stat.Num(value))
}

// NewStoneItem creates a piece of stone.
func (f *Factory) NewStoneItem() *Entity {
	return f.Create(types.StoneItem)
}

func (f *Factory) newMarker(kind types.Kind, target *Entity, required float64) *Entity {
	m := f.Create(kind)
	m.Name = target.Name
	m.Description = target.Description + waitingForBuilder
	m.Marker.Target = target.ID
	m.Marker.TargetGlyph = target.Glyph(0)
	m.Marker.Required = int(required)
	return m
}

// NewBuildNewMarker creates a construction marker for target, which must be in the arena.
func (f *Factory) NewBuildNewMarker(target *Entity) *Entity {
	return f.newMarker(types.BuildNewMarker, target, target.BuildTime())
}

// NewSellMarker creates a sale marker for the placed tower target.
func (f *Factory) NewSellMarker(target *Entity) *Entity {
	return f.newMarker(types.SellMarker, target, target.BuildTime())
}

// NewUpgradeMarker creates a marker that replaces old with replacement.
// It takes as long as building the replacement.
func (f *Factory) NewUpgradeMarker(old, replacement *Entity) *Entity {
	m := f.newMarker(types.UpgradeMarker, old, replacement.BuildTime())
	m.Marker.Replacement = replacement.ID
	m.Name = old.Name + " → " + replacement.Name
	return m
}
