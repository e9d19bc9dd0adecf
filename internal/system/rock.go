// internal/system/rock.go
package system

import (
	"automata-defense/internal/config"
	"automata-defense/internal/entity"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

func actRock(e *entity.Entity) {
	if e.Rock.Countdown > 0 {
		e.Rock.Countdown--
	}
}

// Mine works the rock once. It fails only when the rock is still resting.
// A successful strike drops stone, or sometimes gold from gold ore, into a
// free neighbouring cell and rests the rock.
func Mine(w *world.World, rock *entity.Entity) bool {
	if !rock.IsActiveRock() {
		return false
	}
	rng := w.RNG()
	if !rng.Chance(config.RockMineChance) {
		return true
	}
	free := w.EmptyCellsAdjacentTo([]grid.Cell{w.MustPos(rock)}, nil)
	if len(free) > 0 {
		var item *entity.Entity
		if rock.Kind == types.GoldOreTower && rng.Chance(config.GoldOreIngotChance) {
			item = w.Factory().NewGoldIngot(config.GoldOreIngotValue)
		} else {
			item = w.Factory().NewStoneItem()
		}
		w.SetPos(item, free[rng.Intn(len(free))])
	}
	rock.Rock.Countdown = config.RockRestActs
	return true
}
