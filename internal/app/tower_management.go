// internal/app/tower_management.go
package app

import (
	"fmt"

	"automata-defense/internal/defs"
	"automata-defense/internal/entity"
	"automata-defense/internal/stat"
	"automata-defense/internal/system"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
	"automata-defense/pkg/grid"
)

// ShopEntry is one line of the build menu. Separators have Kind types.KindNone.
type ShopEntry struct {
	Kind       types.Kind
	Name       string
	Icon       string
	Gold       float64
	Stone      float64
	Affordable bool
}

// Shop lists the buildable towers in menu order.
func (g *Game) Shop() []ShopEntry {
	res := make([]ShopEntry, 0, len(defs.Shop))
	for _, kind := range defs.Shop {
		if kind == types.KindNone {
			res = append(res, ShopEntry{})
			continue
		}
		def := g.lib.Get(kind)
		gold, stone := def.Stats.Get(stat.BuyPrice), def.Stats.Get(stat.StonePrice)
		res = append(res, ShopEntry{
			Kind:       kind,
			Name:       def.Name,
			Icon:       def.ShopIcon,
			Gold:       gold,
			Stone:      stone,
			Affordable: g.canAfford(gold, stone),
		})
	}
	return res
}

func (g *Game) canAfford(gold, stone float64) bool {
	return gold <= g.cash && stone <= g.stone
}

func (g *Game) pay(e *entity.Entity) error {
	if !g.canAfford(e.GoldCost(), e.StoneCost()) {
		return fmt.Errorf("%s costs $%v and %v stone: %w", e.Name, e.GoldCost(), e.StoneCost(), ErrInsufficientFunds)
	}
	g.cash -= e.GoldCost()
	g.stone -= e.StoneCost()
	return nil
}

func isShopKind(kind types.Kind) bool {
	for _, k := range defs.Shop {
		if k == kind && k != types.KindNone {
			return true
		}
	}
	return false
}

// Build orders a tower of kind at c. The price is paid up front and a build-bot
// finishes the job.
func (g *Game) Build(kind types.Kind, c grid.Cell) error {
	if g.gameOver {
		return ErrGameOver
	}
	if !isShopKind(kind) {
		return fmt.Errorf("%s is not for sale: %w", kind, ErrCannotBuild)
	}
	tower := g.World.Factory().Create(kind)
	if !g.World.CanBuildAt(tower, c) {
		return fmt.Errorf("build %s at %s: %w", kind, c, ErrCannotBuild)
	}
	if err := g.pay(tower); err != nil {
		return err
	}
	g.World.RequestBuildAt(tower, c)
	return nil
}

// towerAt returns the tower in c that has no order pending on it.
func (g *Game) towerAt(c grid.Cell) (*entity.Entity, bool) {
	if len(g.World.EntitiesInCell(c, world.HasCap(types.CapBuildMarker))) > 0 {
		return nil, false
	}
	towers := g.World.EntitiesInCell(c, world.HasCap(types.CapTower))
	if len(towers) == 0 {
		return nil, false
	}
	return towers[0], true
}

// Sell orders the tower in c sold. Hearts cannot be sold.
func (g *Game) Sell(c grid.Cell) error {
	if g.gameOver {
		return ErrGameOver
	}
	tower, ok := g.towerAt(c)
	if !ok || !tower.CanSell() || tower.Is(types.CapHeart) {
		return fmt.Errorf("sell at %s: %w", c, ErrNothingToSell)
	}
	g.World.SetPos(g.World.Factory().NewSellMarker(tower), c)
	g.logger.Debug("requested sale", "kind", tower.Kind, "cell", c)
	return nil
}

// Upgrades lists what the tower in c can become.
func (g *Game) Upgrades(c grid.Cell) []types.Kind {
	tower, ok := g.towerAt(c)
	if !ok {
		return nil
	}
	return g.lib.UpgradesOf(tower.Kind)
}

// Upgrade orders the tower in c replaced by its idx-th upgrade.
func (g *Game) Upgrade(c grid.Cell, idx int) error {
	if g.gameOver {
		return ErrGameOver
	}
	tower, ok := g.towerAt(c)
	if !ok {
		return fmt.Errorf("upgrade at %s: %w", c, ErrNoUpgrade)
	}
	upgrades := g.lib.UpgradesOf(tower.Kind)
	if idx < 0 || idx >= len(upgrades) {
		return fmt.Errorf("upgrade %d of %s: %w", idx, tower.Kind, ErrNoUpgrade)
	}
	repl := g.World.Factory().Create(upgrades[idx])
	if err := g.pay(repl); err != nil {
		return err
	}
	g.World.Add(repl)
	g.World.SetPos(g.World.Factory().NewUpgradeMarker(tower, repl), c)
	g.logger.Debug("requested upgrade", "from", tower.Kind, "to", repl.Kind, "cell", c)
	return nil
}

// Cancel withdraws the pending order in c and refunds it.
func (g *Game) Cancel(c grid.Cell) error {
	markers := g.World.EntitiesInCell(c, world.HasCap(types.CapBuildMarker))
	if len(markers) == 0 {
		return fmt.Errorf("cancel at %s: %w", c, ErrNoMarker)
	}
	for _, m := range markers {
		system.RefundMarker(g.World, g, m)
	}
	return nil
}

// Info describes the topmost occupant of c, wrapped to width columns.
func (g *Game) Info(c grid.Cell, width int) []entity.InfoLine {
	if !g.World.InBounds(c) {
		return nil
	}
	occupants := g.World.EntitiesInCell(c, nil)
	if len(occupants) == 0 {
		return nil
	}
	return occupants[len(occupants)-1].InfoText(width)
}
