// internal/app/tower_management.go
package app

import (
	"math"

	"spacemax-td/internal/component"
	"spacemax-td/internal/event"
	"spacemax-td/internal/scene"
	"spacemax-td/internal/types"
)

// PlaceOrSelectAt selects the first tower whose box contains p. If there is
// none it places a new tower at p, provided the player can pay for it; the
// selection is left alone either way when nothing is hit.
func (g *Game) PlaceOrSelectAt(p component.Position) {
	if g.StateSystem.IsTerminal() {
		return
	}
	if id, ok := g.TowerAt(p); ok {
		g.selectedTower = id
		return
	}
	g.PlaceTower(p)
}

// PlaceTower buys a tower at p with a freshly rolled rarity. It returns the
// new tower's ID, or false if the player cannot afford it.
func (g *Game) PlaceTower(p component.Position) (types.EntityID, bool) {
	cost := g.Config.TowerCost
	if !g.EconomySystem.Spend(cost) {
		g.logger.Debug("tower purchase rejected", "cost", cost, "gold", g.EconomySystem.Gold())
		return types.NoEntity, false
	}

	rarity := g.Rng.ChooseWeighted(g.Config.RarityWeights)
	stats, _ := g.Config.StatsFor(rarity) // Validate guarantees an entry for every weighted tier
	tower := &component.Tower{
		Rarity:       rarity,
		Damage:       stats.Damage,
		FireRate:     stats.FireRate,
		Range:        g.Config.TowerRange,
		Size:         stats.Size,
		Level:        1,
		PurchaseCost: cost,
	}
	id := g.ECS.AddTower(p, tower)

	g.logger.Debug("tower placed", "id", id, "rarity", rarity.String(), "x", p.X, "y", p.Y)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerInfo{ID: id, Rarity: rarity, Level: tower.Level, Gold: cost},
	})
	return id, true
}

// TowerAt returns the first tower, in placement order, whose click box
// contains p.
func (g *Game) TowerAt(p component.Position) (types.EntityID, bool) {
	id, _, found := g.ECS.Towers.First(func(id types.EntityID, tower *component.Tower) bool {
		pos, ok := g.ECS.Positions[id]
		return ok && scene.Contains(*pos, tower.Size, p)
	})
	return id, found
}

// BeginDrag selects towerID and lifts it. Unknown IDs are ignored.
func (g *Game) BeginDrag(towerID types.EntityID) {
	tower, ok := g.ECS.Towers.Get(towerID)
	if !ok {
		return
	}
	g.selectedTower = towerID
	tower.Dragging = true
}

// DragTo moves every lifted tower to p.
func (g *Game) DragTo(p component.Position) {
	g.ECS.Towers.Each(func(id types.EntityID, tower *component.Tower) {
		if !tower.Dragging {
			return
		}
		if pos, ok := g.ECS.Positions[id]; ok {
			*pos = p
		}
	})
}

// EndDrag drops every lifted tower.
func (g *Game) EndDrag() {
	g.ECS.Towers.Each(func(_ types.EntityID, tower *component.Tower) {
		tower.Dragging = false
	})
}

// SellSelected removes the selected tower and refunds part of its price.
func (g *Game) SellSelected() {
	id := g.selectedTower
	tower, ok := g.ECS.Towers.Get(id)
	if !ok {
		g.selectedTower = types.NoEntity
		return
	}
	refund := g.SellValue(tower)
	g.ECS.RemoveTower(id)
	g.selectedTower = types.NoEntity
	g.EconomySystem.Refund(refund)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.TowerInfo{ID: id, Rarity: tower.Rarity, Level: tower.Level, Gold: refund},
	})
}

// UpgradeSelected raises the selected tower's damage and range by one level
// if the player can pay the level's price.
func (g *Game) UpgradeSelected() {
	tower, ok := g.ECS.Towers.Get(g.selectedTower)
	if !ok {
		return
	}
	cost := g.UpgradeCost(tower)
	if !g.EconomySystem.Spend(cost) {
		g.logger.Debug("tower upgrade rejected", "id", g.selectedTower, "cost", cost, "gold", g.EconomySystem.Gold())
		return
	}
	tower.Damage += g.Config.UpgradeDamageBase + float64(tower.Level)
	tower.Range += g.Config.UpgradeRangeStep
	tower.Level++

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerInfo{ID: g.selectedTower, Rarity: tower.Rarity, Level: tower.Level, Gold: cost},
	})
}

// UpgradeCost is the price of the tower's next level.
func (g *Game) UpgradeCost(tower *component.Tower) int {
	return g.Config.UpgradeCostPerLevel * tower.Level
}

// SellValue is the refund for selling the tower: a fraction of what was paid
// to place it, rounded down. Upgrades are not refunded.
func (g *Game) SellValue(tower *component.Tower) int {
	return int(math.Floor(float64(tower.PurchaseCost) * g.Config.SellRefundRate))
}
