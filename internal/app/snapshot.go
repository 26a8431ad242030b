// internal/app/snapshot.go
package app

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/scene"
	"spacemax-td/internal/types"
	"spacemax-td/internal/utils"
)

// Snapshot copies the drawable state of the session. Entities appear in
// spawn/placement order.
func (g *Game) Snapshot() scene.Snapshot {
	snap := scene.Snapshot{
		SessionID:   g.SessionID,
		Phase:       g.StateSystem.Current(),
		GameTimeMs:  g.ECS.GameTime,
		Enemies:     make([]scene.EnemyView, 0, g.ECS.Enemies.Len()),
		Towers:      make([]scene.TowerView, 0, g.ECS.Towers.Len()),
		Projectiles: make([]scene.ProjectileView, 0, g.ECS.Projectiles.Len()),
		HUD: scene.HUD{
			Gold:     g.ECS.Player.Gold,
			Stage:    g.ECS.Wave.Stage,
			StageCap: g.Config.StageCap,
			Lives:    g.ECS.Player.Lives,
			MaxLives: g.ECS.Player.MaxLives,
		},
	}

	for _, p := range g.Route.Points() {
		snap.Route = append(snap.Route, component.FromPoint(p))
	}

	g.ECS.Enemies.Each(func(id types.EntityID, enemy *component.Enemy) {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			return
		}
		ratio := 0.0
		if enemy.MaxHP > 0 {
			ratio = utils.Clamp01(enemy.HP / enemy.MaxHP)
		}
		snap.Enemies = append(snap.Enemies, scene.EnemyView{
			ID:          id,
			Position:    *pos,
			Size:        enemy.Boss.Size(),
			HealthRatio: ratio,
			Boss:        enemy.Boss,
		})
	})

	g.ECS.Towers.Each(func(id types.EntityID, tower *component.Tower) {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			return
		}
		selected := id == g.selectedTower
		snap.Towers = append(snap.Towers, scene.TowerView{
			ID:       id,
			Position: *pos,
			Size:     tower.Size,
			Range:    tower.Range,
			Rarity:   tower.Rarity,
			Level:    tower.Level,
			Selected: selected,
			Dragging: tower.Dragging,
		})
		if selected {
			snap.Selected = &scene.SelectedTower{
				ID:          id,
				Position:    *pos,
				Size:        tower.Size,
				Rarity:      tower.Rarity,
				Level:       tower.Level,
				Damage:      tower.Damage,
				Range:       tower.Range,
				SellValue:   g.SellValue(tower),
				UpgradeCost: g.UpgradeCost(tower),
			}
		}
	})

	g.ECS.Projectiles.Each(func(id types.EntityID, _ *component.Projectile) {
		if pos, ok := g.ECS.Positions[id]; ok {
			snap.Projectiles = append(snap.Projectiles, scene.ProjectileView{Position: *pos})
		}
	})

	return snap
}
