// internal/system/combat.go
package system

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/types"
	"spacemax-td/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	projectileSpeed float64
}

func NewCombatSystem(ecs *entity.ECS, projectileSpeed float64) *CombatSystem {
	return &CombatSystem{ecs: ecs, projectileSpeed: projectileSpeed}
}

// Update lets every tower that is not being dragged try to fire.
func (s *CombatSystem) Update(nowMs float64) {
	s.ecs.Towers.Each(func(id types.EntityID, tower *component.Tower) {
		if tower.Dragging {
			return
		}
		s.TryFire(id, tower, nowMs)
	})
}

// TryFire fires one projectile at the tower's target if the cooldown has
// elapsed and an enemy is in range, and returns the projectile's ID.
func (s *CombatSystem) TryFire(towerID types.EntityID, tower *component.Tower, nowMs float64) (types.EntityID, bool) {
	if nowMs-tower.LastShotMs <= tower.CooldownMs() {
		return types.NoEntity, false
	}
	towerPos, ok := s.ecs.Positions[towerID]
	if !ok {
		return types.NoEntity, false
	}
	enemyID, found := s.FindTarget(*towerPos, tower.Range)
	if !found {
		return types.NoEntity, false
	}

	projID := s.ecs.AddProjectile(*towerPos, &component.Projectile{
		TargetID: enemyID,
		Speed:    s.projectileSpeed,
		Damage:   tower.Damage,
	})
	tower.LastShotMs = nowMs
	return projID, true
}

// FindTarget returns the first enemy, in spawn order, strictly inside rangeRadius.
// There is no nearest-first or priority logic: spawn order is the tie-break.
func (s *CombatSystem) FindTarget(center component.Position, rangeRadius float64) (types.EntityID, bool) {
	id, _, found := s.ecs.Enemies.First(func(id types.EntityID, _ *component.Enemy) bool {
		pos, ok := s.ecs.Positions[id]
		return ok && utils.Distance(center, *pos) < rangeRadius
	})
	return id, found
}
