// internal/system/projectile.go
package system

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/types"
	"spacemax-td/internal/utils"
)

// contactEpsilon treats a projectile sitting on its target as a hit without
// normalizing a zero vector.
const contactEpsilon = 1e-9

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs       *entity.ECS
	hitRadius float64
}

func NewProjectileSystem(ecs *entity.ECS, hitRadius float64) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, hitRadius: hitRadius}
}

func (s *ProjectileSystem) Update() {
	s.ecs.Projectiles.Each(func(id types.EntityID, proj *component.Projectile) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveProjectile(id)
			return
		}

		// Цель пропала или уже мертва: снаряд исчезает без урона
		_, targetPos, alive := s.ecs.LiveEnemy(proj.TargetID)
		if !alive {
			s.ecs.RemoveProjectile(id)
			return
		}

		if utils.Distance(*pos, *targetPos) < contactEpsilon {
			s.hitTarget(id, proj)
			return
		}

		next, _ := utils.StepToward(*pos, *targetPos, proj.Speed)
		*pos = next
		if utils.Distance(next, *targetPos) < s.hitRadius {
			s.hitTarget(id, proj)
		}
	})
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile) {
	ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
	s.ecs.RemoveProjectile(projectileID)
}
