// internal/system/movement.go
package system

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/entity"
	"spacemax-td/internal/types"
	"spacemax-td/internal/utils"
	"spacemax-td/pkg/route"
)

// MovementSystem walks enemies along the route. Movement is a fixed step per
// tick, not scaled by frame time: one call per rendered frame.
type MovementSystem struct {
	ecs     *entity.ECS
	route   *route.Route
	epsilon float64
}

func NewMovementSystem(ecs *entity.ECS, r *route.Route, waypointEpsilon float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, route: r, epsilon: waypointEpsilon}
}

func (s *MovementSystem) Update() {
	s.ecs.Enemies.Each(func(id types.EntityID, enemy *component.Enemy) {
		if pos, ok := s.ecs.Positions[id]; ok {
			s.advance(enemy, pos)
		}
	})
}

// advance moves one enemy a single step toward its next waypoint. The turn
// check uses the distance measured before the step, so an enemy may overshoot
// a corner by less than one step before heading to the next waypoint.
func (s *MovementSystem) advance(enemy *component.Enemy, pos *component.Position) {
	if enemy.PathIndex >= s.route.LastIndex() {
		return
	}
	target := component.FromPoint(s.route.Point(enemy.PathIndex + 1))
	next, dist := utils.StepToward(*pos, target, enemy.Speed)
	*pos = next
	if dist < s.epsilon {
		enemy.PathIndex++
	}
}

// ReachedEnd reports whether the enemy has passed the final waypoint.
func (s *MovementSystem) ReachedEnd(enemy *component.Enemy) bool {
	return enemy.PathIndex >= s.route.LastIndex()
}
