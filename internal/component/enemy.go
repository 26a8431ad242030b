// internal/component/enemy.go
package component

import "spacemax-td/internal/defs"

// Enemy is a creep walking the route. Its position lives in ECS.Positions.
type Enemy struct {
	PathIndex int // Index of the last waypoint passed; the next target is PathIndex+1
	HP        float64
	MaxHP     float64
	Speed     float64 // Distance per tick
	Boss      defs.BossTier
}

// Alive reports whether the enemy still has hit points.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}
