// internal/system/utils.go
package system

import (
	"spacemax-td/internal/entity"
	"spacemax-td/internal/types"
)

// ApplyDamage subtracts damage from an enemy's hp. There is no armor model.
// It reports whether the enemy was found; hp may go negative, reaping
// happens later in the tick.
func ApplyDamage(ecs *entity.ECS, enemyID types.EntityID, damage float64) bool {
	enemy, ok := ecs.Enemies.Get(enemyID)
	if !ok {
		return false
	}
	enemy.HP -= damage
	return true
}
