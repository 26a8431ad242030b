// internal/component/projectile.go
package component

import "spacemax-td/internal/types"

// Projectile представляет летящий снаряд. TargetID это слабая ссылка:
// снаряд не удерживает цель и исчезает вместе с ней.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64 // Distance per tick
	Damage   float64
}
