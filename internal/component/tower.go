// internal/component/tower.go
package component

import "spacemax-td/internal/defs"

type Tower struct {
	Rarity       defs.Rarity
	Damage       float64
	FireRate     float64 // Shots per second
	Range        float64
	Size         float64 // Edge of the square click box, centered on the position
	Level        int
	LastShotMs   float64 // Game clock of the last shot
	PurchaseCost int
	Dragging     bool // Towers being moved never fire
}

// CooldownMs is the minimum time between two shots.
func (t *Tower) CooldownMs() float64 {
	return 1000 / t.FireRate
}
