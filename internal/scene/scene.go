// Package scene is the read-only picture of a session that frontends draw.
// A Snapshot shares no memory with the simulation.
package scene

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/defs"
	"spacemax-td/internal/types"
)

type EnemyView struct {
	ID          types.EntityID
	Position    component.Position
	Size        float64 // Sprite edge, by boss tier
	HealthRatio float64 // hp/maxHp clamped to [0, 1]
	Boss        defs.BossTier
}

type TowerView struct {
	ID       types.EntityID
	Position component.Position
	Size     float64 // Sprite edge, by rarity
	Range    float64
	Rarity   defs.Rarity
	Level    int
	Selected bool
	Dragging bool
}

type ProjectileView struct {
	Position component.Position
}

// HUD carries the scalar values shown in the corner of the screen.
type HUD struct {
	Gold     int
	Stage    int
	StageCap int
	Lives    int
	MaxLives int
}

// SelectedTower describes the tower the player last clicked.
type SelectedTower struct {
	ID          types.EntityID
	Position    component.Position
	Size        float64
	Rarity      defs.Rarity
	Level       int
	Damage      float64
	Range       float64
	SellValue   int
	UpgradeCost int
}

type Snapshot struct {
	SessionID   string
	Phase       component.GameState
	GameTimeMs  float64
	Route       []component.Position
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	HUD         HUD
	Selected    *SelectedTower // nil when nothing is selected
}

// TowerAt returns the first tower, in placement order, whose click box
// contains p. It agrees with the hit test the simulation uses for selection.
func (s *Snapshot) TowerAt(p component.Position) (TowerView, bool) {
	for _, t := range s.Towers {
		if Contains(t.Position, t.Size, p) {
			return t, true
		}
	}
	return TowerView{}, false
}

// Contains reports whether p lies in the size×size box centered on center.
// The box is half-open: left and top edges are inside, right and bottom are not.
func Contains(center component.Position, size float64, p component.Position) bool {
	left, top := center.X-size/2, center.Y-size/2
	return p.X >= left && p.X < left+size && p.Y >= top && p.Y < top+size
}
