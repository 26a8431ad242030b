// pkg/render/color.go
package render

import (
	"image/color"

	"spacemax-td/internal/component"
	"spacemax-td/internal/defs"
)

var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Gray   = color.RGBA{100, 100, 100, 255}
	Blue   = color.RGBA{0, 100, 255, 255}
	Purple = color.RGBA{170, 0, 255, 255}
	Orange = color.RGBA{255, 150, 0, 255}
	Gold   = color.RGBA{255, 215, 0, 255}
	Red    = color.RGBA{255, 50, 50, 255}
	Green  = color.RGBA{0, 255, 0, 255}
)

// Body colors of towers, by tier.
var towerColors = map[defs.Rarity]color.RGBA{
	defs.Common:    Gray,
	defs.Rare:      Blue,
	defs.Epic:      Purple,
	defs.Legendary: Orange,
	defs.Mythic:    Gold,
}

// Label colors of tiers in text.
var rarityColors = map[defs.Rarity]color.RGBA{
	defs.Common:    {160, 160, 160, 255}, // серый
	defs.Rare:      {100, 200, 255, 255}, // голубой
	defs.Epic:      {170, 0, 255, 255},   // фиолетовый
	defs.Legendary: {255, 215, 0, 255},   // жёлтый
	defs.Mythic:    {255, 50, 50, 255},   // красный
}

// TowerColor is the body color of a tower of tier r.
func TowerColor(r defs.Rarity) color.RGBA {
	if c, ok := towerColors[r]; ok {
		return c
	}
	return White
}

// RarityColor is the color a tier's name is written in.
func RarityColor(r defs.Rarity) color.RGBA {
	if c, ok := rarityColors[r]; ok {
		return c
	}
	return White
}

// EnemyColor distinguishes bosses from regular enemies.
func EnemyColor(b defs.BossTier) color.RGBA {
	switch b {
	case defs.BossMid:
		return Orange
	case defs.BossMain:
		return Red
	default:
		return color.RGBA{230, 200, 40, 255}
	}
}

// HealthColor is the fill of a health bar: green above half, orange above a
// quarter, red below.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return Green
	case ratio > 0.25:
		return Orange
	default:
		return Red
	}
}

// StageColor highlights boss stages: red for main-boss stages, orange for
// mid-boss stages.
func StageColor(stage int) color.RGBA {
	switch {
	case stage > 0 && stage%10 == 0:
		return Red
	case stage%10 == 5:
		return Orange
	default:
		return White
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// EndBanner returns the banner text and color for a terminal phase, or an
// empty label while the session is still running.
func EndBanner(phase component.GameState) (string, color.RGBA) {
	switch phase {
	case component.VictoryState:
		return "YOU WIN!", Green
	case component.GameOverState:
		return "GAME OVER", Red
	default:
		return "", White
	}
}
