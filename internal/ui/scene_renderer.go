// internal/ui/scene_renderer.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spacemax-td/internal/config"
	"spacemax-td/internal/scene"
	"spacemax-td/pkg/render"
)

const (
	pathWidth       = 36
	rangeRingWidth  = 1
	selectionMargin = 4
)

// SceneRenderer draws the playfield of a snapshot: the path, enemies with
// their health bars, towers with their range rings, and projectiles.
type SceneRenderer struct {
	background *ebiten.Image
}

func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

// Draw paints snap onto screen. The route is rendered once into a cached
// background image.
func (r *SceneRenderer) Draw(screen *ebiten.Image, snap *scene.Snapshot) {
	if r.background == nil {
		r.background = r.renderBackground(snap)
	}
	screen.DrawImage(r.background, nil)

	for i := range snap.Towers {
		r.drawTower(screen, &snap.Towers[i])
	}
	for i := range snap.Enemies {
		r.drawEnemy(screen, &snap.Enemies[i])
	}
	for i := range snap.Projectiles {
		p := snap.Projectiles[i].Position
		s := float32(config.ProjectileRadius * 2)
		vector.DrawFilledRect(screen, float32(p.X)-s/2, float32(p.Y)-s/2, s, s, config.ProjectileColor, false)
	}
}

func (r *SceneRenderer) renderBackground(snap *scene.Snapshot) *ebiten.Image {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)
	for i := 1; i < len(snap.Route); i++ {
		a, b := snap.Route[i-1], snap.Route[i]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), pathWidth, config.PathColor, true)
	}
	// Скругляем стыки сегментов
	for _, p := range snap.Route {
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), pathWidth/2, config.PathColor, true)
	}
	return img
}

func (r *SceneRenderer) drawTower(screen *ebiten.Image, t *scene.TowerView) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	half := float32(t.Size) / 2

	vector.StrokeCircle(screen, x, y, float32(t.Range), rangeRingWidth, config.RangeRingColor, true)

	body := render.TowerColor(t.Rarity)
	if t.Dragging {
		body = render.DarkenColor(body)
	}
	vector.DrawFilledRect(screen, x-half, y-half, float32(t.Size), float32(t.Size), body, false)

	if t.Selected {
		m := float32(selectionMargin)
		vector.StrokeRect(screen, x-half-m, y-half-m, float32(t.Size)+2*m, float32(t.Size)+2*m, 2, config.SelectionColor, false)
	}
}

func (r *SceneRenderer) drawEnemy(screen *ebiten.Image, e *scene.EnemyView) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	size := float32(e.Size)
	half := size / 2

	vector.DrawFilledCircle(screen, x, y, half, render.EnemyColor(e.Boss), true)

	// Полоса здоровья над врагом
	barY := y - half - config.HealthBarOffsetY
	vector.DrawFilledRect(screen, x-half, barY, size, config.HealthBarHeight, color.RGBA{0, 0, 0, 255}, false)
	vector.DrawFilledRect(screen, x-half, barY, size*float32(e.HealthRatio), config.HealthBarHeight, render.HealthColor(e.HealthRatio), false)
}
