// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spacemax-td/internal/component"
	"spacemax-td/internal/config"
	"spacemax-td/internal/scene"
	"spacemax-td/pkg/render"
)

// HUD draws everything on top of the playfield: gold, stage, lives, the
// selected tower panel and the end banner.
type HUD struct {
	fonts *Fonts
	wave  *WaveIndicator
	lives *LivesIndicator
	info  *InfoPanel
}

func NewHUD(fonts *Fonts) *HUD {
	return &HUD{
		fonts: fonts,
		wave:  NewWaveIndicator(config.ScreenWidth/2, 40),
		lives: NewLivesIndicator(config.ScreenWidth-config.IndicatorMargin-LivesCols*livesCell, 30),
		info:  NewInfoPanel(fonts.Small),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap *scene.Snapshot) {
	m := config.IndicatorMargin
	text.Draw(screen, fmt.Sprintf("Gold: %d", snap.HUD.Gold), h.fonts.Medium, m, 30, render.Gold)
	text.Draw(screen, fmt.Sprintf("Stage: %d/%d", snap.HUD.Stage, snap.HUD.StageCap), h.fonts.Medium, m, 60, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("HP: %d", snap.HUD.Lives), h.fonts.Medium, m, 90, config.TextLightColor)

	h.wave.Draw(screen, snap.HUD.Stage, h.fonts.Medium)
	h.lives.Draw(screen, snap.HUD.Lives, snap.HUD.MaxLives, h.fonts.Small)
	h.info.Draw(screen, snap.Selected)
}

// DrawBanner dims the screen and writes the outcome of a finished session.
func (h *HUD) DrawBanner(screen *ebiten.Image, phase component.GameState) {
	label, clr := render.EndBanner(phase)
	if label == "" {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	bounds := text.BoundString(h.fonts.Large, label)
	text.Draw(screen, label, h.fonts.Large, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, clr)

	hint := "R: new game   Esc: quit"
	hb := text.BoundString(h.fonts.Small, hint)
	text.Draw(screen, hint, h.fonts.Small, (config.ScreenWidth-hb.Dx())/2, config.ScreenHeight/2+40, config.TextLightColor)
}
