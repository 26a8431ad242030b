// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"spacemax-td/internal/scene"
	"spacemax-td/pkg/render"
)

const (
	panelPadding = 6
	panelGap     = 8
)

// InfoPanel shows the selected tower's tier, level and damage above it, with
// the price of the next upgrade and the sell refund.
type InfoPanel struct {
	fontFace   font.Face
	background color.RGBA
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:   face,
		background: color.RGBA{0, 0, 0, 180},
	}
}

// Lines returns the panel text for a selected tower.
func (p *InfoPanel) Lines(sel *scene.SelectedTower) []string {
	return []string{
		fmt.Sprintf("%s Lv%d DMG:%d", sel.Rarity.Title(), sel.Level, int(sel.Damage)),
		fmt.Sprintf("Range %d", int(sel.Range)),
		fmt.Sprintf("[U] Upgrade: %d", sel.UpgradeCost),
		fmt.Sprintf("[RMB] Sell: +%d", sel.SellValue),
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, sel *scene.SelectedTower) {
	if sel == nil {
		return
	}
	lines := p.Lines(sel)
	lineHeight := p.fontFace.Metrics().Height.Ceil()

	width := 0
	for _, l := range lines {
		if w := text.BoundString(p.fontFace, l).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := lineHeight*len(lines) + 2*panelPadding

	x := int(sel.Position.X) - width/2
	y := int(sel.Position.Y-sel.Size/2) - height - panelGap
	if y < 0 {
		y = int(sel.Position.Y+sel.Size/2) + panelGap
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), p.background, false)
	for i, l := range lines {
		clr := render.White
		if i == 0 {
			clr = render.RarityColor(sel.Rarity)
		}
		baseline := y + panelPadding + lineHeight*(i+1) - lineHeight/4
		text.Draw(screen, l, p.fontFace, x+panelPadding, baseline, clr)
	}
}
