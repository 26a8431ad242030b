// internal/ui/lives_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"spacemax-td/pkg/render"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 8.0
	LivesCircleSpacing = 4.0
	livesCell          = LivesCircleRadius*2 + LivesCircleSpacing
)

// LivesIndicator отображает оставшиеся жизни игрока сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует сетку: живые ячейки красные, потерянные чёрные.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int, face font.Face) {
	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*livesCell + LivesCircleRadius
		cy := i.Y + float32(row)*livesCell + LivesCircleRadius

		fill := render.Black
		if j < lives {
			fill = render.Red
		}
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, fill, true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, render.White, true)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	text.Draw(screen, label, face, int(i.X), int(i.Y)-6, render.White)
}

// Height is the vertical space the grid takes for maxLives cells.
func (i *LivesIndicator) Height(maxLives int) float32 {
	rows := (maxLives + LivesCols - 1) / LivesCols
	return float32(rows) * livesCell
}
