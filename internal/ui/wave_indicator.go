// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"spacemax-td/pkg/render"
)

// WaveIndicator отображает номер текущей стадии римскими цифрами.
type WaveIndicator struct {
	X, Y             int // Центр по горизонтали, базовая линия по вертикали
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		OutlineColor:     render.Black,
		OutlineThickness: 2,
	}
}

// ToRoman конвертирует целое число в римское. Для чисел меньше 1 возвращает "".
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the stage number, colored by boss stage.
func (i *WaveIndicator) Draw(screen *ebiten.Image, stage int, face font.Face) {
	label := ToRoman(stage)
	if label == "" {
		return
	}
	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, render.StageColor(stage))
}
