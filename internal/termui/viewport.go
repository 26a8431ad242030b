// internal/termui/viewport.go
package termui

import (
	"spacemax-td/internal/component"
	"spacemax-td/internal/config"
)

// Viewport maps the fixed world rectangle onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows int // Cells available for the playfield
	OffsetRow  int // Rows above the playfield taken by the status line
}

// ToCell returns the cell showing world point p.
func (v Viewport) ToCell(p component.Position) (col, row int) {
	col = int(p.X * float64(v.Cols) / config.ScreenWidth)
	row = int(p.Y*float64(v.Rows)/config.ScreenHeight) + v.OffsetRow
	return col, row
}

// ToWorld returns the world point at the center of a cell.
func (v Viewport) ToWorld(col, row int) component.Position {
	return component.Position{
		X: (float64(col) + 0.5) * config.ScreenWidth / float64(v.Cols),
		Y: (float64(row-v.OffsetRow) + 0.5) * config.ScreenHeight / float64(v.Rows),
	}
}

// Contains reports whether a cell lies inside the playfield.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= v.OffsetRow && row < v.OffsetRow+v.Rows
}
