// internal/utils/math.go
package utils

import (
	"math"

	"spacemax-td/internal/component"
)

// Distance is the Euclidean distance between two positions.
func Distance(a, b component.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// StepToward moves from by step along the straight line to to and returns
// the new position together with the distance to to measured before the
// move. When from and to coincide nothing moves.
func StepToward(from, to component.Position, step float64) (component.Position, float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return from, 0
	}
	return component.Position{
		X: from.X + dx/dist*step,
		Y: from.Y + dy/dist*step,
	}, dist
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
