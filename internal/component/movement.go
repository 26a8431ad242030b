// internal/component/movement.go
package component

import "spacemax-td/pkg/route"

// Position: the center of an entity in screen space
type Position struct {
	X, Y float64
}

// FromPoint converts a route waypoint to a position.
func FromPoint(p route.Point) Position {
	return Position{X: p.X, Y: p.Y}
}
