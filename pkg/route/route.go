// Package route holds the immutable waypoint polyline enemies walk along.
package route

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewWaypoints is returned when a route has fewer than two points.
	ErrTooFewWaypoints = errors.New("route needs at least two waypoints")
	// ErrZeroLengthSegment is returned when two consecutive waypoints coincide.
	ErrZeroLengthSegment = errors.New("route has a zero-length segment")
	// ErrNonFiniteWaypoint is returned when a coordinate is NaN or infinite.
	ErrNonFiniteWaypoint = errors.New("route has a non-finite waypoint")
)

// Point is a waypoint in screen space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Route is an ordered, validated list of waypoints. It is never modified
// after New returns.
type Route struct {
	points []Point
	length float64
}

// New validates points and builds a Route from a private copy of them.
func New(points []Point) (*Route, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(points))
	}
	r := &Route{points: make([]Point, len(points))}
	copy(r.points, points)
	for i, p := range r.points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%w: waypoint %d is (%g, %g)", ErrNonFiniteWaypoint, i, p.X, p.Y)
		}
	}
	for i := 1; i < len(r.points); i++ {
		d := SegmentLength(r.points[i-1], r.points[i])
		if d == 0 {
			return nil, fmt.Errorf("%w: waypoints %d and %d are both (%g, %g)",
				ErrZeroLengthSegment, i-1, i, r.points[i].X, r.points[i].Y)
		}
		r.length += d
	}
	return r, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MustNew is New for hard-coded routes; it panics on an invalid one.
func MustNew(points []Point) *Route {
	r, err := New(points)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of waypoints.
func (r *Route) Len() int { return len(r.points) }

// LastIndex is the index of the final waypoint. An enemy whose path index
// reaches it has breached.
func (r *Route) LastIndex() int { return len(r.points) - 1 }

// Point returns waypoint i.
func (r *Route) Point(i int) Point { return r.points[i] }

// Start returns the spawn waypoint.
func (r *Route) Start() Point { return r.points[0] }

// Last returns the exit waypoint.
func (r *Route) Last() Point { return r.points[len(r.points)-1] }

// Length is the total polyline length.
func (r *Route) Length() float64 { return r.length }

// Points returns a copy of the waypoints.
func (r *Route) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)
	return out
}

// SegmentLength is the Euclidean distance between a and b.
func SegmentLength(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
