package kernel

import (
	"fmt"
	"math"
)

// Location is a point on the fulfillment grid with integer coordinates.
// It is an immutable value type: methods never mutate the receiver and two
// locations compare equal iff their coordinates match. Coordinates are
// unbounded; the grid is as large as the operator's service area.
type Location struct {
	x int
	y int
}

// NewLocation creates a Location at the given coordinates.
func NewLocation(x int, y int) Location {
	return Location{x: x, y: y}
}

// X returns the X coordinate.
func (l Location) X() int {
	return l.x
}

// Y returns the Y coordinate.
func (l Location) Y() int {
	return l.y
}

// String implements fmt.Stringer in the form "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual reports whether both locations have the same coordinates.
func (l Location) IsEqual(other Location) bool {
	return l == other
}

// Distance returns the Euclidean distance between two locations.
// It is symmetric and zero iff the locations are equal.
func (l Location) Distance(other Location) float64 {
	dx := float64(l.x - other.x)
	dy := float64(l.y - other.y)
	return math.Hypot(dx, dy)
}
