// Package progress holds the state behind a circular progress control:
// the clamped value, the pointer-to-angle geometry, and the rules that
// keep a drag from wrapping across the 0/100 seam.
package progress

import "math"

// Point is a position in widget-local coordinates. Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Angle returns the angle of p around c in degrees, in [0, 360).
// 0 is straight up from c and the angle grows clockwise.
// It reports false when p is c, where no angle exists.
func Angle(p, c Point) (float64, bool) {
	dx := p.X - c.X
	dy := p.Y - c.Y
	if dx == 0 && dy == 0 {
		return 0, false
	}

	// Each case keeps its adjacent side strictly positive, so the
	// axis points land on the base offset of the following quadrant.
	var deg float64
	switch {
	case dx >= 0 && dy < 0:
		deg = atand(dx, -dy)
	case dx > 0 && dy >= 0:
		deg = atand(dy, dx) + 90
	case dx <= 0 && dy > 0:
		deg = atand(-dx, dy) + 180
	default:
		deg = atand(-dy, -dx) + 270
	}
	if deg >= 360 {
		deg = 0
	}
	return deg, true
}

func atand(opposite, adjacent float64) float64 {
	return math.Atan(opposite/adjacent) * 180 / math.Pi
}

// Clockwise reports whether moving from prev to cur turns clockwise
// around c. Radial motion and no motion are not clockwise.
func Clockwise(prev, cur, c Point) bool {
	a := prev.Sub(c)
	b := cur.Sub(c)
	return a.X*b.Y-a.Y*b.X > 0
}
