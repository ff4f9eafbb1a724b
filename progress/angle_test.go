package progress

import (
	"math"
	"testing"
)

// onCircle returns the point at deg degrees clockwise from 12 o'clock.
func onCircle(c Point, r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Pt(c.X+r*math.Sin(rad), c.Y-r*math.Cos(rad))
}

func TestAngleAxes(t *testing.T) {
	c := Pt(50, 50)
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(50, 0), 0},
		{Pt(100, 50), 90},
		{Pt(50, 100), 180},
		{Pt(0, 50), 270},
		{Pt(100, 0), 45},
		{Pt(100, 100), 135},
		{Pt(0, 100), 225},
		{Pt(0, 0), 315},
	}
	for _, tc := range tests {
		got, ok := Angle(tc.p, c)
		if !ok {
			t.Errorf("Angle(%v) not ok", tc.p)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Angle(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestAngleCenter(t *testing.T) {
	c := Pt(10, 10)
	if _, ok := Angle(c, c); ok {
		t.Error("Angle(center) ok, want false")
	}
}

func TestAngleMonotonic(t *testing.T) {
	c := Pt(120, 80)
	prev := -1.0
	for deg := 0; deg < 360; deg++ {
		got, ok := Angle(onCircle(c, 40, float64(deg)), c)
		if !ok {
			t.Fatalf("Angle at %d° not ok", deg)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("Angle at %d° = %v, out of [0, 360)", deg, got)
		}
		if math.Abs(got-float64(deg)) > 1e-6 {
			t.Errorf("Angle at %d° = %v", deg, got)
		}
		if got <= prev {
			t.Errorf("Angle at %d° = %v, not above %v", deg, got, prev)
		}
		prev = got
	}
}

func TestClockwise(t *testing.T) {
	c := Pt(50, 50)
	tests := []struct {
		name      string
		prev, cur Point
		want      bool
	}{
		{"top to right", Pt(50, 0), Pt(100, 50), true},
		{"right to top", Pt(100, 50), Pt(50, 0), false},
		{"bottom to left", Pt(50, 100), Pt(0, 50), true},
		{"across seam", Pt(45, 0), Pt(55, 0), true},
		{"back across seam", Pt(55, 0), Pt(45, 0), false},
		{"radial", Pt(50, 10), Pt(50, 0), false},
		{"still", Pt(70, 20), Pt(70, 20), false},
	}
	for _, tc := range tests {
		if got := Clockwise(tc.prev, tc.cur, c); got != tc.want {
			t.Errorf("%s: Clockwise = %v, want %v", tc.name, got, tc.want)
		}
	}
}
