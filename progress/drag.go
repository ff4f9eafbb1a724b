package progress

// Band edges, as a percentage of max, that count as "near the seam".
const (
	HighBand = 75
	LowBand  = 25
)

// Outcome describes what a drag sample did to the state.
type Outcome int

const (
	Ignored      Outcome = iota // no angle could be computed
	Rejected                    // sample would wrap across the seam
	Committed                   // value follows the pointer angle
	SnappedFull                 // crossed the seam clockwise, value set to max
	SnappedEmpty                // crossed the seam counter-clockwise, value set to 0
)

var outcomeNames = [...]string{
	Ignored:      "ignored",
	Rejected:     "rejected",
	Committed:    "committed",
	SnappedFull:  "snapped-full",
	SnappedEmpty: "snapped-empty",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Changed reports whether the outcome wrote a value.
func (o Outcome) Changed() bool {
	return o == Committed || o == SnappedFull || o == SnappedEmpty
}

// Drag applies one pointer motion from prev to cur around center.
//
// Fast drags can skip the sample that lands exactly on the seam, so a
// jump from the high band into the first quadrant while turning
// clockwise is taken as reaching max, and the mirror image as reaching
// 0. A sample straight above the center while in the high band is max
// whichever way it came from. Once pinned at an end, motion further past
// it is rejected, as are jumps that would land on the far side of the
// circle.
func (s *State) Drag(prev, cur, center Point) Outcome {
	angle, ok := Angle(cur, center)
	if !ok {
		return Ignored
	}
	cw := Clockwise(prev, cur, center)
	ratio := s.Ratio()

	if (s.AtMax() && cw) || (s.AtMin() && !cw) {
		return Rejected
	}

	out := Committed
	switch {
	case ratio >= HighBand && cur.X == center.X && cur.Y < center.Y:
		angle = 360
		out = SnappedFull
	case ratio >= HighBand && cw && angle < 90:
		angle = 360
		out = SnappedFull
	case ratio <= LowBand && !cw && angle > 270:
		angle = 0
		out = SnappedEmpty
	case s.AtMax() && angle < 270,
		s.AtMin() && angle >= 90,
		ratio >= HighBand && !cw && angle < 90,
		ratio <= LowBand && cw && angle > 270:
		return Rejected
	}

	s.Set(s.ValueAt(angle))
	return out
}
