package progress

// GestureHandler receives pointer and size events from a host view.
type GestureHandler interface {
	PointerDown(p Point)
	PointerMove(prev, cur Point) Outcome
	PointerUp()
	Resize(width, height float64, center Point)
}

// Session is the transient state of one drag, from pointer down to up.
type Session struct {
	Start Point
	Prev  Point
	Moves int
}

// Model is a progress State bound to the geometry of a circular control.
// The zero value has max 0; use New.
type Model struct {
	state    State
	center   Point
	sized    bool
	session  Session
	dragging bool

	// OnChange, if set, is called after the value changes.
	// Hosts use it to schedule a redraw.
	OnChange func(from, to int)
}

var _ GestureHandler = (*Model)(nil)

// New returns a Model with the given value and max, clamped as NewState does.
func New(value, max int) Model {
	return Model{state: NewState(value, max)}
}

// Progress returns the committed value.
func (m *Model) Progress() int { return m.state.Value() }

// Max returns the upper bound of the value.
func (m *Model) Max() int { return m.state.Max() }

// Ratio returns the value as a rounded percentage of max.
func (m *Model) Ratio() int { return m.state.Ratio() }

// State returns a copy of the underlying state.
func (m *Model) State() State { return m.state }

// Center returns the center last passed to Resize.
func (m *Model) Center() Point { return m.center }

// SetProgress stores v clamped into [0, max].
func (m *Model) SetProgress(v int) {
	old := m.state.Value()
	if m.state.Set(v) && m.OnChange != nil {
		m.OnChange(old, m.state.Value())
	}
}

// Resize records the new center. A zero-sized widget leaves the model
// unsized and every move is ignored until a real size arrives.
func (m *Model) Resize(width, height float64, center Point) {
	m.center = center
	m.sized = width > 0 && height > 0
}

// PointerDown starts a drag session at p.
func (m *Model) PointerDown(p Point) {
	m.session = Session{Start: p, Prev: p}
	m.dragging = true
}

// PointerMove applies the motion prev→cur.
func (m *Model) PointerMove(prev, cur Point) Outcome {
	if !m.sized {
		return Ignored
	}
	old := m.state.Value()
	out := m.state.Drag(prev, cur, m.center)
	if m.state.Value() != old && m.OnChange != nil {
		m.OnChange(old, m.state.Value())
	}
	return out
}

// Drag moves the active session to cur. Without a session the sample
// is ignored. The session's previous sample advances even when the
// motion is rejected.
func (m *Model) Drag(cur Point) Outcome {
	if !m.dragging {
		return Ignored
	}
	out := m.PointerMove(m.session.Prev, cur)
	m.session.Prev = cur
	m.session.Moves++
	return out
}

// PointerUp ends the drag session.
func (m *Model) PointerUp() {
	m.session = Session{}
	m.dragging = false
}

// Session returns the active drag session, if any.
func (m *Model) Session() (Session, bool) {
	return m.session, m.dragging
}
