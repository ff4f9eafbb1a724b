package progress

import "testing"

func sizedModel(value, max int) Model {
	m := New(value, max)
	m.Resize(100, 100, center)
	return m
}

func TestModelDragToQuarter(t *testing.T) {
	m := sizedModel(0, 100)
	m.PointerDown(Pt(50, 0))
	for deg := 15.0; deg <= 90; deg += 15 {
		m.Drag(at(deg))
	}
	if got := m.Progress(); got != 25 {
		t.Errorf("progress after dragging to 3 o'clock = %d, want 25", got)
	}
	s, ok := m.Session()
	if !ok {
		t.Fatal("no session while dragging")
	}
	if s.Start != Pt(50, 0) || s.Moves != 6 {
		t.Errorf("session = %+v", s)
	}
	m.PointerUp()
	if _, ok := m.Session(); ok {
		t.Error("session still active after PointerUp")
	}
}

func TestModelUnsizedIgnoresMoves(t *testing.T) {
	m := New(30, 100)
	if out := m.PointerMove(at(100), at(120)); out != Ignored {
		t.Errorf("PointerMove before Resize = %v, want ignored", out)
	}
	m.Resize(0, 0, Pt(0, 0))
	if out := m.PointerMove(Pt(1, 0), Pt(0, 1)); out != Ignored {
		t.Errorf("PointerMove on zero-size widget = %v, want ignored", out)
	}
	if m.Progress() != 30 {
		t.Errorf("progress = %d, want 30", m.Progress())
	}
}

func TestModelDragWithoutSession(t *testing.T) {
	m := sizedModel(30, 100)
	if out := m.Drag(at(200)); out != Ignored {
		t.Errorf("Drag without PointerDown = %v, want ignored", out)
	}
}

func TestModelSessionAdvancesOnReject(t *testing.T) {
	m := sizedModel(100, 100)
	m.PointerDown(at(355))
	if out := m.Drag(at(5)); out != Rejected {
		t.Fatalf("Drag past max = %v, want rejected", out)
	}
	s, _ := m.Session()
	if s.Prev != at(5) {
		t.Errorf("session prev = %v, want %v", s.Prev, at(5))
	}
}

func TestModelOnChange(t *testing.T) {
	m := sizedModel(10, 100)
	var calls [][2]int
	m.OnChange = func(from, to int) {
		calls = append(calls, [2]int{from, to})
	}

	m.SetProgress(10)
	m.SetProgress(40)
	m.SetProgress(400)
	m.PointerMove(at(300), at(280))

	want := [][2]int{{10, 40}, {40, 100}, {100, 78}}
	if len(calls) != len(want) {
		t.Fatalf("OnChange calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("OnChange call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestModelSetProgress(t *testing.T) {
	m := New(0, 100)
	for v := 0; v <= 100; v++ {
		m.SetProgress(v)
		if m.Progress() != v {
			t.Fatalf("SetProgress(%d) then Progress() = %d", v, m.Progress())
		}
	}
	m.SetProgress(101)
	if m.Progress() != 100 {
		t.Errorf("SetProgress(101) = %d, want 100", m.Progress())
	}
	m.SetProgress(-1)
	if m.Progress() != 0 {
		t.Errorf("SetProgress(-1) = %d, want 0", m.Progress())
	}

	z := New(50, -5)
	z.SetProgress(70)
	if z.Progress() != 0 || z.Max() != 0 {
		t.Errorf("max 0 model = %d/%d, want 0/0", z.Progress(), z.Max())
	}
}
