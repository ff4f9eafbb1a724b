package ui

import (
	"fmt"
	"testing"
)

func mouseMsg(x, y, buttons, msec int) []byte {
	return []byte(fmt.Sprintf("m%11d %11d %11d %11d ", x, y, buttons, msec))
}

func TestParseMouse(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want Mouse
		ok   bool
	}{
		{"button1", mouseMsg(120, 45, 1, 999), Mouse{X: 120, Y: 45, Buttons: 1}, true},
		{"move", mouseMsg(3, 4, 0, 1), Mouse{X: 3, Y: 4}, true},
		{"scroll up", mouseMsg(0, 0, 8, 1), Mouse{Buttons: 8, ScrollY: -1}, true},
		{"scroll down", mouseMsg(0, 0, 16, 1), Mouse{Buttons: 16, ScrollY: 1}, true},
		{"resize", []byte("r"), Mouse{}, false},
		{"short", []byte("m 1 2"), Mouse{}, false},
	}
	for _, tc := range tests {
		got, ok := parseMouse(tc.buf)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: parseMouse = %+v, %v; want %+v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
	if n := len(mouseMsg(1, 2, 3, 4)); n != mouseMsgLen {
		t.Errorf("mouse message length = %d, want %d", n, mouseMsgLen)
	}
}

func TestMouseTransitions(t *testing.T) {
	tests := []struct {
		prev, cur               int
		pressed, held, released bool
	}{
		{0, Button1, true, false, false},
		{Button1, Button1, false, true, false},
		{Button1, 0, false, false, true},
		{0, 0, false, false, false},
		{Button3, Button1 | Button3, true, false, false},
	}
	for _, tc := range tests {
		m := Mouse{Buttons: tc.cur, Prev: tc.prev}
		if m.Pressed(Button1) != tc.pressed || m.Held(Button1) != tc.held || m.Released(Button1) != tc.released {
			t.Errorf("prev %d cur %d: pressed %v held %v released %v; want %v %v %v",
				tc.prev, tc.cur, m.Pressed(Button1), m.Held(Button1), m.Released(Button1),
				tc.pressed, tc.held, tc.released)
		}
	}
}
