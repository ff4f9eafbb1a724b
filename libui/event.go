package ui

import (
	"strconv"
	"strings"
)

// Mouse buttons as reported by /dev/mouse.
const (
	Button1 = 1 << iota
	Button2
	Button3
	ScrollUp
	ScrollDown
)

// Mouse represents a decoded mouse event.
type Mouse struct {
	X       int
	Y       int
	Buttons int
	Prev    int // buttons held at the previous mouse event, set by Run
	ScrollY int // +1 / -1 for wheel
}

// Pressed reports whether button went down with this event.
func (m Mouse) Pressed(button int) bool {
	return m.Buttons&button != 0 && m.Prev&button == 0
}

// Released reports whether button came up with this event.
func (m Mouse) Released(button int) bool {
	return m.Buttons&button == 0 && m.Prev&button != 0
}

// Held reports whether button stayed down across this event.
func (m Mouse) Held(button int) bool {
	return m.Buttons&button != 0 && m.Prev&button != 0
}

// Resize represents a window resize event.
type Resize struct {
	Width  int
	Height int
}

// Key represents a decoded keyboard event.
type Key struct {
	Rune rune
}

// mouseMsgLen is the size of one /dev/mouse message:
// 'm' followed by x, y, buttons and msec, each 11 characters and a blank.
const mouseMsgLen = 1 + 4*12

// parseMouse decodes an 'm' message from /dev/mouse.
func parseMouse(buf []byte) (Mouse, bool) {
	if len(buf) < mouseMsgLen || buf[0] != 'm' {
		return Mouse{}, false
	}
	parts := strings.Fields(string(buf[1:mouseMsgLen]))
	if len(parts) < 3 {
		return Mouse{}, false
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Mouse{}, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Mouse{}, false
	}
	buttons, err := strconv.Atoi(parts[2])
	if err != nil {
		return Mouse{}, false
	}
	m := Mouse{X: x, Y: y, Buttons: buttons}
	if buttons&ScrollUp != 0 {
		m.ScrollY = -1
	} else if buttons&ScrollDown != 0 {
		m.ScrollY = 1
	}
	return m, true
}
