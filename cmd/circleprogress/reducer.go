package main

import (
	"slices"

	ui "github.com/elizafairlady/circleprogress/libui"
	"github.com/elizafairlady/circleprogress/progress"
)

// Reduce handles all state transitions.
// Bars are copied before they change, so the incoming model is never mutated.
func Reduce(model any, ev ui.Event) any {
	m := model.(Model)

	switch e := ev.Data.(type) {
	case PressBar:
		if e.ID < 0 || e.ID >= len(m.Bars) {
			break
		}
		m.Bars = slices.Clone(m.Bars)
		m.Active = e.ID
		m.Bars[e.ID].Press(e.At)

	case DragTo:
		if !m.dragging() {
			break
		}
		m.Bars = slices.Clone(m.Bars)
		m.Last = m.Bars[m.Active].Drag(e.At)

	case Release:
		if !m.dragging() {
			break
		}
		m.Bars = slices.Clone(m.Bars)
		m.Bars[m.Active].Release()

	case Step:
		if e.ID < 0 || e.ID >= len(m.Bars) {
			break
		}
		m.Bars = slices.Clone(m.Bars)
		b := &m.Bars[e.ID]
		step := max(progress.Round(float64(b.Max())/100), 1)
		b.SetProgress(b.Progress() + e.Delta*step)

	case NextBar:
		if len(m.Bars) > 0 {
			m.Active = (m.Active + 1) % len(m.Bars)
		}

	case Relayout:
		m.Width = e.Width
		m.Height = e.Height
		m.Bars = slices.Clone(m.Bars)
		for i := range m.Bars {
			m.Bars[i].Layout(cell(i, len(m.Bars), e.Width, e.Height, footerHeight))
		}

	case Quit:
		m.Quit = true
	}

	return m
}

func (m Model) dragging() bool {
	return m.Active >= 0 && m.Active < len(m.Bars) && m.Bars[m.Active].Dragging()
}
