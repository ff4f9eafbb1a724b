package main

import (
	ui "github.com/elizafairlady/circleprogress/libui"
)

const (
	padding      = 10
	footerHeight = 24
	helpText     = "drag a ring, tab to select, +/- to step, DEL to quit"
)

// Draw renders the model to the screen.
// This is a pure function - never mutates model.
func Draw(model any, ctx *ui.DrawContext) {
	m := model.(Model)

	for i := range m.Bars {
		b := m.Bars[i]
		b.Draw(ctx)
		if i == m.Active {
			r := b.Bounds()
			ctx.Text(r.Min.X+padding, r.Min.Y+padding, "*")
		}
	}

	ctx.Text(padding, m.Height-footerHeight+(footerHeight-ctx.FontHeight())/2, helpText)
}
