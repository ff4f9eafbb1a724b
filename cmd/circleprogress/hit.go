package main

import (
	"image"
	"math"

	"github.com/elizafairlady/circleprogress/widget"
)

// grid returns the number of columns and rows used for n bars.
func grid(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// cell returns the rectangle of bar i in a width×height window,
// leaving footer pixels at the bottom for the help line.
func cell(i, n, width, height, footer int) image.Rectangle {
	cols, rows := grid(n)
	if cols == 0 {
		return image.Rectangle{}
	}
	w := width / cols
	h := max(height-footer, 0) / rows
	x := (i % cols) * w
	y := (i / cols) * h
	return image.Rect(x, y, x+w, y+h)
}

// HitBar returns the bar under p.
// Manual, explicit hit-testing against each ring.
func HitBar(bars []widget.CircleProgressBar, p image.Point) (id int, ok bool) {
	for i := range bars {
		if bars[i].Contains(p) {
			return i, true
		}
	}
	return 0, false
}
