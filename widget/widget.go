// Package widget draws a circular progress bar and routes pointer drags
// into its progress model.
package widget

import (
	"image"
	"strconv"

	"github.com/elizafairlady/circleprogress/progress"
)

// Defaults, in pixels.
const (
	DefaultSize        = 100
	DefaultCircleWidth = 6
	DefaultColor       = 0x000000FF
	DefaultSuffix      = "%"

	suffixGap = 2
)

// Canvas is the set of drawing primitives the bar needs.
// Angles are counterclockwise from 3 o'clock in degrees.
type Canvas interface {
	Ellipse(c image.Point, a, b, thick int, color uint32)
	Arc(c image.Point, a, b, thick int, color uint32, alpha, phi int)
	Text(x, y int, s string)
	StringWidth(s string) int
	FontHeight() int
}

// Drawable renders itself onto a Canvas.
type Drawable interface {
	Draw(c Canvas)
}

// Style holds the look of a bar.
type Style struct {
	Color       uint32 // 0xRRGGBBAA
	CircleWidth int
	Padding     int
	Suffix      string
}

// DefaultStyle returns the style used when nothing is configured.
func DefaultStyle() Style {
	return Style{
		Color:       DefaultColor,
		CircleWidth: DefaultCircleWidth,
		Suffix:      DefaultSuffix,
	}
}

// CircleProgressBar is a progress ring with a percentage label that can
// be dragged around its center.
type CircleProgressBar struct {
	Style Style

	model  progress.Model
	bounds image.Rectangle
	radius int
}

var _ Drawable = (*CircleProgressBar)(nil)

// New returns an unlaid-out bar. Value and max are clamped as
// progress.NewState does.
func New(style Style, value, max int) CircleProgressBar {
	return CircleProgressBar{Style: style, model: progress.New(value, max)}
}

// Progress returns the committed value.
func (b *CircleProgressBar) Progress() int { return b.model.Progress() }

// SetProgress stores v clamped into [0, max].
func (b *CircleProgressBar) SetProgress(v int) { b.model.SetProgress(v) }

// Max returns the bar's maximum.
func (b *CircleProgressBar) Max() int { return b.model.Max() }

// Ratio returns the value as a rounded percentage.
func (b *CircleProgressBar) Ratio() int { return b.model.Ratio() }

// OnChange sets the hook called after the value changes.
func (b *CircleProgressBar) OnChange(fn func(from, to int)) {
	b.model.OnChange = fn
}

// Gestures exposes the model for hosts that deliver local coordinates.
func (b *CircleProgressBar) Gestures() progress.GestureHandler {
	return &b.model
}

// Layout places the bar in r. The ring fits inside r less padding,
// leaving room for the stroke.
func (b *CircleProgressBar) Layout(r image.Rectangle) {
	b.bounds = r
	in := r.Inset(b.Style.Padding)
	b.radius = max(min(in.Dx(), in.Dy())/2-b.Style.CircleWidth, 0)

	c := b.localCenter()
	b.model.Resize(float64(r.Dx()), float64(r.Dy()), progress.Pt(float64(c.X), float64(c.Y)))
}

// localCenter is the ring center relative to the bounds. Hit testing,
// drawing and the angle math all use this one point.
func (b *CircleProgressBar) localCenter() image.Point {
	return image.Pt(b.bounds.Dx()/2, b.bounds.Dy()/2)
}

// Bounds returns the rectangle given to Layout.
func (b *CircleProgressBar) Bounds() image.Rectangle { return b.bounds }

// Radius returns the ring radius.
func (b *CircleProgressBar) Radius() int { return b.radius }

// Center returns the ring center in screen coordinates.
func (b *CircleProgressBar) Center() image.Point {
	return b.bounds.Min.Add(b.localCenter())
}

// Contains reports whether p lies on or inside the ring.
func (b *CircleProgressBar) Contains(p image.Point) bool {
	if b.bounds.Empty() {
		return false
	}
	d := p.Sub(b.Center())
	r := b.radius + b.Style.CircleWidth
	return d.X*d.X+d.Y*d.Y <= r*r
}

func (b *CircleProgressBar) local(p image.Point) progress.Point {
	p = p.Sub(b.bounds.Min)
	return progress.Pt(float64(p.X), float64(p.Y))
}

// Press starts a drag at screen point p.
func (b *CircleProgressBar) Press(p image.Point) {
	b.model.PointerDown(b.local(p))
}

// Drag continues the drag to screen point p.
func (b *CircleProgressBar) Drag(p image.Point) progress.Outcome {
	return b.model.Drag(b.local(p))
}

// Release ends the drag.
func (b *CircleProgressBar) Release() {
	b.model.PointerUp()
}

// Dragging reports whether a drag is in progress.
func (b *CircleProgressBar) Dragging() bool {
	_, ok := b.model.Session()
	return ok
}

// Label returns the text drawn in the middle of the ring.
func (b *CircleProgressBar) Label() string {
	return strconv.Itoa(b.model.Ratio()) + b.Style.Suffix
}

// Draw paints the track, the progress arc from 12 o'clock clockwise,
// and the centered label.
func (b *CircleProgressBar) Draw(c Canvas) {
	ctr := b.Center()
	if b.radius > 0 {
		c.Ellipse(ctr, b.radius, b.radius, 0, b.Style.Color)
		if sweep := b.model.State().Sweep(); sweep > 0 {
			c.Arc(ctr, b.radius, b.radius, b.Style.CircleWidth/2, b.Style.Color, 90, -sweep)
		}
	}

	text := strconv.Itoa(b.model.Ratio())
	tw := c.StringWidth(text)
	sw := 0
	if b.Style.Suffix != "" {
		sw = suffixGap + c.StringWidth(b.Style.Suffix)
	}
	x := ctr.X - (tw+sw)/2
	y := ctr.Y - c.FontHeight()/2
	c.Text(x, y, text)
	if b.Style.Suffix != "" {
		c.Text(x+tw+suffixGap, y, b.Style.Suffix)
	}
}
