package ui

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"
)

// Colors as 0xRRGGBBAA.
const (
	White uint32 = 0xFFFFFFFF
	Black uint32 = 0x000000FF
)

// DrawContext wraps /dev/draw primitives minimally.
type DrawContext struct {
	ctl    *os.File
	data   io.WriteCloser
	id     int
	imgID  int // the display image id (from ctl)
	Screen image.Rectangle
	fontH  int
	charW  int
	colors map[uint32]int // image id per allocated color
	nextID int            // next available image id
	err    error          // first write error
}

// NewDrawContext initializes the drawing context.
func NewDrawContext() (*DrawContext, error) {
	// In 9front, /dev/draw/new when opened and read gives connection info
	// and that fd becomes the ctl file
	ctl, err := os.OpenFile("/dev/draw/new", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open /dev/draw/new: %w", err)
	}

	// Read the connection info
	// Format: 12 strings, each 11 characters wide followed by a blank
	// n, image_id, chan, repl, minx, miny, maxx, maxy, clipminx, clipminy, clipmaxx, clipmaxy
	buf := make([]byte, 12*12)
	n, err := ctl.Read(buf)
	if err != nil {
		ctl.Close()
		return nil, fmt.Errorf("read /dev/draw/new: %w", err)
	}
	if n < 12*12 {
		ctl.Close()
		return nil, fmt.Errorf("short read from /dev/draw/new: got %d bytes", n)
	}

	id := atoi(string(buf[0:11]))
	dataPath := fmt.Sprintf("/dev/draw/%d/data", id)
	data, err := os.OpenFile(dataPath, os.O_RDWR, 0)
	if err != nil {
		ctl.Close()
		return nil, fmt.Errorf("open %s: %w", dataPath, err)
	}

	ctx := newDrawContext(data, atoi(string(buf[12:23])), parseRect(buf))
	ctx.ctl = ctl
	ctx.id = id

	// Background and text colors are needed on every frame.
	for _, col := range []uint32{White, Black} {
		if _, err := ctx.allocColor(col); err != nil {
			ctx.Close()
			return nil, fmt.Errorf("alloc color %08x: %w", col, err)
		}
	}

	return ctx, nil
}

// newDrawContext returns a context writing draw messages to data.
func newDrawContext(data io.WriteCloser, imgID int, screen image.Rectangle) *DrawContext {
	return &DrawContext{
		data:   data,
		imgID:  imgID,
		Screen: screen,
		fontH:  13, // default font height
		charW:  7,  // default char width (monospace approximation)
		colors: make(map[uint32]int),
		nextID: 1, // start allocating from id 1
	}
}

// parseRect reads the screen rectangle from a ctl message.
func parseRect(buf []byte) image.Rectangle {
	return image.Rect(
		atoi(string(buf[4*12:5*12])),
		atoi(string(buf[5*12:6*12])),
		atoi(string(buf[6*12:7*12])),
		atoi(string(buf[7*12:8*12])),
	)
}

// allocColor returns the image id of a 1x1 replicated image filled
// with color (RRGGBBAA), allocating it on first use.
func (c *DrawContext) allocColor(color uint32) (int, error) {
	if id, ok := c.colors[color]; ok {
		return id, nil
	}
	id := c.nextID

	// 'b' message: allocate image
	// b id[4] screenid[4] refresh[1] chan[4] repl[1] r[4*4] clipr[4*4] color[4]
	buf := make([]byte, 1+4+4+1+4+1+16+16+4)
	buf[0] = 'b'
	putlong(buf[1:], uint32(id))
	putlong(buf[5:], 0) // screenid = 0 (no screen, just image)
	buf[9] = 0          // refresh = Refnone
	// RGBA32: CRed<<4|8, CGreen<<4|8, CBlue<<4|8, CAlpha<<4|8
	putlong(buf[10:], 0x38281808)
	buf[14] = 1 // repl = 1 (replicate)
	// r = (0,0)-(1,1)
	putlong(buf[15:], 0)
	putlong(buf[19:], 0)
	putlong(buf[23:], 1)
	putlong(buf[27:], 1)
	// clipr = large rectangle to allow replication
	putlong(buf[31:], 0x80000000)
	putlong(buf[35:], 0x80000000)
	putlong(buf[39:], 0x7FFFFFFF)
	putlong(buf[43:], 0x7FFFFFFF)
	putlong(buf[47:], color)

	if _, err := c.data.Write(buf); err != nil {
		return 0, err
	}
	c.colors[color] = id
	c.nextID++
	return id, nil
}

func (c *DrawContext) write(buf []byte) {
	if _, err := c.data.Write(buf); err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first error seen while writing draw messages.
func (c *DrawContext) Err() error {
	return c.err
}

func atoi(s string) int {
	n := 0
	neg := false
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

func putlong(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// fill draws color over r.
func (c *DrawContext) fill(r image.Rectangle, color uint32) {
	src, err := c.allocColor(color)
	if err != nil {
		return
	}

	// 'd' message: draw
	// d dstid[4] srcid[4] maskid[4] dstr[4*4] srcp[2*4] maskp[2*4]
	buf := make([]byte, 1+4+4+4+16+8+8)
	buf[0] = 'd'
	putlong(buf[1:], uint32(c.imgID)) // dst = screen
	putlong(buf[5:], uint32(src))
	putlong(buf[9:], uint32(src)) // mask = src (opaque)
	putlong(buf[13:], uint32(r.Min.X))
	putlong(buf[17:], uint32(r.Min.Y))
	putlong(buf[21:], uint32(r.Max.X))
	putlong(buf[25:], uint32(r.Max.Y))
	// srcp, maskp = (0,0)
	c.write(buf)
}

// Clear fills the screen with the background color.
func (c *DrawContext) Clear() {
	c.fill(c.Screen, White)
}

// Text draws a string at the given position.
// Since fonts are complex, we draw simple rectangles as placeholders.
func (c *DrawContext) Text(x, y int, s string) {
	if len(s) == 0 {
		return
	}

	// Skip if off screen
	if y > c.Screen.Max.Y || y+c.fontH < c.Screen.Min.Y {
		return
	}

	charX := x
	for _, ch := range s {
		if ch != ' ' {
			c.fill(image.Rect(charX+1, y+2, charX+c.charW-1, y+c.fontH-2), Black)
		}
		charX += c.charW
	}
}

// Ellipse draws the outline of an ellipse centered at ctr with
// semi-axes a and b. The line is 1+2*thick pixels wide.
func (c *DrawContext) Ellipse(ctr image.Point, a, b, thick int, color uint32) {
	c.ellipse(ctr, a, b, thick, color, 0, 0)
}

// Arc draws part of an ellipse outline from angle alpha sweeping phi
// degrees. Angles are counterclockwise from 3 o'clock, as in libdraw.
func (c *DrawContext) Arc(ctr image.Point, a, b, thick int, color uint32, alpha, phi int) {
	c.ellipse(ctr, a, b, thick, color, uint32(alpha)|1<<31, phi)
}

func (c *DrawContext) ellipse(ctr image.Point, a, b, thick int, color uint32, alpha uint32, phi int) {
	src, err := c.allocColor(color)
	if err != nil {
		return
	}

	// 'e' message: ellipse
	// e dstid[4] srcid[4] center[2*4] a[4] b[4] thick[4] sp[2*4] alpha[4] phi[4]
	buf := make([]byte, 1+4+4+2*4+4+4+4+2*4+4+4)
	buf[0] = 'e'
	putlong(buf[1:], uint32(c.imgID))
	putlong(buf[5:], uint32(src))
	putlong(buf[9:], uint32(ctr.X))
	putlong(buf[13:], uint32(ctr.Y))
	putlong(buf[17:], uint32(a))
	putlong(buf[21:], uint32(b))
	putlong(buf[25:], uint32(thick))
	// sp = (0,0)
	putlong(buf[37:], alpha)
	putlong(buf[41:], uint32(phi))
	c.write(buf)
}

// Flush flushes the draw buffer to the screen.
func (c *DrawContext) Flush() {
	// 'v' command flushes
	c.write([]byte{'v'})
}

// Bounds returns the current screen dimensions.
func (c *DrawContext) Bounds() (width, height int) {
	return c.Screen.Dx(), c.Screen.Dy()
}

// FontHeight returns the height of the default font.
func (c *DrawContext) FontHeight() int {
	return c.fontH
}

// StringWidth returns the pixel width of a string.
func (c *DrawContext) StringWidth(s string) int {
	return len(s) * c.charW
}

// Reattach reattaches the display after a resize.
func (c *DrawContext) Reattach() error {
	// Re-read screen dimensions from ctl
	buf := make([]byte, 12*12)
	if _, err := c.ctl.Seek(0, 0); err != nil {
		return err
	}
	n, err := c.ctl.Read(buf)
	if err != nil {
		return err
	}
	if n >= 12*8 {
		c.Screen = parseRect(buf)
	}
	return nil
}

// Close closes the draw context.
func (c *DrawContext) Close() {
	if c.data != nil {
		c.data.Close()
	}
	if c.ctl != nil {
		c.ctl.Close()
	}
}
