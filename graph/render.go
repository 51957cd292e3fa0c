package graph

// This file contains the canvas adapter and the painting of one frame.

import (
	"fmt"
	"image/color"
	"math"

	"grapher/hal"
	"grapher/line"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG   = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorAxis = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorText = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

const (
	labelX       = 10
	readoutY     = 15
	legendStep   = 13
	markerRadius = 3
	valueDX      = -5
	valueDY      = -10
)

var labelFont = &proggy.TinySZ8pt7b

// Canvas is a pixel target the graph paints on.
type Canvas interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

type fbCanvas struct {
	fb hal.Framebuffer
}

// NewFramebufferCanvas adapts an RGB565 framebuffer to a Canvas.
func NewFramebufferCanvas(fb hal.Framebuffer) Canvas {
	return &fbCanvas{fb: fb}
}

func (d *fbCanvas) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbCanvas) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := hal.RGB565(c)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbCanvas) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbCanvas) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := hal.RGB565(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbCanvas) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return hal.ErrNotImplemented
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Render paints the axes, the cursor readout, the legend and every line with
// its value marker at pixel column cursorX.
func (g *Graph) Render(c Canvas, cursorX int) {
	w, h := g.cfg.Width, g.cfg.Height
	if c == nil || w <= 0 || h <= 0 {
		return
	}
	scale := g.Scale()

	_ = c.FillRectangle(0, 0, int16(w), int16(h), colorBG)
	g.drawAxes(c)

	tinyfont.WriteLine(c, labelFont, labelX, readoutY, fmt.Sprintf("X = %d", g.MathX(cursorX)), colorText)
	for i, l := range g.cfg.Lines {
		tinyfont.WriteLine(c, labelFont, labelX, int16((i+1)*legendStep+readoutY), l.Name, l.Color.RGBA())
	}

	if scale != 0 {
		left, right := g.span()
		for _, l := range g.cfg.Lines {
			g.drawLine(c, l, left, right, cursorX)
		}
	}

	_ = c.Display()
}

func (g *Graph) drawAxes(c Canvas) {
	w, h := g.cfg.Width, g.cfg.Height
	if g.cfg.Positive {
		y := int16(h - axisInset)
		drawSegment(c, axisInset, y, int16(w), y, colorAxis)
		drawSegment(c, axisInset, 0, axisInset, y, colorAxis)
		return
	}
	drawSegment(c, 0, int16(h/2), int16(w), int16(h/2), colorAxis)
	drawSegment(c, int16(w/2), 0, int16(w/2), int16(h), colorAxis)
}

func (g *Graph) drawLine(c Canvas, l line.Line, left, right, cursorX int) {
	col := l.Color.RGBA()
	w, h := float64(g.cfg.Width), float64(g.cfg.Height)

	y0 := g.PixelY(g.Eval(l, left))
	y1 := g.PixelY(g.Eval(l, right))
	if isFinite(y0) && isFinite(y1) {
		cx0, cy0, cx1, cy1, ok := clipLineToRect(float64(left), y0, float64(right), y1, 0, 0, w-1, h-1)
		if ok {
			drawSegment(c, roundHalfUp(cx0), roundHalfUp(cy0), roundHalfUp(cx1), roundHalfUp(cy1), col)
		}
	}

	eval := g.Eval(l, cursorX)
	my, ok := toPixel(g.PixelY(eval))
	mx, okx := toPixel(float64(cursorX))
	if !ok || !okx {
		return
	}
	fillDisc(c, mx, my, markerRadius, col)
	tinyfont.WriteLine(c, labelFont, mx+valueDX, my+valueDY, Format(eval), col)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundHalfUp rounds like floor(v+0.5). v must already fit the panel.
func roundHalfUp(v float64) int16 {
	return int16(math.Floor(v + 0.5))
}

// toPixel rounds v to a pixel coordinate, rejecting values that do not fit int16.
func toPixel(v float64) (int16, bool) {
	if !isFinite(v) {
		return 0, false
	}
	r := math.Floor(v + 0.5)
	if r < math.MinInt16 || r > math.MaxInt16 {
		return 0, false
	}
	return int16(r), true
}

func fillDisc(c Canvas, cx, cy, r int16, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.SetPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// clipLineToRect is Liang-Barsky clipping of a segment to a rectangle.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = math.Min(math.Max(x0+u1*dx, xmin), xmax)
	cy0 = math.Min(math.Max(y0+u1*dy, ymin), ymax)
	cx1 = math.Min(math.Max(x0+u2*dx, xmin), xmax)
	cy1 = math.Min(math.Max(y0+u2*dy, ymin), ymax)
	return cx0, cy0, cx1, cy1, true
}

// drawSegment is Bresenham's line algorithm.
func drawSegment(c Canvas, x0, y0, x1, y1 int16, col color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}
