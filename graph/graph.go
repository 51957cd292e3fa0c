package graph

import (
	"math"

	"grapher/line"
)

// axisInset is the distance of the positive-mode axes from the panel edges.
const axisInset = 5

// Config is the immutable input of a Graph.
type Config struct {
	Positive bool
	Width    int
	Height   int
	Lines    []line.Line
}

// Graph owns the coordinate transform for one panel size and line set.
type Graph struct {
	cfg   Config
	scale float64
}

// New returns a Graph over a private copy of cfg.
func New(cfg Config) *Graph {
	lines := make([]line.Line, len(cfg.Lines))
	copy(lines, cfg.Lines)
	cfg.Lines = lines
	return &Graph{cfg: cfg}
}

// Config returns the graph configuration. The returned Lines slice is a copy.
func (g *Graph) Config() Config {
	cfg := g.cfg
	cfg.Lines = make([]line.Line, len(g.cfg.Lines))
	copy(cfg.Lines, g.cfg.Lines)
	return cfg
}

// LineCount returns the number of plotted lines.
func (g *Graph) LineCount() int { return len(g.cfg.Lines) }

// Scale returns the y multiplier, computing it on first use. It stays 0 when
// there are no lines, and is recomputed on every call while it is 0.
func (g *Graph) Scale() float64 {
	if g.scale == 0 {
		g.scale = g.computeScale()
	}
	return g.scale
}

func (g *Graph) computeScale() float64 {
	if len(g.cfg.Lines) == 0 {
		return 0
	}
	s := math.MaxFloat64
	for _, l := range g.cfg.Lines {
		if v := g.lineScale(l); v < s {
			s = v
		}
	}
	return s
}

// lineScale is the multiplier that maps the line's value at the right panel
// edge onto the top of the panel. Division by zero yields ±Inf or NaN.
func (g *Graph) lineScale(l line.Line) float64 {
	w, h := g.cfg.Width, g.cfg.Height
	if g.cfg.Positive {
		return float64(h) / (float64(w)*l.Slope + l.Intercept)
	}
	return float64(h/2) / (float64(w/2)*l.Slope + l.Intercept)
}

// OriginX is the pixel column of the y-axis.
func (g *Graph) OriginX() int {
	if g.cfg.Positive {
		return axisInset
	}
	return g.cfg.Width / 2
}

// OriginY is the distance in pixels of the x-axis from the bottom edge.
func (g *Graph) OriginY() int {
	if g.cfg.Positive {
		return axisInset
	}
	return g.cfg.Height / 2
}

// MathX converts a pixel column to math x.
func (g *Graph) MathX(px int) int {
	return px - g.OriginX()
}

// PixelX converts math x to a pixel column.
func (g *Graph) PixelX(x float64) float64 {
	return x + float64(g.OriginX())
}

// PixelY converts math y to an unrounded pixel row. Screen rows grow downwards,
// so larger y values give smaller rows.
func (g *Graph) PixelY(y float64) float64 {
	return float64(g.cfg.Height) - y*g.Scale() - float64(g.OriginY())
}

// Eval returns the value of l at the math x under pixel column px.
func (g *Graph) Eval(l line.Line, px int) float64 {
	return l.Eval(float64(g.MathX(px)))
}

// span returns the pixel columns a full-width line segment runs between.
func (g *Graph) span() (left, right int) {
	if g.cfg.Positive {
		return axisInset, g.cfg.Width
	}
	return 0, g.cfg.Width
}
