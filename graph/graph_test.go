package graph

import (
	"math"
	"testing"

	"grapher/line"
)

func TestScalePositiveSingleFlatLine(t *testing.T) {
	g := New(Config{Positive: true, Width: 800, Height: 600, Lines: []line.Line{{Intercept: 300}}})
	if got := g.Scale(); got != 2.0 {
		t.Fatalf("Scale() = %v, want 2", got)
	}
}

func TestScaleQuadrantIsMinimumOverLines(t *testing.T) {
	g := New(Config{Width: 800, Height: 600, Lines: []line.Line{
		{Slope: 1},                 // 300 / 400
		{Intercept: 100},           // 300 / 100
		{Slope: 2, Intercept: 200}, // 300 / 1000
	}})
	if got, want := g.Scale(), 0.3; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Scale() = %v, want %v", got, want)
	}
}

func TestScaleQuadrantHalvesWithIntegerDivision(t *testing.T) {
	g := New(Config{Width: 801, Height: 601, Lines: []line.Line{{Slope: 1}}})
	if got, want := g.Scale(), 300.0/400.0; got != want {
		t.Fatalf("Scale() = %v, want %v", got, want)
	}
}

func TestScaleWithoutLinesStaysUnset(t *testing.T) {
	g := New(Config{Positive: true, Width: 800, Height: 600})
	if got := g.Scale(); got != 0 {
		t.Fatalf("Scale() = %v, want 0", got)
	}
}

func TestScaleDegenerateLineIsNotAnError(t *testing.T) {
	g := New(Config{Positive: true, Width: 800, Height: 600, Lines: []line.Line{{}}})
	// 600/0 is +Inf, which never undercuts the starting bound.
	if got := g.Scale(); got != math.MaxFloat64 {
		t.Fatalf("Scale() = %v, want MaxFloat64", got)
	}
}

func TestOrigins(t *testing.T) {
	pos := New(Config{Positive: true, Width: 800, Height: 600})
	if pos.OriginX() != 5 || pos.OriginY() != 5 {
		t.Fatalf("positive origin = (%d,%d), want (5,5)", pos.OriginX(), pos.OriginY())
	}
	quad := New(Config{Width: 800, Height: 600})
	if quad.OriginX() != 400 || quad.OriginY() != 300 {
		t.Fatalf("quadrant origin = (%d,%d), want (400,300)", quad.OriginX(), quad.OriginY())
	}
}

func TestMathXPixelXRoundTrip(t *testing.T) {
	for _, positive := range []bool{true, false} {
		g := New(Config{Positive: positive, Width: 640, Height: 480})
		for _, px := range []int{0, 5, 123, 320, 639} {
			if got := g.PixelX(float64(g.MathX(px))); got != float64(px) {
				t.Fatalf("positive=%v PixelX(MathX(%d)) = %v", positive, px, got)
			}
		}
	}
}

func TestPixelYIsDecreasing(t *testing.T) {
	lines := []line.Line{{Slope: 0.5, Intercept: 10}}
	for _, positive := range []bool{true, false} {
		g := New(Config{Positive: positive, Width: 800, Height: 600, Lines: lines})
		prev := math.Inf(1)
		for y := -1000.0; y <= 1000; y += 37.5 {
			py := g.PixelY(y)
			if py >= prev {
				t.Fatalf("positive=%v PixelY(%v) = %v, not below %v", positive, y, py, prev)
			}
			prev = py
		}
	}
}

func TestPixelYOrigin(t *testing.T) {
	g := New(Config{Positive: true, Width: 800, Height: 600, Lines: []line.Line{{Intercept: 300}}})
	if got := g.PixelY(0); got != 595 {
		t.Fatalf("positive PixelY(0) = %v, want 595", got)
	}
	if got := g.PixelY(300); got != -5 {
		t.Fatalf("positive PixelY(300) = %v, want -5", got)
	}

	q := New(Config{Width: 800, Height: 600, Lines: []line.Line{{Slope: 1}}})
	if got := q.PixelY(0); got != 300 {
		t.Fatalf("quadrant PixelY(0) = %v, want 300", got)
	}
}

func TestEvalUsesUnscaledX(t *testing.T) {
	g := New(Config{Width: 800, Height: 600})
	l := line.Line{Slope: 2, Intercept: 3}
	if got := g.Eval(l, 410); got != 23 {
		t.Fatalf("Eval at 410 = %v, want 23", got)
	}
	if got := g.Eval(l, 390); got != -17 {
		t.Fatalf("Eval at 390 = %v, want -17", got)
	}
}

func TestNewCopiesLines(t *testing.T) {
	lines := []line.Line{{Name: "a", Intercept: 1}}
	g := New(Config{Width: 10, Height: 10, Lines: lines})
	lines[0].Name = "b"

	cfg := g.Config()
	if cfg.Lines[0].Name != "a" {
		t.Fatalf("graph sees caller mutation: %q", cfg.Lines[0].Name)
	}
	cfg.Lines[0].Name = "c"
	if g.Config().Lines[0].Name != "a" {
		t.Fatal("Config() exposes internal slice")
	}
	if g.LineCount() != 1 {
		t.Fatalf("LineCount() = %d", g.LineCount())
	}
}
