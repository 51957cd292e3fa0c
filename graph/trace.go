package graph

import (
	"fmt"

	"grapher/hal"
)

// Tracer follows the pointer while armed. A press prints the values under the
// cursor and disarms it; the next press arms it again.
type Tracer struct {
	g       *Graph
	out     hal.Logger
	armed   bool
	cursorX int
}

// NewTracer returns an armed tracer with the cursor at column 0.
func NewTracer(g *Graph, out hal.Logger) *Tracer {
	return &Tracer{g: g, out: out, armed: true}
}

func (t *Tracer) Armed() bool  { return t.armed }
func (t *Tracer) CursorX() int { return t.cursorX }

// Move records the pointer column. It reports whether the frame needs a repaint;
// motion is ignored while disarmed.
func (t *Tracer) Move(x int) bool {
	if !t.armed || x == t.cursorX {
		return false
	}
	t.cursorX = x
	return true
}

// Press toggles tracing. Disarming logs Snapshot followed by an empty line.
func (t *Tracer) Press() {
	if t.armed && t.out != nil {
		for _, s := range t.Snapshot() {
			t.out.WriteLineString(s)
		}
		t.out.WriteLineString("")
	}
	t.armed = !t.armed
}

// Snapshot evaluates every line at the cursor, one "m(x) + b = y\tname" entry
// per line in input order.
func (t *Tracer) Snapshot() []string {
	x := t.g.MathX(t.cursorX)
	out := make([]string, 0, len(t.g.cfg.Lines))
	for _, l := range t.g.cfg.Lines {
		out = append(out, fmt.Sprintf("%s(%d) + %s = %s\t%s",
			formatPlain(l.Slope), x, formatPlain(l.Intercept), Format(t.g.Eval(l, t.cursorX)), l.Name))
	}
	return out
}
