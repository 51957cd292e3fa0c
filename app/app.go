package app

import (
	"grapher/graph"
	"grapher/hal"
)

type Config struct {
	Graph graph.Config
}

type plotter struct {
	h       hal.HAL
	g       *graph.Graph
	tr      *graph.Tracer
	canvas  graph.Canvas
	events  <-chan hal.PointerEvent
	dirty   bool
	crashed bool
}

// New builds the plotter and returns its per-tick step function.
func New(h hal.HAL, cfg Config) func() error {
	return newPlotter(h, cfg).step
}

func newPlotter(h hal.HAL, cfg Config) *plotter {
	g := graph.New(cfg.Graph)
	p := &plotter{
		h:     h,
		g:     g,
		tr:    graph.NewTracer(g, h.Logger()),
		dirty: true,
	}
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			p.canvas = graph.NewFramebufferCanvas(fb)
		}
	}
	if in := h.Input(); in != nil {
		if ptr := in.Pointer(); ptr != nil {
			p.events = ptr.Events()
		}
	}
	return p
}

func (p *plotter) step() error {
	if p.crashed {
		return nil
	}
	defer p.recoverPanic()

	p.drain()
	if p.dirty && p.canvas != nil {
		p.g.Render(p.canvas, p.tr.CursorX())
		p.dirty = false
	}
	return nil
}

func (p *plotter) drain() {
	if p.events == nil {
		return
	}
	for {
		select {
		case ev := <-p.events:
			p.handlePointer(ev)
		default:
			return
		}
	}
}

func (p *plotter) handlePointer(ev hal.PointerEvent) {
	switch ev.Kind {
	case hal.PointerMove:
		if p.tr.Move(ev.X) {
			p.dirty = true
		}
	case hal.PointerPress:
		if ev.Button == hal.ButtonPrimary {
			p.tr.Press()
		}
	}
}
