//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch     chan PointerEvent
	lastX  int
	lastY  int
	primed bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	if !p.primed || x != p.lastX || y != p.lastY {
		p.primed = true
		p.lastX, p.lastY = x, y
		p.emit(PointerEvent{Kind: PointerMove, X: x, Y: y})
	}

	press := func(b ebiten.MouseButton, button PointerButton) {
		if inpututil.IsMouseButtonJustPressed(b) {
			p.emit(PointerEvent{Kind: PointerPress, X: x, Y: y, Button: button})
		}
	}
	press(ebiten.MouseButtonLeft, ButtonPrimary)
	press(ebiten.MouseButtonRight, ButtonSecondary)
	press(ebiten.MouseButtonMiddle, ButtonMiddle)
}
