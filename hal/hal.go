package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// PointerEventKind tells a motion apart from a button press.
type PointerEventKind uint8

const (
	PointerMove PointerEventKind = iota + 1
	PointerPress
)

// PointerButton identifies the pressed button of a PointerPress event.
type PointerButton uint8

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a mouse event in framebuffer coordinates.
type PointerEvent struct {
	Kind   PointerEventKind
	X, Y   int
	Button PointerButton
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// Config sizes the framebuffer and names the window.
type Config struct {
	Width  int
	Height int
	Title  string
}

// HAL provides the only contact point between the plotter and the outside world.
type HAL interface {
	Logger() Logger
	ErrLogger() Logger
	Display() Display
	Input() Input
}
