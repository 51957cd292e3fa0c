package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

type hostHAL struct {
	logger    *hostLogger
	errLogger *hostLogger
	fb        *hostFramebuffer
	ptr       *hostPointer
	title     string
}

// New returns a host HAL implementation sized by cfg.
func New(cfg Config) HAL {
	return newHost(cfg, os.Stdout, os.Stderr)
}

func newHost(cfg Config, out, errOut io.Writer) *hostHAL {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return &hostHAL{
		logger:    &hostLogger{w: out},
		errLogger: &hostLogger{w: errOut},
		fb:        newHostFramebuffer(w, h),
		ptr:       newHostPointer(),
		title:     cfg.Title,
	}
}

func (h *hostHAL) Logger() Logger    { return h.logger }
func (h *hostHAL) ErrLogger() Logger { return h.errLogger }
func (h *hostHAL) Display() Display  { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input      { return hostInput{ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
