package hal

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferClearAndPixelAt(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	fb.ClearRGB(0xFF, 0x00, 0x00)

	c, ok := PixelAt(fb, 3, 2)
	if !ok {
		t.Fatal("PixelAt(3,2) ok = false, want true")
	}
	if c != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("PixelAt(3,2) = %v, want red", c)
	}
	if _, ok := PixelAt(fb, 4, 0); ok {
		t.Fatal("PixelAt(4,0) ok = true, want false")
	}
	if _, ok := PixelAt(fb, -1, 0); ok {
		t.Fatal("PixelAt(-1,0) ok = true, want false")
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{
		{A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
		{B: 0xFF, A: 0xFF},
	} {
		r, g, b := rgb888From565(RGB565(c))
		if r != c.R || g != c.G || b != c.B {
			t.Fatalf("round trip %v = (%d,%d,%d)", c, r, g, b)
		}
	}
}

func TestFramebufferSnapshot(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	fb.ClearRGB(0x00, 0x00, 0xFF)
	img := fb.snapshot()
	if got := img.RGBAAt(1, 1); got != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Fatalf("snapshot(1,1) = %v, want blue", got)
	}
}

func TestHostLoggers(t *testing.T) {
	var out, errOut bytes.Buffer
	h := newHost(Config{Width: 10, Height: 10}, &out, &errOut)

	h.Logger().WriteLineString("positive: true")
	h.ErrLogger().WriteLineBytes([]byte("boom"))

	if got := out.String(); got != "positive: true\n" {
		t.Fatalf("stdout = %q", got)
	}
	if got := errOut.String(); got != "boom\n" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestNewDefaultsSize(t *testing.T) {
	h := newHost(Config{}, &bytes.Buffer{}, &bytes.Buffer{})
	fb := h.Display().Framebuffer()
	if fb.Width() != defaultWidth || fb.Height() != defaultHeight {
		t.Fatalf("size = %dx%d, want %dx%d", fb.Width(), fb.Height(), defaultWidth, defaultHeight)
	}
	if fb.StrideBytes() != defaultWidth*2 {
		t.Fatalf("stride = %d", fb.StrideBytes())
	}
}

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	steps := 0
	err := RunHeadless(context.Background(), Config{Width: 8, Height: 6}, func(h HAL) func() error {
		return func() error {
			steps++
			h.Display().Framebuffer().ClearRGB(0x00, 0xFF, 0x00)
			return nil
		}
	}, HeadlessConfig{Enabled: true, Hz: 200, Ticks: 3, Snapshot: path})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0xFFFF || b != 0 {
		t.Fatalf("pixel = (%d,%d,%d), want green", r, g, b)
	}
}
