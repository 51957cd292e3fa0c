package line

import (
	"image/color"
	"strings"
)

// Color is one of the eight named line colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Magenta
	Orange
	Pink
	Red
	Yellow
)

var colorNames = [...]string{
	Black:   "black",
	Blue:    "blue",
	Green:   "green",
	Magenta: "magenta",
	Orange:  "orange",
	Pink:    "pink",
	Red:     "red",
	Yellow:  "yellow",
}

var colorValues = [...]color.RGBA{
	Black:   {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	Blue:    {R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	Green:   {R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	Magenta: {R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	Orange:  {R: 0xFF, G: 0xC8, B: 0x00, A: 0xFF},
	Pink:    {R: 0xFF, G: 0xAF, B: 0xAF, A: 0xFF},
	Red:     {R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	Yellow:  {R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
}

// ParseColor maps a color name to a Color. Unknown names map to Black.
func ParseColor(name string) Color {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i)
		}
	}
	return Black
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return colorNames[Black]
}

// RGBA returns the drawing color.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(colorValues) {
		return colorValues[c]
	}
	return colorValues[Black]
}
