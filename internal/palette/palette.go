// Package palette provides the colours used to draw quads: HSV-generated
// corner colours, the hover highlight, and the background tint.
package palette

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds one colour per quad corner.
type Palette [4]colorful.Color

var (
	// Highlight replaces a vertex's colour for frames in which it is hovered.
	Highlight = colorful.Color{R: 1, G: 1, B: 1}
	// Cursor is the colour of the marker that follows the pointer.
	Cursor = colorful.Color{R: 1, G: 0, B: 0}
	// Background is the clear colour of the canvas.
	Background = colorful.Color{R: 0.1, G: 0.1, B: 0.1}
)

const backgroundTintAmount = 0.75 // how far fills are blended towards the background

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RandomPalette returns corner colours using HSV generation. Hues are spread
// around the wheel from a random start so adjacent corners stay distinct.
func RandomPalette(r *rand.Rand) Palette {
	hsb := func(h, s, b float64) colorful.Color {
		// Convert from 0-100 range to 0-360 for hue, 0-1 for saturation and brightness.
		return colorful.Hsv(h*3.6, clamp(s/100.0, 0, 1), clamp(b/100.0, 0, 1))
	}

	p := Palette{}
	start := r.Float64() * 100
	for i := range p {
		hue := start + float64(i)*25
		if hue >= 100 {
			hue -= 100
		}
		p[i] = hsb(hue, r.Float64()*30+70, r.Float64()*20+80)
	}
	return p
}

// Parse parses a "#rrggbb" hex colour.
func Parse(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return c, nil
}

// Tint returns the fill colour drawn behind a quad whose first corner has
// colour c.
func Tint(c colorful.Color) colorful.Color {
	return c.BlendLab(Background, backgroundTintAmount).Clamped()
}

// RGB32 returns c's channels as float32s, the layout the renderer consumes.
func RGB32(c colorful.Color) (r, g, b float32) {
	return float32(c.R), float32(c.G), float32(c.B)
}
