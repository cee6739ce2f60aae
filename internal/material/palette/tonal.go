// Package palette builds Material tonal palettes: a hue and chroma pair that
// yields a colour for any tone between 0 (black) and 100 (white), and the
// six-palette core set a scheme is assembled from.
package palette

import (
	"math"

	"cogentcore.org/core/colors/cam/hct"

	"github.com/jmylchreest/tonal/internal/colour"
)

// TonalPalette contains the colours of one hue and chroma at every tone.
// Tones are solved on demand and cached, so a TonalPalette must not be
// shared between goroutines.
type TonalPalette struct {
	// Hue in degrees, 0-360.
	Hue float64

	// Chroma requested for every tone. Tones that cannot reach it in sRGB
	// get the highest chroma the gamut allows.
	Chroma float64

	tones map[int]colour.RGB
}

// NewTonalPalette returns a palette for the given hue and chroma.
func NewTonalPalette(hue, chroma float64) *TonalPalette {
	return &TonalPalette{
		Hue:    SanitizeDegrees(hue),
		Chroma: math.Max(0, chroma),
		tones:  map[int]colour.RGB{},
	}
}

// FromColour returns a palette with the hue and chroma of c.
func FromColour(c colour.RGB) *TonalPalette {
	h := hct.FromColor(c)
	return NewTonalPalette(float64(h.Hue), float64(h.Chroma))
}

// Tone returns the colour at the given tone, clamped to 0-100.
func (p *TonalPalette) Tone(tone int) colour.RGB {
	tone = max(0, min(100, tone))
	if c, ok := p.tones[tone]; ok {
		return c
	}
	c := colour.ToRGB(hct.New(float32(p.Hue), float32(p.Chroma), float32(tone)).AsRGBA())
	p.tones[tone] = c
	return c
}

// SanitizeDegrees wraps an angle into [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
