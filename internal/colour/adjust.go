package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ShiftDelta returns the per-channel delta the channel-shift formula
// subtracts for the given amount: floor(255 * -(amount / 100)).
// Negative amounts give a positive delta (darken), positive amounts a
// negative delta (brighten). The result is clamped to [-255, 255]; NaN
// gives 0.
func ShiftDelta(amount float64) int {
	d := math.Floor(255 * -(amount / 100))
	if math.IsNaN(d) {
		return 0
	}
	return int(max(-255, min(255, d)))
}

// Shift brightens (amount > 0) or darkens (amount < 0) each channel by the
// same absolute step. Unlike an HSL lightness change this leaves the hue
// untouched. Channels saturate at 0 and 255.
func (rgb RGB) Shift(amount float64) RGB {
	delta := ShiftDelta(amount)
	return RGB{
		R: shiftChannel(rgb.R, delta),
		G: shiftChannel(rgb.G, delta),
		B: shiftChannel(rgb.B, delta),
	}
}

func shiftChannel(c uint8, delta int) uint8 {
	return uint8(max(0, min(255, int(c)-delta)))
}

// HSL returns hue (0-360), saturation (0-1) and lightness (0-1).
func (rgb RGB) HSL() (h, s, l float64) {
	return rgb.toColorful().Hsl()
}

// FromHSL converts hue (0-360), saturation (0-1) and lightness (0-1) to RGB.
func FromHSL(h, s, l float64) RGB {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ScaleLightness multiplies the HSL lightness by factor, clamped to [0, 1].
// Hue and saturation are kept.
func (rgb RGB) ScaleLightness(factor float64) RGB {
	h, s, l := rgb.HSL()
	return FromHSL(h, s, math.Max(0, math.Min(1, l*factor)))
}

// Lab returns the CIE L*a*b* coordinates with L in 0-100.
func (rgb RGB) Lab() (l, a, b float64) {
	l, a, b = rgb.toColorful().Lab()
	return l * 100, a * 100, b * 100
}

// FromLab converts CIE L*a*b* coordinates (L in 0-100) back to RGB,
// clamping out-of-gamut values.
func FromLab(l, a, b float64) RGB {
	r, g, bl := colorful.Lab(l/100, a/100, b/100).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}

func (rgb RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}
