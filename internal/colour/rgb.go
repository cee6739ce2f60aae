// Package colour provides the colour primitives shared by the scheme pipeline:
// RGB and ARGB values, hex parsing and formatting, HSL adjustment and the
// signed channel-shift used by the correction pass.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a well-formed hex colour.
var ErrInvalidHex = errors.New("malformed hex colour")

// RGB represents an opaque colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HexDigits returns the six lowercase hex digits of the colour without a leading '#'.
func (rgb RGB) HexDigits() string {
	return strings.TrimPrefix(rgb.Hex(), "#")
}

// RGBA implements color.Color.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// ToRGB converts a color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: nc.R, G: nc.G, B: nc.B}
}

// ARGB is a colour with alpha first, the channel order the quantizer and
// the tonal palettes work in.
type ARGB struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// RGB drops the alpha channel.
func (c ARGB) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Opaque reports whether the colour is fully opaque.
func (c ARGB) Opaque() bool {
	return c.A == 255
}

// RGBA implements color.Color. The channels are treated as non-premultiplied.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the colour as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func (c ARGB) Hex() string {
	if c.Opaque() {
		return c.RGB().Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Uint32 packs the colour as 0xAARRGGBB.
func (c ARGB) Uint32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ARGBFromUint32 unpacks a 0xAARRGGBB value.
func ARGBFromUint32(v uint32) ARGB {
	return ARGB{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// ParseHex parses a hex colour with an optional leading '#'.
// Accepted forms are rgb, rgba, rrggbb and rrggbbaa; alpha defaults to 255.
func ParseHex(s string) (ARGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if strings.IndexFunc(digits, func(r rune) bool { return !isHexDigit(r) }) >= 0 {
		return ARGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var rgbPart, alphaPart string
	switch len(digits) {
	case 3, 6:
		rgbPart = digits
	case 4:
		rgbPart, alphaPart = digits[:3], strings.Repeat(digits[3:], 2)
	case 8:
		rgbPart, alphaPart = digits[:6], digits[6:]
	default:
		return ARGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	// go-colorful only understands the '#'-prefixed rgb forms.
	c, err := colorful.Hex("#" + rgbPart)
	if err != nil {
		return ARGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()

	alpha := uint64(255)
	if alphaPart != "" {
		alpha, err = strconv.ParseUint(alphaPart, 16, 8)
		if err != nil {
			return ARGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}

	return ARGB{A: uint8(alpha), R: r, G: g, B: b}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

