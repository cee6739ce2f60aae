package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// FormatColourWithLabel formats a colour with a label and, if preview is
// set, a leading swatch. The hex code is printed without the '#'.
func FormatColourWithLabel(rgb RGB, label string, width int, preview bool) string {
	if !preview {
		return fmt.Sprintf("%-28s %s", label, rgb.HexDigits())
	}
	return fmt.Sprintf("%s  %-28s %s", ColourPreview(rgb, width), label, ColourString(rgb, rgb.HexDigits()))
}

// ColourString wraps text in a 24-bit foreground colour escape.
func ColourString(rgb RGB, text string) string {
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return fgColour + text + ansiReset
}
