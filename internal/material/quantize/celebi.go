package quantize

import (
	"github.com/jmylchreest/tonal/internal/colour"
)

// DefaultMaxColors is the palette bound used for source colour extraction.
const DefaultMaxColors = 128

// Celebi quantizes pixels to at most maxColors colours, mapping each to its
// pixel count. Wu's cut seeds a weighted k-means refinement.
//
// Only opaque pixels are counted; if there are none, every pixel counts
// with its alpha ignored.
func Celebi(pixels []colour.ARGB, maxColors int) map[colour.RGB]int {
	opaque := make([]colour.RGB, 0, len(pixels))
	for _, p := range pixels {
		if p.Opaque() {
			opaque = append(opaque, p.RGB())
		}
	}
	if len(opaque) == 0 {
		for _, p := range pixels {
			opaque = append(opaque, p.RGB())
		}
	}
	if len(opaque) == 0 || maxColors < 1 {
		return map[colour.RGB]int{}
	}

	counts := make(map[colour.RGB]int, len(opaque))
	for _, p := range opaque {
		counts[p]++
	}

	return WSMeans(opaque, Wu(counts, maxColors), maxColors)
}
