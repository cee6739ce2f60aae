// Package score ranks quantized colours by how well they would serve as the
// source colour of a scheme: colours that are both chromatic and backed by
// a large share of the image's hues rank first.
package score

import (
	"cmp"
	"math"
	"slices"

	"cogentcore.org/core/colors/cam/hct"

	"github.com/jmylchreest/tonal/internal/colour"
)

const (
	targetChroma            = 48.0
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffExcitedProportion = 0.01
)

// Fallback is returned when no colour survives filtering (Google Blue).
var Fallback = colour.RGB{R: 0x42, G: 0x85, B: 0xf4}

// Options tunes Score.
type Options struct {
	// Desired is the maximum number of colours returned.
	Desired int

	// Fallback is returned alone when nothing passes the filters.
	Fallback colour.RGB

	// Filter drops colours with low chroma or a tiny hue share.
	Filter bool
}

// DefaultOptions returns the options used for source colour extraction.
func DefaultOptions() Options {
	return Options{Desired: 4, Fallback: Fallback, Filter: true}
}

type scored struct {
	rgb   colour.RGB
	hue   float64
	score float64
}

// Score ranks the colours of a quantizer result with DefaultOptions.
// The result is never empty.
func Score(population map[colour.RGB]int) []colour.RGB {
	return ScoreWithOptions(population, DefaultOptions())
}

// ScoreWithOptions ranks the colours of a quantizer result, best first,
// picking colours whose hues are as far apart as possible. The result is
// never empty and is deterministic regardless of map iteration order.
func ScoreWithOptions(population map[colour.RGB]int, opts Options) []colour.RGB {
	desired := max(1, opts.Desired)

	type entry struct {
		rgb   colour.RGB
		hct   hct.HCT
		count int
	}
	entries := make([]entry, 0, len(population))
	var huePopulation [360]float64
	total := 0.0
	for rgb, count := range population {
		h := hct.FromColor(rgb)
		entries = append(entries, entry{rgb: rgb, hct: h, count: count})
		huePopulation[sanitizeInt(int(math.Floor(float64(h.Hue))))] += float64(count)
		total += float64(count)
	}
	if total == 0 {
		return []colour.RGB{opts.Fallback}
	}

	// Each hue excites its neighbours within +/-15 degrees.
	var excited [360]float64
	for hue := 0; hue < 360; hue++ {
		proportion := huePopulation[hue] / total
		for i := hue - 14; i < hue+16; i++ {
			excited[sanitizeInt(i)] += proportion
		}
	}

	candidates := make([]scored, 0, len(entries))
	for _, e := range entries {
		hue := float64(e.hct.Hue)
		chroma := float64(e.hct.Chroma)
		proportion := excited[sanitizeInt(int(math.Round(hue)))]
		if opts.Filter && (chroma < cutoffChroma || proportion <= cutoffExcitedProportion) {
			continue
		}

		chromaWeight := weightChromaAbove
		if chroma < targetChroma {
			chromaWeight = weightChromaBelow
		}
		s := proportion*100*weightProportion + (chroma-targetChroma)*chromaWeight
		candidates = append(candidates, scored{rgb: e.rgb, hue: hue, score: s})
	}

	slices.SortFunc(candidates, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(packed(a.rgb), packed(b.rgb))
	})

	// Prefer hues far apart, relaxing the spacing until enough are chosen.
	var chosen []scored
	for spacing := 90; spacing >= 15; spacing-- {
		chosen = chosen[:0]
		for _, c := range candidates {
			if !slices.ContainsFunc(chosen, func(o scored) bool {
				return hueDistance(c.hue, o.hue) < float64(spacing)
			}) {
				chosen = append(chosen, c)
			}
			if len(chosen) >= desired {
				break
			}
		}
		if len(chosen) >= desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []colour.RGB{opts.Fallback}
	}
	colors := make([]colour.RGB, len(chosen))
	for i, c := range chosen {
		colors[i] = c.rgb
	}
	return colors
}

func packed(c colour.RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func sanitizeInt(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

func hueDistance(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}
