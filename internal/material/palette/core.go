package palette

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/core/colors/cam/hct"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Variant selects how the core palettes are derived from the source colour.
type Variant string

const (
	// VariantDefault keeps the source hue with at least 48 chroma on the primary palette.
	VariantDefault Variant = "default"
	// VariantContent follows the source chroma closely, for content-driven UIs.
	VariantContent Variant = "content"
	// VariantTonalSpot is a calm scheme with a medium-chroma primary.
	VariantTonalSpot Variant = "tonal-spot"
	// VariantVibrant pushes the primary palette to maximum chroma.
	VariantVibrant Variant = "vibrant"
	// VariantExpressive rotates the primary hue away from the source.
	VariantExpressive Variant = "expressive"
	// VariantFidelity keeps the source chroma on primary and derives the accents from it.
	VariantFidelity Variant = "fidelity"
	// VariantMonochrome drops all chroma.
	VariantMonochrome Variant = "monochrome"
	// VariantNeutral is near greyscale with a hint of the source hue.
	VariantNeutral Variant = "neutral"
	// VariantRainbow has coloured accents over pure grey neutrals.
	VariantRainbow Variant = "rainbow"
	// VariantFruitSalad rotates primary and secondary hues 50 degrees back.
	VariantFruitSalad Variant = "fruit-salad"
)

// ValidVariants returns every variant in a stable order.
func ValidVariants() []Variant {
	return []Variant{
		VariantDefault,
		VariantContent,
		VariantTonalSpot,
		VariantVibrant,
		VariantExpressive,
		VariantFidelity,
		VariantMonochrome,
		VariantNeutral,
		VariantRainbow,
		VariantFruitSalad,
	}
}

// ParseVariant parses a variant name. Underscores are accepted in place of dashes.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if _, ok := variantSpecs[v]; !ok {
		return "", fmt.Errorf("unknown palette variant %q (valid: %v)", s, ValidVariants())
	}
	return v, nil
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	return string(v)
}

// CorePalette holds the six tonal palettes a scheme draws its roles from.
type CorePalette struct {
	Primary        *TonalPalette
	Secondary      *TonalPalette
	Tertiary       *TonalPalette
	Neutral        *TonalPalette
	NeutralVariant *TonalPalette
	Error          *TonalPalette
}

// hueChroma is one palette's key: hue in degrees and chroma.
type hueChroma struct {
	hue, chroma float64
}

// variantSpec maps the source hue and chroma to primary, secondary,
// tertiary, neutral and neutral-variant keys.
type variantSpec func(hue, chroma float64) [5]hueChroma

var variantSpecs = map[Variant]variantSpec{
	VariantDefault: func(h, c float64) [5]hueChroma {
		return [5]hueChroma{{h, math.Max(48, c)}, {h, 16}, {h + 60, 24}, {h, 4}, {h, 8}}
	},
	VariantContent: func(h, c float64) [5]hueChroma {
		return [5]hueChroma{{h, c}, {h, c / 3}, {h + 60, c / 2}, {h, math.Min(c/12, 4)}, {h, math.Min(c/6, 8)}}
	},
	VariantTonalSpot: func(h, _ float64) [5]hueChroma {
		return [5]hueChroma{{h, 36}, {h, 16}, {h + 60, 24}, {h, 6}, {h, 8}}
	},
	VariantVibrant: func(h, _ float64) [5]hueChroma {
		return [5]hueChroma{{h, 200}, {h + 15, 24}, {h + 60, 32}, {h, 10}, {h, 12}}
	},
	VariantExpressive: func(h, _ float64) [5]hueChroma {
		return [5]hueChroma{{h + 240, 40}, {h + 15, 24}, {h + 120, 32}, {h + 15, 8}, {h + 15, 12}}
	},
	VariantFidelity: func(h, c float64) [5]hueChroma {
		accent := math.Max(c-32, c*0.5)
		return [5]hueChroma{{h, c}, {h, accent}, {h + 60, accent}, {h, c / 8}, {h, c/8 + 4}}
	},
	VariantMonochrome: func(h, _ float64) [5]hueChroma {
		return [5]hueChroma{{h, 0}, {h, 0}, {h, 0}, {h, 0}, {h, 0}}
	},
	VariantNeutral: func(h, _ float64) [5]hueChroma {
		return [5]hueChroma{{h, 12}, {h, 8}, {h, 16}, {h, 2}, {h, 2}}
	},
	VariantRainbow: func(h, _ float64) [5]hueChroma {
		return [5]hueChroma{{h, 48}, {h, 16}, {h + 60, 24}, {h, 0}, {h, 0}}
	},
	VariantFruitSalad: func(h, _ float64) [5]hueChroma {
		return [5]hueChroma{{h - 50, 48}, {h - 50, 36}, {h, 36}, {h, 10}, {h, 16}}
	},
}

// Error palette key shared by every variant.
const (
	errorHue    = 25
	errorChroma = 84
)

// NewCorePalette derives the core palettes for source under variant.
// Alpha is ignored. An unknown variant is a programming error and panics;
// callers validate names with ParseVariant.
func NewCorePalette(source colour.ARGB, variant Variant) *CorePalette {
	spec, ok := variantSpecs[variant]
	if !ok {
		panic(fmt.Sprintf("palette: unknown variant %q", variant))
	}

	key := hct.FromColor(source.RGB())
	keys := spec(float64(key.Hue), float64(key.Chroma))

	return &CorePalette{
		Primary:        NewTonalPalette(keys[0].hue, keys[0].chroma),
		Secondary:      NewTonalPalette(keys[1].hue, keys[1].chroma),
		Tertiary:       NewTonalPalette(keys[2].hue, keys[2].chroma),
		Neutral:        NewTonalPalette(keys[3].hue, keys[3].chroma),
		NeutralVariant: NewTonalPalette(keys[4].hue, keys[4].chroma),
		Error:          NewTonalPalette(errorHue, errorChroma),
	}
}
