// Package correction applies the post-generation adjustments that tame the
// perceived brightness of a generated scheme.
//
// Corrections are data: a baseline list of channel shifts applied in every
// mode, then per-mode shifts and lightness derivations. DefaultRules holds
// the built-in table; LoadRules reads the same vocabulary from YAML.
package correction

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/material/scheme"
)

// Shift moves every channel of Role by the channel-shift formula with
// Amount. Negative amounts darken, positive amounts brighten.
type Shift struct {
	Role   scheme.Role
	Amount float64
}

// Derivation replaces Target with From after multiplying From's HSL
// lightness by LightnessFactor. Hue and saturation are kept.
type Derivation struct {
	Target          scheme.Role
	From            scheme.Role
	LightnessFactor float64
}

// ModeRules are the corrections specific to one scheme mode. Shifts run
// before Derivations, each in order.
type ModeRules struct {
	Shifts      []Shift
	Derivations []Derivation
}

// Rules is a complete correction table.
type Rules struct {
	// Baseline runs first, in every mode.
	Baseline []Shift

	// Modes holds the corrections run after Baseline for each mode. A mode
	// without an entry gets no further corrections.
	Modes map[scheme.Mode]ModeRules
}

const (
	baselineAmount         = -1.0
	surfaceBrightLightness = 1.35
)

// BaselineRoles are darkened in every mode.
var BaselineRoles = []scheme.Role{
	scheme.Surface,
	scheme.SurfaceDim,
	scheme.SurfaceBright,
	scheme.SurfaceContainer,
	scheme.SurfaceContainerLowest,
	scheme.SurfaceContainerLow,
	scheme.SurfaceContainerHigh,
	scheme.SurfaceContainerHighest,
	scheme.InverseSurface,
	scheme.Primary,
	scheme.Secondary,
	scheme.Tertiary,
	scheme.PrimaryContainer,
	scheme.SecondaryContainer,
	scheme.TertiaryContainer,
	scheme.Error,
}

// DefaultRules returns the built-in correction table:
//
//   - every BaselineRoles role is darkened by 1;
//   - dark: surface_dim is darkened once more and surface_bright is
//     rederived from surface at 1.35x lightness;
//   - light: surface_bright is brightened by 1;
//   - amoled: nothing further.
func DefaultRules() Rules {
	baseline := make([]Shift, len(BaselineRoles))
	for i, r := range BaselineRoles {
		baseline[i] = Shift{Role: r, Amount: baselineAmount}
	}
	return Rules{
		Baseline: baseline,
		Modes: map[scheme.Mode]ModeRules{
			scheme.ModeDark: {
				Shifts: []Shift{{Role: scheme.SurfaceDim, Amount: baselineAmount}},
				Derivations: []Derivation{{
					Target:          scheme.SurfaceBright,
					From:            scheme.Surface,
					LightnessFactor: surfaceBrightLightness,
				}},
			},
			scheme.ModeLight: {
				Shifts: []Shift{{Role: scheme.SurfaceBright, Amount: -baselineAmount}},
			},
		},
	}
}

// Apply returns a corrected copy of s for mode; s itself is not modified.
// The baseline completes before any mode rule reads a role. A rule naming
// an undefined role panics.
func (r Rules) Apply(s scheme.Scheme, mode scheme.Mode) scheme.Scheme {
	return r.ApplyWithLogger(s, mode, hclog.NewNullLogger())
}

// ApplyWithLogger is Apply with each correction traced to logger.
func (r Rules) ApplyWithLogger(s scheme.Scheme, mode scheme.Mode, logger hclog.Logger) scheme.Scheme {
	out := s

	for _, sh := range r.Baseline {
		applyShift(&out, sh, logger)
	}

	mr, ok := r.Modes[mode]
	if !ok {
		return out
	}
	for _, sh := range mr.Shifts {
		applyShift(&out, sh, logger)
	}
	for _, d := range mr.Derivations {
		from := out.Get(d.From)
		derived := from.ScaleLightness(d.LightnessFactor)
		out.Set(d.Target, derived)
		logger.Trace("derived role", "target", d.Target, "from", d.From,
			"lightness", d.LightnessFactor, "value", derived.Hex())
	}
	return out
}

func applyShift(s *scheme.Scheme, sh Shift, logger hclog.Logger) {
	before := s.Get(sh.Role)
	after := before.Shift(sh.Amount)
	s.Set(sh.Role, after)
	logger.Trace("shifted role", "role", sh.Role, "amount", sh.Amount,
		"before", before.Hex(), "after", after.Hex())
}

