package correction

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/material/scheme"
)

var (
	// ErrUnknownRole is returned when a rules file names a role that does not exist.
	ErrUnknownRole = errors.New("unknown role")
	// ErrUnknownMode is returned when a rules file names a mode that does not exist.
	ErrUnknownMode = errors.New("unknown mode")
)

type shiftFile struct {
	Role   string  `yaml:"role"`
	Amount float64 `yaml:"amount"`
}

type derivationFile struct {
	Target    string  `yaml:"target"`
	From      string  `yaml:"from"`
	Lightness float64 `yaml:"lightness"`
}

type modeFile struct {
	Shifts []shiftFile      `yaml:"shifts"`
	Derive []derivationFile `yaml:"derive"`
}

type rulesFile struct {
	Baseline []shiftFile         `yaml:"baseline"`
	Modes    map[string]modeFile `yaml:"modes"`
}

// LoadRules reads a rules table from a YAML file. An empty path returns
// DefaultRules.
func LoadRules(path string) (Rules, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified rules path, intended to be read
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes a YAML rules table:
//
//	baseline:
//	  - {role: surface, amount: -1.0}
//	modes:
//	  dark:
//	    shifts: [{role: surface_dim, amount: -1.0}]
//	    derive: [{target: surface_bright, from: surface, lightness: 1.35}]
func ParseRules(data []byte) (Rules, error) {
	var f rulesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, err
	}

	baseline, err := convertShifts(f.Baseline)
	if err != nil {
		return Rules{}, fmt.Errorf("baseline: %w", err)
	}

	rules := Rules{Baseline: baseline, Modes: map[scheme.Mode]ModeRules{}}
	for name, mf := range f.Modes {
		mode, err := scheme.ParseMode(name)
		if err != nil {
			return Rules{}, fmt.Errorf("%w %q", ErrUnknownMode, name)
		}
		if _, dup := rules.Modes[mode]; dup {
			return Rules{}, fmt.Errorf("mode %q is defined more than once", mode)
		}

		shifts, err := convertShifts(mf.Shifts)
		if err != nil {
			return Rules{}, fmt.Errorf("modes.%s.shifts: %w", name, err)
		}

		var derivations []Derivation
		for i, d := range mf.Derive {
			target, err := parseRole(d.Target)
			if err != nil {
				return Rules{}, fmt.Errorf("modes.%s.derive[%d].target: %w", name, i, err)
			}
			from, err := parseRole(d.From)
			if err != nil {
				return Rules{}, fmt.Errorf("modes.%s.derive[%d].from: %w", name, i, err)
			}
			if d.Lightness <= 0 || math.IsNaN(d.Lightness) || math.IsInf(d.Lightness, 0) {
				return Rules{}, fmt.Errorf("modes.%s.derive[%d]: lightness must be positive, got %v", name, i, d.Lightness)
			}
			derivations = append(derivations, Derivation{Target: target, From: from, LightnessFactor: d.Lightness})
		}

		rules.Modes[mode] = ModeRules{Shifts: shifts, Derivations: derivations}
	}
	return rules, nil
}

func convertShifts(in []shiftFile) ([]Shift, error) {
	var out []Shift
	for i, s := range in {
		role, err := parseRole(s.Role)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		if math.IsNaN(s.Amount) || math.IsInf(s.Amount, 0) {
			return nil, fmt.Errorf("[%d]: amount must be finite, got %v", i, s.Amount)
		}
		out = append(out, Shift{Role: role, Amount: s.Amount})
	}
	return out, nil
}

func parseRole(name string) (scheme.Role, error) {
	r, ok := scheme.ParseRole(strings.TrimSpace(name))
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownRole, name)
	}
	return r, nil
}
