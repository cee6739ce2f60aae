package scheme

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Mode selects the brightness flavour of a scheme.
type Mode string

const (
	// ModeAmoled is a dark scheme with pure black surfaces.
	ModeAmoled Mode = "amoled"
	// ModeDark is the standard dark scheme.
	ModeDark Mode = "dark"
	// ModeLight is the standard light scheme.
	ModeLight Mode = "light"
)

// ValidModes returns every mode in a stable order.
func ValidModes() []Mode {
	return []Mode{ModeAmoled, ModeDark, ModeLight}
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toneTables[m]; !ok {
		return "", fmt.Errorf("unknown scheme mode %q (valid: %v)", s, ValidModes())
	}
	return m, nil
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// IsDark reports whether the mode renders light content on dark surfaces.
func (m Mode) IsDark() bool {
	return m == ModeDark || m == ModeAmoled
}

// Scheme maps every Role to a colour. The zero value is a scheme of black
// roles; use Generate to build a real one. Scheme is a value type, so
// assigning it copies all roles.
type Scheme struct {
	colors [NumRoles]colour.RGB
}

// Get returns the colour of role r. An undefined role panics: the role set
// is fixed and every defined role always has a colour.
func (s *Scheme) Get(r Role) colour.RGB {
	mustValid(r)
	return s.colors[r]
}

// Set replaces the colour of role r. An undefined role panics.
func (s *Scheme) Set(r Role, c colour.RGB) {
	mustValid(r)
	s.colors[r] = c
}

// Each calls fn for every role in output order.
func (s *Scheme) Each(fn func(Role, colour.RGB)) {
	for r, c := range s.colors {
		fn(Role(r), c)
	}
}

func mustValid(r Role) {
	if !r.Valid() {
		panic(fmt.Sprintf("scheme: role %d is not defined", int(r)))
	}
}
