package scheme

import (
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/material/palette"
)

var googleBlue = colour.ARGB{A: 255, R: 0x42, G: 0x85, B: 0xf4}

func TestRoleNames(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Roles() {
		name := r.String()
		if name == "" {
			t.Errorf("role %d has no name", int(r))
		}
		if seen[name] {
			t.Errorf("duplicate role name %q", name)
		}
		seen[name] = true

		back, ok := ParseRole(name)
		if !ok || back != r {
			t.Errorf("ParseRole(%q) = %v, %v, want %v, true", name, back, ok, r)
		}
	}
	if len(seen) != int(NumRoles) {
		t.Errorf("got %d role names, want %d", len(seen), NumRoles)
	}
}

func TestRoleText(t *testing.T) {
	var r Role
	if err := r.UnmarshalText([]byte("surface_bright")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if r != SurfaceBright {
		t.Errorf("UnmarshalText() = %v, want %v", r, SurfaceBright)
	}
	if err := r.UnmarshalText([]byte("surface_brite")); err == nil {
		t.Error("UnmarshalText(typo) error = nil, want error")
	}
	if _, err := Role(-1).MarshalText(); err == nil {
		t.Error("MarshalText(-1) error = nil, want error")
	}
	if got := NumRoles.String(); got != "Role(49)" {
		t.Errorf("NumRoles.String() = %q, want %q", got, "Role(49)")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"dark", ModeDark, false},
		{"LIGHT", ModeLight, false},
		{" amoled ", ModeAmoled, false},
		{"dim", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, mode := range ValidModes() {
		for _, variant := range palette.ValidVariants() {
			a := Generate(googleBlue, variant, mode)
			b := Generate(googleBlue, variant, mode)
			if a != b {
				t.Errorf("Generate(%s, %s) is not deterministic", variant, mode)
			}
		}
	}
}

func TestGenerateModes(t *testing.T) {
	light := Generate(googleBlue, palette.VariantDefault, ModeLight)
	dark := Generate(googleBlue, palette.VariantDefault, ModeDark)
	amoled := Generate(googleBlue, palette.VariantDefault, ModeAmoled)

	lum := func(c colour.RGB) int { return int(c.R) + int(c.G) + int(c.B) }

	if lum(light.Get(Surface)) <= lum(dark.Get(Surface)) {
		t.Errorf("light surface %v is not brighter than dark surface %v", light.Get(Surface), dark.Get(Surface))
	}
	if lum(light.Get(OnSurface)) >= lum(dark.Get(OnSurface)) {
		t.Errorf("light on_surface %v is not darker than dark on_surface %v", light.Get(OnSurface), dark.Get(OnSurface))
	}
	for _, r := range []Role{Background, Surface, SurfaceDim, SurfaceContainerLowest} {
		if got := amoled.Get(r); max(got.R, got.G, got.B) > 1 {
			t.Errorf("amoled %s = %v, want black", r, got)
		}
	}
	if amoled.Get(Primary) != dark.Get(Primary) {
		t.Errorf("amoled primary %v differs from dark primary %v", amoled.Get(Primary), dark.Get(Primary))
	}
}

func TestSchemeIsValue(t *testing.T) {
	s := Generate(googleBlue, palette.VariantDefault, ModeDark)
	c := s
	c.Set(Primary, colour.RGB{R: 1, G: 2, B: 3})
	if s.Get(Primary) == c.Get(Primary) {
		t.Error("Set on a copy changed the original scheme")
	}
}

func TestSchemeEach(t *testing.T) {
	s := Generate(googleBlue, palette.VariantDefault, ModeLight)
	var roles []Role
	s.Each(func(r Role, c colour.RGB) {
		roles = append(roles, r)
		if c != s.Get(r) {
			t.Errorf("Each(%v) = %v, want %v", r, c, s.Get(r))
		}
	})
	if len(roles) != int(NumRoles) {
		t.Fatalf("Each visited %d roles, want %d", len(roles), NumRoles)
	}
	for i, r := range roles {
		if r != Role(i) {
			t.Errorf("Each order[%d] = %v, want %v", i, r, Role(i))
		}
	}
}

func TestSchemeInvalidRolePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get(NumRoles) did not panic")
		}
	}()
	var s Scheme
	s.Get(NumRoles)
}

func TestGenerateUnknownModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Generate with unknown mode did not panic")
		}
	}()
	Generate(googleBlue, palette.VariantDefault, Mode("dim"))
}
