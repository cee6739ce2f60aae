package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/material/palette"
	"github.com/jmylchreest/tonal/internal/material/scheme"
)

func testMapping() Mapping {
	s := scheme.Generate(colour.ARGB{A: 255, R: 0xff}, palette.VariantDefault, scheme.ModeDark)
	return NewMapping(s)
}

func TestNewMappingKeys(t *testing.T) {
	for _, mode := range scheme.ValidModes() {
		for _, variant := range palette.ValidVariants() {
			s := scheme.Generate(colour.ARGB{A: 255, R: 0x12, G: 0x34, B: 0x56}, variant, mode)
			m := NewMapping(s)
			if len(m) != int(scheme.NumRoles) {
				t.Fatalf("%s/%s: mapping has %d keys, want %d", variant, mode, len(m), scheme.NumRoles)
			}
			for _, r := range scheme.Roles() {
				hex, ok := m[r.String()]
				if !ok {
					t.Errorf("%s/%s: missing role %s", variant, mode, r)
					continue
				}
				if hex != s.Get(r).HexDigits() {
					t.Errorf("%s/%s: %s = %q, want %q", variant, mode, r, hex, s.Get(r).HexDigits())
				}
			}
		}
	}
}

func TestMappingValuesAreBareHex(t *testing.T) {
	for role, hex := range testMapping() {
		if len(hex) != 6 || strings.HasPrefix(hex, "#") || strings.ToLower(hex) != hex {
			t.Errorf("%s = %q, want six lowercase hex digits", role, hex)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range ValidFormats() {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", strings.ToUpper(string(f)), got, err, f)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil, want error")
	}
}

func TestRenderJSON(t *testing.T) {
	m := testMapping()
	data, err := Render(m, FormatJSON, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Count(string(data), "\n") != 1 || !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("Render(json) = %q, want a single line", data)
	}
	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(got) != len(m) || got["primary"] != m["primary"] {
		t.Errorf("Render(json) decoded to %v, want %v", got, m)
	}
	if strings.Index(string(data), `"background"`) > strings.Index(string(data), `"primary"`) {
		t.Error("Render(json) keys are not sorted")
	}
}

func TestRenderYAML(t *testing.T) {
	m := testMapping()
	data, err := Render(m, FormatYAML, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var got map[string]string
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if len(got) != len(m) || got["surface"] != m["surface"] {
		t.Errorf("Render(yaml) decoded to %v, want %v", got, m)
	}
}

func TestRenderTOML(t *testing.T) {
	m := testMapping()
	data, err := Render(m, FormatTOML, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var got map[string]string
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("toml.Unmarshal() error = %v", err)
	}
	if len(got) != len(m) || got["error"] != m["error"] {
		t.Errorf("Render(toml) decoded to %v, want %v", got, m)
	}
}

func TestRenderPreview(t *testing.T) {
	m := testMapping()

	plain, err := Render(m, FormatPreview, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(plain), "\n"), "\n")
	if len(lines) != int(scheme.NumRoles) {
		t.Fatalf("Render(preview) has %d lines, want %d", len(lines), scheme.NumRoles)
	}
	if !strings.HasPrefix(lines[0], "primary ") || !strings.HasSuffix(lines[0], m["primary"]) {
		t.Errorf("first line = %q, want primary first", lines[0])
	}
	if strings.Contains(string(plain), "\033[") {
		t.Error("Render(preview) without colour contains escape codes")
	}

	coloured, err := Render(m, FormatPreview, Options{Colour: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(coloured), "\033[48;2;") {
		t.Error("Render(preview) with colour has no swatches")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(testMapping(), Format("xml"), Options{}); err == nil {
		t.Error("Render(xml) error = nil, want error")
	}
}
