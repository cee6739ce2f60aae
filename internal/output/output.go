// Package output renders a corrected scheme as the single text record a run
// produces.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/material/scheme"
)

// Mapping maps role names to six lowercase hex digits without a '#'.
type Mapping map[string]string

// NewMapping converts s into a Mapping holding every role.
func NewMapping(s scheme.Scheme) Mapping {
	m := make(Mapping, scheme.NumRoles)
	s.Each(func(r scheme.Role, c colour.RGB) {
		m[r.String()] = c.HexDigits()
	})
	return m
}

// Format selects the serialisation of a Mapping.
type Format string

const (
	// FormatJSON is a single-line JSON object with sorted keys.
	FormatJSON Format = "json"
	// FormatYAML is a YAML mapping with sorted keys.
	FormatYAML Format = "yaml"
	// FormatTOML is a flat TOML table with sorted keys.
	FormatTOML Format = "toml"
	// FormatPreview is one line per role in role order, with colour
	// swatches when writing to a terminal.
	FormatPreview Format = "preview"
)

// ValidFormats returns every format in a stable order.
func ValidFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML, FormatPreview}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidFormats() {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (valid: %v)", s, ValidFormats())
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// Options controls rendering.
type Options struct {
	// Colour enables ANSI swatches in the preview format.
	Colour bool
}

// Render serialises m in format f. The whole record is returned at once,
// terminated by a newline, so callers never emit partial output.
func Render(m Mapping, f Format, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case FormatJSON, "":
		// encoding/json sorts map keys.
		data, err := json.Marshal(map[string]string(m))
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]string(m)); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(map[string]string(m)); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
	case FormatPreview:
		renderPreview(&buf, m, opts.Colour)
	default:
		return nil, fmt.Errorf("unknown output format %q", f)
	}
	return buf.Bytes(), nil
}

func renderPreview(buf *bytes.Buffer, m Mapping, useColour bool) {
	for _, r := range scheme.Roles() {
		hex, ok := m[r.String()]
		if !ok {
			continue
		}
		c, err := colour.ParseHex(hex)
		if err != nil {
			fmt.Fprintf(buf, "%-28s %s\n", r, hex)
			continue
		}
		buf.WriteString(colour.FormatColourWithLabel(c.RGB(), r.String(), 0, useColour))
		buf.WriteByte('\n')
	}
}
