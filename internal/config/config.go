// Package config holds the settings of a tonal run and loads their defaults
// from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/material/palette"
	"github.com/jmylchreest/tonal/internal/material/quantize"
	"github.com/jmylchreest/tonal/internal/material/scheme"
	"github.com/jmylchreest/tonal/internal/output"
)

// Environment variables read by WithEnvConfig.
const (
	EnvMode        = "TONAL_MODE"
	EnvPalette     = "TONAL_PALETTE"
	EnvFormat      = "TONAL_FORMAT"
	EnvRules       = "TONAL_RULES"
	EnvMaxColours  = "TONAL_MAX_COLOURS"
	EnvSampleWidth = "TONAL_SAMPLE_WIDTH"
)

// MaxSampleWidth bounds SampleWidth so the downsampled image stays small.
const MaxSampleWidth = 1024

// Config holds the settings of one run.
type Config struct {
	Mode    scheme.Mode
	Variant palette.Variant
	Format  output.Format

	// RulesPath is a YAML correction table. Empty means the built-in rules.
	RulesPath string

	// MaxColors bounds the quantized palette an image is reduced to.
	MaxColors int

	// SampleWidth is the width images are resized to before quantization.
	SampleWidth int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mode:        scheme.ModeDark,
		Variant:     palette.VariantDefault,
		Format:      output.FormatJSON,
		MaxColors:   quantize.DefaultMaxColors,
		SampleWidth: image.DefaultSampleWidth,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if _, err := scheme.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if _, err := palette.ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if _, err := output.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if c.MaxColors < 1 {
		return fmt.Errorf("max colours must be at least 1, got %d", c.MaxColors)
	}
	if c.MaxColors > 256 {
		return fmt.Errorf("max colours too large: %d (maximum: 256)", c.MaxColors)
	}
	if c.SampleWidth < 1 {
		return fmt.Errorf("sample width must be at least 1, got %d", c.SampleWidth)
	}
	if c.SampleWidth > MaxSampleWidth {
		return fmt.Errorf("sample width too large: %d (maximum: %d)", c.SampleWidth, MaxSampleWidth)
	}
	return nil
}

// Builder assembles a Config from defaults and the environment.
type Builder struct {
	config Config
	useEnv bool
	getenv func(string) string
}

// NewBuilder returns a Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{config: Default(), getenv: os.Getenv}
}

// WithEnvConfig reads overrides from the TONAL_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces os.Getenv, for tests.
func (b *Builder) WithLookup(getenv func(string) string) *Builder {
	b.getenv = getenv
	return b
}

// Build returns the assembled configuration. Malformed environment values
// are reported as errors rather than ignored.
func (b *Builder) Build() (Config, error) {
	config := b.config
	if !b.useEnv {
		return config, nil
	}

	if v := b.env(EnvMode); v != "" {
		m, err := scheme.ParseMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMode, err)
		}
		config.Mode = m
	}
	if v := b.env(EnvPalette); v != "" {
		p, err := palette.ParseVariant(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPalette, err)
		}
		config.Variant = p
	}
	if v := b.env(EnvFormat); v != "" {
		f, err := output.ParseFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		config.Format = f
	}
	if v := b.env(EnvRules); v != "" {
		config.RulesPath = v
	}
	if v := b.env(EnvMaxColours); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid integer %q", EnvMaxColours, v)
		}
		config.MaxColors = n
	}
	if v := b.env(EnvSampleWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid integer %q", EnvSampleWidth, v)
		}
		config.SampleWidth = n
	}
	return config, nil
}

func (b *Builder) env(key string) string {
	return strings.TrimSpace(b.getenv(key))
}
