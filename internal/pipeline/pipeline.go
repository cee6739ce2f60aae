// Package pipeline runs one tonal invocation end to end: resolve the source
// colour, generate the scheme, correct it and render it.
package pipeline

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/correction"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/material/palette"
	"github.com/jmylchreest/tonal/internal/material/scheme"
	"github.com/jmylchreest/tonal/internal/output"
	"github.com/jmylchreest/tonal/internal/source"
)

// Options configures a run. Zero values fall back to the defaults noted on
// each field.
type Options struct {
	// Mode defaults to scheme.ModeDark.
	Mode scheme.Mode

	// Variant defaults to palette.VariantDefault.
	Variant palette.Variant

	// Format defaults to output.FormatJSON.
	Format output.Format

	// Rules defaults to correction.DefaultRules.
	Rules *correction.Rules

	// Colour enables swatches in the preview format.
	Colour bool

	// MaxColors and SampleWidth tune image extraction; zero means the
	// resolver's defaults.
	MaxColors   int
	SampleWidth int

	// Loader replaces the default file and URL image loader.
	Loader image.Loader

	// Logger defaults to a null logger.
	Logger hclog.Logger
}

// Result is everything a run produced.
type Result struct {
	Source  colour.ARGB
	Scheme  scheme.Scheme
	Mapping output.Mapping

	// Output is the rendered record, ready to be written in one call.
	Output []byte
}

// Run resolves in and renders its corrected scheme. On error nothing is
// rendered. The context is only checked before work starts.
func Run(ctx context.Context, in source.Input, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = withDefaults(opts)
	mode, err := scheme.ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}
	variant, err := palette.ParseVariant(string(opts.Variant))
	if err != nil {
		return nil, err
	}
	opts.Mode, opts.Variant = mode, variant
	logger := opts.Logger

	src, err := resolver(opts).Resolve(in)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved source colour", "input", in.String(), "source", src.Hex())

	generated := scheme.Generate(src, opts.Variant, opts.Mode)
	logger.Debug("generated scheme", "variant", opts.Variant, "mode", opts.Mode)

	corrected := opts.Rules.ApplyWithLogger(generated, opts.Mode, logger.Named("correction"))

	mapping := output.NewMapping(corrected)
	data, err := output.Render(mapping, opts.Format, output.Options{Colour: opts.Colour})
	if err != nil {
		return nil, fmt.Errorf("failed to render scheme: %w", err)
	}

	return &Result{Source: src, Scheme: corrected, Mapping: mapping, Output: data}, nil
}

func withDefaults(opts Options) Options {
	if opts.Mode == "" {
		opts.Mode = scheme.ModeDark
	}
	if opts.Variant == "" {
		opts.Variant = palette.VariantDefault
	}
	if opts.Format == "" {
		opts.Format = output.FormatJSON
	}
	if opts.Rules == nil {
		rules := correction.DefaultRules()
		opts.Rules = &rules
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return opts
}

func resolver(opts Options) *source.Resolver {
	ropts := []source.Option{source.WithLogger(opts.Logger.Named("source"))}
	if opts.Loader != nil {
		ropts = append(ropts, source.WithLoader(opts.Loader))
	}
	if opts.MaxColors > 0 {
		ropts = append(ropts, source.WithMaxColors(opts.MaxColors))
	}
	if opts.SampleWidth > 0 {
		s := image.NewSampler()
		s.Width = opts.SampleWidth
		ropts = append(ropts, source.WithSampler(s))
	}
	return source.NewResolver(ropts...)
}
