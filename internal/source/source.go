// Package source resolves the single source colour a scheme is generated
// from, either by extracting it from an image or by parsing a literal.
package source

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
	"github.com/jmylchreest/tonal/internal/material/quantize"
	"github.com/jmylchreest/tonal/internal/material/score"
)

// Input is what a source colour is resolved from: an ImageInput or a
// ColorInput. The set is closed.
type Input interface {
	isInput()
	String() string
}

// ImageInput extracts the source colour from the image at Path.
type ImageInput struct {
	Path string
}

// ColorInput uses the literal hex colour Hex as the source colour.
type ColorInput struct {
	Hex string
}

func (ImageInput) isInput() {}
func (ColorInput) isInput() {}

func (i ImageInput) String() string { return "image " + i.Path }
func (i ColorInput) String() string { return "color " + i.Hex }

// Resolver turns an Input into a source colour.
type Resolver struct {
	loader    image.Loader
	sampler   *image.Sampler
	maxColors int
	logger    hclog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLoader replaces the image loader.
func WithLoader(l image.Loader) Option {
	return func(r *Resolver) { r.loader = l }
}

// WithSampler replaces the image sampler.
func WithSampler(s *image.Sampler) Option {
	return func(r *Resolver) { r.sampler = s }
}

// WithMaxColors sets the quantizer's palette bound.
func WithMaxColors(n int) Option {
	return func(r *Resolver) { r.maxColors = n }
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver returns a Resolver reading files from disk, sampling at the
// default width and quantizing to quantize.DefaultMaxColors.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		loader:    image.NewLoader(),
		sampler:   image.NewSampler(),
		maxColors: quantize.DefaultMaxColors,
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the source colour for in.
func (r *Resolver) Resolve(in Input) (colour.ARGB, error) {
	switch in := in.(type) {
	case ImageInput:
		return r.fromImage(in.Path)
	case ColorInput:
		c, err := colour.ParseHex(in.Hex)
		if err != nil {
			return colour.ARGB{}, fmt.Errorf("failed to parse colour: %w", err)
		}
		r.logger.Debug("parsed source colour", "hex", c.Hex())
		return c, nil
	default:
		return colour.ARGB{}, fmt.Errorf("unsupported input type %T", in)
	}
}

func (r *Resolver) fromImage(path string) (colour.ARGB, error) {
	img, err := r.loader.Load(path)
	if err != nil {
		return colour.ARGB{}, fmt.Errorf("failed to load image: %w", err)
	}
	b := img.Bounds()
	r.logger.Debug("loaded image", "path", path, "width", b.Dx(), "height", b.Dy())

	pixels, err := r.sampler.Sample(img)
	if err != nil {
		return colour.ARGB{}, fmt.Errorf("failed to sample image: %w", err)
	}
	r.logger.Debug("sampled image", "pixels", len(pixels))

	population := quantize.Celebi(pixels, r.maxColors)
	r.logger.Debug("quantized image", "colours", len(population))

	ranked := score.Score(population)
	best := ranked[0]
	r.logger.Debug("selected source colour", "hex", best.Hex(), "candidates", len(ranked))

	return colour.ARGB{A: 255, R: best.R, G: best.G, B: best.B}, nil
}
