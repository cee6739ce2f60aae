package image

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/transform"

	"github.com/jmylchreest/tonal/internal/colour"
)

// DefaultSampleWidth is the width images are resized to before quantization.
// Keeping it small bounds the colour variety the quantizer sees, which keeps
// schemes stable across resolutions of the same picture.
const DefaultSampleWidth = 64

// Sampler resizes an image to a fixed width, preserving the aspect ratio,
// and flattens it into ARGB pixels.
type Sampler struct {
	// Width is the target width in pixels. Zero means DefaultSampleWidth.
	Width int

	// Filter is the resampling filter. Nil means Lanczos.
	Filter *transform.ResampleFilter
}

// NewSampler returns a Sampler with the default width and a Lanczos filter.
func NewSampler() *Sampler {
	return &Sampler{Width: DefaultSampleWidth}
}

// TargetSize returns the resized dimensions for a width x height image.
// The height is scaled by the real-valued ratio and rounded, never below 1.
func (s *Sampler) TargetSize(width, height int) (int, int) {
	w := s.width()
	h := int(math.Round(float64(height) * float64(w) / float64(width)))
	return w, max(1, h)
}

// Sample resizes img and returns every pixel of the result, row-major, as
// non-premultiplied ARGB.
func (s *Sampler) Sample(img image.Image) ([]colour.ARGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}

	w, h := s.TargetSize(bounds.Dx(), bounds.Dy())
	resized := transform.Resize(img, w, h, s.filter())

	rb := resized.Bounds()
	pixels := make([]colour.ARGB, 0, rb.Dx()*rb.Dy())
	for y := rb.Min.Y; y < rb.Max.Y; y++ {
		for x := rb.Min.X; x < rb.Max.X; x++ {
			c := color.NRGBAModel.Convert(resized.RGBAAt(x, y)).(color.NRGBA)
			pixels = append(pixels, colour.ARGB{A: c.A, R: c.R, G: c.G, B: c.B})
		}
	}
	if len(pixels) == 0 {
		return nil, fmt.Errorf("resized image has no pixels")
	}
	return pixels, nil
}

func (s *Sampler) width() int {
	if s.Width <= 0 {
		return DefaultSampleWidth
	}
	return s.Width
}

func (s *Sampler) filter() transform.ResampleFilter {
	if s.Filter == nil {
		return transform.Lanczos
	}
	return *s.Filter
}
