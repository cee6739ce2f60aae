package source

import (
	"errors"
	stdimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
)

// stubLoader returns a fixed image for any path.
type stubLoader struct {
	img stdimage.Image
	err error
}

func (s stubLoader) Load(string) (stdimage.Image, error) {
	return s.img, s.err
}

func halves(w, h int, left, right color.Color) *stdimage.RGBA {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/4 {
				img.Set(x, y, left)
			} else {
				img.Set(x, y, right)
			}
		}
	}
	return img
}

func TestResolveColour(t *testing.T) {
	got, err := NewResolver().Resolve(ColorInput{Hex: "#a1b2c3"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := colour.ARGB{A: 255, R: 0xa1, G: 0xb2, B: 0xc3}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolveColourInvalid(t *testing.T) {
	_, err := NewResolver().Resolve(ColorInput{Hex: "zzzzzz"})
	if !errors.Is(err, colour.ErrInvalidHex) {
		t.Errorf("Resolve() error = %v, want ErrInvalidHex", err)
	}
}

func TestResolveImage(t *testing.T) {
	// A quarter grey, three quarters saturated orange.
	img := halves(256, 128, color.RGBA{R: 128, G: 128, B: 128, A: 255}, color.RGBA{R: 230, G: 120, B: 20, A: 255})

	r := NewResolver(WithLoader(stubLoader{img: img}))
	got, err := r.Resolve(ImageInput{Path: "ignored.png"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.A != 255 {
		t.Errorf("Resolve() alpha = %d, want 255", got.A)
	}
	if got.R < got.B || got.R < 150 {
		t.Errorf("Resolve() = %+v, want the orange to win", got)
	}
}

func TestResolveImageGreyFallsBack(t *testing.T) {
	img := halves(64, 64, color.Black, color.White)

	got, err := NewResolver(WithLoader(stubLoader{img: img})).Resolve(ImageInput{Path: "grey.png"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := colour.ARGB{A: 255, R: 0x42, G: 0x85, B: 0xf4}
	if got != want {
		t.Errorf("Resolve() = %+v, want fallback %+v", got, want)
	}
}

func TestResolveImageFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blue.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	if err := png.Encode(f, halves(100, 50, color.RGBA{B: 200, A: 255}, color.RGBA{B: 200, A: 255})); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	f.Close()

	got, err := NewResolver().Resolve(ImageInput{Path: path})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.B < 150 || got.R > 40 || got.G > 40 {
		t.Errorf("Resolve() = %+v, want close to (0, 0, 200)", got)
	}
}

func TestResolveImageErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.jpg")
	if err := os.WriteFile(garbage, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := NewResolver().Resolve(ImageInput{Path: garbage}); !errors.Is(err, image.ErrDecode) {
		t.Errorf("Resolve(garbage) error = %v, want ErrDecode", err)
	}
	if _, err := NewResolver().Resolve(ImageInput{Path: filepath.Join(dir, "missing.png")}); err == nil {
		t.Error("Resolve(missing) error = nil, want error")
	}
}

func TestInputString(t *testing.T) {
	if got := (ImageInput{Path: "a.png"}).String(); got != "image a.png" {
		t.Errorf("String() = %q", got)
	}
	if got := (ColorInput{Hex: "fff"}).String(); got != "color fff" {
		t.Errorf("String() = %q", got)
	}
}
