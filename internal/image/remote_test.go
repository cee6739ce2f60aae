package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"https://example.com/a.png", true},
		{"http://example.com/a.png", true},
		{"/tmp/a.png", false},
		{"ftp://example.com/a.png", false},
		{"httpfile.png", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.path); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestSourceLoaderRemote(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write(buf.Bytes())
		case "/garbage.png":
			_, _ = w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader()

	got, err := l.Load(srv.URL + "/ok.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("Load() bounds = %v, want %v", got.Bounds(), img.Bounds())
	}

	if _, err := l.Load(srv.URL + "/garbage.png"); !errors.Is(err, ErrDecode) {
		t.Errorf("Load(garbage) error = %v, want ErrDecode", err)
	}
	if _, err := l.Load(srv.URL + "/missing.png"); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestSourceLoaderLocal(t *testing.T) {
	if _, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load() error = nil, want error for a missing local file")
	}
	if _, err := (&SourceLoader{}).Load(""); err == nil {
		t.Error("Load(\"\") error = nil, want error")
	}
}
