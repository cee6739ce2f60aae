package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	httputil "github.com/jmylchreest/tonal/internal/util/http"
)

// IsURL reports whether path names an HTTP(S) resource.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// SourceLoader loads HTTP(S) URLs over the network and everything else
// through Files.
type SourceLoader struct {
	// Files loads local paths. Defaults to a FileLoader.
	Files Loader

	// Fetch controls remote requests.
	Fetch httputil.FetchOptions
}

// NewLoader returns a SourceLoader with default fetch options.
func NewLoader() *SourceLoader {
	return &SourceLoader{Files: NewFileLoader()}
}

// Load loads path from the network if it is a URL, otherwise from disk.
func (l *SourceLoader) Load(path string) (image.Image, error) {
	if !IsURL(path) {
		files := l.Files
		if files == nil {
			files = NewFileLoader()
		}
		return files.Load(path)
	}

	timeout := l.Fetch.Timeout
	if timeout == 0 {
		timeout = httputil.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	data, err := httputil.Fetch(ctx, path, l.Fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

var _ Loader = (*SourceLoader)(nil)

