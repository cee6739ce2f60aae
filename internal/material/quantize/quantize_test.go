package quantize

import (
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
)

var (
	red   = colour.RGB{R: 255}
	green = colour.RGB{G: 255}
	blue  = colour.RGB{B: 255}
)

func repeat(c colour.RGB, n int) []colour.ARGB {
	out := make([]colour.ARGB, n)
	for i := range out {
		out[i] = colour.ARGB{A: 255, R: c.R, G: c.G, B: c.B}
	}
	return out
}

func TestWuSingleColour(t *testing.T) {
	got := Wu(map[colour.RGB]int{red: 10}, 16)
	if len(got) != 1 || got[0] != red {
		t.Errorf("Wu() = %v, want [%v]", got, red)
	}
}

func TestWuSeparatesColours(t *testing.T) {
	got := Wu(map[colour.RGB]int{red: 10, green: 10, blue: 10}, 16)
	if len(got) != 3 {
		t.Fatalf("Wu() returned %d colours, want 3: %v", len(got), got)
	}
	for _, want := range []colour.RGB{red, green, blue} {
		found := false
		for _, c := range got {
			if c == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Wu() = %v, missing %v", got, want)
		}
	}
}

func TestWuEmpty(t *testing.T) {
	if got := Wu(nil, 16); got != nil {
		t.Errorf("Wu(nil) = %v, want nil", got)
	}
}

func TestCelebi(t *testing.T) {
	pixels := append(repeat(red, 30), repeat(blue, 10)...)

	got := Celebi(pixels, DefaultMaxColors)
	if len(got) != 2 {
		t.Fatalf("Celebi() returned %d colours, want 2: %v", len(got), got)
	}
	if got[red] != 30 {
		t.Errorf("Celebi()[red] = %d, want 30", got[red])
	}
	if got[blue] != 10 {
		t.Errorf("Celebi()[blue] = %d, want 10", got[blue])
	}
}

func TestCelebiBound(t *testing.T) {
	var pixels []colour.ARGB
	for r := 0; r < 256; r += 16 {
		for g := 0; g < 256; g += 16 {
			pixels = append(pixels, colour.ARGB{A: 255, R: uint8(r), G: uint8(g), B: 128})
		}
	}

	got := Celebi(pixels, 8)
	if len(got) == 0 || len(got) > 8 {
		t.Fatalf("Celebi() returned %d colours, want 1-8", len(got))
	}
	total := 0
	for _, n := range got {
		total += n
	}
	if total != len(pixels) {
		t.Errorf("Celebi() populations sum to %d, want %d", total, len(pixels))
	}
}

func TestCelebiIgnoresTranslucent(t *testing.T) {
	pixels := repeat(red, 5)
	pixels = append(pixels, colour.ARGB{A: 10, B: 255}, colour.ARGB{A: 0, G: 255})

	got := Celebi(pixels, DefaultMaxColors)
	if len(got) != 1 || got[red] != 5 {
		t.Errorf("Celebi() = %v, want only red with 5 pixels", got)
	}
}

func TestCelebiAllTranslucent(t *testing.T) {
	pixels := []colour.ARGB{{A: 0, R: 255}, {A: 0, R: 255}}

	got := Celebi(pixels, DefaultMaxColors)
	if got[red] != 2 {
		t.Errorf("Celebi() = %v, want red with 2 pixels", got)
	}
}

func TestCelebiEmpty(t *testing.T) {
	if got := Celebi(nil, DefaultMaxColors); len(got) != 0 {
		t.Errorf("Celebi(nil) = %v, want empty", got)
	}
}
