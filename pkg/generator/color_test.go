package generator

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#3b82f6", color.RGBA{0x3b, 0x82, 0xf6, 255}, false},
		{"ef4444", color.RGBA{0xef, 0x44, 0x44, 255}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"White", color.RGBA{255, 255, 255, 255}, false},
		{"#12345", color.RGBA{}, true},
		{"#zz0000", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMustColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustColor did not panic on invalid input")
		}
	}()
	MustColor("not-a-color")
}

func TestNewSolidImage(t *testing.T) {
	c := color.RGBA{248, 250, 252, 255}
	img := NewSolidImage(12, 8, c)

	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 12x8", b)
	}
	for _, p := range [][2]int{{0, 0}, {11, 7}, {5, 3}} {
		if got := img.RGBAAt(p[0], p[1]); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}
