package tokenlayer

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"half red", Color{R: 255, A: 128}, 0x8080, 0, 0, 0x8080},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestColorOf(t *testing.T) {
	if got := ColorOf(color.NRGBA{R: 128, A: 128}); got != (Color{R: 128, A: 128}) {
		t.Errorf("ColorOf(NRGBA) = %v, want {128 0 0 128}", got)
	}
	if got := ColorOf(color.Gray{Y: 200}); got != RGB(200, 200, 200) {
		t.Errorf("ColorOf(Gray) = %v, want opaque 200 gray", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", RGB(255, 0, 0)},
		{"00ff00", RGB(0, 255, 0)},
		{"#abc", RGB(0xaa, 0xbb, 0xcc)},
		{"#abcd", Color{0xaa, 0xbb, 0xcc, 0xdd}},
		{"#11223344", Color{0x11, 0x22, 0x33, 0x44}},
		{"#FfFfFf", White},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gg0000", "red"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
	if Hex("nope") != Black {
		t.Error("Hex should fall back to black")
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, c := range []Color{White, RGB(1, 2, 3), {R: 10, G: 20, B: 30, A: 40}} {
		if got := Hex(c.Hex()); got != c {
			t.Errorf("Hex(%q) = %v, want %v", c.Hex(), got, c)
		}
	}
}

func TestIsNeighbor(t *testing.T) {
	a, b := RGB(100, 100, 100), RGB(120, 90, 100)
	if !a.IsNeighbor(b, 20) || !b.IsNeighbor(a, 20) {
		t.Error("colors 20 apart should be neighbors at tolerance 20")
	}
	if a.IsNeighbor(b, 19) || b.IsNeighbor(a, 19) {
		t.Error("colors 20 apart should not be neighbors at tolerance 19")
	}
}
