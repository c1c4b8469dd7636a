package contour

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func solidAlpha(w, h int, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = a
	}
	return img
}

func disc(size int, r float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) <= r {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}
	return img
}

func opaqueCount(m *image.Alpha) int {
	n := 0
	for _, a := range m.Pix {
		if a == 0xff {
			n++
		}
	}
	return n
}

func TestTraceSinglePixel(t *testing.T) {
	transparent := func(x, y int) bool { return x != 2 || y != 1 }
	got := Trace(5, 4, transparent)
	want := []image.Point{{2, 1}, {2, 2}, {3, 2}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("Trace() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTraceRectangleCorners(t *testing.T) {
	// Opaque block from (1,1) to (4,3) inclusive.
	transparent := func(x, y int) bool { return x < 1 || x > 4 || y < 1 || y > 3 }
	got := Trace(6, 5, transparent)
	want := []image.Point{{1, 1}, {1, 4}, {5, 4}, {5, 1}}
	if len(got) != len(want) {
		t.Fatalf("Trace() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTraceEmpty(t *testing.T) {
	if pts := Trace(4, 4, func(int, int) bool { return true }); pts != nil {
		t.Errorf("Trace() on empty grid = %v, want nil", pts)
	}
}

func TestExtractFastPaths(t *testing.T) {
	tests := []struct {
		name  string
		alpha uint8
		want  uint8
	}{
		{"opaque", 255, 255},
		{"transparent", 0, 0},
		{"below threshold", 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Extract(solidAlpha(8, 8, tt.alpha), 400, 8, 8)
			if res.Mask.Bounds() != image.Rect(0, 0, 8, 8) {
				t.Fatalf("bounds = %v", res.Mask.Bounds())
			}
			for i, a := range res.Mask.Pix {
				if a != tt.want {
					t.Fatalf("pixel %d alpha = %d, want %d", i, a, tt.want)
				}
			}
			if res.Points != 0 {
				t.Errorf("Points = %d on a fast path", res.Points)
			}
		})
	}
}

func TestExtractCircleArea(t *testing.T) {
	res := Extract(disc(100, 45), 100, 100, 100)
	want := math.Pi * 45 * 45
	got := float64(opaqueCount(res.Mask))
	if math.Abs(got-want) > want*0.1 {
		t.Errorf("opaque count = %v, want within 10%% of %v", got, want)
	}
	if res.Points < 4 {
		t.Errorf("Points = %d, want a traced polygon", res.Points)
	}
	if res.Mask.AlphaAt(2, 2).A != 0 || res.Mask.AlphaAt(50, 50).A != 0xff {
		t.Error("corner should be cleared and center filled")
	}
}

func TestExtractIsBinary(t *testing.T) {
	res := Extract(disc(64, 20), 40, 128, 96)
	for i, a := range res.Mask.Pix {
		if a != 0 && a != 0xff {
			t.Fatalf("pixel %d alpha = %d, want 0 or 255", i, a)
		}
	}
}

func TestExtractFirstBlobOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for y := 2; y < 10; y++ {
		for x := 2; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
			img.SetNRGBA(x+25, y+8, color.NRGBA{A: 255})
		}
	}
	res := Extract(img, 40, 40, 20)
	if res.Mask.AlphaAt(5, 5).A != 0xff {
		t.Error("first blob should be filled")
	}
	if res.Mask.AlphaAt(30, 13).A != 0 {
		t.Error("second blob should not be traced")
	}
}

func TestRayCast(t *testing.T) {
	res := RayCast(disc(80, 30), 0)
	want := math.Pi * 30 * 30
	got := float64(opaqueCount(res.Mask))
	if math.Abs(got-want) > want*0.1 {
		t.Errorf("opaque count = %v, want within 10%% of %v", got, want)
	}
	if res.Points != DefaultRays {
		t.Errorf("Points = %d, want %d", res.Points, DefaultRays)
	}

	empty := RayCast(solidAlpha(10, 10, 0), 90)
	if !empty.Empty || opaqueCount(empty.Mask) != 0 {
		t.Error("transparent source should give an empty ray mask")
	}
}

func TestTraceIgnoresLaterRegions(t *testing.T) {
	// Pixel (1,1) comes first in row-major order; the block at (4..5, 3..4)
	// is a separate region.
	transparent := func(x, y int) bool {
		if x == 1 && y == 1 {
			return false
		}
		return x < 4 || x > 5 || y < 3 || y > 4
	}
	got := Trace(7, 6, transparent)
	want := []image.Point{{1, 1}, {1, 2}, {2, 2}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("Trace() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
