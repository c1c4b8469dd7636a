package tokenlayer

import (
	"math"
	"testing"
)

func TestComposeKeepsCenterFixed(t *testing.T) {
	tests := []struct {
		name    string
		mirror  float64
		degrees float64
	}{
		{"identity", 1, 0},
		{"mirror", -1, 0},
		{"quarter turn", 1, 90},
		{"mirrored turn", -1, 37},
		{"negative", 1, -450},
	}
	c := Pt(40, 25)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(c, tt.mirror, tt.degrees).TransformPoint(c)
			if math.Abs(got.X-c.X) > 1e-9 || math.Abs(got.Y-c.Y) > 1e-9 {
				t.Errorf("center maps to %v, want %v", got, c)
			}
		})
	}
}

func TestComposeOrder(t *testing.T) {
	c := Pt(10, 10)

	// Rotation is clockwise with y down: a point right of center moves below it.
	got := Compose(c, 1, 90).TransformPoint(Pt(20, 10))
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y-20) > 1e-9 {
		t.Errorf("rotate 90 = %v, want (10, 20)", got)
	}

	// Mirror is applied after rotation in point space: rotate, then flip x.
	got = Compose(c, -1, 90).TransformPoint(Pt(20, 10))
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y-20) > 1e-9 {
		t.Errorf("mirrored rotate 90 = %v, want (10, 20)", got)
	}
	got = Compose(c, -1, 90).TransformPoint(Pt(10, 0))
	if math.Abs(got.X-0) > 1e-9 || math.Abs(got.Y-10) > 1e-9 {
		t.Errorf("mirrored rotate 90 of top = %v, want (0, 10)", got)
	}
}

func TestComposeIdentityIsExact(t *testing.T) {
	if m := Compose(Pt(500, 500), 1, 0); m != Identity() {
		t.Errorf("Compose(0 deg, no mirror) = %+v, want identity", m)
	}
}

func TestComposeMirrorTwice(t *testing.T) {
	c := Pt(33, 12)
	m := Compose(c, -1, 0).Multiply(Compose(c, -1, 0))
	p := m.TransformPoint(Pt(5, 7))
	if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y-7) > 1e-9 {
		t.Errorf("double mirror maps (5,7) to %v", p)
	}
}
