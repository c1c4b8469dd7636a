package tokenlayer

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	const eps = 1e-9

	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90 is clockwise with y down", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"mirror", Scale(-1, 1), Pt(2, 5), Pt(-2, 5)},
		{"translate after scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixIntegerOffset(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		x, y   int
		wantOK bool
	}{
		{"identity", Identity(), 0, 0, true},
		{"whole pixels", Translate(3, -2), 3, -2, true},
		{"fractional", Translate(0.5, 0), 0, 0, false},
		{"scaled", Scale(2, 2), 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := tt.m.integerOffset()
			if ok != tt.wantOK || x != tt.x || y != tt.y {
				t.Errorf("integerOffset() = (%d, %d, %v), want (%d, %d, %v)", x, y, ok, tt.x, tt.y, tt.wantOK)
			}
		})
	}
}
