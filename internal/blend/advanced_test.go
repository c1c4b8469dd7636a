package blend

import "testing"

func TestSeparableModesOpaque(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		s, d byte
		want byte
	}{
		{"multiply", Multiply, 128, 128, 64},
		{"screen", Screen, 128, 128, 192},
		{"darken", Darken, 100, 200, 100},
		{"lighten", Lighten, 100, 200, 200},
		{"difference", Difference, 200, 50, 150},
		{"exclusion black", Exclusion, 0, 77, 77},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, a := FuncFor(tt.op)(tt.s, 0, 0, 255, tt.d, 0, 0, 255)
			if diff := int(r) - int(tt.want); diff < -1 || diff > 1 {
				t.Errorf("%v(%d, %d) = %d, want %d", tt.op, tt.s, tt.d, r, tt.want)
			}
			if a != 255 {
				t.Errorf("%v alpha = %d, want 255", tt.op, a)
			}
		})
	}
}

func TestColorModeKeepsBackdropLuminosity(t *testing.T) {
	// Gray backdrop tinted red: hue comes from the source, luminosity stays.
	r, g, b, a := FuncFor(Color)(255, 0, 0, 255, 128, 128, 128, 255)
	if a != 255 {
		t.Fatalf("alpha = %d, want 255", a)
	}
	if r <= g || r <= b {
		t.Errorf("color blend (%d,%d,%d) is not red dominated", r, g, b)
	}
	l := lum(unit(r), unit(g), unit(b))
	if want := lum(unit(128), unit(128), unit(128)); l < want-0.02 || l > want+0.02 {
		t.Errorf("luminosity = %.3f, want %.3f", l, want)
	}
}

func TestNonSeparableTransparentInputs(t *testing.T) {
	for _, op := range []Op{Hue, Saturation, Color, Luminosity} {
		r, g, b, a := FuncFor(op)(0, 0, 0, 0, 10, 20, 30, 40)
		if r != 10 || g != 20 || b != 30 || a != 40 {
			t.Errorf("%v with empty source changed destination", op)
		}
		r, g, b, a = FuncFor(op)(10, 20, 30, 40, 0, 0, 0, 0)
		if r != 10 || g != 20 || b != 30 || a != 40 {
			t.Errorf("%v onto empty destination did not copy source", op)
		}
	}
}

func TestSetSatOrdersChannels(t *testing.T) {
	r, g, b := setSat(0.2, 0.8, 0.5, 0.6)
	if r != 0 || g != 0.6 {
		t.Errorf("setSat = (%v, %v, %v), want min 0 and max 0.6", r, g, b)
	}
	if b <= 0 || b >= 0.6 {
		t.Errorf("mid channel %v out of range", b)
	}
}
