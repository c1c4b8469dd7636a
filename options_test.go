package tokenlayer

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.density != DefaultMaskDensity {
		t.Errorf("density = %d, want %d", o.density, DefaultMaskDensity)
	}
	if o.minCanvasSize != MinCanvasSize {
		t.Errorf("minCanvasSize = %d, want %d", o.minCanvasSize, MinCanvasSize)
	}
	if o.rayMasker != nil {
		t.Error("rayMasker should default to nil")
	}
	a, b := o.newID(), o.newID()
	if a == "" || a == b {
		t.Errorf("default ids %q and %q are not unique", a, b)
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	o := applyOptions([]Option{WithMaskDensity(0), WithMinCanvasSize(-3), WithIDGenerator(nil)})
	if o.density != DefaultMaskDensity || o.minCanvasSize != MinCanvasSize || o.newID == nil {
		t.Errorf("invalid option values were applied: %+v", o)
	}
}

func TestWithRayMaskerInjection(t *testing.T) {
	called := false
	masker := func(src *Pixmap) *Pixmap {
		called = true
		m := NewPixmap(src.Width(), src.Height())
		m.Fill(Black)
		return m
	}
	l, err := FromColor(White, 6, 6, WithConfig(Config{UseRayCastMask: true}), WithRayMasker(masker))
	if err != nil {
		t.Fatalf("FromColor: %v", err)
	}
	if !called {
		t.Error("injected ray masker was not used")
	}
	if opaqueCount(l.SourceMask()) != 36 {
		t.Errorf("source mask opaque count = %d, want 36", opaqueCount(l.SourceMask()))
	}
}

func TestWithIDGenerator(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return "layer-" + string(rune('0'+n))
	}
	l, err := FromColor(White, 2, 2, WithIDGenerator(gen))
	if err != nil {
		t.Fatal(err)
	}
	if l.ID() != "layer-1" {
		t.Errorf("ID() = %q, want layer-1", l.ID())
	}
}
