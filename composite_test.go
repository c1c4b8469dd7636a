package tokenlayer

import (
	"errors"
	"testing"
)

func TestParseCompositeOp(t *testing.T) {
	tests := []struct {
		name string
		want CompositeOp
	}{
		{"source-over", OpSourceOver},
		{"source-in", OpSourceIn},
		{"destination-out", OpDestinationOut},
		{"color", OpColor},
		{"luminosity", OpLuminosity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompositeOp(tt.name)
			if err != nil {
				t.Fatalf("ParseCompositeOp(%q): %v", tt.name, err)
			}
			if got != tt.want || got.String() != tt.name {
				t.Errorf("ParseCompositeOp(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if _, err := ParseCompositeOp("sideways"); !errors.Is(err, ErrUnknownCompositeOp) {
		t.Errorf("unknown op error = %v, want ErrUnknownCompositeOp", err)
	}
}

func TestLayerCompositeOpAppliesToContent(t *testing.T) {
	v, _, b, _ := stackABC(t)
	b.SetMaskCompositeOp(OpSourceOut)
	v.Redraw()

	// source-out keeps the layer only where the provider mask is absent.
	if b.Canvas().GetPixel(3, 8) != Transparent || b.Canvas().GetPixel(12, 8) != White {
		t.Error("mask composite operation was not used for the layer content")
	}
}
