package tokenlayer

import (
	"fmt"

	"github.com/gogpu/tokenlayer/internal/blend"
)

// CompositeOp selects how drawn pixels combine with the pixels already on a
// surface. The names follow the canvas globalCompositeOperation vocabulary.
type CompositeOp = blend.Op

// Composite operations.
const (
	OpSourceOver      = blend.SourceOver
	OpSourceIn        = blend.SourceIn
	OpSourceOut       = blend.SourceOut
	OpSourceAtop      = blend.SourceAtop
	OpDestinationOver = blend.DestinationOver
	OpDestinationIn   = blend.DestinationIn
	OpDestinationOut  = blend.DestinationOut
	OpDestinationAtop = blend.DestinationAtop
	OpLighter         = blend.Lighter
	OpCopy            = blend.Copy
	OpXor             = blend.Xor
	OpMultiply        = blend.Multiply
	OpScreen          = blend.Screen
	OpOverlay         = blend.Overlay
	OpDarken          = blend.Darken
	OpLighten         = blend.Lighten
	OpColorDodge      = blend.ColorDodge
	OpColorBurn       = blend.ColorBurn
	OpHardLight       = blend.HardLight
	OpSoftLight       = blend.SoftLight
	OpDifference      = blend.Difference
	OpExclusion       = blend.Exclusion
	OpHue             = blend.Hue
	OpSaturation      = blend.Saturation
	OpColor           = blend.Color
	OpLuminosity      = blend.Luminosity
)

// ParseCompositeOp returns the operation with the given canvas name,
// e.g. "source-in" or "color".
func ParseCompositeOp(name string) (CompositeOp, error) {
	op, ok := blend.Parse(name)
	if !ok {
		return OpSourceOver, fmt.Errorf("%w: %q", ErrUnknownCompositeOp, name)
	}
	return op, nil
}
