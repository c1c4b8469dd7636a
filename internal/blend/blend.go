// Package blend implements the compositing operators used when one raster is
// drawn onto another.
//
// All operators work on premultiplied alpha values in the range 0-255 and
// follow the W3C Compositing and Blending Level 1 definitions, which are the
// ones behind the canvas globalCompositeOperation names.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Op identifies a compositing operator.
type Op uint8

const (
	// Porter-Duff operators
	SourceOver      Op = iota // S + D*(1-Sa) [default]
	SourceIn                  // S*Da
	SourceOut                 // S*(1-Da)
	SourceAtop                // S*Da + D*(1-Sa)
	DestinationOver           // S*(1-Da) + D
	DestinationIn             // D*Sa
	DestinationOut            // D*(1-Sa)
	DestinationAtop           // S*(1-Da) + D*Sa
	Lighter                   // S + D, clamped
	Copy                      // S
	Xor                       // S*(1-Da) + D*(1-Sa)

	// Separable blend modes
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	// Non-separable blend modes
	Hue
	Saturation
	Color
	Luminosity

	opCount
)

var opNames = [opCount]string{
	SourceOver:      "source-over",
	SourceIn:        "source-in",
	SourceOut:       "source-out",
	SourceAtop:      "source-atop",
	DestinationOver: "destination-over",
	DestinationIn:   "destination-in",
	DestinationOut:  "destination-out",
	DestinationAtop: "destination-atop",
	Lighter:         "lighter",
	Copy:            "copy",
	Xor:             "xor",
	Multiply:        "multiply",
	Screen:          "screen",
	Overlay:         "overlay",
	Darken:          "darken",
	Lighten:         "lighten",
	ColorDodge:      "color-dodge",
	ColorBurn:       "color-burn",
	HardLight:       "hard-light",
	SoftLight:       "soft-light",
	Difference:      "difference",
	Exclusion:       "exclusion",
	Hue:             "hue",
	Saturation:      "saturation",
	Color:           "color",
	Luminosity:      "luminosity",
}

// String returns the canvas name of the operator.
func (op Op) String() string {
	if op >= opCount {
		return "unknown"
	}
	return opNames[op]
}

// Valid reports whether op is a known operator.
func (op Op) Valid() bool { return op < opCount }

// Parse returns the operator with the given canvas name.
func Parse(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return SourceOver, false
}

// Func is the signature shared by all operators.
// Inputs and outputs are premultiplied, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the implementation of op.
// Unknown operators fall back to SourceOver.
func FuncFor(op Op) Func {
	switch op {
	case SourceOver:
		return sourceOver
	case SourceIn:
		return sourceIn
	case SourceOut:
		return sourceOut
	case SourceAtop:
		return sourceAtop
	case DestinationOver:
		return destinationOver
	case DestinationIn:
		return destinationIn
	case DestinationOut:
		return destinationOut
	case DestinationAtop:
		return destinationAtop
	case Lighter:
		return lighter
	case Copy:
		return copySource
	case Xor:
		return xor
	case Multiply:
		return separable(multiplyChannel)
	case Screen:
		return separable(screenChannel)
	case Overlay:
		return separable(overlayChannel)
	case Darken:
		return separable(darkenChannel)
	case Lighten:
		return separable(lightenChannel)
	case ColorDodge:
		return separable(colorDodgeChannel)
	case ColorBurn:
		return separable(colorBurnChannel)
	case HardLight:
		return separable(hardLightChannel)
	case SoftLight:
		return separable(softLightChannel)
	case Difference:
		return separable(differenceChannel)
	case Exclusion:
		return separable(exclusionChannel)
	case Hue:
		return nonSeparable(hueMix)
	case Saturation:
		return nonSeparable(saturationMix)
	case Color:
		return nonSeparable(colorMix)
	case Luminosity:
		return nonSeparable(luminosityMix)
	default:
		return sourceOver
	}
}

// Unbounded reports whether op changes destination pixels where the source
// is fully transparent. Bounded operators leave those pixels untouched.
func (op Op) Unbounded() bool {
	switch op {
	case SourceIn, SourceOut, DestinationIn, DestinationAtop, Copy:
		return true
	default:
		return false
	}
}
