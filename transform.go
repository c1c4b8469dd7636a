package tokenlayer

import "math"

// RotationStep multiplies every Rotate delta. Rotation steppers in the token
// editor send half-steps, so a delta of 1 turns the layer by 2 degrees.
const RotationStep = 2

// Transform is the affine state of a layer.
//
// Rotation and mirror are applied about Center as an affine; Position and
// Scale are applied when the transformed raster is drawn onto the canvas.
type Transform struct {
	Position Point   // top-left of the drawn raster in canvas pixels
	Scale    float64 // uniform, always > 0
	Rotation float64 // degrees, clockwise, unbounded
	Mirror   float64 // +1 or -1 (horizontal flip)
	Center   Point   // fixed at creation: the source raster center
}

// Affine returns the rotation/mirror matrix for t.
func (t Transform) Affine() Matrix {
	return Compose(t.Center, t.Mirror, t.Rotation)
}

// Compose builds translate(center) · scale(mirror, 1) · rotate(degrees) ·
// translate(-center). Source pixels and masks are both reprojected with this
// matrix, so it must not change order.
func Compose(center Point, mirror, degrees float64) Matrix {
	return Translate(center.X, center.Y).
		Multiply(Scale(mirror, 1)).
		Multiply(Rotate(degrees * math.Pi / 180)).
		Multiply(Translate(-center.X, -center.Y))
}
