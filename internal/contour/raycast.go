package contour

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// DefaultRays is the number of rays cast by RayCast when rays < 1.
const DefaultRays = 360

// RayCast builds a star-shaped silhouette of src. Rays are cast from the
// raster center; each ray keeps the farthest opaque sample it crosses and the
// polygon through those hits is filled.
func RayCast(src image.Image, rays int) Result {
	b := src.Bounds()
	out := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	if b.Empty() {
		return Result{Mask: out, Empty: true}
	}
	if rays < 1 {
		rays = DefaultRays
	}

	alpha := image.NewAlpha(out.Bounds())
	xdraw.Draw(alpha, alpha.Bounds(), src, b.Min, xdraw.Src)

	w, h := b.Dx(), b.Dy()
	cx, cy := float64(w)/2, float64(h)/2
	maxR := math.Hypot(cx, cy)

	poly := make([][2]float64, 0, rays)
	hits := 0
	for i := 0; i < rays; i++ {
		theta := 2 * math.Pi * float64(i) / float64(rays)
		dx, dy := math.Cos(theta), math.Sin(theta)
		reach := 0.0
		for r := 0.0; r <= maxR; r++ {
			x, y := int(cx+dx*r), int(cy+dy*r)
			if x < 0 || y < 0 || x >= w || y >= h {
				break
			}
			if alpha.Pix[y*alpha.Stride+x] >= Threshold {
				reach = r + 1
			}
		}
		if reach > 0 {
			hits++
		}
		poly = append(poly, [2]float64{cx + dx*reach, cy + dy*reach})
	}
	if hits == 0 {
		return Result{Mask: out, Empty: true}
	}
	FillPolygon(out, poly)
	return Result{Mask: out, Points: len(poly)}
}
