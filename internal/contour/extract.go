package contour

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Threshold is the alpha below which a sample counts as transparent.
const Threshold = 128

// Result describes how a silhouette was produced.
type Result struct {
	Mask   *image.Alpha
	Points int  // traced polygon vertices, 0 on a fast path
	Empty  bool // nothing opaque was found
	Full   bool // every sample was opaque
}

// Extract builds a binary silhouette of src at width x height.
//
// src is resampled into a (density+2) square grid whose outer ring stays
// transparent, so the walk always closes inside the grid. The traced polygon
// is scaled back to the requested size and filled.
func Extract(src image.Image, density, width, height int) Result {
	out := image.NewAlpha(image.Rect(0, 0, width, height))
	if density < 1 || width <= 0 || height <= 0 || src.Bounds().Empty() {
		return Result{Mask: out, Empty: true}
	}

	side := density + 2
	grid := image.NewAlpha(image.Rect(0, 0, side, side))
	inner := image.Rect(1, 1, density+1, density+1)
	xdraw.ApproxBiLinear.Scale(grid, inner, src, src.Bounds(), xdraw.Src, nil)

	transparent := func(x, y int) bool {
		if x < 0 || y < 0 || x >= side || y >= side {
			return true
		}
		return grid.Pix[y*grid.Stride+x] < Threshold
	}

	opaque := 0
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			if !transparent(x, y) {
				opaque++
			}
		}
	}
	switch opaque {
	case 0:
		return Result{Mask: out, Empty: true}
	case density * density:
		fill(out, 0xff)
		return Result{Mask: out, Full: true}
	}

	pts := Trace(side, side, transparent)
	if len(pts) < 2 {
		return Result{Mask: out, Empty: true}
	}

	sx := float64(width) / float64(density)
	sy := float64(height) / float64(density)
	poly := make([][2]float64, len(pts))
	for i, p := range pts {
		poly[i] = [2]float64{float64(p.X-1) * sx, float64(p.Y-1) * sy}
	}
	FillPolygon(out, poly)
	return Result{Mask: out, Points: len(pts)}
}

// FillPolygon fills the closed polygon into dst and binarizes the coverage:
// pixels at least half covered become opaque, the rest are cleared.
func FillPolygon(dst *image.Alpha, poly [][2]float64) {
	b := dst.Bounds()
	clear(dst.Pix)
	if len(poly) < 3 || b.Empty() {
		return
	}
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = xdraw.Src
	r.MoveTo(float32(poly[0][0]), float32(poly[0][1]))
	for _, p := range poly[1:] {
		r.LineTo(float32(p[0]), float32(p[1]))
	}
	r.ClosePath()
	r.Draw(dst, b, image.Opaque, image.Point{})

	for i, a := range dst.Pix {
		if a >= Threshold {
			dst.Pix[i] = 0xff
		} else {
			dst.Pix[i] = 0
		}
	}
}

func fill(dst *image.Alpha, v uint8) {
	for i := range dst.Pix {
		dst.Pix[i] = v
	}
}
