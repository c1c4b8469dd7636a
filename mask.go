package tokenlayer

import (
	"image"

	"github.com/gogpu/tokenlayer/internal/contour"
)

// DefaultMaskDensity is the side of the grid the contour walk runs on.
// Larger values follow the silhouette more closely at quadratic cost.
const DefaultMaskDensity = 400

// RayMasker generates a silhouette mask for a source raster. The returned
// pixmap must have the source's dimensions; only its alpha is consulted.
type RayMasker func(src *Pixmap) *Pixmap

// ExtractContourMask traces the outer silhouette of src on a density x density
// grid and returns it as a binary mask of the same size as src: opaque black
// inside the contour, transparent outside.
func ExtractContourMask(src *Pixmap, density int) *Pixmap {
	return MaskFromAlpha(contour.Extract(src.NRGBA(), density, src.width, src.height).Mask)
}

// RayCastMask is the built-in RayMasker. It casts rays from the center of
// src and fills the polygon through the farthest opaque sample of each.
func RayCastMask(src *Pixmap) *Pixmap {
	return MaskFromAlpha(contour.RayCast(src.NRGBA(), contour.DefaultRays).Mask)
}

// MaskFromAlpha creates a black mask pixmap carrying a's alpha.
func MaskFromAlpha(a *image.Alpha) *Pixmap {
	b := a.Bounds()
	m := NewPixmap(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		row := a.Pix[y*a.Stride : y*a.Stride+m.width]
		for x, v := range row {
			m.data[(y*m.width+x)*4+3] = v
		}
	}
	return m
}

// MaskAlpha extracts the alpha channel of a mask pixmap.
func MaskAlpha(m *Pixmap) *image.Alpha {
	a := image.NewAlpha(image.Rect(0, 0, m.width, m.height))
	for i := range a.Pix {
		a.Pix[i] = m.data[i*4+3]
	}
	return a
}

// opaqueCount returns the number of fully opaque pixels in p.
func opaqueCount(p *Pixmap) int {
	n := 0
	for i := 3; i < len(p.data); i += 4 {
		if p.data[i] == 0xff {
			n++
		}
	}
	return n
}
