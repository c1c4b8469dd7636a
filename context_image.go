package tokenlayer

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// DrawImage draws src into the rectangle (x, y, w, h), transformed by the
// current matrix, then composites it onto the target with the current
// operation and alpha.
//
// Like a canvas drawImage, unbounded operations such as source-in act on the
// whole target, so pixels outside the drawn rectangle are affected too.
func (c *Context) DrawImage(src image.Image, x, y, w, h float64) {
	if pm, ok := src.(*Pixmap); ok {
		src = pm.NRGBA()
	}
	sb := src.Bounds()
	if sb.Empty() || w == 0 || h == 0 {
		return
	}

	m := c.matrix.
		Multiply(Translate(x, y)).
		Multiply(Scale(w/float64(sb.Dx()), h/float64(sb.Dy()))).
		Multiply(Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))

	layer := image.NewRGBA(c.pixmap.Bounds())
	if dx, dy, ok := m.integerOffset(); ok {
		xdraw.Draw(layer, sb.Add(image.Pt(dx, dy)), src, sb.Min, xdraw.Src)
	} else {
		xdraw.BiLinear.Transform(layer, m.aff3(), src, sb, xdraw.Src, nil)
	}
	c.composite(layer)
}

// FillRect fills the rectangle (x, y, w, h), transformed by the current
// matrix, with col and composites it onto the target.
func (c *Context) FillRect(x, y, w, h float64, col Color) {
	if w == 0 || h == 0 {
		return
	}
	layer := image.NewRGBA(c.pixmap.Bounds())
	fill := image.NewUniform(col.NRGBA())

	m := c.matrix.Multiply(Translate(x, y))
	if dx, dy, ok := m.integerOffset(); ok && isWhole(w) && isWhole(h) {
		r := image.Rect(dx, dy, dx+int(w), dy+int(h)).Canon()
		xdraw.Draw(layer, r, fill, image.Point{}, xdraw.Src)
	} else {
		corners := [4]Point{
			c.matrix.TransformPoint(Pt(x, y)),
			c.matrix.TransformPoint(Pt(x+w, y)),
			c.matrix.TransformPoint(Pt(x+w, y+h)),
			c.matrix.TransformPoint(Pt(x, y+h)),
		}
		fillPolygon(layer, corners[:], fill)
	}
	c.composite(layer)
}

// fillPolygon rasterizes the closed polygon pts into dst with anti-aliasing.
func fillPolygon(dst *image.RGBA, pts []Point, src image.Image) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = xdraw.Src
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
	r.Draw(dst, b, src, image.Point{})
}

func isWhole(v float64) bool {
	return v == float64(int(v))
}
