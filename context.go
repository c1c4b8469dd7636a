package tokenlayer

import (
	"image"
	"math"

	"github.com/gogpu/tokenlayer/internal/blend"
)

// Context is a drawing context over a Pixmap. Like a canvas 2D context it
// carries a current transformation matrix, a composite operation and a
// global alpha, with a Save/Restore stack for all three.
type Context struct {
	pixmap *Pixmap
	matrix Matrix
	op     CompositeOp
	alpha  float64
	stack  []contextState
}

type contextState struct {
	matrix Matrix
	op     CompositeOp
	alpha  float64
}

// NewContext creates a context drawing into pm.
func NewContext(pm *Pixmap) *Context {
	return &Context{
		pixmap: pm,
		matrix: Identity(),
		op:     OpSourceOver,
		alpha:  1,
	}
}

// Pixmap returns the target pixmap.
func (c *Context) Pixmap() *Pixmap { return c.pixmap }

// Width returns the width of the target.
func (c *Context) Width() int { return c.pixmap.width }

// Height returns the height of the target.
func (c *Context) Height() int { return c.pixmap.height }

// SetCompositeOp sets the operation used by subsequent draws.
func (c *Context) SetCompositeOp(op CompositeOp) { c.op = op }

// CompositeOp returns the current composite operation.
func (c *Context) CompositeOp() CompositeOp { return c.op }

// SetAlpha sets the global alpha, clamped to [0, 1].
func (c *Context) SetAlpha(a float64) { c.alpha = clamp01(a) }

// Alpha returns the global alpha.
func (c *Context) Alpha() float64 { return c.alpha }

// Matrix returns the current transformation matrix.
func (c *Context) Matrix() Matrix { return c.matrix }

// ResetTransform resets the current matrix to identity.
func (c *Context) ResetTransform() { c.matrix = Identity() }

// Transform post-multiplies the current matrix by m.
func (c *Context) Transform(m Matrix) { c.matrix = c.matrix.Multiply(m) }

// Save pushes the current matrix, composite operation and alpha.
func (c *Context) Save() {
	c.stack = append(c.stack, contextState{matrix: c.matrix, op: c.op, alpha: c.alpha})
}

// Restore pops the state saved by the last Save.
// Restore without a matching Save does nothing.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix, c.op, c.alpha = s.matrix, s.op, s.alpha
}

// Clear makes the whole target transparent. It ignores the matrix and the
// composite operation.
func (c *Context) Clear() {
	c.pixmap.Clear()
}

// composite blends layer, a premultiplied surface the size of the target,
// onto the target with the current operation and alpha.
func (c *Context) composite(layer *image.RGBA) {
	fn := blend.FuncFor(c.op)
	unbounded := c.op.Unbounded()
	ga := byte(math.Round(c.alpha * 255))
	over := c.op == OpSourceOver

	d := c.pixmap.data
	s := layer.Pix
	for i := 0; i < len(d); i += 4 {
		sr, sg, sb, sa := s[i], s[i+1], s[i+2], s[i+3]
		if ga != 255 {
			sr, sg, sb, sa = mulDiv255(sr, ga), mulDiv255(sg, ga), mulDiv255(sb, ga), mulDiv255(sa, ga)
		}
		if sa == 0 && !unbounded {
			continue
		}
		if sa == 255 && over {
			d[i], d[i+1], d[i+2], d[i+3] = sr, sg, sb, 255
			continue
		}
		da := d[i+3]
		r, g, b, a := fn(sr, sg, sb, sa,
			mulDiv255(d[i], da), mulDiv255(d[i+1], da), mulDiv255(d[i+2], da), da)
		d[i], d[i+1], d[i+2], d[i+3] = unpremultiply(r, a), unpremultiply(g, a), unpremultiply(b, a), a
	}
}

func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

func unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
