package tokenlayer

import (
	"fmt"
	"image"
	"math"
	"slices"
)

// MinCanvasSize is the smallest side of a canvas built by FromImage.
const MinCanvasSize = 1000

// Layer is one raster in a token stack: an image or a flat color, with its
// own transform, alpha, composite operation, masks and transparent colors.
//
// A Layer is not safe for concurrent use. Peer masks are read from the Stack
// the layer is attached to, so peers must be current before Redraw runs.
type Layer struct {
	id            string
	width, height int

	img     image.Image // decoded source, shared between clones
	source  *Pixmap     // immutable snapshot the layer is drawn from
	canvas  *Pixmap
	preview *Pixmap

	sourceMask   *Pixmap // untransformed baseline
	mask         *Pixmap // working copy
	renderedMask *Pixmap // mask under the current transform, read by peers

	transform       Transform
	alpha           float64
	compositeOp     CompositeOp
	maskCompositeOp CompositeOp
	visible         bool
	active          bool
	providesMask    bool

	customMask       bool
	customMaskLayers bool
	appliedMaskIDs   map[string]struct{}

	transparentColors         []Color
	previousTransparentColors []Color

	colorLayer    bool
	color         Color
	previousColor Color

	tint        Color
	tintEnabled bool

	opts  layerOptions
	stack Stack
}

// FromImage builds an image layer.
//
// The canvas is at least MinCanvasSize on each side and at least as large as
// the requested size and the image's longest side. The image is scaled to
// cover the canvas when Config.CropToFit is set and to fit inside it
// otherwise, centered in both cases. The baseline mask is built and the
// layer drawn before FromImage returns.
func FromImage(img image.Image, width, height int, tint Color, tintEnabled bool, opts ...Option) (*Layer, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	b := img.Bounds()
	if b.Empty() || width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: image %dx%d, canvas %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy(), width, height)
	}
	o := applyOptions(opts)

	iw, ih := b.Dx(), b.Dy()
	w := max(o.minCanvasSize, width, iw, ih)
	h := max(o.minCanvasSize, height, iw, ih)

	sx, sy := float64(w)/float64(iw), float64(h)/float64(ih)
	s := math.Min(sx, sy)
	if o.config.CropToFit {
		s = math.Max(sx, sy)
	}
	sw, sh := float64(iw)*s, float64(ih)*s

	source := NewPixmap(w, h)
	NewContext(source).DrawImage(img, math.Floor((float64(w)-sw)/2), math.Floor((float64(h)-sh)/2), sw, sh)

	l := newLayer(source, o)
	l.img = img
	l.tint = tint
	l.tintEnabled = tintEnabled
	Logger().Debug("layer created", "id", l.id, "kind", "image", "width", w, "height", h, "crop", o.config.CropToFit)
	l.Reset()
	return l, nil
}

// FromColor builds a flat-color layer of the given size.
func FromColor(c Color, width, height int, opts ...Option) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	source := NewPixmap(width, height)
	source.Fill(c)

	l := newLayer(source, applyOptions(opts))
	l.colorLayer = true
	l.color = c
	l.previousColor = c
	Logger().Debug("layer created", "id", l.id, "kind", "color", "color", c.Hex())
	l.Reset()
	return l, nil
}

func newLayer(source *Pixmap, o layerOptions) *Layer {
	w, h := source.width, source.height
	return &Layer{
		id:              o.newID(),
		width:           w,
		height:          h,
		source:          source,
		canvas:          NewPixmap(w, h),
		preview:         NewPixmap(w, h),
		transform:       Transform{Scale: 1, Mirror: 1, Center: Pt(float64(w)/2, float64(h)/2)},
		alpha:           1,
		compositeOp:     OpSourceOver,
		maskCompositeOp: OpSourceIn,
		visible:         true,
		appliedMaskIDs:  make(map[string]struct{}),
		opts:            o,
	}
}

// ID returns the layer id.
func (l *Layer) ID() string { return l.id }

// Width returns the canvas width.
func (l *Layer) Width() int { return l.width }

// Height returns the canvas height.
func (l *Layer) Height() int { return l.height }

// Image returns the decoded image the layer was built from, nil for color layers.
func (l *Layer) Image() image.Image { return l.img }

// Source returns the untransformed source raster. It must not be modified.
func (l *Layer) Source() *Pixmap { return l.source }

// Canvas returns the result of the last Redraw.
func (l *Layer) Canvas() *Pixmap { return l.canvas }

// Preview returns the preview raster, drawn in lockstep with Canvas.
func (l *Layer) Preview() *Pixmap { return l.preview }

// SourceMask returns the baseline mask built from the source.
func (l *Layer) SourceMask() *Pixmap { return l.sourceMask }

// Mask returns the working mask.
func (l *Layer) Mask() *Pixmap { return l.mask }

// RenderedMask returns the mask projected under the current transform.
func (l *Layer) RenderedMask() *Pixmap { return l.renderedMask }

// Transform returns the current transform state.
func (l *Layer) Transform() Transform { return l.transform }

// SetStack attaches the layer to the container its mask providers come from.
func (l *Layer) SetStack(s Stack) {
	l.stack = s
	l.syncMaskIDs()
}

// Translate moves the layer by (dx, dy) canvas pixels.
func (l *Layer) Translate(dx, dy float64) {
	l.transform.Position = l.transform.Position.Add(Pt(dx, dy))
}

// SetPosition places the layer's top-left corner.
func (l *Layer) SetPosition(p Point) { l.transform.Position = p }

// SetScale sets the uniform scale factor.
func (l *Layer) SetScale(f float64) error {
	if !(f > 0) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, f)
	}
	l.transform.Scale = f
	return nil
}

// Rotate turns the layer clockwise by degrees times RotationStep.
func (l *Layer) Rotate(degrees float64) {
	l.transform.Rotation += degrees * RotationStep
}

// Flip mirrors the layer horizontally and redraws it.
func (l *Layer) Flip() {
	l.transform.Mirror *= -1
	l.RecalculateMask()
	l.Redraw()
}

// Alpha returns the opacity the layer is composited with.
func (l *Layer) Alpha() float64 { return l.alpha }

// SetAlpha sets the layer opacity, clamped to [0, 1].
func (l *Layer) SetAlpha(a float64) { l.alpha = clamp01(a) }

// Visible reports whether the layer is composited.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible shows or hides the layer.
func (l *Layer) SetVisible(v bool) { l.visible = v }

// Active reports whether the layer has input focus.
func (l *Layer) Active() bool { return l.active }

// Activate gives the layer input focus. It has no effect on drawing.
func (l *Layer) Activate() { l.active = true }

// Deactivate removes input focus.
func (l *Layer) Deactivate() { l.active = false }

// CompositeOp returns the operation the layer starts its redraw with.
func (l *Layer) CompositeOp() CompositeOp { return l.compositeOp }

// SetCompositeOp sets the operation the layer starts its redraw with.
func (l *Layer) SetCompositeOp(op CompositeOp) { l.compositeOp = op }

// MaskCompositeOp returns the operation used once a provider mask is drawn.
func (l *Layer) MaskCompositeOp() CompositeOp { return l.maskCompositeOp }

// SetMaskCompositeOp sets the operation used once a provider mask is drawn.
func (l *Layer) SetMaskCompositeOp(op CompositeOp) { l.maskCompositeOp = op }

// IsColorLayer reports whether the layer is a flat fill.
func (l *Layer) IsColorLayer() bool { return l.colorLayer }

// Color returns the fill of a color layer.
func (l *Layer) Color() Color { return l.color }

// SetColor changes the fill of a color layer and redraws it.
func (l *Layer) SetColor(hex string) error {
	if !l.colorLayer {
		return ErrNotColorLayer
	}
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	l.color = c
	l.Redraw()
	return nil
}

// SaveColor remembers the current fill for RestoreColor.
func (l *Layer) SaveColor() { l.previousColor = l.color }

// RestoreColor returns to the fill saved by SaveColor and redraws.
func (l *Layer) RestoreColor() {
	l.color = l.previousColor
	l.Redraw()
}

// SetTint sets the tint color and whether the tint pass runs.
func (l *Layer) SetTint(c Color, enabled bool) {
	l.tint = c
	l.tintEnabled = enabled
}

// TransparentColors returns the colors carved out of the layer.
func (l *Layer) TransparentColors() []Color { return slices.Clone(l.transparentColors) }

// AddTransparentColor adds c to the transparent colors and redraws. The
// previous set is kept for RestoreTransparentColors.
func (l *Layer) AddTransparentColor(c Color) {
	l.previousTransparentColors = slices.Clone(l.transparentColors)
	if !slices.Contains(l.transparentColors, c) {
		l.transparentColors = append(l.transparentColors, c)
	}
	l.Redraw()
}

// ClearTransparentColors removes every transparent color and redraws.
func (l *Layer) ClearTransparentColors() {
	l.previousTransparentColors = slices.Clone(l.transparentColors)
	l.transparentColors = nil
	l.Redraw()
}

// RestoreTransparentColors returns to the set saved before the last change
// and redraws.
func (l *Layer) RestoreTransparentColors() {
	l.transparentColors = slices.Clone(l.previousTransparentColors)
	l.Redraw()
}

// Reset centers the source at its scale-to-fit, clears rotation and mirror,
// drops any custom mask and rebuilds mask membership, then redraws.
func (l *Layer) Reset() {
	s := math.Min(float64(l.width)/float64(l.source.width), float64(l.height)/float64(l.source.height))
	l.transform.Scale = s
	l.transform.Rotation = 0
	l.transform.Mirror = 1
	l.transform.Position = Pt(
		math.Floor((float64(l.width)-float64(l.source.width)*s)/2),
		math.Floor((float64(l.height)-float64(l.source.height)*s)/2),
	)
	Logger().Debug("layer reset", "id", l.id, "scale", s)
	l.ResetMasks()
}

// ResetMasks rebuilds mask membership from the stack and the mask from the
// source without touching the transform, then redraws.
func (l *Layer) ResetMasks() {
	l.customMask = false
	l.customMaskLayers = false
	l.syncMaskIDs()
	l.CreateMask()
	l.Redraw()
}

// Redraw renders the layer into Canvas and Preview.
//
// The source is drawn through the rotation/mirror affine into a scratch
// raster. Each target is then cleared, restricted by the provider masks and
// given the scratch raster at the layer's position and scale, followed by
// the transparent-color pass.
func (l *Layer) Redraw() {
	scratch := NewPixmap(l.source.width, l.source.height)
	if !l.colorLayer {
		sc := NewContext(scratch)
		sc.Transform(l.transform.Affine())
		sc.DrawImage(l.source, 0, 0, float64(l.source.width), float64(l.source.height))
		if l.tintEnabled {
			l.applyTint(sc)
		}
	}

	plan := ResolveMasks(l, l.stack)
	l.renderTo(l.canvas, scratch, plan)
	l.renderTo(l.preview, scratch, plan)
	Logger().Debug("layer redrawn", "id", l.id, "masks", len(plan.Steps))
}

// applyTint replaces the hue and saturation of the drawn source with the
// tint, keeping its luminance and shape.
func (l *Layer) applyTint(sc *Context) {
	w, h := float64(l.source.width), float64(l.source.height)
	tinted := NewPixmap(l.source.width, l.source.height)
	tc := NewContext(tinted)
	tc.Transform(l.transform.Affine())
	tc.DrawImage(l.source, 0, 0, w, h)
	tc.ResetTransform()
	tc.SetCompositeOp(OpSourceAtop)
	tc.FillRect(0, 0, w, h, l.tint)

	sc.Save()
	sc.ResetTransform()
	sc.SetCompositeOp(OpColor)
	sc.DrawImage(tinted, 0, 0, w, h)
	sc.Restore()
}

func (l *Layer) renderTo(target, scratch *Pixmap, plan MaskPlan) {
	w, h := float64(target.width), float64(target.height)
	c := NewContext(target)
	c.Clear()
	c.SetCompositeOp(l.compositeOp)
	c.ResetTransform()

	for _, step := range plan.Steps {
		c.SetCompositeOp(step.Op)
		c.DrawImage(step.Mask, 0, 0, w, h)
	}
	c.SetCompositeOp(plan.DrawOp)

	if l.colorLayer {
		c.FillRect(0, 0, w, h, l.color)
	} else {
		t := l.transform
		c.DrawImage(scratch, t.Position.X, t.Position.Y, float64(scratch.width)*t.Scale, float64(scratch.height)*t.Scale)
		ApplyColorKey(target, l.transparentColors, DefaultColorKeyTolerance)
	}
	c.ResetTransform()
}

// Clone returns a deep copy with a new id. Rasters, transform, colors and
// mask membership are copied; the decoded image is shared.
func (l *Layer) Clone() *Layer {
	c := *l
	c.id = l.opts.newID()
	c.source = l.source.Clone()
	c.canvas = l.canvas.Clone()
	c.preview = l.preview.Clone()
	c.sourceMask = l.sourceMask.Clone()
	c.mask = l.mask.Clone()
	c.renderedMask = l.renderedMask.Clone()
	c.appliedMaskIDs = make(map[string]struct{}, len(l.appliedMaskIDs))
	for id := range l.appliedMaskIDs {
		c.appliedMaskIDs[id] = struct{}{}
	}
	c.transparentColors = slices.Clone(l.transparentColors)
	c.previousTransparentColors = slices.Clone(l.previousTransparentColors)
	c.active = false
	return &c
}
