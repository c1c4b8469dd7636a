package tokenlayer

import "slices"

// View is an ordered stack of layers, bottom first, composited into a
// token of a fixed size. It is the Stack its layers resolve masks against.
type View struct {
	width, height int
	layers        []*Layer
}

var _ Stack = (*View)(nil)

// NewView creates an empty view producing width x height output.
func NewView(width, height int) *View {
	return &View{width: width, height: height}
}

// Width returns the output width.
func (v *View) Width() int { return v.width }

// Height returns the output height.
func (v *View) Height() int { return v.height }

// Add puts l on top of the stack and attaches it to the view.
func (v *View) Add(l *Layer) {
	v.layers = append(v.layers, l)
	l.SetStack(v)
	v.syncMaskIDs()
}

// Remove detaches the layer with the given id. It reports whether the
// layer was found.
func (v *View) Remove(id string) bool {
	i := v.index(id)
	if i < 0 {
		return false
	}
	v.layers[i].SetStack(nil)
	v.layers = slices.Delete(v.layers, i, i+1)
	for _, l := range v.layers {
		delete(l.appliedMaskIDs, id)
	}
	v.syncMaskIDs()
	return true
}

// Raise moves the layer one step up. It reports whether it moved.
func (v *View) Raise(id string) bool {
	i := v.index(id)
	if i < 0 || i == len(v.layers)-1 {
		return false
	}
	v.layers[i], v.layers[i+1] = v.layers[i+1], v.layers[i]
	v.syncMaskIDs()
	return true
}

// Lower moves the layer one step down. It reports whether it moved.
func (v *View) Lower(id string) bool {
	i := v.index(id)
	if i <= 0 {
		return false
	}
	v.layers[i], v.layers[i-1] = v.layers[i-1], v.layers[i]
	v.syncMaskIDs()
	return true
}

// Layers returns the layers, bottom first.
func (v *View) Layers() []*Layer { return slices.Clone(v.layers) }

// LayerByID finds a layer.
func (v *View) LayerByID(id string) (*Layer, bool) {
	if i := v.index(id); i >= 0 {
		return v.layers[i], true
	}
	return nil, false
}

// LayerIDs returns the layer ids, bottom first.
func (v *View) LayerIDs() []string {
	ids := make([]string, len(v.layers))
	for i, l := range v.layers {
		ids[i] = l.id
	}
	return ids
}

// IsOriginLayerHigher reports whether a is drawn above b. Unknown ids are
// never higher.
func (v *View) IsOriginLayerHigher(a, b string) bool {
	ia, ib := v.index(a), v.index(b)
	return ia >= 0 && ib >= 0 && ia > ib
}

// MaskProvider returns the rendered mask of a mask-providing layer.
func (v *View) MaskProvider(id string) (*Pixmap, bool) {
	l, ok := v.LayerByID(id)
	if !ok || !l.providesMask || l.renderedMask == nil {
		return nil, false
	}
	return l.renderedMask, true
}

// Redraw brings every layer up to date: all rendered masks are recalculated
// first, then the layers are redrawn bottom-up.
func (v *View) Redraw() {
	for _, l := range v.layers {
		l.RecalculateMask()
	}
	for _, l := range v.layers {
		l.Redraw()
	}
	Logger().Debug("view redrawn", "layers", len(v.layers))
}

// Composite flattens the visible layers, each with its alpha, into a new
// pixmap of the view's size.
func (v *View) Composite() *Pixmap {
	out := NewPixmap(v.width, v.height)
	c := NewContext(out)
	for _, l := range v.layers {
		if !l.visible {
			continue
		}
		c.SetAlpha(l.alpha)
		c.DrawImage(l.canvas, 0, 0, float64(v.width), float64(v.height))
	}
	return out
}

// syncMaskIDs refreshes automatic membership after the order changed.
func (v *View) syncMaskIDs() {
	for _, l := range v.layers {
		l.syncMaskIDs()
	}
}

func (v *View) index(id string) int {
	return slices.IndexFunc(v.layers, func(l *Layer) bool { return l.id == id })
}
