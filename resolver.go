package tokenlayer

// Stack is the layer container a Layer resolves its mask providers against.
// Layers only hold ids of their peers; masks are looked up at redraw time.
type Stack interface {
	// LayerIDs returns the ids of all layers, bottom first.
	LayerIDs() []string

	// IsOriginLayerHigher reports whether layer a is drawn above layer b.
	IsOriginLayerHigher(a, b string) bool

	// MaskProvider returns the rendered mask of layer id if that layer
	// provides a mask.
	MaskProvider(id string) (*Pixmap, bool)
}

// MaskStep is one provider mask drawn onto a layer's canvas.
type MaskStep struct {
	ID   string
	Mask *Pixmap
	Op   CompositeOp
}

// MaskPlan lists the provider masks restricting a layer, in stack order,
// and the operation the layer's own content is drawn with afterwards.
type MaskPlan struct {
	Steps  []MaskStep
	DrawOp CompositeOp
}

// ResolveMasks decides which mask providers apply to l.
//
// By default every provider above l in the stack applies. With a custom
// selection only the applied ids do, still in stack order. The first mask is
// drawn source-over; every draw after it, the layer's content included, uses
// the mask composite operation. Without providers the content is drawn with
// the layer's composite operation.
func ResolveMasks(l *Layer, s Stack) MaskPlan {
	plan := MaskPlan{DrawOp: l.compositeOp}
	if s == nil {
		return plan
	}

	op := OpSourceOver
	for _, id := range s.LayerIDs() {
		if id == l.id {
			continue
		}
		if l.customMaskLayers {
			if _, ok := l.appliedMaskIDs[id]; !ok {
				continue
			}
		} else if !s.IsOriginLayerHigher(id, l.id) {
			continue
		}
		m, ok := s.MaskProvider(id)
		if !ok || m == nil {
			continue
		}
		plan.Steps = append(plan.Steps, MaskStep{ID: id, Mask: m, Op: op})
		op = l.maskCompositeOp
	}
	plan.DrawOp = op
	return plan
}

// DefaultMaskIDs returns the providers that apply to layer id under the
// automatic rule: every mask-providing layer above it.
func DefaultMaskIDs(id string, s Stack) []string {
	if s == nil {
		return nil
	}
	var ids []string
	for _, other := range s.LayerIDs() {
		if other == id || !s.IsOriginLayerHigher(other, id) {
			continue
		}
		if _, ok := s.MaskProvider(other); ok {
			ids = append(ids, other)
		}
	}
	return ids
}
