package tokenlayer

import "slices"

// MaskEditor paints masks by hand. Edit receives the current working mask
// and a preview to paint over, and calls apply with the finished mask.
type MaskEditor interface {
	Edit(mask, preview *Pixmap, apply func(mask *Pixmap))
}

// MaskEditorFunc adapts a function to MaskEditor.
type MaskEditorFunc func(mask, preview *Pixmap, apply func(mask *Pixmap))

// Edit calls f.
func (f MaskEditorFunc) Edit(mask, preview *Pixmap, apply func(mask *Pixmap)) {
	f(mask, preview, apply)
}

// ProvidesMask reports whether the layer's rendered mask restricts others.
func (l *Layer) ProvidesMask() bool { return l.providesMask }

// SetProvidesMask sets whether the layer's rendered mask restricts others.
func (l *Layer) SetProvidesMask(v bool) { l.providesMask = v }

// CustomMask reports whether a hand-painted mask is installed.
func (l *Layer) CustomMask() bool { return l.customMask }

// CustomMaskLayers reports whether mask providers were chosen explicitly.
func (l *Layer) CustomMaskLayers() bool { return l.customMaskLayers }

// AppliedMaskIDs returns the ids of the providers selected for this layer,
// in stack order when the layer is attached to a stack. Without a custom
// selection these are the providers above the layer.
func (l *Layer) AppliedMaskIDs() []string {
	l.syncMaskIDs()
	ids := make([]string, 0, len(l.appliedMaskIDs))
	if l.stack != nil {
		for _, id := range l.stack.LayerIDs() {
			if _, ok := l.appliedMaskIDs[id]; ok {
				ids = append(ids, id)
			}
		}
		return ids
	}
	for id := range l.appliedMaskIDs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SetAppliedMaskIDs selects the mask providers explicitly.
func (l *Layer) SetAppliedMaskIDs(ids ...string) {
	l.appliedMaskIDs = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		l.appliedMaskIDs[id] = struct{}{}
	}
	l.customMaskLayers = true
}

// AddAppliedMask adds a provider to the explicit selection. The first edit
// starts from the automatic selection.
func (l *Layer) AddAppliedMask(id string) {
	l.syncMaskIDs()
	l.appliedMaskIDs[id] = struct{}{}
	l.customMaskLayers = true
}

// RemoveAppliedMask drops a provider from the explicit selection. The first
// edit starts from the automatic selection.
func (l *Layer) RemoveAppliedMask(id string) {
	l.syncMaskIDs()
	delete(l.appliedMaskIDs, id)
	l.customMaskLayers = true
}

// syncMaskIDs rebuilds automatic membership from the stack. A custom
// selection is left alone.
func (l *Layer) syncMaskIDs() {
	if l.customMaskLayers {
		return
	}
	l.appliedMaskIDs = make(map[string]struct{})
	for _, id := range DefaultMaskIDs(l.id, l.stack) {
		l.appliedMaskIDs[id] = struct{}{}
	}
}

// CreateMask builds the baseline mask from the source, with the configured
// ray masker or by contour tracing, and projects it under the transform.
func (l *Layer) CreateMask() {
	var (
		m         *Pixmap
		algorithm string
	)
	if l.opts.config.UseRayCastMask {
		algorithm = "raycast"
		masker := l.opts.rayMasker
		if masker == nil {
			masker = RayCastMask
		}
		m = l.fitMask(masker(l.source))
	} else {
		algorithm = "contour"
		m = ExtractContourMask(l.source, l.opts.density)
	}

	l.sourceMask = m
	l.mask = m.Clone()
	l.renderedMask = NewPixmap(l.width, l.height)
	l.customMask = false
	l.RecalculateMask()
	Logger().Debug("mask created", "id", l.id, "algorithm", algorithm, "opaque", opaqueCount(m))
}

// fitMask returns m at the source's size. A nil mask is empty.
func (l *Layer) fitMask(m *Pixmap) *Pixmap {
	out := NewPixmap(l.source.width, l.source.height)
	if m == nil {
		Logger().Warn("ray masker returned no mask", "id", l.id)
		return out
	}
	if m.width == out.width && m.height == out.height {
		return m.Clone()
	}
	NewContext(out).DrawImage(m, 0, 0, float64(out.width), float64(out.height))
	return out
}

// RecalculateMask projects the working mask under the current transform into
// the rendered mask. A custom mask is left as authored.
func (l *Layer) RecalculateMask() {
	if l.customMask {
		return
	}
	w, h := float64(l.mask.width), float64(l.mask.height)
	scratch := NewPixmap(l.mask.width, l.mask.height)
	sc := NewContext(scratch)
	sc.Transform(l.transform.Affine())
	sc.DrawImage(l.mask, 0, 0, w, h)

	l.renderedMask.Clear()
	t := l.transform
	NewContext(l.renderedMask).DrawImage(scratch, t.Position.X, t.Position.Y, w*t.Scale, h*t.Scale)
}

// ApplyCustomMask installs a hand-painted mask. The mask is copied and drawn
// unscaled into the rendered mask; later RecalculateMask calls keep it until
// Reset or ResetMasks. onApplied, if set, runs afterwards.
func (l *Layer) ApplyCustomMask(mask *Pixmap, onApplied func()) {
	l.customMask = true
	l.mask = mask.Clone()
	l.renderedMask.Clear()
	NewContext(l.renderedMask).DrawImage(l.mask, 0, 0, float64(l.mask.width), float64(l.mask.height))
	Logger().Debug("custom mask applied", "id", l.id)
	if onApplied != nil {
		onApplied()
	}
}

// EditMask hands the working mask to editor. When the editor applies a
// result it is installed with ApplyCustomMask and onComplete runs.
func (l *Layer) EditMask(editor MaskEditor, onComplete func()) error {
	if editor == nil {
		return ErrNoMaskEditor
	}
	editor.Edit(l.mask.Clone(), l.MaskPreview(), func(m *Pixmap) {
		l.ApplyCustomMask(m, onComplete)
	})
	return nil
}

// MaskPreview draws the working mask over the configured preview fill.
func (l *Layer) MaskPreview() *Pixmap {
	p := NewPixmap(l.mask.width, l.mask.height)
	c := NewContext(p)
	if fill, ok := l.opts.config.PreviewFill(); ok {
		c.FillRect(0, 0, float64(p.width), float64(p.height), fill)
	}
	c.DrawImage(l.mask, 0, 0, float64(p.width), float64(p.height))
	return p
}
