package tokenlayer

// DefaultColorKeyTolerance is the largest per-channel distance at which a
// pixel still matches a transparent-color reference.
const DefaultColorKeyTolerance = 32

// ApplyColorKey makes every pixel of p that neighbors one of colors fully
// transparent. Colors are applied in order, each over the whole raster.
// It returns the number of pixels cleared.
func ApplyColorKey(p *Pixmap, colors []Color, tolerance uint8) int {
	cleared := 0
	d := p.data
	for _, ref := range colors {
		for i := 0; i < len(d); i += 4 {
			px := Color{R: d[i], G: d[i+1], B: d[i+2], A: d[i+3]}
			if px == Transparent || !px.IsNeighbor(ref, tolerance) {
				continue
			}
			d[i], d[i+1], d[i+2], d[i+3] = 0, 0, 0, 0
			cleared++
		}
	}
	return cleared
}
