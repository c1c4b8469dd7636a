// Package contour traces silhouettes out of alpha rasters.
//
// A silhouette is the outer boundary of the first opaque region of an image,
// found with a marching-squares walk over pixel corners and filled back into
// a binary alpha mask.
package contour

import "image"

// Classifier reports whether the cell at (x, y) is transparent.
// Coordinates outside the grid must be reported as transparent.
type Classifier func(x, y int) bool

// Cell states of the 2x2 window around a corner point. A set bit means the
// pixel is opaque.
const (
	upLeft    = 1
	upRight   = 2
	downLeft  = 4
	downRight = 8
)

type direction uint8

const (
	none direction = iota
	up
	down
	left
	right
)

var steps = [...]image.Point{
	none:  {},
	up:    {Y: -1},
	down:  {Y: 1},
	left:  {X: -1},
	right: {X: 1},
}

// Trace walks the boundary of the first opaque cell found in row-major order
// on a w x h grid and returns the closed polyline as pixel-corner points.
// The first point is the top-left corner of that cell; the closing edge back
// to it is implied.
//
// Trace returns nil when no cell is opaque.
func Trace(w, h int, transparent Classifier) []image.Point {
	start, ok := firstOpaque(w, h, transparent)
	if !ok {
		return nil
	}

	// A boundary visits every corner at most twice.
	limit := 2 * (w + 1) * (h + 1)

	points := []image.Point{start}
	p, prev := start, none
	for i := 0; i < limit; i++ {
		dir := next(state(p, transparent), prev)
		if dir == none {
			break
		}
		p = p.Add(steps[dir])
		if p == start {
			// The last vertex is on the closing edge.
			if dir == prev && len(points) > 1 {
				points = points[:len(points)-1]
			}
			break
		}
		if dir == prev {
			points[len(points)-1] = p
		} else {
			points = append(points, p)
		}
		prev = dir
	}
	return points
}

func firstOpaque(w, h int, transparent Classifier) (image.Point, bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !transparent(x, y) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

func state(p image.Point, transparent Classifier) int {
	s := 0
	if !transparent(p.X-1, p.Y-1) {
		s |= upLeft
	}
	if !transparent(p.X, p.Y-1) {
		s |= upRight
	}
	if !transparent(p.X-1, p.Y) {
		s |= downLeft
	}
	if !transparent(p.X, p.Y) {
		s |= downRight
	}
	return s
}

// next picks the step out of a corner. The saddle states 6 and 9 depend on
// the direction the walk arrived from.
func next(s int, prev direction) direction {
	switch s {
	case 1, 5, 13:
		return up
	case 2, 3, 7:
		return right
	case 4, 12, 14:
		return left
	case 8, 10, 11:
		return down
	case 6:
		if prev == up {
			return left
		}
		return right
	case 9:
		if prev == right {
			return up
		}
		return down
	default:
		return none
	}
}
