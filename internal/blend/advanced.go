package blend

import "math"

// separable builds an operator from a per-channel blend function B(s, d)
// working on unpremultiplied values in [0, 1]:
//
//	Co = (1 - Da)*S + (1 - Sa)*D + Sa*Da*B(Cs, Cd)
//	Ao = Sa + Da - Sa*Da
func separable(fn func(s, d float32) float32) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		as, ad := unit(sa), unit(da)
		mix := func(s, d byte) byte {
			cs, cd := unit(s)/as, unit(d)/ad
			return toByte((1-ad)*unit(s) + (1-as)*unit(d) + as*ad*fn(cs, cd))
		}
		return mix(sr, dr), mix(sg, dg), mix(sb, db), toByte(as + ad - as*ad)
	}
}

// nonSeparable builds an operator from a blend function working on the whole
// unpremultiplied RGB triplet.
func nonSeparable(fn func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32)) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}
		as, ad := unit(sa), unit(da)
		br, bg, bb := fn(
			unit(sr)/as, unit(sg)/as, unit(sb)/as,
			unit(dr)/ad, unit(dg)/ad, unit(db)/ad,
		)
		mix := func(s, d byte, b float32) byte {
			return toByte((1-ad)*unit(s) + (1-as)*unit(d) + as*ad*b)
		}
		return mix(sr, dr, br), mix(sg, dg, bg), mix(sb, db, bb), toByte(as + ad - as*ad)
	}
}

func multiplyChannel(s, d float32) float32 { return s * d }

func screenChannel(s, d float32) float32 { return s + d - s*d }

func overlayChannel(s, d float32) float32 { return hardLightChannel(d, s) }

func darkenChannel(s, d float32) float32 { return min(s, d) }

func lightenChannel(s, d float32) float32 { return max(s, d) }

func colorDodgeChannel(s, d float32) float32 {
	switch {
	case d == 0:
		return 0
	case s >= 1:
		return 1
	default:
		return min(1, d/(1-s))
	}
}

func colorBurnChannel(s, d float32) float32 {
	switch {
	case d >= 1:
		return 1
	case s <= 0:
		return 0
	default:
		return 1 - min(1, (1-d)/s)
	}
}

func hardLightChannel(s, d float32) float32 {
	if s <= 0.5 {
		return multiplyChannel(2*s, d)
	}
	return screenChannel(2*s-1, d)
}

func softLightChannel(s, d float32) float32 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var g float32
	if d <= 0.25 {
		g = ((16*d-12)*d + 4) * d
	} else {
		g = float32(math.Sqrt(float64(d)))
	}
	return d + (2*s-1)*(g-d)
}

func differenceChannel(s, d float32) float32 {
	if s > d {
		return s - d
	}
	return d - s
}

func exclusionChannel(s, d float32) float32 { return s + d - 2*s*d }

// hueMix takes the hue of the source with the saturation and luminosity of
// the backdrop.
func hueMix(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
	return setLum(r, g, b, lum(dr, dg, db))
}

func saturationMix(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
	return setLum(r, g, b, lum(dr, dg, db))
}

// colorMix takes hue and saturation from the source and keeps the luminosity
// of the backdrop. Used by layer tinting.
func colorMix(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(sr, sg, sb, lum(dr, dg, db))
}

func luminosityMix(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(dr, dg, db, lum(sr, sg, sb))
}

func lum(r, g, b float32) float32 { return 0.3*r + 0.59*g + 0.11*b }

func sat(r, g, b float32) float32 { return max(r, g, b) - min(r, g, b) }

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)
	if n < 0 && l-n != 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 && x-l != 0 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setSat(r, g, b, s float32) (float32, float32, float32) {
	c := [3]float32{r, g, b}
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[hi] > c[lo] {
		c[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		c[hi] = s
	} else {
		c[mid], c[hi] = 0, 0
	}
	c[lo] = 0
	return c[0], c[1], c[2]
}

func unit(v byte) float32 { return float32(v) / 255 }

func toByte(v float32) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return byte(v*255 + 0.5)
	}
}
