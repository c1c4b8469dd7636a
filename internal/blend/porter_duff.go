package blend

func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addSat(sr, mulDiv255(dr, inv)),
		addSat(sg, mulDiv255(dg, inv)),
		addSat(sb, mulDiv255(db, inv)),
		addSat(sa, mulDiv255(da, inv))
}

func sourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func sourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return mulDiv255(sr, inv), mulDiv255(sg, inv), mulDiv255(sb, inv), mulDiv255(sa, inv)
}

// sourceAtop keeps the destination alpha.
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addSat(mulDiv255(sr, da), mulDiv255(dr, inv)),
		addSat(mulDiv255(sg, da), mulDiv255(dg, inv)),
		addSat(mulDiv255(sb, da), mulDiv255(db, inv)),
		da
}

func destinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceOver(dr, dg, db, da, sr, sg, sb, sa)
}

func destinationIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceIn(dr, dg, db, da, sr, sg, sb, sa)
}

func destinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceOut(dr, dg, db, da, sr, sg, sb, sa)
}

func destinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sourceAtop(dr, dg, db, da, sr, sg, sb, sa)
}

func lighter(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addSat(sr, dr), addSat(sg, dg), addSat(sb, db), addSat(sa, da)
}

func copySource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invS, invD := 255-sa, 255-da
	return addSat(mulDiv255(sr, invD), mulDiv255(dr, invS)),
		addSat(mulDiv255(sg, invD), mulDiv255(dg, invS)),
		addSat(mulDiv255(sb, invD), mulDiv255(db, invS)),
		addSat(mulDiv255(sa, invD), mulDiv255(da, invS))
}

// mulDiv255 computes a*b/255 rounded to nearest.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

func addSat(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
