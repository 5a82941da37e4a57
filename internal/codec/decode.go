package codec

// DecodeRawLE extracts the raw (unscaled, unsigned-as-bits) value of a
// little-endian signal of the given width starting at the given bit, from
// pdu. The caller must ensure pdu is large enough.
//
// The single-byte subcase deliberately masks with (1<<left)-1 rather than
// (1<<width)-1; see DESIGN.md for why this is preserved rather than
// corrected.
func DecodeRawLE(pdu []byte, start, width int) uint64 {
	g := leGeom(start, width)

	if alignedLE(start, width) {
		var v uint64
		for i := 0; i < width/8; i++ {
			v |= uint64(pdu[g.Low+i]) << uint(8*i)
		}
		return v
	}

	v := uint64(pdu[g.Low])

	switch {
	case g.Left != 0 && g.High == g.Low:
		v = (v >> uint(g.Left)) & mask64(g.Left)
	case g.Left != 0 && g.High > g.Low:
		v = v >> uint(g.Left)
	}

	for o := 1; o <= g.High-g.Low; o++ {
		shift := uint(o*8 - g.Left)
		if o == g.High-g.Low && g.Right != 0 {
			v |= (uint64(pdu[g.Low+o]) & mask64(g.Right)) << shift
		} else {
			v |= uint64(pdu[g.Low+o]) << shift
		}
	}

	return v & mask64(width)
}

// DecodeRawBE extracts the raw value of a big-endian (Motorola) signal.
func DecodeRawBE(pdu []byte, start, width int) uint64 {
	if alignedBE(start, width) {
		g := beGeom(start)
		var v uint64
		for i := 0; i < width/8; i++ {
			v = (v << 8) | uint64(pdu[g.Byte+i])
		}
		return v
	}

	g := beGeom(start)
	byteIdx := g.Byte
	left := g.Left

	v := uint64(pdu[byteIdx])

	if width <= left+1 {
		return (v >> uint(left+1-width)) & mask64(width)
	}

	if left < 7 {
		v &= mask64(left + 1)
	}
	v <<= uint(width - left - 1)

	rem := width - (left + 1)
	for rem > 0 {
		byteIdx++
		if rem >= 8 {
			rem -= 8
			v |= uint64(pdu[byteIdx]) << uint(rem)
		} else {
			v |= uint64(pdu[byteIdx]) >> uint(8-rem)
			rem = 0
		}
	}

	return v & mask64(width)
}

// DecodeBool reads a single-bit boolean signal. Byte order does not affect
// bit position within a byte, so LE and BE share this path.
func DecodeBool(pdu []byte, start int) bool {
	return pdu[start/8]&(1<<uint(start%8)) != 0
}

// SignExtend sign-extends a raw value of the given bit width to the full
// 64-bit word. Truncating the result back down to the storage integer type
// (int8/int16/int32) yields the correctly sign-extended narrower value,
// since every bit from width upward is set identically.
func SignExtend(v uint64, width int) uint64 {
	if width >= 64 {
		return v
	}
	top := uint64(1) << uint(width-1)
	if v&top != 0 {
		v |= ^mask64(width)
	}
	return v
}
