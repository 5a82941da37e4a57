package codec

import "errors"

// ErrBigEndianUnaligned is returned by EncodeRawBE for any unaligned
// big-endian signal. Encoding that case requires read-modify-write
// inserts mirroring the BE decode path's bit geometry, which is not
// implemented.
var ErrBigEndianUnaligned = errors.New("codec: big-endian unaligned encode is unsupported")

// EncodeRawLE writes a little-endian signal's raw bits into pdu, preserving
// every bit outside the signal's range in the bytes it touches.
func EncodeRawLE(pdu []byte, start, width int, raw uint64) {
	g := leGeom(start, width)
	raw &= mask64(width)

	if alignedLE(start, width) {
		for i := 0; i < width/8; i++ {
			pdu[g.Low+i] = byte(raw >> uint(8*i))
		}
		return
	}

	if g.High == g.Low {
		m := mask64(width) << uint(g.Left)
		pdu[g.Low] = (pdu[g.Low] &^ byte(m)) | byte((raw<<uint(g.Left))&m)
		return
	}

	firstBits := 8 - g.Left
	m0 := (mask64(firstBits) << uint(g.Left)) & 0xFF
	pdu[g.Low] = (pdu[g.Low] &^ byte(m0)) | byte((raw<<uint(g.Left))&m0)

	for o := 1; o <= g.High-g.Low; o++ {
		shift := uint(o*8 - g.Left)
		if o == g.High-g.Low && g.Right != 0 {
			m := mask64(g.Right)
			pdu[g.Low+o] = (pdu[g.Low+o] &^ byte(m)) | byte((raw>>shift)&m)
		} else {
			pdu[g.Low+o] = byte(raw >> shift)
		}
	}
}

// EncodeRawBE writes a big-endian signal. Only the aligned fast path is
// supported; unaligned BE encode returns ErrBigEndianUnaligned.
func EncodeRawBE(pdu []byte, start, width int, raw uint64) error {
	if !alignedBE(start, width) {
		return ErrBigEndianUnaligned
	}
	g := beGeom(start)
	raw &= mask64(width)
	for i := 0; i < width/8; i++ {
		shift := uint(width - 8*(i+1))
		pdu[g.Byte+i] = byte(raw >> shift)
	}
	return nil
}

// EncodeBool sets or clears a single bit, preserving the rest of its byte.
func EncodeBool(pdu []byte, start int, field bool) {
	mask := byte(1) << uint(start%8)
	idx := start / 8
	if field {
		pdu[idx] |= mask
	} else {
		pdu[idx] &^= mask
	}
}
