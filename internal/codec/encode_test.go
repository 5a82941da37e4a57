package codec

import "testing"

func bufEqual(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("byte %d: want %#x, got %#x (buf got=% x want=% x)", i, want[i], got[i], got, want)
		}
	}
}

func TestEncodeRawLE_AlignedRoundTrip(t *testing.T) {
	pdu := make([]byte, 8)
	signed8 := int8(-99)

	EncodeRawLE(pdu, 0, 8, uint64(signed8))
	EncodeRawLE(pdu, 8, 8, 0x33)
	EncodeRawLE(pdu, 16, 16, 0x78BC)

	bufEqual(t, pdu, []byte{0x9D, 0x33, 0xBC, 0x78, 0x00, 0x00, 0x00, 0x00})
}

func TestEncodeRawLE_UnalignedPreservesNeighbours(t *testing.T) {
	pdu := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	EncodeRawLE(pdu, 43, 15, 0x5AF5)
	EncodeRawLE(pdu, 18, 23, 0x3C0C49)
	EncodeRawLE(pdu, 11, 3, 2)

	bufEqual(t, pdu, []byte{0xFF, 0xD7, 0x27, 0x31, 0xF0, 0xAE, 0xD7, 0xFE})
}

func TestEncodeRawBE_Aligned(t *testing.T) {
	pdu := make([]byte, 8)

	if err := EncodeRawBE(pdu, 7, 8, 0xAA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := EncodeRawBE(pdu, 39, 32, 0x3456789A); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bufEqual(t, pdu, []byte{0xAA, 0x00, 0x00, 0x00, 0x34, 0x56, 0x78, 0x9A})
}

func TestEncodeRawBE_UnalignedRejected(t *testing.T) {
	pdu := make([]byte, 8)
	if err := EncodeRawBE(pdu, 11, 3, 2); err != ErrBigEndianUnaligned {
		t.Fatalf("want ErrBigEndianUnaligned, got %v", err)
	}
}

func TestEncodeBool(t *testing.T) {
	pdu := []byte{0x00, 0x00}
	EncodeBool(pdu, 0, false)
	EncodeBool(pdu, 7, true)
	bufEqual(t, pdu, []byte{0x80, 0x00})
}
