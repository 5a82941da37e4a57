package typemap

import (
	"testing"

	"github.com/tegimeki/dbc-data/internal/dbc"
)

func TestStorage(t *testing.T) {
	cases := []struct {
		name  string
		width int
		sign  dbc.Sign
		want  StorageType
	}{
		{"bool", 1, dbc.Unsigned, Bool},
		{"u8", 8, dbc.Unsigned, U8},
		{"i8", 2, dbc.Signed, I8},
		{"u16", 16, dbc.Unsigned, U16},
		{"i16", 9, dbc.Signed, I16},
		{"u32", 32, dbc.Unsigned, U32},
		{"i32", 17, dbc.Signed, I32},
		{"u64", 64, dbc.Unsigned, U64},
		{"i64", 33, dbc.Signed, I64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sig := dbc.SignalDescriptor{Width: c.width, Sign: c.sign}
			if got := Storage(sig); got != c.want {
				t.Fatalf("Storage(width=%d,sign=%v): want %v, got %v", c.width, c.sign, c.want, got)
			}
		})
	}
}

func TestPublicFloatOnlyOnFactor(t *testing.T) {
	// factor != 1.0 forces float32.
	sig := dbc.SignalDescriptor{Width: 16, Factor: 0.1, Offset: 0}
	if !Public(sig) {
		t.Fatalf("want float32 for factor=0.1")
	}

	// offset alone, with factor == 1.0, must NOT force float32.
	sig2 := dbc.SignalDescriptor{Width: 16, Factor: 1.0, Offset: 10}
	if Public(sig2) {
		t.Fatalf("offset alone must not force float32")
	}

	// boolean signals are never float regardless of factor.
	sig3 := dbc.SignalDescriptor{Width: 1, Factor: 0.5}
	if Public(sig3) {
		t.Fatalf("boolean signals must never be float32")
	}
}

func TestPublicGoName(t *testing.T) {
	sig := dbc.SignalDescriptor{Width: 8, Sign: dbc.Unsigned, Factor: 1.0}
	if got := PublicGoName(sig); got != "uint8" {
		t.Fatalf("want uint8, got %s", got)
	}
	sig.Factor = 2.0
	if got := PublicGoName(sig); got != "float32" {
		t.Fatalf("want float32, got %s", got)
	}
}
