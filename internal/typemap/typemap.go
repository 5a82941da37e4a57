// Package typemap decides, for a DBC signal, the narrowest Go storage type
// that holds its raw bits and the public type exposed on the generated
// value object.
package typemap

import "github.com/tegimeki/dbc-data/internal/dbc"

// StorageType is the narrowest native type that holds a signal's raw bits.
type StorageType int

const (
	Bool StorageType = iota
	I8
	U8
	I16
	U16
	I32
	U32
	I64
	U64
)

// GoName returns the Go spelling of the storage type.
func (s StorageType) GoName() string {
	switch s {
	case Bool:
		return "bool"
	case I8:
		return "int8"
	case U8:
		return "uint8"
	case I16:
		return "int16"
	case U16:
		return "uint16"
	case I32:
		return "int32"
	case U32:
		return "uint32"
	case I64:
		return "int64"
	case U64:
		return "uint64"
	default:
		return "<invalid>"
	}
}

// Width returns the storage type's bit width (1 for bool).
func (s StorageType) Width() int {
	switch s {
	case Bool:
		return 1
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	default:
		return 64
	}
}

// Signed reports whether the storage type is a signed integer.
func (s StorageType) Signed() bool {
	switch s {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// Storage picks the storage type for a signal's width and sign: width 1 is
// always bool (factor is ignored for booleans); otherwise the width rounds
// up to 8/16/32/64 and takes its sign from the descriptor.
func Storage(sig dbc.SignalDescriptor) StorageType {
	if sig.Width == 1 {
		return Bool
	}
	signed := sig.Sign == dbc.Signed
	switch {
	case sig.Width <= 8:
		if signed {
			return I8
		}
		return U8
	case sig.Width <= 16:
		if signed {
			return I16
		}
		return U16
	case sig.Width <= 32:
		if signed {
			return I32
		}
		return U32
	default:
		if signed {
			return I64
		}
		return U64
	}
}

// Public reports whether the signal's public-facing field is float32
// instead of its storage type: true iff factor != 1.0, except that width-1
// (boolean) signals are never float. Offset alone does not force a float
// field; see DESIGN.md for why this is kept as-is.
func Public(sig dbc.SignalDescriptor) bool {
	if sig.Width == 1 {
		return false
	}
	return sig.Factor != 1.0
}

// PublicGoName returns the Go spelling of the public-facing field type.
func PublicGoName(sig dbc.SignalDescriptor) string {
	if Public(sig) {
		return "float32"
	}
	return Storage(sig).GoName()
}
