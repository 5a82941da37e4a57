// Package dbc provides a minimal reader for the CAN DBC database text
// format: enough of BO_/SG_/BA_ to drive code generation, not a full
// editor-grade parser.
package dbc

// ByteOrder is the DBC `@0`/`@1` byte-order tag of a signal.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota // @1, Intel
	BigEndian                    // @0, Motorola
)

// Sign is the DBC +/- sign tag of a signal.
type Sign int

const (
	Unsigned Sign = iota
	Signed
)

// SignalDescriptor is one `SG_` line of a message.
type SignalDescriptor struct {
	Name      string
	StartBit  int
	Width     int
	ByteOrder ByteOrder
	Sign      Sign
	Factor    float64
	Offset    float64
	Min       float64
	Max       float64
	Unit      string
	Line      int
}

// MessageDescriptor is one `BO_` block: a message and its signals.
type MessageDescriptor struct {
	Name       string
	ID         uint32
	Extended   bool
	DLC        int
	CycleTime  uint32 // 0 if absent
	HasCycle   bool
	Signals    []SignalDescriptor
	Line       int
}

// Signal looks up a signal by name within the message.
func (m *MessageDescriptor) Signal(name string) (*SignalDescriptor, bool) {
	for i := range m.Signals {
		if m.Signals[i].Name == name {
			return &m.Signals[i], true
		}
	}
	return nil, false
}

// Database is the parsed contents of one DBC file.
type Database struct {
	Version        string
	Messages       []MessageDescriptor
	SchemaVersion  string // BA_ "SchemaVersion" string attribute, if present
}

// Message looks up a message by name.
func (d *Database) Message(name string) (*MessageDescriptor, bool) {
	for i := range d.Messages {
		if d.Messages[i].Name == name {
			return &d.Messages[i], true
		}
	}
	return nil, false
}
