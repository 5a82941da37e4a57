package dbc

import (
	"strings"
	"testing"

	"github.com/tegimeki/dbc-data/internal/diagnostic"
)

const sampleDBC = `VERSION "1.0"

BO_ 100 AlignedLE: 8 ECU
 SG_ Signed8 : 0|8@1- (1,0) [0|0] "" Vector__XXX
 SG_ Unsigned8 : 8|8@1+ (1,0) [0|0] "" Vector__XXX
 SG_ Unsigned16 : 16|16@1+ (1,0) [0|0] "" Vector__XXX
 SG_ Unsigned32 : 32|32@1+ (1,0) [0|0] "" Vector__XXX

BO_ 200 EngineData: 4 ECU
 SG_ RPM : 0|16@1+ (0.25,0) [0|16000] "rpm" Vector__XXX

BA_ "GenMsgCycleTime" BO_ 200 10;
`

func TestParse(t *testing.T) {
	var diags diagnostic.Bag
	db, err := Parse(strings.NewReader(sampleDBC), &diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	if len(db.Messages) != 2 {
		t.Fatalf("want 2 messages, got %d", len(db.Messages))
	}

	m, ok := db.Message("AlignedLE")
	if !ok {
		t.Fatalf("AlignedLE not found")
	}
	if m.ID != 100 || m.DLC != 8 || m.Extended {
		t.Fatalf("unexpected message fields: %+v", m)
	}
	if len(m.Signals) != 4 {
		t.Fatalf("want 4 signals, got %d", len(m.Signals))
	}
	sig, ok := m.Signal("Unsigned16")
	if !ok {
		t.Fatalf("Unsigned16 not found")
	}
	if sig.StartBit != 16 || sig.Width != 16 || sig.ByteOrder != LittleEndian || sig.Sign != Unsigned {
		t.Fatalf("unexpected signal: %+v", sig)
	}

	eng, ok := db.Message("EngineData")
	if !ok {
		t.Fatalf("EngineData not found")
	}
	if !eng.HasCycle || eng.CycleTime != 10 {
		t.Fatalf("want CycleTime=10, got %+v", eng)
	}
	rpm, _ := eng.Signal("RPM")
	if rpm.Factor != 0.25 {
		t.Fatalf("want factor 0.25, got %v", rpm.Factor)
	}
}

func TestParseExtendedID(t *testing.T) {
	const src = `BO_ 2147484000 ExtMsg: 1 ECU
 SG_ Flag : 0|1@1+ (1,0) [0|0] "" Vector__XXX
`
	var diags diagnostic.Bag
	db, err := Parse(strings.NewReader(src), &diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := db.Message("ExtMsg")
	if !ok {
		t.Fatalf("ExtMsg not found")
	}
	if !m.Extended {
		t.Fatalf("want extended id")
	}
	if m.ID != 2147484000-0x80000000 {
		t.Fatalf("unexpected normalized id: %d", m.ID)
	}
}

func TestParseSignalOutsideMessageWarns(t *testing.T) {
	const src = ` SG_ Orphan : 0|1@1+ (1,0) [0|0] "" Vector__XXX
`
	var diags diagnostic.Bag
	_, err := Parse(strings.NewReader(src), &diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, d := range diags.Items() {
		if d.Level == diagnostic.Warning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a warning diagnostic, got %v", diags.Items())
	}
}
