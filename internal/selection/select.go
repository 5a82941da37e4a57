package selection

import (
	"fmt"

	"github.com/tegimeki/dbc-data/internal/dbc"
	"github.com/tegimeki/dbc-data/internal/diagnostic"
)

// Resolved is one generated type fully bound to its message and the
// ordered list of signals it materialises.
type Resolved struct {
	TypeName string
	Message  *dbc.MessageDescriptor
	Signals  []dbc.SignalDescriptor
}

// Resolve binds every MessageSpec in cfg against db. A message name with no
// match is a Schema-missing diagnostic for that entry only; every other
// entry still resolves (no failure propagates across messages, per the
// generator's error-handling taxonomy).
func Resolve(db *dbc.Database, cfg *Config, diags *diagnostic.Bag) []Resolved {
	var out []Resolved

	for _, spec := range cfg.Messages {
		msg, ok := db.Message(spec.Message)
		if !ok {
			diags.Errorf(diagnostic.CategorySelection, 0, "message %q referenced by type %q not found in schema", spec.Message, spec.Type)
			continue
		}

		signals, err := filterSignals(msg, spec.Signals)
		if err != nil {
			diags.Errorf(diagnostic.CategorySelection, msg.Line, "%v", err)
			continue
		}

		count := spec.Count
		if count <= 0 {
			count = 1
		}
		if count == 1 {
			out = append(out, Resolved{TypeName: spec.Type, Message: msg, Signals: signals})
			continue
		}
		for i := 0; i < count; i++ {
			out = append(out, Resolved{
				TypeName: fmt.Sprintf("%s%d", spec.Type, i),
				Message:  msg,
				Signals:  signals,
			})
		}
	}

	return out
}

// filterSignals applies the signal allowlist as a membership filter
// over msg.Signals, preserving DBC declaration order rather than the
// allowlist's order (an absent or empty allowlist keeps every signal).
func filterSignals(msg *dbc.MessageDescriptor, allow []string) ([]dbc.SignalDescriptor, error) {
	if len(allow) == 0 {
		return msg.Signals, nil
	}

	want := make(map[string]bool, len(allow))
	for _, name := range allow {
		if _, ok := msg.Signal(name); !ok {
			return nil, fmt.Errorf("signal %q not found in message %q", name, msg.Name)
		}
		want[name] = true
	}

	out := make([]dbc.SignalDescriptor, 0, len(allow))
	for _, sig := range msg.Signals {
		if want[sig.Name] {
			out = append(out, sig)
		}
	}
	return out, nil
}
