// Package diagnostic reports recoverable problems found while parsing a DBC
// file or resolving a message selection. Unlike a fatal error, a diagnostic
// does not stop the generation run: the offending message or signal is
// skipped and every other selection still generates.
package diagnostic

import "fmt"

// Level is the severity of a Diagnostic.
type Level int

const (
	Error Level = iota
	Warning
	Info
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Category classifies what part of the pipeline raised the Diagnostic.
type Category int

const (
	CategorySchema Category = iota
	CategorySelection
	CategoryCodec
)

func (c Category) String() string {
	switch c {
	case CategorySchema:
		return "schema"
	case CategorySelection:
		return "selection"
	case CategoryCodec:
		return "codec"
	default:
		return "unknown"
	}
}

// Diagnostic is a single recoverable finding, optionally anchored to a line
// of the source DBC file.
type Diagnostic struct {
	Level    Level
	Category Category
	Message  string
	Line     int // 1-based DBC source line, 0 if not applicable
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s: %s (dbc:%d) [%s]", d.Level, d.Message, d.Line, d.Category)
	}
	return fmt.Sprintf("%s: %s [%s]", d.Level, d.Message, d.Category)
}

// Bag collects diagnostics produced over a generation run.
type Bag struct {
	items []Diagnostic
}

func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

func (b *Bag) Warnf(cat Category, line int, format string, args ...interface{}) {
	b.Add(Diagnostic{Level: Warning, Category: cat, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (b *Bag) Errorf(cat Category, line int, format string, args ...interface{}) {
	b.Add(Diagnostic{Level: Error, Category: cat, Line: line, Message: fmt.Sprintf(format, args...)})
}

// Items returns every diagnostic recorded so far, in emission order.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports whether any diagnostic at Error level was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Level == Error {
			return true
		}
	}
	return false
}
