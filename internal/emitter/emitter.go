// Package emitter renders resolved message selections into one Go source
// file: a value object per message, with decode/encode methods built from
// internal/codec's synthesized fragments. It formats the result with
// golang.org/x/tools/imports the way cmd/orizon-mockgen formats its mock
// files with go/format, generalized to also manage the import block.
package emitter

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/tegimeki/dbc-data/internal/codec"
	"github.com/tegimeki/dbc-data/internal/dbc"
	"github.com/tegimeki/dbc-data/internal/selection"
	"github.com/tegimeki/dbc-data/internal/typemap"
)

// Field is one generated struct field: a signal bound to its Go name and
// mapped types.
type Field struct {
	GoName  string
	Signal  dbc.SignalDescriptor
	Storage typemap.StorageType
	Float   bool
}

// Message is one fully resolved generated type, ready to render.
type Message struct {
	TypeName string
	Descr    *dbc.MessageDescriptor
	Fields   []Field
}

// BuildMessage maps a selection.Resolved entry into a renderable Message.
func BuildMessage(r selection.Resolved) Message {
	fields := make([]Field, 0, len(r.Signals))
	for _, sig := range r.Signals {
		fields = append(fields, Field{
			GoName:  goIdentifier(sig.Name),
			Signal:  sig,
			Storage: typemap.Storage(sig),
			Float:   typemap.Public(sig),
		})
	}
	return Message{TypeName: r.TypeName, Descr: r.Message, Fields: fields}
}

// goIdentifier passes DBC signal names through unchanged: they are mirrored
// verbatim as field identifiers, including unconventional casing or
// underscores. Go itself accepts any DBC signal name that is already a
// legal identifier; we don't attempt to "fix" naming-convention warnings.
func goIdentifier(name string) string { return name }

// Render produces one formatted Go source file containing every message.
func Render(pkg string, messages []Message) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by dbcgen. DO NOT EDIT.\n\npackage %s\n\n", pkg)

	for _, m := range messages {
		renderMessage(&buf, m)
	}

	formatted, err := imports.Process("generated.go", buf.Bytes(), nil)
	if err != nil {
		// Matches orizon-mockgen's fallback: return the unformatted source
		// rather than fail the whole run over a cosmetic formatting error.
		return buf.Bytes(), nil
	}
	return formatted, nil
}

func renderMessage(buf *bytes.Buffer, m Message) {
	fmt.Fprintf(buf, "type %s struct {\n", m.TypeName)
	for _, f := range m.Fields {
		goType := f.Storage.GoName()
		if f.Float {
			goType = "float32"
		}
		fmt.Fprintf(buf, "\t%s %s\n", f.GoName, goType)
	}
	buf.WriteString("}\n\n")

	fmt.Fprintf(buf, "const (\n\t%sID = uint32(%d)\n\t%sDLC = uint8(%d)\n\t%sEXTENDED = %v\n",
		m.TypeName, m.Descr.ID, m.TypeName, m.Descr.DLC, m.TypeName, m.Descr.Extended)
	if m.Descr.HasCycle {
		fmt.Fprintf(buf, "\t%sCYCLE_TIME = uint(%d)\n", m.TypeName, m.Descr.CycleTime)
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(buf, "var Err%sLength = errors.New(\"%s: pdu length mismatch\")\n\n", m.TypeName, m.TypeName)

	renderDecode(buf, m)
	renderEncode(buf, m)
	renderNew(buf, m)
}

// renderNew emits the value object's constructor: it default-constructs a
// zero-valued message and invokes Decode, returning the populated object or
// a length-mismatch error.
func renderNew(buf *bytes.Buffer, m Message) {
	fmt.Fprintf(buf, "func New%s(pdu []byte) (%s, error) {\n", m.TypeName, m.TypeName)
	fmt.Fprintf(buf, "\tvar msg %s\n", m.TypeName)
	buf.WriteString("\tif !msg.Decode(pdu) {\n")
	fmt.Fprintf(buf, "\t\treturn %s{}, Err%sLength\n", m.TypeName, m.TypeName)
	buf.WriteString("\t}\n\treturn msg, nil\n}\n\n")
}

func renderDecode(buf *bytes.Buffer, m Message) {
	fmt.Fprintf(buf, "func (msg *%s) Decode(pdu []byte) bool {\n", m.TypeName)
	fmt.Fprintf(buf, "\tif len(pdu) != int(%sDLC) {\n\t\treturn false\n\t}\n", m.TypeName)
	for _, f := range m.Fields {
		frag := codec.DecodeFragment(fieldParams(f, "msg."+f.GoName))
		buf.WriteString(indentBlock(frag))
	}
	buf.WriteString("\treturn true\n}\n\n")
}

func renderEncode(buf *bytes.Buffer, m Message) {
	fmt.Fprintf(buf, "func (msg *%s) Encode(pdu []byte) bool {\n", m.TypeName)
	fmt.Fprintf(buf, "\tif len(pdu) != int(%sDLC) {\n\t\treturn false\n\t}\n", m.TypeName)
	for _, f := range m.Fields {
		p := fieldParams(f, "msg."+f.GoName)
		frag, err := codec.EncodeFragment(p)
		if err != nil {
			fmt.Fprintf(buf, "\t// %s: %v, encoder not emitted\n", f.GoName, err)
			continue
		}
		buf.WriteString(indentBlock(frag))
	}
	buf.WriteString("\treturn true\n}\n\n")
}

func fieldParams(f Field, fieldExpr string) codec.Params {
	sig := f.Signal
	return codec.Params{
		Field:        fieldExpr,
		PduVar:       "pdu",
		Start:        sig.StartBit,
		Width:        sig.Width,
		BigEndian:    sig.ByteOrder == dbc.BigEndian,
		Signed:       sig.Sign == dbc.Signed,
		StorageType:  f.Storage.GoName(),
		StorageWidth: f.Storage.Width(),
		Float:        f.Float,
		Factor:       sig.Factor,
		Offset:       sig.Offset,
	}
}

func indentBlock(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "\t" + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
