// Package printer renders a node tree as canonical, indented JSON text.
// The output is deterministic: object entries are emitted in lexicographic
// key order, nesting indents by two spaces per level, and whole-number
// doubles keep a trailing ".0" so the int/double distinction survives a
// load/print cycle.
package printer

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/node"
)

// Print writes the canonical textual form of doc to w. The only failure
// mode is a sink write error; a document built through valid paths always
// renders.
func Print(doc node.Document, w io.Writer) error {
	p := &printer{w: w}
	p.printNode(doc.Root(), 0)
	if p.err != nil {
		return errors.NewOutputError("failed to write document", p.err)
	}
	return nil
}

// Sprint returns the canonical textual form of doc as a string.
func Sprint(doc node.Document) string {
	var sb strings.Builder
	p := &printer{w: &sb}
	p.printNode(doc.Root(), 0)
	return sb.String()
}

// printer latches the first write error and turns every later write into
// a no-op, so the emission code stays free of error plumbing.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) printNode(n node.Node, indent int) {
	switch n.Kind() {
	case node.KindNull:
		p.write("null")
	case node.KindBool:
		v, _ := n.AsBool()
		if v {
			p.write("true")
		} else {
			p.write("false")
		}
	case node.KindInt:
		v, _ := n.AsInt()
		p.write(strconv.FormatInt(int64(v), 10))
	case node.KindDouble:
		v, _ := n.AsDouble()
		p.write(formatDouble(v))
	case node.KindString:
		v, _ := n.AsString()
		p.printString(v)
	case node.KindArray:
		v, _ := n.AsArray()
		p.printArray(v, indent)
	case node.KindObject:
		v, _ := n.AsObject()
		p.printObject(v, indent)
	}
}

// formatDouble renders whole numbers below 1e10 with one forced decimal
// digit ("3.0") so they stay textually distinct from integers; everything
// else takes the shortest default form, exponential where natural.
func formatDouble(v float64) string {
	if math.Floor(v) == v && math.Abs(v) < 1e10 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// printString wraps s in quotes, re-escaping the five recognized escape
// characters. All other bytes, control characters included, pass verbatim.
func (p *printer) printString(s string) {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	p.write(sb.String())
}

func (p *printer) printArray(a node.Array, indent int) {
	p.write("[")
	for i, element := range a {
		if i > 0 {
			p.write(",")
		}
		p.write("\n" + spaces(indent+2))
		p.printNode(element, indent+2)
	}
	if len(a) > 0 {
		p.write("\n" + spaces(indent))
	}
	p.write("]")
}

func (p *printer) printObject(o node.Object, indent int) {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	p.write("{")
	for i, key := range keys {
		if i > 0 {
			p.write(",")
		}
		p.write("\n" + spaces(indent+2))
		p.printString(key)
		p.write(": ")
		p.printNode(o[key], indent+2)
	}
	if len(o) > 0 {
		p.write("\n" + spaces(indent))
	}
	p.write("}")
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
