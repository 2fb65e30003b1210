package debug

import (
	"fmt"
	"strconv"
	"strings"

	"docxview/css"
)

// TreeWriter builds indented human readable dumps of style chains and
// rules.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value, empty value stays empty.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Decls writes label followed by one line per declaration in property
// name order. Nothing is written for empty declarations.
func (tw *TreeWriter) Decls(depth int, label string, d css.Declarations) {
	if len(d) == 0 {
		return
	}
	tw.Line(depth, "%s:", label)
	for _, k := range d.Keys() {
		tw.Line(depth+1, "%s: %s", k, d[k])
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
