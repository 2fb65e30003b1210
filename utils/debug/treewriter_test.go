package debug

import (
	"testing"

	"docxview/css"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "style %s (%d)", []any{"Heading1", 3}, "  style Heading1 (3)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tw := NewTreeWriter()
	tw.TextBlock(1, "text", "a\tb")
	tw.TextBlock(0, "empty", "")
	want := "  text: \"a\\tb\"\nempty: \n"
	if got := tw.String(); got != want {
		t.Errorf("TextBlock() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Decls(t *testing.T) {
	tw := NewTreeWriter()
	tw.Decls(0, "none", nil)
	tw.Decls(1, "css", css.Declarations{"margin-top": "6pt", "font-weight": "bold"})
	want := "  css:\n    font-weight: bold\n    margin-top: 6pt\n"
	if got := tw.String(); got != want {
		t.Errorf("Decls() = %q, want %q", got, want)
	}
}
