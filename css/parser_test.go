package css_test

import (
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"docxview/css"
)

func TestParser_ParseDeclarations(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		name  string
		style string
		want  css.Declarations
	}{
		{"empty", "", css.Declarations{}},
		{"blank", "   ", css.Declarations{}},
		{"single", "color: red", css.Declarations{"color": "red"}},
		{
			name:  "multiple",
			style: "margin-top: 12pt; clip-path: inset(10% 20% 30% 40%);  Font-Weight : bold",
			want: css.Declarations{
				"margin-top":  "12pt",
				"clip-path":   "inset(10% 20% 30% 40%)",
				"font-weight": "bold",
			},
		},
		{
			name:  "comma separated arguments",
			style: "transform: translate(-100%, -16.666666666666668%) scale(2.5, 1.6666666666666667); font-family: 'Calibri' ,Carlito",
			want: css.Declarations{
				"transform":   "translate(-100%, -16.666666666666668%) scale(2.5, 1.6666666666666667)",
				"font-family": "'Calibri', Carlito",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseDeclarations(tt.style)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDeclarations(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestParseFunction(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantArgs int
		wantOK   bool
	}{
		{"inset(10% 20% 30% 40%)", "inset", 4, true},
		{"  INSET(0% 0% 0% 0%)  ", "inset", 4, true},
		{"inset(1%,2%,3%,4%)", "inset", 4, true},
		{"inset(10% 20%", "", 0, false},
		{"inset(10% 20%) extra", "", 0, false},
		{"inset(calc(1%) 2%)", "", 0, false},
		{"10%", "", 0, false},
		{"", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, args, ok := css.ParseFunction(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseFunction(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if len(args) != tt.wantArgs {
				t.Fatalf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}

	_, args, _ := css.ParseFunction("inset(10% 20.5% 0% -3%)")
	want := []float64{10, 20.5, 0, -3}
	for i, a := range args {
		if !a.IsPercent() || a.Value != want[i] {
			t.Errorf("arg %d = %+v, want %v%%", i, a, want[i])
		}
	}
}

func TestDeclarations(t *testing.T) {
	d := css.Declarations{}
	d.SetProperty("b", "2")
	d.SetProperty("a", "1")
	d.SetProperty("c", "3")
	d.SetProperty("c", "")

	if got, want := d.String(), "a: 1; b: 2;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	other := css.Declarations{"b": "20", "d": "4"}
	d.Merge(other)
	if d["b"] != "20" || d["d"] != "4" {
		t.Errorf("Merge result = %v", d)
	}

	c := d.Clone()
	c["a"] = "changed"
	if d["a"] != "1" {
		t.Error("Clone is not independent")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{2.5, "2.5"},
		{-100, "-100"},
		{100.0 / 60.0, "1.6666666666666667"},
		{-10 * (100.0 / 60.0), "-16.666666666666668"},
	}
	for _, tt := range tests {
		if got := css.FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	if got := css.Quote("Times New Roman"); got != `"Times New Roman"` {
		t.Errorf("Quote = %s", got)
	}
	if got := css.Quote(`a"b\c`); got != `"a\"b\\c"` {
		t.Errorf("Quote = %s", got)
	}
}
