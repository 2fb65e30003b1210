package css

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses inline style attributes and single CSS function values.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseDeclarations parses content of a style attribute ("a: b; c: d") into
// declarations. Broken declarations are skipped, parsing never fails.
func (p *Parser) ParseDeclarations(style string) Declarations {
	decls := make(Declarations)
	if strings.TrimSpace(style) == "" {
		return decls
	}

	parser := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				p.log.Debug("Inline style parse error", zap.String("style", style), zap.Error(err))
			}
			return decls
		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			if v := parseValue(parser.Values()); v.Raw != "" {
				decls[name] = v.Raw
			}
		case css.CustomPropertyGrammar:
			// --var: keep as is, we never interpret those
			if vals := parser.Values(); len(vals) > 0 {
				decls[string(data)] = strings.TrimSpace(string(vals[0].Data))
			}
		default:
			p.log.Debug("Skipping unexpected inline style grammar", zap.Stringer("grammar", gt))
		}
	}
}

// ParseFunction tokenizes a single functional notation value such as
// "inset(10% 20% 30% 40%)" and returns lower-cased function name and its
// arguments. Commas are accepted as separators. Any trailing content after
// the closing parenthesis, nested functions or lexer errors make result
// invalid (ok == false).
func ParseFunction(s string) (name string, args []Value, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, false
	}

	lex := css.NewLexer(parse.NewInputString(s))
	tt, data := lex.Next()
	if tt != css.FunctionToken {
		return "", nil, false
	}
	name = strings.ToLower(strings.TrimSuffix(string(data), "("))

	closed := false
	for !closed {
		tt, data = lex.Next()
		switch tt {
		case css.ErrorToken:
			// end of input before closing parenthesis
			return "", nil, false
		case css.WhitespaceToken, css.CommaToken, css.CommentToken:
		case css.RightParenthesisToken:
			closed = true
		case css.NumberToken, css.PercentageToken, css.DimensionToken, css.IdentToken:
			args = append(args, parseValue([]css.Token{{TokenType: tt, Data: data}}))
		default:
			return "", nil, false
		}
	}

	// only whitespace may follow
	for {
		tt, _ = lex.Next()
		switch tt {
		case css.ErrorToken:
			return name, args, lex.Err() == nil || errors.Is(lex.Err(), io.EOF)
		case css.WhitespaceToken:
		default:
			return "", nil, false
		}
	}
}

func parseValue(tokens []css.Token) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	// Build raw value string. Parser drops whitespace after commas, so
	// comma separated arguments are written back as ", ".
	var b strings.Builder
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
		case css.CommaToken:
			trimmed := strings.TrimRight(b.String(), " ")
			b.Reset()
			b.WriteString(trimmed)
			b.WriteString(", ")
		default:
			b.Write(t.Data)
		}
	}
	raw := strings.TrimSpace(b.String())

	val := Value{Raw: raw}

	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			val.Keyword = string(t.Data)
		}
		return val
	}

	// functions and multi-value properties keep raw value
	val.Keyword = raw
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
