package ooxml

// StyleType is w:style/@w:type.
type StyleType string

const (
	StyleParagraph StyleType = "paragraph"
	StyleCharacter StyleType = "character"
	StyleTable     StyleType = "table"
	StyleNumbering StyleType = "numbering"
)

// Style is a named style definition.
type Style struct {
	ID      string
	Name    string
	Type    StyleType
	BasedOn string
	Default bool
	PPr     ParagraphProperties
	RPr     RunProperties
	TblPr   TableProperties
}

// StyleChain is a flattened based-on chain ordered from the most specific
// style (index 0) towards the root. It is built once with cycle detection,
// resolvers only iterate over it.
type StyleChain []*Style

// IDs returns style identifiers in chain order.
func (c StyleChain) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, s := range c {
		ids = append(ids, s.ID)
	}
	return ids
}

// Concat returns new chain with other appended, other has lower precedence.
func (c StyleChain) Concat(other StyleChain) StyleChain {
	out := make(StyleChain, 0, len(c)+len(other))
	out = append(out, c...)
	return append(out, other...)
}

// StyleSheet holds document styles and defaults (word/styles.xml).
type StyleSheet struct {
	Defaults DocDefaults

	styles map[string]*Style
	order  []string
}

// NewStyleSheet creates style sheet from definitions. Later definitions
// with duplicate IDs replace earlier ones.
func NewStyleSheet(defaults DocDefaults, styles ...*Style) *StyleSheet {
	ss := &StyleSheet{
		Defaults: defaults,
		styles:   make(map[string]*Style, len(styles)),
	}
	for _, s := range styles {
		ss.Add(s)
	}
	return ss
}

// Add registers a style.
func (ss *StyleSheet) Add(s *Style) {
	if s == nil || s.ID == "" {
		return
	}
	if _, exists := ss.styles[s.ID]; !exists {
		ss.order = append(ss.order, s.ID)
	}
	ss.styles[s.ID] = s
}

// Get returns style by identifier.
func (ss *StyleSheet) Get(id string) (*Style, bool) {
	if ss == nil {
		return nil, false
	}
	s, ok := ss.styles[id]
	return s, ok
}

// IDs returns style identifiers in definition order.
func (ss *StyleSheet) IDs() []string {
	if ss == nil {
		return nil
	}
	return append([]string(nil), ss.order...)
}

// Len returns number of styles.
func (ss *StyleSheet) Len() int {
	if ss == nil {
		return 0
	}
	return len(ss.styles)
}

// DefaultStyle returns style marked as default for the type, if any. When
// several are marked the last one wins, as in Word.
func (ss *StyleSheet) DefaultStyle(t StyleType) (*Style, bool) {
	if ss == nil {
		return nil, false
	}
	var found *Style
	for _, id := range ss.order {
		if s := ss.styles[id]; s.Type == t && s.Default {
			found = s
		}
	}
	return found, found != nil
}

// Chain builds the based-on chain for style id. Missing styles end the
// chain quietly. When a style is reached a second time ascent stops and
// cycle is reported, chain collected so far is still returned.
func (ss *StyleSheet) Chain(id string) (chain StyleChain, cycle bool) {
	if ss == nil {
		return nil, false
	}
	visited := make(map[string]bool)
	for current := id; current != ""; {
		if visited[current] {
			return chain, true
		}
		s, ok := ss.styles[current]
		if !ok {
			break
		}
		visited[current] = true
		chain = append(chain, s)
		current = s.BasedOn
	}
	return chain, false
}

// ParagraphChain returns chain for paragraph style id, falling back to the
// default paragraph style when id is empty or unknown.
func (ss *StyleSheet) ParagraphChain(id string) (StyleChain, bool) {
	return ss.typedChain(id, StyleParagraph)
}

// TableChain returns chain for table style id with default table style
// fallback.
func (ss *StyleSheet) TableChain(id string) (StyleChain, bool) {
	return ss.typedChain(id, StyleTable)
}

// CharacterChain returns chain for character style id. Default character
// style ("Default Paragraph Font") carries no properties and is not used.
func (ss *StyleSheet) CharacterChain(id string) (StyleChain, bool) {
	if id == "" {
		return nil, false
	}
	return ss.Chain(id)
}

func (ss *StyleSheet) typedChain(id string, t StyleType) (StyleChain, bool) {
	if _, ok := ss.Get(id); !ok || id == "" {
		if def, ok := ss.DefaultStyle(t); ok {
			id = def.ID
		}
	}
	return ss.Chain(id)
}
