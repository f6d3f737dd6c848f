package token

import (
	"podgen/internal/source"
)

// Kind represents the category of a token tree node.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Ident represents an identifier (keywords included; the parser matches
	// them by text, the way a macro expander sees them).
	Ident
	// Literal represents a numeric, string, char, or byte literal.
	Literal
	// Punct represents a single punctuation character with a spacing hint.
	Punct
	// Group represents a delimited subtree: (…), {…}, or […].
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "ident"
	case Literal:
		return "literal"
	case Punct:
		return "punct"
	case Group:
		return "group"
	}
	return "invalid"
}

// Spacing tells whether a Punct is glued to the next token.
type Spacing uint8

const (
	// Alone means the punctuation is followed by whitespace or a non-punct.
	Alone Spacing = iota
	// Joint means the punctuation is immediately followed by another punct,
	// forming a multi-character operator such as :: or ->.
	Joint
)

func (s Spacing) String() string {
	if s == Joint {
		return "joint"
	}
	return "alone"
}

// Delim identifies the delimiter pair of a Group.
type Delim uint8

const (
	// DelimNone marks an implicit group with no printed delimiters.
	DelimNone Delim = iota
	DelimParen
	DelimBrace
	DelimBracket
)

// Open returns the opening delimiter character, or 0 for DelimNone.
func (d Delim) Open() byte {
	switch d {
	case DelimParen:
		return '('
	case DelimBrace:
		return '{'
	case DelimBracket:
		return '['
	}
	return 0
}

// Close returns the closing delimiter character, or 0 for DelimNone.
func (d Delim) Close() byte {
	switch d {
	case DelimParen:
		return ')'
	case DelimBrace:
		return '}'
	case DelimBracket:
		return ']'
	}
	return 0
}

// Token is one node of the token tree. Exactly one of the kind-specific
// fields is meaningful: Text for Ident/Literal, Ch+Spacing for Punct,
// Delim+Inner for Group.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Ch      byte
	Spacing Spacing
	Delim   Delim
	Inner   []Token
}

// NewIdent builds an identifier token.
func NewIdent(text string, span source.Span) Token {
	return Token{Kind: Ident, Span: span, Text: text}
}

// NewLiteral builds a literal token.
func NewLiteral(text string, span source.Span) Token {
	return Token{Kind: Literal, Span: span, Text: text}
}

// NewPunct builds a punctuation token.
func NewPunct(ch byte, spacing Spacing, span source.Span) Token {
	return Token{Kind: Punct, Span: span, Ch: ch, Spacing: spacing}
}

// NewGroup builds a group token owning its inner sequence.
func NewGroup(delim Delim, inner []Token, span source.Span) Token {
	return Token{Kind: Group, Span: span, Delim: delim, Inner: inner}
}

// IsIdent reports whether the token is the given identifier.
func (t Token) IsIdent(text string) bool {
	return t.Kind == Ident && t.Text == text
}

// IsPunct reports whether the token is the given punctuation character.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == Punct && t.Ch == ch
}

// IsGroup reports whether the token is a group with the given delimiter.
func (t Token) IsGroup(delim Delim) bool {
	return t.Kind == Group && t.Delim == delim
}
