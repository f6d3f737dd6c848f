package parser

import (
	"podgen/internal/diag"
	"podgen/internal/source"
	"podgen/internal/token"
)

// Cursor is a position within one nesting level of a token sequence. It
// never descends into a Group on its own: interpreting a group's contents
// takes an explicit NewCursor over Token.Inner. The underlying sequence is
// never modified.
type Cursor struct {
	toks []token.Token
	idx  int
	end  source.Span // zero-length span just past the sequence
	last source.Span // span of the last consumed token
}

// NewCursor wraps a token sequence. end anchors end-of-input diagnostics;
// for a group's inner sequence, pass the group span collapsed to its end.
func NewCursor(toks []token.Token, end source.Span) *Cursor {
	return &Cursor{toks: toks, end: end, last: source.Span{File: end.File}}
}

// Peek returns the current token without consuming it, or nil at the end.
func (c *Cursor) Peek() *token.Token {
	if c.idx >= len(c.toks) {
		return nil
	}
	return &c.toks[c.idx]
}

// PeekAhead returns the token n positions past the current one, or nil.
// PeekAhead(0) is Peek.
func (c *Cursor) PeekAhead(n int) *token.Token {
	if c.idx+n >= len(c.toks) {
		return nil
	}
	return &c.toks[c.idx+n]
}

// Advance consumes one token, or returns nil at the end.
func (c *Cursor) Advance() *token.Token {
	if c.idx >= len(c.toks) {
		return nil
	}
	t := &c.toks[c.idx]
	c.idx++
	c.last = t.Span
	return t
}

// Offset returns the number of tokens consumed so far.
func (c *Cursor) Offset() int {
	return c.idx
}

// AtEnd reports whether the sequence is exhausted.
func (c *Cursor) AtEnd() bool {
	return c.idx >= len(c.toks)
}

// Pos returns the best diagnostic anchor: the current token's span, or the
// end position once the sequence is exhausted.
func (c *Cursor) Pos() source.Span {
	if t := c.Peek(); t != nil {
		return t.Span
	}
	if !c.last.Empty() || c.last.End > 0 {
		return c.last.CollapseToEnd()
	}
	return c.end
}

// LastSpan returns the span of the most recently consumed token.
func (c *Cursor) LastSpan() source.Span {
	return c.last
}

// Mark is a saved cursor position.
type Mark int

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.idx)
}

// Slice returns the tokens consumed since the mark, as a read-only view.
func (c *Cursor) Slice(m Mark) []token.Token {
	return c.toks[m:c.idx]
}

// ExpectPunct consumes the given punctuation character or fails.
func (c *Cursor) ExpectPunct(ch byte) (token.Token, *ParseError) {
	t := c.Peek()
	if t != nil && t.IsPunct(ch) {
		return *c.Advance(), nil
	}
	code := diag.SynUnexpectedToken
	if t == nil {
		code = diag.SynUnexpectedEnd
	}
	return token.Token{}, &ParseError{
		Code:     code,
		Expected: "'" + string(ch) + "'",
		Found:    t,
		Pos:      c.Pos(),
	}
}

// ExpectIdent consumes any identifier or fails.
func (c *Cursor) ExpectIdent() (token.Token, *ParseError) {
	t := c.Peek()
	if t != nil && t.Kind == token.Ident {
		return *c.Advance(), nil
	}
	code := diag.SynExpectIdentifier
	if t == nil {
		code = diag.SynUnexpectedEnd
	}
	return token.Token{}, &ParseError{
		Code:     code,
		Expected: "identifier",
		Found:    t,
		Pos:      c.Pos(),
	}
}
