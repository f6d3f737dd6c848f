package parser

import (
	"podgen/internal/ast"
	"podgen/internal/diag"
	"podgen/internal/token"
)

// isBodyStart reports whether the token opens the declaration body (or ends
// the declaration outright): a brace or paren group, or a semicolon.
func isBodyStart(t *token.Token) bool {
	return t.IsGroup(token.DelimBrace) || t.IsGroup(token.DelimParen) || t.IsPunct(';')
}

// ParseWhere consumes an optional where clause. A missing 'where' keyword
// yields the empty list. Predicates are comma-separated with a trailing
// comma allowed; the clause ends at the declaration body, a semicolon, or
// clean end of input. A predicate cut off mid-way (subject with no ':',
// bounds that never materialize, an unmatched '<') is an error.
func ParseWhere(c *Cursor) ([]ast.WherePredicate, *ParseError) {
	t := c.Peek()
	if t == nil || !t.IsIdent("where") {
		return nil, nil
	}
	whereTok := c.Advance()

	preds := make([]ast.WherePredicate, 0, 2)
	for {
		t = c.Peek()
		if t == nil || isBodyStart(t) {
			if len(preds) == 0 {
				return nil, &ParseError{
					Code:     diag.SynExpectWherePredicate,
					Expected: "where predicate",
					Found:    t,
					Pos:      whereTok.Span.CollapseToEnd(),
				}
			}
			return preds, nil
		}

		subject, err := captureSubject(c)
		if err != nil {
			return nil, err
		}
		if len(subject) == 0 {
			return nil, &ParseError{
				Code:     diag.SynExpectWherePredicate,
				Expected: "where predicate",
				Found:    c.Peek(),
				Pos:      c.Pos(),
			}
		}

		if _, err = c.ExpectPunct(':'); err != nil {
			return nil, err
		}

		bounds, err := parseBoundList(c, func(t *token.Token) bool {
			return t.IsPunct(',') || isBodyStart(t)
		})
		if err != nil {
			return nil, err
		}

		span := subject[0].Span.Cover(c.LastSpan())
		preds = append(preds, ast.WherePredicate{
			Subject: subject,
			Bounds:  bounds,
			Span:    span,
		})

		if t = c.Peek(); t != nil && t.IsPunct(',') {
			c.Advance()
			continue
		}
		// Anything that is not a separator must end the clause; the loop
		// head validates it.
	}
}

// captureSubject consumes the left side of a predicate, up to (not
// including) its ':'. A '::' path separator inside the subject (for<'a>
// bounds aside, subjects are types, e.g. <T as Iterator>::Item) must not be
// mistaken for that ':', so a colon only stops the capture when it does not
// start a '::' pair. The predicate colon itself may lex as Joint when the
// bound starts with a sigil ('a, &T), which is why the check needs a second
// token of lookahead rather than spacing alone.
func captureSubject(c *Cursor) ([]token.Token, *ParseError) {
	m := c.Mark()
	depth := 0

	for {
		t := c.Peek()
		if t == nil {
			if depth > 0 {
				return nil, &ParseError{
					Code:     diag.SynUnclosedAngleBracket,
					Expected: "'>'",
					Found:    nil,
					Pos:      c.Pos(),
				}
			}
			break
		}
		if depth == 0 {
			if t.IsPunct(',') || isBodyStart(t) {
				break
			}
			if t.IsPunct(':') {
				next := c.PeekAhead(1)
				if t.Spacing == token.Joint && next != nil && next.IsPunct(':') {
					c.Advance()
					c.Advance()
					continue
				}
				break
			}
		} else if t.IsPunct('>') {
			depth--
			c.Advance()
			continue
		}
		if t.IsPunct('<') {
			depth++
		}
		c.Advance()
	}

	return c.Slice(m), nil
}
