package parser

import (
	"podgen/internal/diag"
	"podgen/internal/token"
)

// stopFunc decides where an opaque capture ends. It is only consulted at
// angle-bracket depth zero.
type stopFunc func(t *token.Token) bool

// captureOpaque consumes tokens up to (not including) the first depth-zero
// stop token and returns them as an opaque slice. '<' and '>' are ordinary
// punctuation, so the capture tracks nesting depth itself: a bound like
// Foo<Bar<Baz>> must not end at the inner '>'. A depth-zero '>' always
// stops the capture (it closes the surrounding parameter list). Exhausting
// the input with unmatched '<' is an error.
func captureOpaque(c *Cursor, stop stopFunc) ([]token.Token, *ParseError) {
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
			if t.IsPunct('>') || stop(t) {
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

func stopAnyPunct(chars ...byte) stopFunc {
	return func(t *token.Token) bool {
		for _, ch := range chars {
			if t.IsPunct(ch) {
				return true
			}
		}
		return false
	}
}
