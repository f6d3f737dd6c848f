package lexer

import (
	"fmt"

	"podgen/internal/diag"
	"podgen/internal/source"
	"podgen/internal/token"
)

type frame struct {
	delim    token.Delim
	openSpan source.Span
	toks     []token.Token
}

// Tokenize scans the whole file into a balanced token tree: (), {}, and []
// become Group tokens owning their contents. ok is false when delimiters did
// not balance; the partial tree is still returned for dumps, but callers
// must not parse it.
func Tokenize(file *source.File, opts Options) (toks []token.Token, end source.Span, ok bool) {
	s := NewScanner(file, opts)
	ok = true

	var stack []frame
	top := frame{}

	push := func(t token.Token) {
		top.toks = append(top.toks, t)
	}

	for {
		t, more := s.Next()
		if !more {
			break
		}

		switch {
		case t.Kind == token.Punct && isOpenDelim(t.Ch):
			stack = append(stack, top)
			top = frame{delim: delimFor(t.Ch), openSpan: t.Span}

		case t.Kind == token.Punct && isCloseDelim(t.Ch):
			if len(stack) == 0 {
				s.report(diag.LexStrayCloseDelimiter, t.Span,
					fmt.Sprintf("closing '%c' without matching opener", t.Ch))
				ok = false
				continue
			}
			if top.delim.Close() != t.Ch {
				s.report(diag.LexMismatchedDelimiter, t.Span,
					fmt.Sprintf("expected '%c', found '%c'", top.delim.Close(), t.Ch))
				ok = false
			}
			group := token.NewGroup(top.delim, top.toks, top.openSpan.Cover(t.Span))
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.toks = append(top.toks, group)

		default:
			push(t)
		}
	}

	end = s.EndSpan()

	// Unclosed openers: report each one at its opening position and fold the
	// collected tokens upward so nothing is silently dropped.
	for len(stack) > 0 {
		s.report(diag.LexUnclosedDelimiter, top.openSpan,
			fmt.Sprintf("unclosed '%c'", top.delim.Open()))
		ok = false
		group := token.NewGroup(top.delim, top.toks, top.openSpan.Cover(end))
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		top.toks = append(top.toks, group)
	}

	return top.toks, end, ok
}

func delimFor(open byte) token.Delim {
	switch open {
	case '(':
		return token.DelimParen
	case '{':
		return token.DelimBrace
	case '[':
		return token.DelimBracket
	}
	return token.DelimNone
}
