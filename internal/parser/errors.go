package parser

import (
	"fmt"

	"podgen/internal/diag"
	"podgen/internal/source"
	"podgen/internal/token"
)

// ParseError is the single failure kind of the declaration parser: what was
// expected, what was found (nil at end of input), and where. Any ParseError
// aborts the whole expansion; there is no partial output.
type ParseError struct {
	Code     diag.Code
	Expected string
	Found    *token.Token
	Pos      source.Span
}

func (e *ParseError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, describe(e.Found))
}

// Report converts the error into a position-anchored diagnostic.
func (e *ParseError) Report(r diag.Reporter) {
	diag.ReportError(r, e.Code, e.Pos, e.Error())
}

func describe(t *token.Token) string {
	switch t.Kind {
	case token.Ident:
		return fmt.Sprintf("'%s'", t.Text)
	case token.Literal:
		return fmt.Sprintf("literal %s", t.Text)
	case token.Punct:
		return fmt.Sprintf("'%c'", t.Ch)
	case token.Group:
		return fmt.Sprintf("'%c...%c' group", t.Delim.Open(), t.Delim.Close())
	}
	return "invalid token"
}
