// Package parser turns a token-tree sequence into the declaration shape the
// expander needs: kind, name, generic parameters, where predicates. Field
// lists, variant bodies, bound contents and defaults stay opaque token runs.
//
// The parser is plain recursive descent over one nesting level at a time.
// Groups already carry their contents, so the only bracket-matching done
// here is for '<' and '>', which the tokenizer leaves as ordinary
// punctuation. Every failure is a ParseError value; nothing panics on
// malformed input.
package parser

import (
	"podgen/internal/ast"
	"podgen/internal/source"
	"podgen/internal/token"
)

// Parse reads a single type declaration from the start of toks. end anchors
// end-of-input diagnostics when toks is empty.
func Parse(toks []token.Token, end source.Span) (*ast.Declaration, *ParseError) {
	return ParseDeclaration(NewCursor(toks, end))
}
