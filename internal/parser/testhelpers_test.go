package parser_test

import (
	"testing"

	"podgen/internal/ast"
	"podgen/internal/lexer"
	"podgen/internal/parser"
	"podgen/internal/source"
	"podgen/internal/token"
)

func tokenizeSrc(t *testing.T, input string) ([]token.Token, source.Span) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	toks, end, ok := lexer.Tokenize(file, lexer.Options{})
	if !ok {
		t.Fatalf("tokenize(%q) reported delimiter errors", input)
	}
	return toks, end
}

func parseDecl(t *testing.T, input string) *ast.Declaration {
	t.Helper()
	toks, end := tokenizeSrc(t, input)
	decl, err := parser.Parse(toks, end)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return decl
}

func parseDeclErr(t *testing.T, input string) *parser.ParseError {
	t.Helper()
	toks, end := tokenizeSrc(t, input)
	decl, err := parser.Parse(toks, end)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded with %+v, want error", input, decl)
	}
	return err
}

func paramNames(params []ast.GenericParam) []string {
	names := make([]string, len(params))
	for i := range params {
		names[i] = params[i].Name.Text
	}
	return names
}

func boundsText(bounds []ast.Bound) []string {
	out := make([]string, len(bounds))
	for i, b := range bounds {
		out[i] = token.Print(b)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
