package token_test

import (
	"testing"

	"podgen/internal/lexer"
	"podgen/internal/source"
	"podgen/internal/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	toks, _, ok := lexer.Tokenize(file, lexer.Options{})
	if !ok {
		t.Fatalf("tokenize(%q) reported delimiter errors", input)
	}
	return toks
}

func TestPrintRoundTrip(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"struct Point<T>", "struct Point<T>"},
		{"struct   Point < T >", "struct Point<T>"},
		{"T: Default + Clone", "T: Default + Clone"},
		{"core::fmt::Display", "core::fmt::Display"},
		{"const N: usize = 16", "const N: usize = 16"},
		{"'a", "'a"},
		{"<'a, T: 'a>", "<'a, T: 'a>"},
		{"Vec<Inner<T>>", "Vec<Inner<T>>"},
		{"impl Pod for Unit {}", "impl Pod for Unit {}"},
		{"x -> y", "x -> y"},
		{"a, b, c", "a, b, c"},
		{"foo;", "foo;"},
	}
	for _, tc := range cases {
		got := token.Print(tokenize(t, tc.input))
		if got != tc.want {
			t.Errorf("Print(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPrintSynthesizedSequence(t *testing.T) {
	sp := source.Span{}
	toks := []token.Token{
		token.NewIdent("impl", sp),
		token.NewPunct('<', token.Alone, sp),
		token.NewPunct('\'', token.Joint, sp),
		token.NewIdent("a", sp),
		token.NewPunct(',', token.Alone, sp),
		token.NewIdent("T", sp),
		token.NewPunct('>', token.Alone, sp),
		token.NewIdent("Pod", sp),
		token.NewIdent("for", sp),
		token.NewIdent("Node", sp),
		token.NewGroup(token.DelimBrace, nil, sp),
	}
	want := "impl<'a, T> Pod for Node {}"
	if got := token.Print(toks); got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}

func TestPrintPathTailGluesSegment(t *testing.T) {
	// The second ':' of '::' is Alone when the next char is not a punct, yet
	// the following segment must still glue to it.
	toks := tokenize(t, "crate::pod::Pod")
	if len(toks) != 7 {
		t.Fatalf("token count = %d, want 7", len(toks))
	}
	if toks[1].Spacing != token.Joint || toks[2].Spacing != token.Alone {
		t.Fatalf("'::' spacing = %s/%s, want joint/alone", toks[1].Spacing, toks[2].Spacing)
	}
	if got := token.Print(toks); got != "crate::pod::Pod" {
		t.Errorf("Print = %q, want %q", got, "crate::pod::Pod")
	}
}
