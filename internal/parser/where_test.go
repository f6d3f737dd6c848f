package parser_test

import (
	"testing"

	"podgen/internal/diag"
	"podgen/internal/token"
)

func predicateText(t *testing.T, input string) [][2]string {
	t.Helper()
	decl := parseDecl(t, input)
	out := make([][2]string, len(decl.Where))
	for i, p := range decl.Where {
		bounds := ""
		for j, b := range p.Bounds {
			if j > 0 {
				bounds += " + "
			}
			bounds += token.Print(b)
		}
		out[i] = [2]string{token.Print(p.Subject), bounds}
	}
	return out
}

func TestParseWhereAbsent(t *testing.T) {
	decl := parseDecl(t, "struct A<T> { x: T }")
	if len(decl.Where) != 0 {
		t.Fatalf("where = %v, want none", decl.Where)
	}
}

func TestParseWhereBeforeBody(t *testing.T) {
	preds := predicateText(t, "struct A<T, U> where T: Copy, U: core::fmt::Display { x: T }")
	want := [][2]string{
		{"T", "Copy"},
		{"U", "core::fmt::Display"},
	}
	if len(preds) != len(want) {
		t.Fatalf("predicates = %v, want %v", preds, want)
	}
	for i := range want {
		if preds[i] != want[i] {
			t.Errorf("predicate %d = %v, want %v", i, preds[i], want[i])
		}
	}
}

func TestParseWhereAtEndOfInput(t *testing.T) {
	// A unit struct may end right after its where clause.
	preds := predicateText(t, "struct Pair<T: Default, U> where U: core::fmt::Display")
	if len(preds) != 1 || preds[0] != [2]string{"U", "core::fmt::Display"} {
		t.Fatalf("predicates = %v", preds)
	}
}

func TestParseWhereTrailingComma(t *testing.T) {
	with := predicateText(t, "struct A<T> where T: Copy, { x: T }")
	without := predicateText(t, "struct A<T> where T: Copy { x: T }")
	if len(with) != 1 || len(without) != 1 || with[0] != without[0] {
		t.Fatalf("trailing comma changed predicates: %v vs %v", with, without)
	}
}

func TestParseWhereQualifiedSubject(t *testing.T) {
	preds := predicateText(t, "struct A<T> where <T as Iterator>::Item: Clone { x: T }")
	if len(preds) != 1 {
		t.Fatalf("predicates = %v", preds)
	}
	if preds[0][0] != "<T as Iterator>::Item" {
		t.Errorf("subject = %q, '::' must not end the subject", preds[0][0])
	}
	if preds[0][1] != "Clone" {
		t.Errorf("bounds = %q", preds[0][1])
	}
}

func TestParseWhereLifetimeBound(t *testing.T) {
	preds := predicateText(t, "struct A<'a, T> where T: 'a + Send { x: T }")
	if len(preds) != 1 || preds[0] != [2]string{"T", "'a + Send"} {
		t.Fatalf("predicates = %v", preds)
	}
}

func TestParseWhereNestedAnglesInBound(t *testing.T) {
	preds := predicateText(t, "struct A<T> where T: Into<Vec<u8>> { x: T }")
	if len(preds) != 1 || preds[0][1] != "Into<Vec<u8>>" {
		t.Fatalf("predicates = %v", preds)
	}
}

func TestParseWhereAfterTupleBody(t *testing.T) {
	decl := parseDecl(t, "struct Pair<A, B>(A, B) where A: Send;")
	if len(decl.Where) != 1 {
		t.Fatalf("where = %v, want one predicate", decl.Where)
	}
	if got := token.Print(decl.Where[0].Subject); got != "A" {
		t.Errorf("subject = %q", got)
	}
}

func TestParseWhereErrors(t *testing.T) {
	cases := []struct {
		input string
		code  diag.Code
	}{
		{"struct A<T> where { x: T }", diag.SynExpectWherePredicate},
		{"struct A<T> where", diag.SynExpectWherePredicate},
		{"struct A<T> where T { x: T }", diag.SynUnexpectedToken},
		{"struct A<T> where T:", diag.SynExpectBound},
		{"struct A<T> where T: { x: T }", diag.SynExpectBound},
	}
	for _, tc := range cases {
		err := parseDeclErr(t, tc.input)
		if err.Code != tc.code {
			t.Errorf("%q: code = %v, want %v (err: %v)", tc.input, err.Code, tc.code, err)
		}
	}
}
