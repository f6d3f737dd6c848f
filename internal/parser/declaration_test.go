package parser_test

import (
	"testing"

	"podgen/internal/ast"
	"podgen/internal/diag"
	"podgen/internal/parser"
)

func TestParseDeclarationKinds(t *testing.T) {
	cases := []struct {
		input string
		kind  ast.DeclKind
		name  string
	}{
		{"struct Point<T> { x: T }", ast.DeclStruct, "Point"},
		{"enum Shape { Circle, Square }", ast.DeclEnum, "Shape"},
		{"union Bits { a: u32, b: f32 }", ast.DeclUnion, "Bits"},
	}
	for _, tc := range cases {
		decl := parseDecl(t, tc.input)
		if decl.Kind != tc.kind || decl.Name.Text != tc.name {
			t.Errorf("%q: got %s %s, want %s %s",
				tc.input, decl.Kind, decl.Name.Text, tc.kind, tc.name)
		}
	}
}

func TestParseDeclarationUnitStruct(t *testing.T) {
	for _, input := range []string{"struct Unit;", "struct Unit", "struct Point<T>"} {
		decl := parseDecl(t, input)
		if decl.Kind != ast.DeclStruct {
			t.Errorf("%q: kind = %s", input, decl.Kind)
		}
	}
}

func TestParseDeclarationAttributesAndVisibility(t *testing.T) {
	cases := []string{
		"#[derive(Pod)] struct A { x: u8 }",
		"#[derive(Pod)] #[repr(C)] pub struct A { x: u8 }",
		"pub(crate) struct A { x: u8 }",
		"#[doc = \"docs\"] pub(in super::m) struct A;",
	}
	for _, input := range cases {
		decl := parseDecl(t, input)
		if decl.Name.Text != "A" {
			t.Errorf("%q: name = %q, want A", input, decl.Name.Text)
		}
	}
}

func TestParseDeclarationTupleStruct(t *testing.T) {
	decl := parseDecl(t, "struct Pair<A, B>(A, B);")
	if decl.Kind != ast.DeclStruct || len(decl.Generics) != 2 {
		t.Fatalf("decl = %+v", decl)
	}
	// Terminating semicolon may be omitted at end of input.
	decl = parseDecl(t, "struct Pair<A, B>(A, B)")
	if decl.Name.Text != "Pair" {
		t.Fatalf("decl = %+v", decl)
	}
}

func TestParseDeclarationMalformedBodyIgnored(t *testing.T) {
	// Body tokens are never interpreted, only balanced.
	decl := parseDecl(t, "enum E { ;;; ???? :: !! @@@ }")
	if decl.Kind != ast.DeclEnum || decl.Name.Text != "E" {
		t.Fatalf("decl = %+v", decl)
	}
}

func TestParseDeclarationConsumesExactlyOne(t *testing.T) {
	toks, end := tokenizeSrc(t, "struct A { x: u8 } struct B { y: u8 }")
	c := parser.NewCursor(toks, end)
	decl, err := parser.ParseDeclaration(c)
	if err != nil {
		t.Fatalf("first declaration failed: %v", err)
	}
	if decl.Name.Text != "A" {
		t.Fatalf("first name = %q", decl.Name.Text)
	}
	decl, err = parser.ParseDeclaration(c)
	if err != nil {
		t.Fatalf("second declaration failed: %v", err)
	}
	if decl.Name.Text != "B" {
		t.Fatalf("second name = %q", decl.Name.Text)
	}
	if !c.AtEnd() {
		t.Fatal("cursor must sit at end after both declarations")
	}
}

func TestParseDeclarationErrors(t *testing.T) {
	cases := []struct {
		input string
		code  diag.Code
	}{
		{"", diag.SynUnexpectedEnd},
		{"fn main() {}", diag.SynExpectDeclKeyword},
		{"struct", diag.SynUnexpectedEnd},
		{"struct 123", diag.SynExpectIdentifier},
		{"enum E;", diag.SynExpectBody},
		{"union U", diag.SynExpectBody},
		{"enum E(u8);", diag.SynExpectBody},
		{"struct A =", diag.SynExpectBody},
		{"# struct A { }", diag.SynExpectAttrGroup},
		{"#[derive(Pod)]", diag.SynUnexpectedEnd},
	}
	for _, tc := range cases {
		err := parseDeclErr(t, tc.input)
		if err.Code != tc.code {
			t.Errorf("%q: code = %v, want %v (err: %v)", tc.input, err.Code, tc.code, err)
		}
	}
}
