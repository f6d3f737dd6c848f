package diagfmt_test

import (
	"strings"
	"testing"

	"podgen/internal/diag"
	"podgen/internal/diagfmt"
	"podgen/internal/source"
)

func makeBag(t *testing.T, src string, start, end uint32, code diag.Code, msg string) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(src))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  source.Span{File: fileID, Start: start, End: end},
	})
	return bag, fs
}

func TestPrettyFormat(t *testing.T) {
	src := "struct Broken<T { x: T }\n"
	bag, fs := makeBag(t, src, 14, 15, diag.SynUnexpectedToken, "expected ',' or '>'")

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{})
	out := b.String()

	if !strings.HasPrefix(out, "test.rs:1:15: ERROR SYN2001: expected ',' or '>'") {
		t.Errorf("header = %q", out)
	}
	if !strings.Contains(out, "struct Broken<T { x: T }") {
		t.Errorf("missing source context: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret: %q", out)
	}
}

func TestPrettyCaretPlacement(t *testing.T) {
	src := "abc def\n"
	bag, fs := makeBag(t, src, 4, 7, diag.SynExpectIdentifier, "expected identifier")

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{})

	lines := strings.Split(b.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output = %q", b.String())
	}
	// 4 spaces of indent, then padding to column 5.
	if lines[2] != "        ^~~" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := makeBag(t, "struct A\n", 0, 6, diag.SynExpectBody, "expected declaration body")

	var b strings.Builder
	err := diagfmt.JSON(&b, bag, fs, diagfmt.JSONOpts{IncludePositions: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := b.String()
	for _, want := range []string{`"SYN2005"`, `"ERROR"`, `"count": 1`, `"start_line": 1`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s: %s", want, out)
		}
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte("x\n"))
	bag := diag.NewBag(10)
	for i := 0; i < 5; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.SynUnexpectedToken,
			Message:  "m",
			Primary:  source.Span{File: fileID, Start: uint32(i), End: uint32(i) + 1},
		})
	}
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 3})
	if out.Count != 3 || len(out.Diagnostics) != 3 {
		t.Fatalf("count = %d, want 3", out.Count)
	}
}
