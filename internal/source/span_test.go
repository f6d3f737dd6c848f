package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 3, End: 7}
	if s.Empty() || s.Len() != 4 {
		t.Fatalf("span = %+v", s)
	}
	if s.String() != "1:3-7" {
		t.Errorf("String = %q", s.String())
	}

	c := s.CollapseToEnd()
	if !c.Empty() || c.Start != 7 || c.File != 1 {
		t.Errorf("CollapseToEnd = %+v", c)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 5, End: 9}
	b := Span{File: 0, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %+v", got)
	}

	other := Span{File: 3, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover = %+v, want unchanged", got)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nef")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself belongs to line 1
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
	}
	for _, tc := range cases {
		got := toLineCol(idx, tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed || string(out) != "a\nb\rc\n" {
		t.Errorf("out = %q changed = %v", out, changed)
	}
	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed || string(out) != "plain\n" {
		t.Errorf("out = %q changed = %v", out, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte("\xEF\xBB\xBFx"))
	if !had || string(out) != "x" {
		t.Errorf("out = %q had = %v", out, had)
	}
	out, had = removeBOM([]byte("x"))
	if had || string(out) != "x" {
		t.Errorf("out = %q had = %v", out, had)
	}
}
