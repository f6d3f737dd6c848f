package token

import (
	"strings"
)

// Puncts that glue to the token before them when printed.
var noSpaceBefore = [256]bool{
	',': true,
	';': true,
	':': true,
	'<': true,
	'>': true,
	'.': true,
	'?': true,
	'!': true,
}

// Print renders a token sequence back to source text. Spacing hints recorded
// by the lexer (and mirrored by the generator) drive the layout: a Joint
// punct glues to its successor, so multi-character operators like :: and ->
// survive the round trip.
func Print(toks []Token) string {
	var b strings.Builder
	printSeq(&b, toks)
	return b.String()
}

func printSeq(b *strings.Builder, toks []Token) {
	var prev *Token
	prevPathTail := false // prev is the second ':' of a '::'

	for i := range toks {
		cur := &toks[i]
		if prev != nil && spaceBetween(prev, prevPathTail, cur) {
			b.WriteByte(' ')
		}
		printOne(b, cur)

		prevPathTail = cur.IsPunct(':') && cur.Spacing == Alone &&
			prev != nil && prev.IsPunct(':') && prev.Spacing == Joint
		prev = cur
	}
}

func printOne(b *strings.Builder, t *Token) {
	switch t.Kind {
	case Ident, Literal:
		b.WriteString(t.Text)
	case Punct:
		b.WriteByte(t.Ch)
	case Group:
		if open := t.Delim.Open(); open != 0 {
			b.WriteByte(open)
		}
		printSeq(b, t.Inner)
		if cl := t.Delim.Close(); cl != 0 {
			b.WriteByte(cl)
		}
	}
}

func spaceBetween(prev *Token, prevPathTail bool, cur *Token) bool {
	if prev.Kind == Punct {
		if prev.Spacing == Joint {
			return false
		}
		// '<' opens a generic argument list; its contents hug it.
		if prev.Ch == '<' {
			return false
		}
		// The tail of a '::' path separator glues to the next segment.
		if prev.Ch == ':' && prevPathTail {
			return false
		}
	}
	if cur.Kind == Punct && noSpaceBefore[cur.Ch] {
		return false
	}
	return true
}
