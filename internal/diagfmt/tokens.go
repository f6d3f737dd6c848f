package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"podgen/internal/source"
	"podgen/internal/token"
)

// TokenOutput mirrors one token-tree node for JSON output.
type TokenOutput struct {
	Kind    string        `json:"kind"`
	Text    string        `json:"text,omitempty"`
	Ch      string        `json:"ch,omitempty"`
	Spacing string        `json:"spacing,omitempty"`
	Delim   string        `json:"delim,omitempty"`
	Span    source.Span   `json:"span"`
	Inner   []TokenOutput `json:"inner,omitempty"`
}

// FormatTokensPretty dumps the token tree in a human-readable, indented
// form. Groups recurse one level deeper per nesting.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) {
	dumpTokens(w, tokens, fs, 0)
}

func dumpTokens(w io.Writer, tokens []token.Token, fs *source.FileSet, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := range tokens {
		tok := &tokens[i]
		start, end := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%s%-8s", indent, tok.Kind.String())
		switch tok.Kind {
		case token.Ident, token.Literal:
			fmt.Fprintf(w, " %q", tok.Text)
		case token.Punct:
			fmt.Fprintf(w, " '%c' (%s)", tok.Ch, tok.Spacing)
		case token.Group:
			fmt.Fprintf(w, " %c%c", tok.Delim.Open(), tok.Delim.Close())
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)

		if tok.Kind == token.Group {
			dumpTokens(w, tok.Inner, fs, depth+1)
		}
	}
}

// FormatTokensJSON writes the token tree as an indented JSON document.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokensToOutput(tokens))
}

func tokensToOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for i := range tokens {
		tok := &tokens[i]
		to := TokenOutput{
			Kind: tok.Kind.String(),
			Span: tok.Span,
		}
		switch tok.Kind {
		case token.Ident, token.Literal:
			to.Text = tok.Text
		case token.Punct:
			to.Ch = string(tok.Ch)
			to.Spacing = tok.Spacing.String()
		case token.Group:
			to.Delim = string(tok.Delim.Open()) + string(tok.Delim.Close())
			to.Inner = tokensToOutput(tok.Inner)
		}
		out = append(out, to)
	}
	return out
}
