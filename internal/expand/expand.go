// Package expand locates derive attributes in a tokenized file and turns
// each annotated declaration into an impl scaffold: the trait-impl header
// with an empty body. It owns no I/O; the driver feeds it token trees.
package expand

import (
	"podgen/internal/ast"
	"podgen/internal/parser"
	"podgen/internal/source"
	"podgen/internal/token"
)

// Registry maps derive names to the trait paths they implement. The default
// registry knows Pod; a manifest can add or override entries.
type Registry struct {
	traits map[string][]token.Token
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{traits: make(map[string][]token.Token)}
}

// Register binds a derive name to a trait path, replacing any previous
// binding for the same name.
func (r *Registry) Register(name string, trait []token.Token) {
	r.traits[name] = trait
}

// Lookup returns the trait path for a derive name.
func (r *Registry) Lookup(name string) ([]token.Token, bool) {
	trait, ok := r.traits[name]
	return trait, ok
}

// Names returns the registered derive names, unordered.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.traits))
	for name := range r.traits {
		names = append(names, name)
	}
	return names
}

// Scaffold is one expanded derive site.
type Scaffold struct {
	Derive string           // derive name that triggered the expansion
	Decl   *ast.Declaration // the annotated declaration
	Site   source.Span      // span of the #[derive(...)] attribute
	Output []token.Token    // the generated impl header
}

// File scans a top-level token sequence for #[derive(...)] attributes naming
// a registered derive and expands each annotated declaration. One attribute
// listing several registered derives yields one scaffold per derive, in
// attribute order. The first malformed declaration aborts the whole file; no
// partial output survives an error.
func File(toks []token.Token, end source.Span, reg *Registry) ([]Scaffold, *parser.ParseError) {
	var scaffolds []Scaffold

	i := 0
	for i < len(toks) {
		names := deriveNamesAt(toks, i, reg)
		if len(names) == 0 {
			i++
			continue
		}
		site := toks[i].Span.Cover(toks[i+1].Span)

		c := parser.NewCursor(toks[i:], end)
		decl, err := parser.ParseDeclaration(c)
		if err != nil {
			return nil, err
		}

		for _, name := range names {
			trait, _ := reg.Lookup(name)
			scaffolds = append(scaffolds, Scaffold{
				Derive: name,
				Decl:   decl,
				Site:   site,
				Output: Generate(decl, trait),
			})
		}
		i += c.Offset()
	}
	return scaffolds, nil
}

// deriveNamesAt inspects the tokens at i for a '#' followed by a bracket
// group of the exact shape derive(A, B, ...), and returns the listed names
// that are registered. Any other attribute shape is simply not a derive
// site.
func deriveNamesAt(toks []token.Token, i int, reg *Registry) []string {
	if !toks[i].IsPunct('#') || i+1 >= len(toks) {
		return nil
	}
	attr := &toks[i+1]
	if !attr.IsGroup(token.DelimBracket) {
		return nil
	}
	inner := attr.Inner
	if len(inner) != 2 || !inner[0].IsIdent("derive") || !inner[1].IsGroup(token.DelimParen) {
		return nil
	}

	var names []string
	for _, t := range inner[1].Inner {
		if t.Kind != token.Ident {
			continue
		}
		if _, ok := reg.Lookup(t.Text); ok {
			names = append(names, t.Text)
		}
	}
	return names
}
