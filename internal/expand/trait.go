package expand

import (
	"fmt"

	"podgen/internal/diag"
	"podgen/internal/lexer"
	"podgen/internal/source"
	"podgen/internal/token"
)

// DefaultTrait is the trait path behind the built-in Pod derive.
const DefaultTrait = "crate::pod::Pod"

// ParseTraitPath lexes a trait path like "crate::pod::Pod" into tokens ready
// for splicing into generated impls.
func ParseTraitPath(s string) ([]token.Token, error) {
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual("<trait>", []byte(s)))

	toks, _, ok := lexer.Tokenize(file, lexer.Options{Reporter: diag.NopReporter{}})
	if !ok || len(toks) == 0 {
		return nil, fmt.Errorf("invalid trait path %q", s)
	}
	for i := range toks {
		if toks[i].Kind == token.Group {
			return nil, fmt.Errorf("invalid trait path %q: delimiters not allowed", s)
		}
	}
	return toks, nil
}

// DefaultRegistry returns a registry with the built-in binding
// Pod -> crate::pod::Pod.
func DefaultRegistry() *Registry {
	trait, err := ParseTraitPath(DefaultTrait)
	if err != nil {
		panic(err)
	}
	r := NewRegistry()
	r.Register("Pod", trait)
	return r
}
