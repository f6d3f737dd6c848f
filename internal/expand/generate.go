package expand

import (
	"podgen/internal/ast"
	"podgen/internal/source"
	"podgen/internal/token"
)

// Generate builds the derived impl header for one declaration:
//
//	impl<'a, T: Copy> crate::pod::Pod for Name<'a, T> where T: 'a {}
//
// Impl generics keep their bounds and drop defaults; type generics are the
// bare parameter names in declaration order; where predicates are re-emitted
// as parsed, merged into one clause. The trait path is spliced in verbatim.
// The impl body is an empty brace group.
func Generate(decl *ast.Declaration, trait []token.Token) []token.Token {
	out := make([]token.Token, 0, 16)
	out = append(out, synthIdent("impl"))
	out = appendImplGenerics(out, decl.Generics)
	out = append(out, trait...)
	out = append(out, synthIdent("for"), decl.Name)
	out = appendTypeGenerics(out, decl.Generics)
	out = appendWhere(out, decl.Where)
	out = append(out, token.NewGroup(token.DelimBrace, nil, source.Span{}))
	return out
}

func appendImplGenerics(out []token.Token, params []ast.GenericParam) []token.Token {
	if len(params) == 0 {
		return out
	}
	out = append(out, synthPunct('<'))
	for i := range params {
		p := &params[i]
		if i > 0 {
			out = append(out, synthPunct(','))
		}
		switch p.Kind {
		case ast.GenericLifetime:
			out = append(out, synthQuote(), p.Name)
		case ast.GenericConst:
			out = append(out, synthIdent("const"), p.Name, synthPunct(':'))
			out = append(out, p.ConstType...)
		default:
			out = append(out, p.Name)
		}
		if len(p.Bounds) > 0 {
			out = append(out, synthPunct(':'))
			out = appendBounds(out, p.Bounds)
		}
	}
	return append(out, synthPunct('>'))
}

func appendTypeGenerics(out []token.Token, params []ast.GenericParam) []token.Token {
	if len(params) == 0 {
		return out
	}
	out = append(out, synthPunct('<'))
	for i := range params {
		p := &params[i]
		if i > 0 {
			out = append(out, synthPunct(','))
		}
		if p.Kind == ast.GenericLifetime {
			out = append(out, synthQuote())
		}
		out = append(out, p.Name)
	}
	return append(out, synthPunct('>'))
}

func appendWhere(out []token.Token, preds []ast.WherePredicate) []token.Token {
	if len(preds) == 0 {
		return out
	}
	out = append(out, synthIdent("where"))
	for i := range preds {
		p := &preds[i]
		if i > 0 {
			out = append(out, synthPunct(','))
		}
		out = append(out, p.Subject...)
		out = append(out, synthPunct(':'))
		out = appendBounds(out, p.Bounds)
	}
	return out
}

func appendBounds(out []token.Token, bounds []ast.Bound) []token.Token {
	for i, b := range bounds {
		if i > 0 {
			out = append(out, synthPunct('+'))
		}
		out = append(out, b...)
	}
	return out
}

func synthIdent(text string) token.Token {
	return token.NewIdent(text, source.Span{})
}

func synthPunct(ch byte) token.Token {
	return token.NewPunct(ch, token.Alone, source.Span{})
}

func synthQuote() token.Token {
	return token.NewPunct('\'', token.Joint, source.Span{})
}
