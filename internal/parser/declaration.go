package parser

import (
	"podgen/internal/ast"
	"podgen/internal/diag"
	"podgen/internal/token"
)

// ParseDeclaration consumes one top-level type declaration: outer attributes,
// optional visibility, the struct/enum/union keyword, the name, generics, and
// where clauses on both sides of a tuple body. The body itself stays opaque;
// only its shape (braces, parens, semicolon, or nothing) matters.
func ParseDeclaration(c *Cursor) (*ast.Declaration, *ParseError) {
	first := c.Peek()
	if first == nil {
		return nil, &ParseError{
			Code:     diag.SynUnexpectedEnd,
			Expected: "declaration",
			Found:    nil,
			Pos:      c.Pos(),
		}
	}
	start := first.Span

	if err := skipAttributes(c); err != nil {
		return nil, err
	}
	skipVisibility(c)

	kw, err := c.ExpectIdent()
	if err != nil {
		return nil, err
	}
	var kind ast.DeclKind
	switch kw.Text {
	case "struct":
		kind = ast.DeclStruct
	case "enum":
		kind = ast.DeclEnum
	case "union":
		kind = ast.DeclUnion
	default:
		return nil, &ParseError{
			Code:     diag.SynExpectDeclKeyword,
			Expected: "'struct', 'enum' or 'union'",
			Found:    &kw,
			Pos:      kw.Span,
		}
	}

	name, err := c.ExpectIdent()
	if err != nil {
		return nil, err
	}

	generics, err := ParseGenerics(c)
	if err != nil {
		return nil, err
	}

	where, err := ParseWhere(c)
	if err != nil {
		return nil, err
	}

	decl := &ast.Declaration{
		Kind:     kind,
		Name:     name,
		Generics: generics,
		Where:    where,
	}

	if err = parseBody(c, decl); err != nil {
		return nil, err
	}

	decl.Span = start.Cover(c.LastSpan())
	if c.LastSpan().Empty() && c.LastSpan().End == 0 {
		decl.Span = start
	}
	return decl, nil
}

// parseBody consumes whatever ends the declaration. Braced bodies close any
// kind; a unit struct may end at a semicolon or clean end of input; a tuple
// struct carries its paren body, then an optional second where clause, then
// ';' or end of input.
func parseBody(c *Cursor, decl *ast.Declaration) *ParseError {
	t := c.Peek()
	if t == nil || t.IsPunct(';') {
		// enum/union bodies are mandatory.
		if decl.Kind != ast.DeclStruct {
			return &ParseError{
				Code:     diag.SynExpectBody,
				Expected: "'{...}' body",
				Found:    t,
				Pos:      c.Pos(),
			}
		}
		if t != nil {
			c.Advance()
		}
		return nil
	}

	switch {
	case t.IsGroup(token.DelimBrace):
		c.Advance()
		return nil

	case t.IsGroup(token.DelimParen):
		if decl.Kind != ast.DeclStruct {
			return &ParseError{
				Code:     diag.SynExpectBody,
				Expected: "'{...}' body",
				Found:    t,
				Pos:      c.Pos(),
			}
		}
		c.Advance()

		// Tuple structs put the where clause after the field list.
		where, err := ParseWhere(c)
		if err != nil {
			return err
		}
		decl.Where = append(decl.Where, where...)

		if t = c.Peek(); t == nil {
			return nil
		}
		if _, err = c.ExpectPunct(';'); err != nil {
			return err
		}
		return nil
	}

	return &ParseError{
		Code:     diag.SynExpectBody,
		Expected: "declaration body",
		Found:    t,
		Pos:      c.Pos(),
	}
}

// skipAttributes consumes leading #[...] outer attributes. The '#' must be
// followed by a bracket group; anything else is malformed.
func skipAttributes(c *Cursor) *ParseError {
	for {
		t := c.Peek()
		if t == nil || !t.IsPunct('#') {
			return nil
		}
		c.Advance()

		t = c.Peek()
		if t == nil || !t.IsGroup(token.DelimBracket) {
			return &ParseError{
				Code:     diag.SynExpectAttrGroup,
				Expected: "'[...]' attribute",
				Found:    t,
				Pos:      c.Pos(),
			}
		}
		c.Advance()
	}
}

// skipVisibility consumes 'pub' and its optional restriction, e.g.
// pub(crate) or pub(in super::m).
func skipVisibility(c *Cursor) {
	t := c.Peek()
	if t == nil || !t.IsIdent("pub") {
		return
	}
	c.Advance()
	if t = c.Peek(); t != nil && t.IsGroup(token.DelimParen) {
		c.Advance()
	}
}
