package parser

import (
	"podgen/internal/ast"
	"podgen/internal/diag"
	"podgen/internal/token"
)

// ParseGenerics consumes an optional <...> parameter list. A missing list
// is not an error: the empty slice comes back. The cursor must sit right
// after the type name.
//
// Grammar handled here:
//
//	<>
//	< param (, param)* ,? >
//	param := 'name (: lifetime (+ lifetime)*)?
//	       | name (: bound (+ bound)*)? (= default)?
//	       | const name : type (= default)?
func ParseGenerics(c *Cursor) ([]ast.GenericParam, *ParseError) {
	t := c.Peek()
	if t == nil || !t.IsPunct('<') {
		return nil, nil
	}
	c.Advance()

	params := make([]ast.GenericParam, 0, 2)
	for {
		t = c.Peek()
		if t == nil {
			return nil, &ParseError{
				Code:     diag.SynUnclosedAngleBracket,
				Expected: "'>'",
				Found:    nil,
				Pos:      c.Pos(),
			}
		}
		if t.IsPunct('>') {
			c.Advance()
			break
		}

		param, err := parseGenericParam(c)
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		t = c.Peek()
		switch {
		case t != nil && t.IsPunct(','):
			c.Advance() // trailing comma before '>' loops back to the close
		case t != nil && t.IsPunct('>'):
			c.Advance()
			return params, nil
		case t == nil:
			return nil, &ParseError{
				Code:     diag.SynUnclosedAngleBracket,
				Expected: "',' or '>'",
				Found:    nil,
				Pos:      c.Pos(),
			}
		default:
			return nil, &ParseError{
				Code:     diag.SynUnexpectedToken,
				Expected: "',' or '>'",
				Found:    t,
				Pos:      c.Pos(),
			}
		}
	}
	return params, nil
}

// parseGenericParam dispatches on one token of lookahead: a quote starts a
// lifetime, the const keyword a const parameter, anything else must be a
// type parameter.
func parseGenericParam(c *Cursor) (ast.GenericParam, *ParseError) {
	t := c.Peek()
	switch {
	case t.IsPunct('\''):
		return parseLifetimeParam(c)
	case t.IsIdent("const"):
		return parseConstParam(c)
	case t.Kind == token.Ident:
		return parseTypeParam(c)
	default:
		return ast.GenericParam{}, &ParseError{
			Code:     diag.SynExpectIdentifier,
			Expected: "generic parameter",
			Found:    t,
			Pos:      c.Pos(),
		}
	}
}

func parseLifetimeParam(c *Cursor) (ast.GenericParam, *ParseError) {
	quote := c.Advance()
	name, err := c.ExpectIdent()
	if err != nil {
		return ast.GenericParam{}, err
	}

	param := ast.GenericParam{
		Kind: ast.GenericLifetime,
		Name: name,
		Span: quote.Span.Cover(name.Span),
	}

	if t := c.Peek(); t != nil && t.IsPunct(':') {
		c.Advance()
		bounds, berr := parseBoundList(c, stopAnyPunct(','))
		if berr != nil {
			return ast.GenericParam{}, berr
		}
		param.Bounds = bounds
	}
	if len(param.Bounds) > 0 {
		last := param.Bounds[len(param.Bounds)-1]
		param.Span = param.Span.Cover(last[len(last)-1].Span)
	}
	return param, nil
}

func parseTypeParam(c *Cursor) (ast.GenericParam, *ParseError) {
	name := c.Advance()

	param := ast.GenericParam{
		Kind: ast.GenericType,
		Name: *name,
		Span: name.Span,
	}

	if t := c.Peek(); t != nil && t.IsPunct(':') {
		c.Advance()
		bounds, err := parseBoundList(c, stopAnyPunct(',', '='))
		if err != nil {
			return ast.GenericParam{}, err
		}
		param.Bounds = bounds
	}

	if t := c.Peek(); t != nil && t.IsPunct('=') {
		c.Advance()
		def, err := captureOpaque(c, stopAnyPunct(','))
		if err != nil {
			return ast.GenericParam{}, err
		}
		if len(def) == 0 {
			return ast.GenericParam{}, &ParseError{
				Code:     diag.SynUnexpectedToken,
				Expected: "default type",
				Found:    c.Peek(),
				Pos:      c.Pos(),
			}
		}
		param.Default = def
	}

	param.Span = param.Span.Cover(c.LastSpan())
	return param, nil
}

func parseConstParam(c *Cursor) (ast.GenericParam, *ParseError) {
	kw := c.Advance() // const
	name, err := c.ExpectIdent()
	if err != nil {
		return ast.GenericParam{}, err
	}
	if _, err = c.ExpectPunct(':'); err != nil {
		return ast.GenericParam{}, err
	}

	typ, err := captureOpaque(c, stopAnyPunct(',', '='))
	if err != nil {
		return ast.GenericParam{}, err
	}
	if len(typ) == 0 {
		return ast.GenericParam{}, &ParseError{
			Code:     diag.SynUnexpectedToken,
			Expected: "const parameter type",
			Found:    c.Peek(),
			Pos:      c.Pos(),
		}
	}

	param := ast.GenericParam{
		Kind:      ast.GenericConst,
		Name:      name,
		ConstType: typ,
		Span:      kw.Span.Cover(c.LastSpan()),
	}

	if t := c.Peek(); t != nil && t.IsPunct('=') {
		c.Advance()
		def, derr := captureOpaque(c, stopAnyPunct(','))
		if derr != nil {
			return ast.GenericParam{}, derr
		}
		if len(def) == 0 {
			return ast.GenericParam{}, &ParseError{
				Code:     diag.SynUnexpectedToken,
				Expected: "default value",
				Found:    c.Peek(),
				Pos:      c.Pos(),
			}
		}
		param.Default = def
		param.Span = param.Span.Cover(c.LastSpan())
	}
	return param, nil
}

// parseBoundList consumes a '+'-separated list of opaque bounds. extraStop
// adds the depth-zero puncts that end the whole list; a depth-zero '>'
// always does.
func parseBoundList(c *Cursor, extraStop stopFunc) ([]ast.Bound, *ParseError) {
	bounds := make([]ast.Bound, 0, 2)
	for {
		b, err := captureOpaque(c, func(t *token.Token) bool {
			return t.IsPunct('+') || extraStop(t)
		})
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, &ParseError{
				Code:     diag.SynExpectBound,
				Expected: "bound",
				Found:    c.Peek(),
				Pos:      c.Pos(),
			}
		}
		bounds = append(bounds, ast.Bound(b))

		if t := c.Peek(); t != nil && t.IsPunct('+') {
			c.Advance()
			continue
		}
		return bounds, nil
	}
}
