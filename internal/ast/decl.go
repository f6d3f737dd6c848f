// Package ast holds the parsed form of one derive target: the declaration
// header of a struct, enum, or union. Bodies are consumed but never
// represented; bounds and defaults stay opaque token slices, captured only
// to be re-emitted verbatim.
package ast

import (
	"podgen/internal/source"
	"podgen/internal/token"
)

// DeclKind distinguishes the three declaration keywords.
type DeclKind uint8

const (
	DeclStruct DeclKind = iota
	DeclEnum
	DeclUnion
)

func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclUnion:
		return "union"
	}
	return "invalid"
}

// GenericKind distinguishes lifetime, type, and const parameters.
type GenericKind uint8

const (
	GenericLifetime GenericKind = iota
	GenericType
	GenericConst
)

func (k GenericKind) String() string {
	switch k {
	case GenericLifetime:
		return "lifetime"
	case GenericType:
		return "type"
	case GenericConst:
		return "const"
	}
	return "invalid"
}

// Bound is one trait or lifetime bound, kept as an opaque token slice
// sufficient to re-print it (path, generic arguments and all).
type Bound []token.Token

// GenericParam is one declared generic parameter. Name is the bare
// identifier (for lifetimes, without the quote). Bounds is the
// '+'-separated list after ':'. Default holds the tokens after '=' for type
// and const parameters; ConstType holds the tokens after ':' for const
// parameters.
type GenericParam struct {
	Kind      GenericKind
	Name      token.Token
	Bounds    []Bound
	ConstType []token.Token
	Default   []token.Token
	Span      source.Span
}

// WherePredicate is one "subject: bounds" constraint. The subject is not
// validated against the declared parameters: unknown subjects pass through
// unchanged.
type WherePredicate struct {
	Subject []token.Token
	Bounds  []Bound
	Span    source.Span
}

// Declaration is the parsed header of one type declaration. Body tokens are
// consumed from the input but not retained.
type Declaration struct {
	Kind     DeclKind
	Name     token.Token
	Generics []GenericParam
	Where    []WherePredicate
	Span     source.Span
}
