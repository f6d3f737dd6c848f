package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004
	LexUnclosedDelimiter        Code = 1005
	LexStrayCloseDelimiter      Code = 1006
	LexMismatchedDelimiter      Code = 1007

	// Syntactic (declaration parsing)
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynUnexpectedEnd        Code = 2002
	SynExpectIdentifier     Code = 2003
	SynExpectDeclKeyword    Code = 2004
	SynExpectBody           Code = 2005
	SynUnclosedAngleBracket Code = 2006
	SynExpectWherePredicate Code = 2007
	SynExpectBound          Code = 2008
	SynExpectAttrGroup      Code = 2009

	// Expansion
	ExpInfo          Code = 3000
	ExpNoDeriveSites Code = 3001
	ExpCacheError    Code = 3002

	// I/O
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:                     "Lexical information",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnclosedDelimiter:        "unclosed delimiter",
	LexStrayCloseDelimiter:      "closing delimiter without matching opener",
	LexMismatchedDelimiter:      "mismatched closing delimiter",

	SynInfo:                 "Syntactic information",
	SynUnexpectedToken:      "unexpected token",
	SynUnexpectedEnd:        "unexpected end of input",
	SynExpectIdentifier:     "expected identifier",
	SynExpectDeclKeyword:    "expected 'struct', 'enum', or 'union'",
	SynExpectBody:           "expected declaration body",
	SynUnclosedAngleBracket: "unclosed angle bracket",
	SynExpectWherePredicate: "expected where predicate",
	SynExpectBound:          "expected bound",
	SynExpectAttrGroup:      "expected attribute group after '#'",

	ExpInfo:          "Expansion information",
	ExpNoDeriveSites: "no derive sites found",
	ExpCacheError:    "expansion cache unavailable",

	IOLoadFileError: "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
