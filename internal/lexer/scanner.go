package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"podgen/internal/diag"
	"podgen/internal/source"
	"podgen/internal/token"
)

// Scanner produces the flat token stream for one file. Delimiters come out
// as Punct tokens here; Tokenize folds them into Groups.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// NewScanner creates a scanner over the provided file.
func NewScanner(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. ok is false at end of input.
func (s *Scanner) Next() (tok token.Token, ok bool) {
	s.skipTrivia()
	if s.cursor.EOF() {
		return token.Token{}, false
	}

	ch := s.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return s.scanIdentOrPrefixedLiteral(), true
	case isDec(ch):
		return s.scanNumber(), true
	case ch == '"':
		return s.scanString(s.cursor.Mark()), true
	case ch == '\'':
		return s.scanQuote(), true
	default:
		return s.scanPunct(), true
	}
}

// EndSpan returns the zero-length span at the current position.
func (s *Scanner) EndSpan() source.Span {
	return source.Span{File: s.file.ID, Start: s.cursor.Off, End: s.cursor.Off}
}

// skipTrivia drops whitespace and comments. Block comments nest.
func (s *Scanner) skipTrivia() {
	for !s.cursor.EOF() {
		b0, b1, ok2 := s.cursor.Peek2()
		switch {
		case isSpace(s.cursor.Peek()):
			s.cursor.Bump()
		case ok2 && b0 == '/' && b1 == '/':
			for !s.cursor.EOF() && s.cursor.Peek() != '\n' {
				s.cursor.Bump()
			}
		case ok2 && b0 == '/' && b1 == '*':
			s.skipBlockComment()
		default:
			return
		}
	}
}

func (s *Scanner) skipBlockComment() {
	start := s.cursor.Mark()
	s.cursor.Bump() // '/'
	s.cursor.Bump() // '*'
	depth := 1
	for depth > 0 {
		if s.cursor.EOF() {
			s.report(diag.LexUnterminatedBlockComment, s.cursor.SpanFrom(start), "unterminated block comment")
			return
		}
		b0, b1, ok2 := s.cursor.Peek2()
		switch {
		case ok2 && b0 == '/' && b1 == '*':
			s.cursor.Bump()
			s.cursor.Bump()
			depth++
		case ok2 && b0 == '*' && b1 == '/':
			s.cursor.Bump()
			s.cursor.Bump()
			depth--
		default:
			s.cursor.Bump()
		}
	}
}

// scanIdentOrPrefixedLiteral scans an identifier, switching to a string or
// char literal when the identifier turns out to be a literal prefix
// (r"...", r#"..."#, b"...", b'x', br"...").
func (s *Scanner) scanIdentOrPrefixedLiteral() token.Token {
	start := s.cursor.Mark()
	hasUnicode := false

	for !s.cursor.EOF() {
		b := s.cursor.Peek()
		if isIdentContinueByte(b) {
			s.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r, size := utf8.DecodeRune(s.file.Content[s.cursor.Off:])
			if r == utf8.RuneError || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
				break
			}
			hasUnicode = true
			for i := 0; i < size; i++ {
				s.cursor.Bump()
			}
			continue
		}
		break
	}

	sp := s.cursor.SpanFrom(start)
	text := string(s.file.Content[sp.Start:sp.End])
	if text == "" {
		// Lone non-identifier unicode byte: report and skip it.
		_, size := utf8.DecodeRune(s.file.Content[s.cursor.Off:])
		for i := 0; i < size; i++ {
			s.cursor.Bump()
		}
		sp = s.cursor.SpanFrom(start)
		s.report(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp}
	}

	switch text {
	case "r", "br":
		if s.cursor.Peek() == '"' || s.cursor.Peek() == '#' {
			return s.scanRawString(start)
		}
	case "b":
		if s.cursor.Peek() == '"' {
			return s.scanString(start)
		}
		if s.cursor.Peek() == '\'' {
			s.cursor.Bump()
			return s.scanCharTail(start)
		}
	}

	if hasUnicode {
		// Rust normalizes identifiers to NFC before comparison.
		text = norm.NFC.String(text)
	}
	return token.NewIdent(text, sp)
}

func (s *Scanner) scanNumber() token.Token {
	start := s.cursor.Mark()
	for !s.cursor.EOF() && (isIdentContinueByte(s.cursor.Peek()) || s.cursor.Peek() == '.') {
		// '1..2' is a range, not a float with a weird tail.
		if s.cursor.Peek() == '.' {
			_, b1, ok2 := s.cursor.Peek2()
			if !ok2 || !isDec(b1) {
				break
			}
		}
		b := s.cursor.Bump()
		// Exponent sign: 1e+3, 2.5E-7.
		if (b == 'e' || b == 'E') && (s.cursor.Peek() == '+' || s.cursor.Peek() == '-') {
			_, b1, ok2 := s.cursor.Peek2()
			if ok2 && isDec(b1) {
				s.cursor.Bump()
			}
		}
	}
	sp := s.cursor.SpanFrom(start)
	return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
}

// scanString scans a (possibly prefixed) double-quoted literal; start marks
// the prefix when one was consumed.
func (s *Scanner) scanString(start Mark) token.Token {
	s.cursor.Bump() // '"'
	for {
		if s.cursor.EOF() {
			sp := s.cursor.SpanFrom(start)
			s.report(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
		}
		b := s.cursor.Bump()
		if b == '\\' && !s.cursor.EOF() {
			s.cursor.Bump()
			continue
		}
		if b == '"' {
			break
		}
	}
	sp := s.cursor.SpanFrom(start)
	return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
}

// scanRawString handles r"...", r#"..."#, br#"..."# and friends.
func (s *Scanner) scanRawString(start Mark) token.Token {
	hashes := 0
	for s.cursor.Eat('#') {
		hashes++
	}
	if !s.cursor.Eat('"') {
		sp := s.cursor.SpanFrom(start)
		s.report(diag.LexUnterminatedString, sp, "malformed raw string literal")
		return token.Token{Kind: token.Invalid, Span: sp}
	}
	for {
		if s.cursor.EOF() {
			sp := s.cursor.SpanFrom(start)
			s.report(diag.LexUnterminatedString, sp, "unterminated raw string literal")
			return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
		}
		if s.cursor.Bump() != '"' {
			continue
		}
		closed := true
		probe := s.cursor.Mark()
		for i := 0; i < hashes; i++ {
			if !s.cursor.Eat('#') {
				closed = false
				break
			}
		}
		if closed {
			break
		}
		s.cursor.Reset(probe)
	}
	sp := s.cursor.SpanFrom(start)
	return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
}

// scanQuote disambiguates lifetimes from char literals. 'a followed by
// anything but a closing quote is the lifetime 'a: a Joint quote punct with
// the identifier scanned separately. 'a', '\n', '\u{1F600}' are literals.
func (s *Scanner) scanQuote() token.Token {
	start := s.cursor.Mark()
	s.cursor.Bump() // '\''
	quoteSpan := s.cursor.SpanFrom(start)

	b := s.cursor.Peek()
	if isIdentStartByte(b) || b >= utf8RuneSelf {
		identStart := s.cursor.Mark()
		for !s.cursor.EOF() && (isIdentContinueByte(s.cursor.Peek()) || s.cursor.Peek() >= utf8RuneSelf) {
			s.cursor.Bump()
		}
		if s.cursor.Peek() == '\'' {
			s.cursor.Bump()
			sp := s.cursor.SpanFrom(start)
			return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
		}
		// Lifetime: re-scan the identifier on the next call.
		s.cursor.Reset(identStart)
		return token.NewPunct('\'', token.Joint, quoteSpan)
	}

	return s.scanCharTail(start)
}

// scanCharTail consumes the rest of a char literal after its opening quote.
func (s *Scanner) scanCharTail(start Mark) token.Token {
	for {
		if s.cursor.EOF() || s.cursor.Peek() == '\n' {
			sp := s.cursor.SpanFrom(start)
			s.report(diag.LexUnterminatedChar, sp, "unterminated character literal")
			return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
		}
		b := s.cursor.Bump()
		if b == '\\' && !s.cursor.EOF() {
			s.cursor.Bump()
			continue
		}
		if b == '\'' {
			break
		}
	}
	sp := s.cursor.SpanFrom(start)
	return token.NewLiteral(string(s.file.Content[sp.Start:sp.End]), sp)
}

func (s *Scanner) scanPunct() token.Token {
	start := s.cursor.Mark()
	ch := s.cursor.Bump()
	sp := s.cursor.SpanFrom(start)

	if !isOpByte(ch) && !isOpenDelim(ch) && !isCloseDelim(ch) {
		s.report(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp}
	}

	// Joint when glued to another op char: the second half of ::, ->, =>
	// and the parser's '>' '>' from nested generics keep their shape.
	spacing := token.Alone
	if isOpByte(s.cursor.Peek()) {
		spacing = token.Joint
	}
	return token.NewPunct(ch, spacing, sp)
}
