package lexer

import (
	"podgen/internal/diag"
	"podgen/internal/source"
)

type Options struct {
	Reporter diag.Reporter // may be nil: errors are dropped but lexing continues
}

func (s *Scanner) report(code diag.Code, sp source.Span, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
