// Package token defines the tree-shaped token representation exchanged
// between the lexer, the declaration parser, and the scaffold generator.
// Invariants:
//   - Token.Text is the exact source text of an identifier or literal.
//   - Token.Span matches the token's source extent (Start..End); synthesized
//     tokens carry empty spans, tokens reused from parsed input keep theirs.
//   - Delimiters (), {}, [] never appear as Punct tokens: the lexer folds
//     them into Group tokens, so every Group's Inner sequence is balanced by
//     construction.
//   - '<' and '>' are ordinary Punct tokens, never Group delimiters.
//   - A token sequence is never mutated after it is produced; consumers
//     build new sequences instead.
package token
