// Package token defines lexical token kinds and trivia for textproto sources.
// Invariants:
//   - Token.Text is the exact source lexeme; Token.Span matches it (Start..End).
//   - String tokens additionally carry Token.Value: the lexeme with quotes removed
//     and escape sequences decoded.
//   - '-' is always its own token (Minus); numeric tokens never include a sign.
//   - Whitespace and '#' comments never appear in the stream; they are attached to
//     the next significant token as Leading trivia.
package token
