package lexer

import (
	"txtpb/internal/token"
)

// scanIdent сканирует [A-Za-z_][A-Za-z0-9_]* (maximal munch).
// Ключевых слов нет: true/false/inf/nan: обычные идентификаторы.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Ident, Span: lx.cursor.SpanFrom(start), Text: lx.text(start)}
}
