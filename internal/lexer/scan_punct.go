package lexer

import (
	"fmt"
	"unicode/utf8"

	"txtpb/internal/diag"
	"txtpb/internal/token"
)

var punctKinds = [256]token.Kind{
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	'<': token.Lt,
	'>': token.Gt,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'/': token.Slash,
	'.': token.Dot,
	'-': token.Minus,
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	if k := punctKinds[ch]; k != token.Invalid {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start), Text: lx.text(start)}
	}

	// неизвестный символ: съедаем руну целиком, чтобы span был осмысленным
	r, size := utf8.DecodeRune(lx.file.Content[start:])
	lx.cursor.Reset(start)
	for i := 0; i < size; i++ {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(start)}
}
