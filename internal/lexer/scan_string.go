package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"txtpb/internal/diag"
	"txtpb/internal/token"
)

var simpleEscapes = [256]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'?':  '?',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// scanString читает '…' или "…". Token.Text: исходный текст с кавычками,
// Token.Value: декодированные байты. Перевод строки внутри литерала запрещён.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	kind := token.DoubleString
	if quote == '\'' {
		kind = token.SingleString
	}

	var buf strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return lx.unterminated(start)
		}
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			return token.Token{
				Kind:  kind,
				Span:  lx.cursor.SpanFrom(start),
				Text:  lx.text(start),
				Value: buf.String(),
			}
		case '\\':
			esc := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				return lx.unterminated(start)
			}
			if msg := lx.scanEscape(&buf); msg != "" {
				lx.errLex(diag.LexInvalidEscape, lx.cursor.SpanFrom(esc), msg)
				return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start), Text: lx.text(start)}
			}
		default:
			buf.WriteByte(lx.cursor.Bump())
		}
	}
}

func (lx *Lexer) unterminated(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(start)}
}

// scanEscape декодирует escape после '\' в buf. Возвращает текст ошибки или "".
func (lx *Lexer) scanEscape(buf *strings.Builder) string {
	c := lx.cursor.Peek()
	if v := simpleEscapes[c]; v != 0 {
		lx.cursor.Bump()
		buf.WriteByte(v)
		return ""
	}

	switch {
	case isOct(c):
		var v uint32
		for i := 0; i < 3 && isOct(lx.cursor.Peek()); i++ {
			v = v*8 + uint32(lx.cursor.Bump()-'0')
		}
		if v > 0xFF {
			return fmt.Sprintf("octal escape value %#o is out of range", v)
		}
		buf.WriteByte(byte(v))
		return ""

	case c == 'x':
		lx.cursor.Bump()
		if !isHex(lx.cursor.Peek()) {
			return `\x used with no following hex digits`
		}
		var v uint32
		for i := 0; i < 2 && isHex(lx.cursor.Peek()); i++ {
			v = v*16 + hexVal(lx.cursor.Bump())
		}
		buf.WriteByte(byte(v))
		return ""

	case c == 'u':
		lx.cursor.Bump()
		r, ok := lx.readHex(4)
		if !ok {
			return `\u requires exactly 4 hex digits`
		}
		switch {
		case utf16IsHigh(r):
			// суррогатная пара обязана идти двумя \u подряд
			if lx.cursor.Peek() != '\\' {
				return fmt.Sprintf(`unpaired surrogate \u%04X`, r)
			}
			if b, _ := lx.cursor.PeekAt(1); b != 'u' {
				return fmt.Sprintf(`unpaired surrogate \u%04X`, r)
			}
			lx.cursor.Bump()
			lx.cursor.Bump()
			lo, ok := lx.readHex(4)
			if !ok {
				return `\u requires exactly 4 hex digits`
			}
			if !utf16IsLow(lo) {
				return fmt.Sprintf(`invalid low surrogate \u%04X`, lo)
			}
			r = 0x10000 + (r-0xD800)<<10 + (lo - 0xDC00)
		case utf16IsLow(r):
			return fmt.Sprintf(`unpaired surrogate \u%04X`, r)
		}
		buf.WriteRune(rune(r))
		return ""

	case c == 'U':
		lx.cursor.Bump()
		r, ok := lx.readHex(8)
		if !ok {
			return `\U requires exactly 8 hex digits`
		}
		if r > utf8.MaxRune || utf16IsHigh(r) || utf16IsLow(r) {
			return fmt.Sprintf(`\U%08X is not a valid code point`, r)
		}
		buf.WriteRune(rune(r))
		return ""
	}

	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	for i := 0; i < size; i++ {
		lx.cursor.Bump()
	}
	return fmt.Sprintf(`invalid escape sequence \%c`, r)
}

// readHex читает ровно n hex-цифр.
func (lx *Lexer) readHex(n int) (uint32, bool) {
	var v uint32
	for i := 0; i < n; i++ {
		if !isHex(lx.cursor.Peek()) {
			return 0, false
		}
		v = v*16 + hexVal(lx.cursor.Bump())
	}
	return v, true
}

func utf16IsHigh(r uint32) bool { return r >= 0xD800 && r <= 0xDBFF }
func utf16IsLow(r uint32) bool  { return r >= 0xDC00 && r <= 0xDFFF }
