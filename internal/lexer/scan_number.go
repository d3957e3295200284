package lexer

import (
	"txtpb/internal/diag"
	"txtpb/internal/token"
)

// scanNumber распознаёт все числовые формы без знака:
//
//	0                      DecInt
//	[1-9][0-9]*            DecInt
//	0[0-7]+                OctInt
//	0[xX][0-9a-fA-F]+      HexInt
//	digits '.' digits? exp? [fF]?, '.' digits exp? [fF]?, digits exp [fF]?, digits [fF]   Float
//
// Число, за которым сразу идёт буква/цифра/'_', и 0-ведущая серия перед '.'/экспонентой
// дают ошибку (например "0x", "1abc", "08", "017.5").
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.DecInt

	switch {
	case lx.cursor.Peek() == '.':
		// ".5"
		lx.cursor.Bump()
		lx.eatDigits()
		kind = token.Float
	case lx.cursor.Peek() == '0':
		lx.cursor.Bump()
		switch b := lx.cursor.Peek(); {
		case b == 'x' || b == 'X':
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				return lx.badNumber(start, "hexadecimal literal has no digits")
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.finishNumber(start, token.HexInt)
		case isDec(b):
			// 0-ведущая серия: восьмеричная, если дальше нет '.'/экспоненты
			sawNonOct := false
			for isDec(lx.cursor.Peek()) {
				if !isOct(lx.cursor.Peek()) {
					sawNonOct = true
				}
				lx.cursor.Bump()
			}
			if c := lx.cursor.Peek(); c == '.' || c == 'e' || c == 'E' {
				// float строится только из "0" или [1-9][0-9]*
				lx.eatFloatTail()
				return lx.badNumber(start, "leading zero in decimal literal")
			}
			if sawNonOct {
				return lx.badNumber(start, "invalid digit in octal literal")
			}
			return lx.finishNumber(start, token.OctInt)
		}
	default:
		lx.eatDigits()
	}

	if kind == token.DecInt && lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits()
		kind = token.Float
	}

	if c := lx.cursor.Peek(); c == 'e' || c == 'E' {
		lx.cursor.Bump()
		if c := lx.cursor.Peek(); c == '+' || c == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "exponent has no digits")
		}
		lx.eatDigits()
		kind = token.Float
	}

	if c := lx.cursor.Peek(); c == 'f' || c == 'F' {
		lx.cursor.Bump()
		kind = token.Float
	}

	return lx.finishNumber(start, kind)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// eatFloatTail доедает дробную часть и экспоненту, чтобы Invalid покрывал весь литерал.
func (lx *Lexer) eatFloatTail() {
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits()
	}
	if c := lx.cursor.Peek(); c == 'e' || c == 'E' {
		lx.cursor.Bump()
		if c := lx.cursor.Peek(); c == '+' || c == '-' {
			lx.cursor.Bump()
		}
		lx.eatDigits()
	}
}

// finishNumber проверяет, что число не склеено с идентификатором.
func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	if isIdentContinueByte(lx.cursor.Peek()) {
		return lx.badNumber(start, "invalid character in numeric literal")
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.text(start)}
}

// badNumber доедает хвост литерала, репортит LexBadNumber и возвращает Invalid.
func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg+": "+lx.text(start))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(start)}
}
