package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"txtpb/internal/ast"
	"txtpb/internal/token"
)

// decodeNumber переводит числовой токен в ast.Number.
// Десятичное целое сверх uint64 не ошибка: ставим Overflow и оставляем
// приближение во Float. Восьмеричное и шестнадцатеричное сверх uint64: ошибка.
func decodeNumber(tok token.Token, negative bool) (ast.Number, error) {
	n := ast.Number{Negative: negative, Raw: tok.Text}

	switch tok.Kind {
	case token.DecInt:
		n.Kind = ast.NumDec
		u, err := strconv.ParseUint(tok.Text, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(tok.Text, 64)
			if ferr != nil && !errors.Is(ferr, strconv.ErrRange) {
				return n, fmt.Errorf("invalid decimal literal %s", tok.Text)
			}
			n.Overflow = true
			n.Float = f
		} else {
			n.Uint = u
			n.Float = float64(u)
		}

	case token.OctInt, token.HexInt:
		base, digits := 8, tok.Text[1:]
		n.Kind = ast.NumOct
		if tok.Kind == token.HexInt {
			base, digits = 16, tok.Text[2:]
			n.Kind = ast.NumHex
		}
		u, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return n, fmt.Errorf("integer literal %s overflows 64 bits", tok.Text)
		}
		n.Uint = u
		n.Float = float64(u)

	case token.Float:
		n.Kind = ast.NumFloat
		text := tok.Text
		if strings.HasSuffix(text, "f") || strings.HasSuffix(text, "F") {
			text = text[:len(text)-1]
			n.Single = true
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return n, fmt.Errorf("invalid float literal %s", tok.Text)
		}
		// ErrRange: ±Inf или 0: принимаем как есть
		n.Float = f

	default:
		return n, fmt.Errorf("not a number: %s", tok.Kind)
	}

	if negative {
		n.Float = -n.Float
	}
	return n, nil
}
