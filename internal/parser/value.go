package parser

import (
	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/token"
)

// parseScalarValue: string+ | ident | '-' ident | '-'? number
func (p *Parser) parseScalarValue() (ast.ValueID, bool) {
	id, ok := p.scalarValue()
	if ok {
		p.arenas.Values.SetComments(id, p.takeComments())
	}
	return id, ok
}

func (p *Parser) scalarValue() (ast.ValueID, bool) {
	tok := p.src.Peek()
	switch {
	case tok.Kind.IsString():
		return p.parseStrings(), true
	case tok.Kind == token.Ident:
		p.advance()
		return p.arenas.Values.NewIdent(tok.Span, p.arenas.Strings.Intern(tok.Text)), true
	case tok.Kind.IsNumber():
		p.advance()
		return p.newNumber(tok, tok, false)
	case tok.Kind == token.Minus:
		minus := p.advance()
		// между '-' и операндом допустимы пробелы и комментарии
		next := p.src.Peek()
		switch {
		case next.Kind == token.Ident:
			p.advance()
			return p.arenas.Values.NewSignedIdent(minus.Span.Cover(next.Span), p.arenas.Strings.Intern(next.Text)), true
		case next.Kind.IsNumber():
			p.advance()
			return p.newNumber(minus, next, true)
		default:
			p.unexpected("number or identifier after '-'")
			return ast.NoValueID, false
		}
	default:
		p.unexpected("value")
		return ast.NoValueID, false
	}
}

// parseStrings склеивает подряд идущие строковые литералы в одно значение,
// сохраняя каждый фрагмент.
func (p *Parser) parseStrings() ast.ValueID {
	first := p.src.Peek()
	var frags []ast.StringFragment
	for p.src.Peek().Kind.IsString() {
		tok := p.advance()
		frags = append(frags, ast.StringFragment{
			Quote:   tok.Text[0],
			Raw:     tok.Text,
			Decoded: tok.Value,
		})
	}
	return p.arenas.Values.NewString(first.Span.Cover(p.lastSpan), frags)
}

func (p *Parser) newNumber(first, lit token.Token, negative bool) (ast.ValueID, bool) {
	num, err := decodeNumber(lit, negative)
	if err != nil {
		p.report(diag.LexBadNumber, lit.Span, err.Error(), nil)
		return ast.NoValueID, false
	}
	return p.arenas.Values.NewNumber(first.Span.Cover(lit.Span), num), true
}
