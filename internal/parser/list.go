package parser

import (
	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/source"
	"txtpb/internal/token"
)

// parseColonList разбирает список после "name:". Вид списка решает первый
// элемент: '{'/'<': список сообщений, ']': пустой список по политике
// EmptyList, иначе: список скаляров. Одного peek достаточно.
func (p *Parser) parseColonList() (ast.ValueID, ast.FieldKind, bool) {
	open := p.advance()
	switch p.src.Peek().Kind {
	case token.LBrace, token.Lt:
		v, ok := p.parseMessageList(open)
		return v, ast.FieldMessage, ok
	case token.RBracket:
		lead := p.takeComments()
		closeTok := p.advance()
		sp := open.Span.Cover(closeTok.Span)
		var v ast.ValueID
		kind := ast.FieldScalar
		if p.opts.EmptyList == EmptyListMessage {
			v, kind = p.arenas.Values.NewMessageList(sp, nil), ast.FieldMessage
		} else {
			v = p.arenas.Values.NewScalarList(sp, nil)
		}
		p.finishList(v, lead)
		return v, kind, true
	default:
		lead := p.takeComments()
		elems, sp, ok := p.parseListElems(open, p.parseScalarValue)
		if !ok {
			return ast.NoValueID, ast.FieldScalar, false
		}
		v := p.arenas.Values.NewScalarList(sp, elems)
		p.finishList(v, lead)
		return v, ast.FieldScalar, true
	}
}

// parseMessageList: список сообщений; '[' уже съеден.
func (p *Parser) parseMessageList(open token.Token) (ast.ValueID, bool) {
	lead := p.takeComments()
	elems, sp, ok := p.parseListElems(open, p.parseListMessage)
	if !ok {
		return ast.NoValueID, false
	}
	v := p.arenas.Values.NewMessageList(sp, elems)
	p.finishList(v, lead)
	return v, true
}

// finishList привязывает комментарии перед '[' к значению, а всё, что
// накопилось до ']' включительно, к хвосту списка.
func (p *Parser) finishList(v ast.ValueID, lead []string) {
	p.arenas.Values.SetComments(v, lead)
	if list, ok := p.arenas.Values.List(v); ok {
		list.Trailing = p.takeComments()
	}
}

func (p *Parser) parseListMessage() (ast.ValueID, bool) {
	if !p.at_or(token.LBrace, token.Lt) {
		p.unexpected("message value in list")
		return ast.NoValueID, false
	}
	return p.parseMessageValue()
}

// parseListElems: [ elem (',' elem)* ] с уже съеденным '['.
// Запятая перед ']': ошибка.
func (p *Parser) parseListElems(open token.Token, elem func() (ast.ValueID, bool)) ([]ast.ValueID, source.Span, bool) {
	if p.at(token.RBracket) {
		closeTok := p.advance()
		return nil, open.Span.Cover(closeTok.Span), true
	}

	var elems []ast.ValueID
	for {
		v, ok := elem()
		if !ok {
			return nil, source.Span{}, false
		}
		elems = append(elems, v)

		switch p.src.Peek().Kind {
		case token.Comma:
			comma := p.advance()
			if p.at(token.RBracket) {
				p.report(diag.SynTrailingComma, comma.Span, "trailing comma is not allowed in a list", nil)
				return nil, source.Span{}, false
			}
		case token.RBracket:
			closeTok := p.advance()
			return elems, open.Span.Cover(closeTok.Span), true
		case token.EOF, token.RBrace, token.Gt:
			p.unmatched(open)
			return nil, source.Span{}, false
		default:
			p.unexpected("',' or ']' in list")
			return nil, source.Span{}, false
		}
	}
}
