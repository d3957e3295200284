package parser

import (
	"txtpb/internal/ast"
	"txtpb/internal/source"
	"txtpb/internal/token"
)

// parseField разбирает:
//
//	name ':' scalar | name ':'? message | name ':' '[' ... ']' | name '[' messages ']'
//
// плюс необязательный ';' или ','.
func (p *Parser) parseField() (ast.FieldID, bool) {
	name, ok := p.parseFieldName()
	if !ok {
		return ast.NoFieldID, false
	}
	field := ast.Field{Name: name}

	if p.at(token.Colon) {
		p.advance()
		field.HasColon = true
		field.Comments = p.takeComments()
		switch p.src.Peek().Kind {
		case token.LBrace, token.Lt:
			field.Kind = ast.FieldMessage
			field.Value, ok = p.parseMessageValue()
		case token.LBracket:
			field.Value, field.Kind, ok = p.parseColonList()
		default:
			field.Kind = ast.FieldScalar
			field.Value, ok = p.parseScalarValue()
		}
	} else {
		field.Comments = p.takeComments()
		switch p.src.Peek().Kind {
		case token.LBrace, token.Lt:
			field.Kind = ast.FieldMessage
			field.Value, ok = p.parseMessageValue()
		case token.LBracket:
			field.Kind = ast.FieldMessage
			field.Value, ok = p.parseMessageList(p.advance())
		default:
			p.unexpected("':' or message value after field name")
			return ast.NoFieldID, false
		}
	}
	if !ok {
		return ast.NoFieldID, false
	}

	switch p.src.Peek().Kind {
	case token.Semicolon:
		p.advance()
		field.Sep = ast.SepSemicolon
	case token.Comma:
		p.advance()
		field.Sep = ast.SepComma
	}

	field.Span = name.Span.Cover(p.lastSpan)
	return p.arenas.Fields.New(field), true
}

// parseFieldName: ident | '[' path ']' | '[' path '/' path ']'.
// Первый путь: домен тогда и только тогда, когда за ним идёт '/'.
func (p *Parser) parseFieldName() (ast.FieldName, bool) {
	switch p.src.Peek().Kind {
	case token.Ident:
		tok := p.advance()
		return ast.FieldName{
			Kind:  ast.NameIdent,
			Ident: p.arenas.Strings.Intern(tok.Text),
			Span:  tok.Span,
		}, true

	case token.LBracket:
		open := p.advance()
		first, ok := p.parsePath()
		if !ok {
			return ast.FieldName{}, false
		}
		name := ast.FieldName{Kind: ast.NameExtension, Type: first}
		if p.at(token.Slash) {
			p.advance()
			second, ok := p.parsePath()
			if !ok {
				return ast.FieldName{}, false
			}
			name = ast.FieldName{Kind: ast.NameAny, Domain: first, Type: second}
		}
		switch p.src.Peek().Kind {
		case token.RBracket:
			closeTok := p.advance()
			name.Span = open.Span.Cover(closeTok.Span)
			return name, true
		case token.EOF, token.RBrace, token.Gt:
			p.unmatched(open)
		default:
			if name.Kind == ast.NameAny {
				p.unexpected("'.' or ']'")
			} else {
				p.unexpected("'.', '/' or ']'")
			}
		}
		return ast.FieldName{}, false

	default:
		p.unexpected("field name")
		return ast.FieldName{}, false
	}
}

// parsePath: ident ('.' ident)*
func (p *Parser) parsePath() ([]source.StringID, bool) {
	tok, ok := p.expect(token.Ident, "identifier")
	if !ok {
		return nil, false
	}
	path := []source.StringID{p.arenas.Strings.Intern(tok.Text)}
	for p.at(token.Dot) {
		p.advance()
		tok, ok = p.expect(token.Ident, "identifier after '.'")
		if !ok {
			return nil, false
		}
		path = append(path, p.arenas.Strings.Intern(tok.Text))
	}
	return path, true
}

// parseMessageValue: '{' message '}' | '<' message '>'
func (p *Parser) parseMessageValue() (ast.ValueID, bool) {
	open := p.advance()
	delim := ast.DelimCurly
	if open.Kind == token.Lt {
		delim = ast.DelimAngle
	}

	lead := p.takeComments()
	msg := p.arenas.NewMessage(open.Span)
	if !p.parseMessageBody(msg) {
		return ast.NoValueID, false
	}
	if !p.at(open.Kind.Closer()) {
		p.unmatched(open)
		return ast.NoValueID, false
	}
	closeTok := p.advance()

	sp := open.Span.Cover(closeTok.Span)
	m := p.arenas.Messages.Get(msg)
	m.Span = sp
	m.Trailing = p.takeComments()
	id := p.arenas.Values.NewMessage(sp, delim, msg)
	p.arenas.Values.SetComments(id, lead)
	return id, true
}

