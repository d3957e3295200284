package parser

import (
	"slices"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/source"
	"txtpb/internal/token"
)

// TokenSource is anything that yields significant tokens with one token of
// lookahead. *lexer.Lexer and *token.Stream both satisfy it.
type TokenSource interface {
	Next() token.Token
	Peek() token.Token
}

// EmptyListPolicy decides what `name: []` means; with a colon an empty list
// carries no element to tell scalar and message lists apart.
type EmptyListPolicy uint8

const (
	EmptyListScalar EmptyListPolicy = iota
	EmptyListMessage
)

func (p EmptyListPolicy) String() string {
	if p == EmptyListMessage {
		return "message"
	}
	return "scalar"
}

type Options struct {
	Reporter  diag.Reporter
	EmptyList EmptyListPolicy
}

type Result struct {
	// Root is NoMessageID whenever any error was reported.
	Root ast.MessageID
	Bag  *diag.Bag
}

// Parser: состояние парсера на один документ
type Parser struct {
	src      TokenSource
	arenas   *ast.Builder
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для диагностики на EOF
	failed   bool        // fail-fast: после первой ошибки всё сворачиваем
	pending  []string    // комментарии съеденных токенов, ещё не привязанные к узлу
}

// ParseFile разбирает один документ целиком. Первая же ошибка (лексическая
// или синтаксическая) останавливает разбор; частичное дерево не возвращается.
func ParseFile(
	fs *source.FileSet,
	src TokenSource,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		src:    src,
		arenas: arenas,
		fs:     fs,
		opts:   opts,
	}
	p.lastSpan = p.src.Peek().Span
	p.lastSpan.End = p.lastSpan.Start

	root, ok := p.parseDocument()
	if !ok {
		root = ast.NoMessageID
	}

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Root: root,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.src.Peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.src.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.failed
}

// parseDocument: message, за которым обязан идти EOF.
func (p *Parser) parseDocument() (ast.MessageID, bool) {
	start := p.src.Peek().Span
	msg := p.arenas.NewMessage(start)
	if !p.parseMessageBody(msg) {
		return ast.NoMessageID, false
	}

	tok := p.src.Peek()
	if tok.Kind != token.EOF {
		p.report(diag.SynUnexpectedToken, tok.Span, "unexpected "+tok.Kind.Describe()+" at top level", nil)
		return ast.NoMessageID, false
	}
	start.End = tok.Span.End
	m := p.arenas.Messages.Get(msg)
	m.Span = start
	m.Trailing = append(p.takeComments(), comments(tok)...)
	return msg, true
}

// parseMessageBody читает поля до любого закрывающего токена или EOF.
// Проверка, что закрывающий токен правильный,: дело вызывающего.
func (p *Parser) parseMessageBody(msg ast.MessageID) bool {
	for !p.at_or(token.EOF, token.RBrace, token.Gt, token.RBracket) {
		fieldID, ok := p.parseField()
		if !ok {
			return false
		}
		p.arenas.PushField(msg, fieldID)
	}
	return true
}
