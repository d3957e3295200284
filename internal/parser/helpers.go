package parser

import (
	"fmt"

	"txtpb/internal/diag"
	"txtpb/internal/source"
	"txtpb/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.src.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	p.pending = append(p.pending, comments(tok)...)
	return tok
}

// takeComments отдаёт накопленные комментарии ближайшему узлу.
// Каждый комментарий попадает ровно в один узел, порядок исходника сохраняется.
func (p *Parser) takeComments() []string {
	out := p.pending
	p.pending = nil
	return out
}

// getDiagnosticSpan: лучший span для диагностики по текущему токену.
// Для EOF указываем сразу за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.src.Peek()
	if peek.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// report записывает первую ошибку и переводит парсер в состояние failed.
func (p *Parser) report(code diag.Code, sp source.Span, msg string, notes []diag.Note) {
	if p.failed {
		return
	}
	p.failed = true
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, notes)
	}
}

// unexpected репортит текущий токен там, где ожидалось what.
// EOF превращается в SynUnexpectedEOF.
func (p *Parser) unexpected(what string) {
	tok := p.src.Peek()
	if p.lexFailed() {
		return
	}
	if tok.Kind == token.EOF {
		p.report(diag.SynUnexpectedEOF, p.getDiagnosticSpan(), fmt.Sprintf("expected %s, found end of input", what), nil)
		return
	}
	p.report(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("expected %s, found %s", what, describe(tok)), nil)
}

// unmatched репортит незакрытую или неверно закрытую скобку с пометкой на открывающей.
func (p *Parser) unmatched(open token.Token) {
	found := p.src.Peek()
	if p.lexFailed() {
		return
	}
	want := open.Kind.Closer().Describe()
	var msg string
	if found.Kind == token.EOF {
		msg = fmt.Sprintf("unclosed %s: expected %s before end of input", open.Kind.Describe(), want)
	} else {
		msg = fmt.Sprintf("mismatched delimiter: expected %s, found %s", want, found.Kind.Describe())
	}
	notes := []diag.Note{{Span: open.Span, Msg: open.Kind.Describe() + " opened here"}}
	p.report(diag.SynUnmatchedDelimiter, p.getDiagnosticSpan(), msg, notes)
}

// expect: ожидаем конкретный токен; иначе репорт и (invalid,false).
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.unexpected(what)
	return token.Token{Kind: token.Invalid, Span: p.getDiagnosticSpan()}, false
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.Ident, token.DecInt, token.OctInt, token.HexInt, token.Float:
		return fmt.Sprintf("%s %q", tok.Kind.Describe(), tok.Text)
	default:
		return tok.Kind.Describe()
	}
}

// lexFailed: текущий токен Invalid, значит лексер уже отрепортил причину
// и второй диагностики не нужно.
func (p *Parser) lexFailed() bool {
	if p.src.Peek().Kind != token.Invalid {
		return false
	}
	p.failed = true
	return true
}

// comments достаёт тексты '#'-комментариев из leading trivia токена.
func comments(tok token.Token) []string {
	var out []string
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaComment {
			out = append(out, tr.Text)
		}
	}
	return out
}
