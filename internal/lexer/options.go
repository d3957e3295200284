package lexer

import (
	"txtpb/internal/diag"
	"txtpb/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки только превращаются в Invalid-токены
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
