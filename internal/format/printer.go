package format

import (
	"errors"
	"strconv"

	"txtpb/internal/ast"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
	// DropComments renders without '#' comments.
	DropComments bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

type printer struct {
	builder *ast.Builder
	writer  *Writer
	opt     Options
}

// FormatMessage renders the document rooted at root.
func FormatMessage(b *ast.Builder, root ast.MessageID, opt Options) ([]byte, error) {
	if b == nil {
		return nil, errors.New("format: nil builder")
	}
	msg := b.Messages.Get(root)
	if msg == nil {
		return nil, errors.New("format: invalid root message")
	}

	opt = opt.withDefaults()
	pr := printer{
		builder: b,
		writer:  NewWriter(opt, 64*len(b.Fields.Arena.Slice())),
		opt:     opt,
	}
	pr.printBody(msg)
	return pr.writer.Bytes(), nil
}

func (p *printer) printComments(lines []string) {
	if p.opt.DropComments {
		return
	}
	for _, c := range lines {
		p.writer.WriteString(c)
		p.writer.Newline()
	}
}

func (p *printer) printBody(msg *ast.Message) {
	for _, fid := range msg.Fields {
		p.printField(p.builder.Fields.Get(fid))
	}
	p.printComments(msg.Trailing)
}

func (p *printer) printField(f *ast.Field) {
	p.printComments(f.Comments)
	val := p.builder.Values.Get(f.Value)
	// комментарии перед значением поля выносим над полем
	p.printComments(val.Comments)
	p.writer.WriteString(f.Name.Render(p.builder.Strings))

	switch val.Kind {
	case ast.ValueMessage:
		p.writer.WriteString(" ")
	case ast.ValueMessageList:
		// пустой список сообщений без ':' однозначен при любой политике
		if list, _ := p.builder.Values.List(f.Value); len(list.Elems) == 0 {
			p.writer.WriteString(" ")
		} else {
			p.writer.WriteString(": ")
		}
	default:
		p.writer.WriteString(": ")
	}
	p.printValue(f.Value)
	p.writer.Newline()
}

func (p *printer) printValue(id ast.ValueID) {
	val := p.builder.Values.Get(id)
	switch val.Kind {
	case ast.ValueMessage:
		mv, _ := p.builder.Values.Message(id)
		p.printMessage(mv)
	case ast.ValueMessageList, ast.ValueScalarList:
		p.printList(id)
	case ast.ValueString:
		s, _ := p.builder.Values.Str(id)
		p.writer.WriteString(Quote(s.String()))
	case ast.ValueIdent:
		ident, _ := p.builder.Values.Ident(id)
		p.writer.WriteString(p.builder.Ident(ident.Name))
	case ast.ValueSignedIdent:
		ident, _ := p.builder.Values.Ident(id)
		p.writer.WriteString("-" + p.builder.Ident(ident.Name))
	case ast.ValueNumber:
		num, _ := p.builder.Values.Number(id)
		p.writer.WriteString(num.Text())
	}
}

func (p *printer) printMessage(mv *ast.MessageValue) {
	msg := p.builder.Messages.Get(mv.Message)
	if len(msg.Fields) == 0 && (p.opt.DropComments || len(msg.Trailing) == 0) {
		p.writer.WriteString(mv.Delim.Open() + mv.Delim.Close())
		return
	}
	p.writer.WriteString(mv.Delim.Open())
	p.writer.Newline()
	p.writer.Indent()
	p.printBody(msg)
	p.writer.Dedent()
	p.writer.WriteString(mv.Delim.Close())
}

// printList пишет список в одну строку, а при комментариях внутри
// по элементу на строку: '#' съедает остаток строки.
func (p *printer) printList(id ast.ValueID) {
	list, _ := p.builder.Values.List(id)
	if !p.listHasComments(list) {
		p.writer.WriteString("[")
		for i, e := range list.Elems {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printValue(e)
		}
		p.writer.WriteString("]")
		return
	}

	p.writer.WriteString("[")
	p.writer.Newline()
	p.writer.Indent()
	for i, e := range list.Elems {
		p.printComments(p.builder.Values.Get(e).Comments)
		p.printValue(e)
		if i < len(list.Elems)-1 {
			p.writer.WriteString(",")
		}
		p.writer.Newline()
	}
	p.printComments(list.Trailing)
	p.writer.Dedent()
	p.writer.WriteString("]")
}

func (p *printer) listHasComments(list *ast.List) bool {
	if p.opt.DropComments {
		return false
	}
	if len(list.Trailing) > 0 {
		return true
	}
	for _, e := range list.Elems {
		if len(p.builder.Values.Get(e).Comments) > 0 {
			return true
		}
	}
	return false
}

// Quote renders decoded string bytes as a double-quoted literal. Go's
// escape repertoire (\a \b \f \n \r \t \v \\ \" \xHH \uHHHH \UHHHHHHHH)
// is a subset of what the lexer decodes, so the output reparses to the
// same bytes.
func Quote(s string) string {
	return strconv.Quote(s)
}
