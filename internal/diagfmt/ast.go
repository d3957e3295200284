package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"txtpb/internal/ast"
	"txtpb/internal/format"
	"txtpb/internal/source"
)

type MessageOutput struct {
	Delim    string        `json:"delim,omitempty"`
	Span     source.Span   `json:"span"`
	Fields   []FieldOutput `json:"fields"`
	Comments []string      `json:"comments,omitempty"`
}

type FieldOutput struct {
	Name     string      `json:"name"`
	NameKind string      `json:"name_kind"`
	Kind     string      `json:"kind"`
	HasColon bool        `json:"has_colon"`
	Sep      string      `json:"sep,omitempty"`
	Span     source.Span `json:"span"`
	Value    ValueOutput `json:"value"`
	Comments []string    `json:"comments,omitempty"`
}

type NumberOutput struct {
	Kind     string  `json:"kind"`
	Text     string  `json:"text"`
	Uint     *uint64 `json:"uint,omitempty"`
	Float    float64 `json:"float"`
	Single   bool    `json:"single,omitempty"`
	Overflow bool    `json:"overflow,omitempty"`
}

type ValueOutput struct {
	Kind         string         `json:"kind"`
	Span         source.Span    `json:"span"`
	Message      *MessageOutput `json:"message,omitempty"`
	Elems        []ValueOutput  `json:"elems,omitempty"`
	String       *string        `json:"string,omitempty"`
	Fragments    []string       `json:"fragments,omitempty"`
	Ident        string         `json:"ident,omitempty"`
	Number       *NumberOutput  `json:"number,omitempty"`
	Comments     []string       `json:"comments,omitempty"`
	ListComments []string       `json:"list_comments,omitempty"`
}

// FormatASTJSON выводит дерево документа в JSON.
func FormatASTJSON(w io.Writer, builder *ast.Builder, root ast.MessageID) error {
	if builder.Messages.Get(root) == nil {
		return fmt.Errorf("message %d not found", root)
	}
	out := buildMessageOutput(builder, root, "")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func buildMessageOutput(b *ast.Builder, id ast.MessageID, delim string) MessageOutput {
	msg := b.Messages.Get(id)
	out := MessageOutput{
		Delim:    delim,
		Span:     msg.Span,
		Fields:   make([]FieldOutput, 0, len(msg.Fields)),
		Comments: msg.Trailing,
	}
	for _, fid := range msg.Fields {
		f := b.Fields.Get(fid)
		out.Fields = append(out.Fields, FieldOutput{
			Name:     f.Name.Render(b.Strings),
			NameKind: f.Name.Kind.String(),
			Kind:     f.Kind.String(),
			HasColon: f.HasColon,
			Sep:      f.Sep.String(),
			Span:     f.Span,
			Value:    buildValueOutput(b, f.Value),
			Comments: f.Comments,
		})
	}
	return out
}

func buildValueOutput(b *ast.Builder, id ast.ValueID) ValueOutput {
	val := b.Values.Get(id)
	out := ValueOutput{Kind: val.Kind.String(), Span: val.Span, Comments: val.Comments}

	switch val.Kind {
	case ast.ValueMessage:
		mv, _ := b.Values.Message(id)
		m := buildMessageOutput(b, mv.Message, mv.Delim.Open()+mv.Delim.Close())
		out.Message = &m
	case ast.ValueMessageList, ast.ValueScalarList:
		list, _ := b.Values.List(id)
		out.ListComments = list.Trailing
		out.Elems = make([]ValueOutput, 0, len(list.Elems))
		for _, e := range list.Elems {
			out.Elems = append(out.Elems, buildValueOutput(b, e))
		}
	case ast.ValueString:
		s, _ := b.Values.Str(id)
		str := s.String()
		out.String = &str
		if len(s.Fragments) > 1 {
			for _, f := range s.Fragments {
				out.Fragments = append(out.Fragments, f.Raw)
			}
		}
	case ast.ValueIdent, ast.ValueSignedIdent:
		ident, _ := b.Values.Ident(id)
		out.Ident = b.Ident(ident.Name)
	case ast.ValueNumber:
		n, _ := b.Values.Number(id)
		no := NumberOutput{
			Kind:     n.Kind.String(),
			Text:     n.Text(),
			Float:    n.Float,
			Single:   n.Single,
			Overflow: n.Overflow,
		}
		if n.Kind.IsInt() && !n.Overflow {
			u := n.Uint
			no.Uint = &u
		}
		out.Number = &no
	}
	return out
}

// FormatASTPretty печатает по строке на поле: позиция, путь, вид и значение.
//
//	1:1   name            string "x"
//	2:1   inner           message {}
//	2:9   inner.id        number dec 7
func FormatASTPretty(w io.Writer, builder *ast.Builder, root ast.MessageID, fs *source.FileSet) error {
	if builder.Messages.Get(root) == nil {
		return fmt.Errorf("message %d not found", root)
	}
	return prettyMessage(w, builder, root, "", fs)
}

func prettyMessage(w io.Writer, b *ast.Builder, id ast.MessageID, prefix string, fs *source.FileSet) error {
	for _, fid := range b.Messages.Get(id).Fields {
		f := b.Fields.Get(fid)
		path := prefix + f.Name.Render(b.Strings)
		if err := prettyValue(w, b, f.Value, path, fs); err != nil {
			return err
		}
	}
	return nil
}

func prettyValue(w io.Writer, b *ast.Builder, id ast.ValueID, path string, fs *source.FileSet) error {
	val := b.Values.Get(id)
	pos, _ := fs.Resolve(val.Span)
	if _, err := fmt.Fprintf(w, "%-6s %-24s %s\n", fmt.Sprintf("%d:%d", pos.Line, pos.Col), path, describeValue(b, id)); err != nil {
		return err
	}

	switch val.Kind {
	case ast.ValueMessage:
		mv, _ := b.Values.Message(id)
		return prettyMessage(w, b, mv.Message, path+".", fs)
	case ast.ValueMessageList, ast.ValueScalarList:
		list, _ := b.Values.List(id)
		for i, e := range list.Elems {
			if err := prettyValue(w, b, e, fmt.Sprintf("%s[%d]", path, i), fs); err != nil {
				return err
			}
		}
	}
	return nil
}

// describeValue: короткое описание значения в одну строку.
func describeValue(b *ast.Builder, id ast.ValueID) string {
	val := b.Values.Get(id)
	switch val.Kind {
	case ast.ValueMessage:
		mv, _ := b.Values.Message(id)
		return "message " + mv.Delim.Open() + mv.Delim.Close()
	case ast.ValueMessageList, ast.ValueScalarList:
		list, _ := b.Values.List(id)
		return fmt.Sprintf("%s (%d)", val.Kind, len(list.Elems))
	case ast.ValueString:
		s, _ := b.Values.Str(id)
		if len(s.Fragments) > 1 {
			return fmt.Sprintf("string %s (%d fragments)", format.Quote(s.String()), len(s.Fragments))
		}
		return "string " + format.Quote(s.String())
	case ast.ValueIdent:
		ident, _ := b.Values.Ident(id)
		return "ident " + b.Ident(ident.Name)
	case ast.ValueSignedIdent:
		ident, _ := b.Values.Ident(id)
		return "ident -" + b.Ident(ident.Name)
	case ast.ValueNumber:
		n, _ := b.Values.Number(id)
		s := fmt.Sprintf("number %s %s", n.Kind, n.Text())
		if n.Single {
			s += " (single)"
		}
		if n.Overflow {
			s += " (overflow)"
		}
		return s
	default:
		return val.Kind.String()
	}
}
