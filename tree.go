package txtpb

import (
	"strings"

	"txtpb/internal/ast"
)

type (
	FieldKind  = ast.FieldKind
	Separator  = ast.Separator
	NameKind   = ast.NameKind
	ValueKind  = ast.ValueKind
	Delim      = ast.Delim
	NumberKind = ast.NumberKind
)

const (
	FieldScalar  = ast.FieldScalar
	FieldMessage = ast.FieldMessage

	SepNone      = ast.SepNone
	SepSemicolon = ast.SepSemicolon
	SepComma     = ast.SepComma

	NameIdent     = ast.NameIdent
	NameExtension = ast.NameExtension
	NameAny       = ast.NameAny

	ValueMessage     = ast.ValueMessage
	ValueMessageList = ast.ValueMessageList
	ValueString      = ast.ValueString
	ValueIdent       = ast.ValueIdent
	ValueSignedIdent = ast.ValueSignedIdent
	ValueNumber      = ast.ValueNumber
	ValueScalarList  = ast.ValueScalarList

	DelimCurly = ast.DelimCurly
	DelimAngle = ast.DelimAngle

	NumDec   = ast.NumDec
	NumOct   = ast.NumOct
	NumHex   = ast.NumHex
	NumFloat = ast.NumFloat
)

// Message is an ordered list of fields. The zero Message has no fields.
type Message struct {
	doc   *Document
	id    ast.MessageID
	delim Delim
	inner bool // false для корня документа
}

func (m Message) node() *ast.Message {
	if m.doc == nil {
		return nil
	}
	return m.doc.b.Messages.Get(m.id)
}

// Len returns the number of fields.
func (m Message) Len() int {
	if n := m.node(); n != nil {
		return len(n.Fields)
	}
	return 0
}

// Field returns the i-th field in source order. It panics if i is out of range.
func (m Message) Field(i int) Field {
	return Field{doc: m.doc, f: m.doc.b.Fields.Get(m.node().Fields[i])}
}

// Fields returns all fields in source order, duplicates included.
func (m Message) Fields() []Field {
	out := make([]Field, m.Len())
	for i := range out {
		out[i] = m.Field(i)
	}
	return out
}

// Get returns the fields whose rendered name equals name, in source order.
// Extension and Any names are matched in bracketed form, e.g. "[pkg.ext]".
func (m Message) Get(name string) []Field {
	var out []Field
	for _, f := range m.Fields() {
		if f.Name().String() == name {
			out = append(out, f)
		}
	}
	return out
}

// Delim returns the brackets the message was written with; ok is false for
// the document root, which has none.
func (m Message) Delim() (d Delim, ok bool) {
	return m.delim, m.inner
}

// Comments returns the comment lines before the closing bracket (or before
// the end of the document for the root).
func (m Message) Comments() []string {
	if n := m.node(); n != nil {
		return n.Trailing
	}
	return nil
}

// Pos returns the position of the opening bracket, or of the first token of
// the document for the root.
func (m Message) Pos() Pos {
	return m.doc.pos(m.node().Span.Start)
}

type Field struct {
	doc *Document
	f   *ast.Field
}

func (f Field) Kind() FieldKind { return f.f.Kind }

func (f Field) Name() FieldName { return FieldName{doc: f.doc, n: f.f.Name} }

func (f Field) Value() Value { return Value{doc: f.doc, id: f.f.Value} }

// Separator returns the ';' or ',' that ended the field, if any.
func (f Field) Separator() Separator { return f.f.Sep }

// HasColon reports whether ':' followed the name.
func (f Field) HasColon() bool { return f.f.HasColon }

// Comments returns the '#' comment lines directly before the field.
func (f Field) Comments() []string { return f.f.Comments }

// Pos returns the position of the field name.
func (f Field) Pos() Pos { return f.doc.pos(f.f.Span.Start) }

type FieldName struct {
	doc *Document
	n   ast.FieldName
}

func (n FieldName) Kind() NameKind { return n.n.Kind }

// Ident returns the plain identifier, or "" for extension and Any names.
func (n FieldName) Ident() string {
	if n.n.Kind != ast.NameIdent {
		return ""
	}
	return n.doc.b.Ident(n.n.Ident)
}

// Domain returns the URL prefix of an Any name, e.g. "type.googleapis.com".
func (n FieldName) Domain() string {
	return strings.Join(ast.Path(n.doc.b.Strings, n.n.Domain), ".")
}

// Type returns the dotted type path of an extension or Any name.
func (n FieldName) Type() string {
	return strings.Join(ast.Path(n.doc.b.Strings, n.n.Type), ".")
}

// String renders the name as it would appear in canonical source.
func (n FieldName) String() string {
	return n.n.Render(n.doc.b.Strings)
}

type Value struct {
	doc *Document
	id  ast.ValueID
}

func (v Value) node() *ast.Value { return v.doc.b.Values.Get(v.id) }

func (v Value) Kind() ValueKind { return v.node().Kind }

// Pos returns the position of the first token of the value.
func (v Value) Pos() Pos { return v.doc.pos(v.node().Span.Start) }

// Comments returns the comment lines written before the value or between
// its tokens. For lists, ListComments returns the lines before ']'.
func (v Value) Comments() []string { return v.node().Comments }

func (v Value) ListComments() []string {
	if list, ok := v.doc.b.Values.List(v.id); ok {
		return list.Trailing
	}
	return nil
}

// Message returns the message of a ValueMessage.
func (v Value) Message() (Message, bool) {
	mv, ok := v.doc.b.Values.Message(v.id)
	if !ok {
		return Message{}, false
	}
	return Message{doc: v.doc, id: mv.Message, delim: mv.Delim, inner: true}, true
}

// List returns the elements of a ValueScalarList or ValueMessageList.
func (v Value) List() ([]Value, bool) {
	list, ok := v.doc.b.Values.List(v.id)
	if !ok {
		return nil, false
	}
	out := make([]Value, len(list.Elems))
	for i, e := range list.Elems {
		out[i] = Value{doc: v.doc, id: e}
	}
	return out, true
}

// Strings returns the decoded fragments of a concatenated string literal.
func (v Value) Strings() ([]string, bool) {
	s, ok := v.doc.b.Values.Str(v.id)
	if !ok {
		return nil, false
	}
	out := make([]string, len(s.Fragments))
	for i, f := range s.Fragments {
		out[i] = f.Decoded
	}
	return out, true
}

// Bytes returns the decoded, concatenated bytes of a ValueString.
func (v Value) Bytes() ([]byte, bool) {
	s, ok := v.doc.b.Values.Str(v.id)
	if !ok {
		return nil, false
	}
	return s.Bytes(), true
}

// Ident returns the identifier of a ValueIdent or ValueSignedIdent. For a
// signed identifier the '-' is not included; check Kind.
func (v Value) Ident() (string, bool) {
	id, ok := v.doc.b.Values.Ident(v.id)
	if !ok {
		return "", false
	}
	return v.doc.b.Ident(id.Name), true
}

// Number returns the decoded ValueNumber.
func (v Value) Number() (Number, bool) {
	n, ok := v.doc.b.Values.Number(v.id)
	if !ok {
		return Number{}, false
	}
	return Number{n: *n}, true
}
