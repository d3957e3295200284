package ast

import (
	"testing"

	"txtpb/internal/source"
)

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil {
		t.Fatal("index 0 must be nil")
	}
	id := a.Allocate(7)
	if id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}
	if *a.Get(id) != 7 {
		t.Fatalf("unexpected value %d", *a.Get(id))
	}
	if a.Get(2) != nil {
		t.Fatal("out-of-range index must be nil")
	}
}

func TestBuilderMessageTree(t *testing.T) {
	b := NewBuilder(Hints{})
	root := b.NewMessage(source.Span{})
	inner := b.NewMessage(source.Span{})

	num := b.Values.NewNumber(source.Span{}, Number{Kind: NumDec, Raw: "1", Uint: 1})
	b.PushField(inner, b.Fields.New(Field{
		Kind:     FieldScalar,
		Name:     FieldName{Kind: NameIdent, Ident: b.Strings.Intern("a")},
		Value:    num,
		HasColon: true,
	}))

	mv := b.Values.NewMessage(source.Span{}, DelimAngle, inner)
	b.PushField(root, b.Fields.New(Field{
		Kind:  FieldMessage,
		Name:  FieldName{Kind: NameIdent, Ident: b.Strings.Intern("inner")},
		Value: mv,
		Sep:   SepSemicolon,
	}))

	fields := b.Messages.Get(root).Fields
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	f := b.Fields.Get(fields[0])
	msg, ok := b.Values.Message(f.Value)
	if !ok {
		t.Fatal("expected message value")
	}
	if msg.Delim.Open() != "<" || msg.Delim.Close() != ">" {
		t.Fatalf("unexpected delimiters %s%s", msg.Delim.Open(), msg.Delim.Close())
	}
	innerField := b.Fields.Get(b.Messages.Get(msg.Message).Fields[0])
	n, ok := b.Values.Number(innerField.Value)
	if !ok || n.Uint != 1 {
		t.Fatalf("expected number 1, got %+v", n)
	}
	if _, ok := b.Values.Str(innerField.Value); ok {
		t.Fatal("number must not be readable as string")
	}
}

func TestStringValueConcatenates(t *testing.T) {
	s := StringValue{Fragments: []StringFragment{
		{Quote: '"', Raw: `"ab"`, Decoded: "ab"},
		{Quote: '\'', Raw: `'c\n'`, Decoded: "c\n"},
	}}
	if s.String() != "abc\n" {
		t.Fatalf("unexpected %q", s.String())
	}
	if string(s.Bytes()) != "abc\n" {
		t.Fatalf("unexpected bytes %q", s.Bytes())
	}
}

func TestFieldNameRender(t *testing.T) {
	strs := source.NewInterner()
	path := func(parts ...string) []source.StringID {
		ids := make([]source.StringID, len(parts))
		for i, p := range parts {
			ids[i] = strs.Intern(p)
		}
		return ids
	}

	tests := []struct {
		name FieldName
		want string
	}{
		{FieldName{Kind: NameIdent, Ident: strs.Intern("foo")}, "foo"},
		{FieldName{Kind: NameExtension, Type: path("pkg", "ext")}, "[pkg.ext]"},
		{FieldName{Kind: NameAny, Domain: path("type", "googleapis", "com"), Type: path("pkg", "Msg")}, "[type.googleapis.com/pkg.Msg]"},
	}
	for _, tt := range tests {
		if got := tt.name.Render(strs); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestValueKindIsScalar(t *testing.T) {
	for _, k := range []ValueKind{ValueString, ValueIdent, ValueSignedIdent, ValueNumber} {
		if !k.IsScalar() {
			t.Errorf("%v must be scalar", k)
		}
	}
	for _, k := range []ValueKind{ValueMessage, ValueMessageList, ValueScalarList, ValueInvalid} {
		if k.IsScalar() {
			t.Errorf("%v must not be scalar", k)
		}
	}
}
