package parser

import (
	"slices"
	"testing"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/lexer"
	"txtpb/internal/source"
	"txtpb/internal/token"
)

func TestEmptyDocument(t *testing.T) {
	for _, input := range []string{"", "  \n", "# only a comment\n"} {
		p := mustParse(t, input)
		if n := len(p.fields(p.root)); n != 0 {
			t.Fatalf("input %q: expected no fields, got %d", input, n)
		}
	}
}

func TestScalarFields(t *testing.T) {
	p := mustParse(t, `name: "x" id: 7 enabled: true mode: -inf`)
	fs := p.fields(p.root)
	if len(fs) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fs))
	}
	want := []struct {
		name string
		kind ast.ValueKind
	}{
		{"name", ast.ValueString},
		{"id", ast.ValueNumber},
		{"enabled", ast.ValueIdent},
		{"mode", ast.ValueSignedIdent},
	}
	for i, w := range want {
		if got := p.name(fs[i]); got != w.name {
			t.Errorf("field %d: expected name %q, got %q", i, w.name, got)
		}
		if fs[i].Kind != ast.FieldScalar || !fs[i].HasColon {
			t.Errorf("field %d: expected scalar field with colon", i)
		}
		if got := p.kind(fs[i].Value); got != w.kind {
			t.Errorf("field %d: expected %v, got %v", i, w.kind, got)
		}
	}

	id, _ := p.b.Values.Ident(fs[3].Value)
	if p.b.Ident(id.Name) != "inf" {
		t.Fatalf("signed ident must be stored without '-', got %q", p.b.Ident(id.Name))
	}
}

func TestMessageFields(t *testing.T) {
	p := mustParse(t, "a { x: 1 } b: < y: 2 > c {}")
	fs := p.fields(p.root)
	if len(fs) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fs))
	}
	delims := []ast.Delim{ast.DelimCurly, ast.DelimAngle, ast.DelimCurly}
	colons := []bool{false, true, false}
	for i, f := range fs {
		if f.Kind != ast.FieldMessage {
			t.Fatalf("field %d: expected message field", i)
		}
		mv, ok := p.b.Values.Message(f.Value)
		if !ok {
			t.Fatalf("field %d: expected message value", i)
		}
		if mv.Delim != delims[i] {
			t.Errorf("field %d: expected delim %v, got %v", i, delims[i], mv.Delim)
		}
		if f.HasColon != colons[i] {
			t.Errorf("field %d: HasColon = %v", i, f.HasColon)
		}
	}

	inner, _ := p.b.Values.Message(fs[1].Value)
	y := p.field(t, inner.Message, 0)
	if p.name(y) != "y" {
		t.Fatalf("expected nested field y, got %q", p.name(y))
	}
}

func TestFieldOrderAndDuplicatesPreserved(t *testing.T) {
	p := mustParse(t, "b: 1 a: 2 b: 3")
	var names []string
	for _, f := range p.fields(p.root) {
		names = append(names, p.name(f))
	}
	if len(names) != 3 || names[0] != "b" || names[1] != "a" || names[2] != "b" {
		t.Fatalf("unexpected order %v", names)
	}
}

func TestSeparators(t *testing.T) {
	p := mustParse(t, "a: 1; b: 2, c: 3 d {};")
	want := []ast.Separator{ast.SepSemicolon, ast.SepComma, ast.SepNone, ast.SepSemicolon}
	for i, f := range p.fields(p.root) {
		if f.Sep != want[i] {
			t.Errorf("field %d: expected sep %q, got %q", i, want[i], f.Sep)
		}
	}
}

func TestFieldNameClassification(t *testing.T) {
	tests := []struct {
		input  string
		kind   ast.NameKind
		render string
		domain int
		typ    int
	}{
		{"foo: 1", ast.NameIdent, "foo", 0, 0},
		{"[pkg.ext]: 1", ast.NameExtension, "[pkg.ext]", 0, 2},
		{"[ext]: 1", ast.NameExtension, "[ext]", 0, 1},
		{"[type.googleapis.com/pkg.Msg] { a: 1 }", ast.NameAny, "[type.googleapis.com/pkg.Msg]", 3, 2},
		{"[ a . b / c ]: 1", ast.NameAny, "[a.b/c]", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := mustParse(t, tt.input)
			f := p.field(t, p.root, 0)
			if f.Name.Kind != tt.kind {
				t.Fatalf("expected %v, got %v", tt.kind, f.Name.Kind)
			}
			if got := p.name(f); got != tt.render {
				t.Fatalf("expected %q, got %q", tt.render, got)
			}
			if len(f.Name.Domain) != tt.domain || len(f.Name.Type) != tt.typ {
				t.Fatalf("expected domain/type parts %d/%d, got %d/%d",
					tt.domain, tt.typ, len(f.Name.Domain), len(f.Name.Type))
			}
		})
	}
}

func TestListResolution(t *testing.T) {
	tests := []struct {
		input     string
		opts      Options
		fieldKind ast.FieldKind
		valueKind ast.ValueKind
		elems     int
	}{
		{"foo: [{a: 1}, {a: 2}]", Options{}, ast.FieldMessage, ast.ValueMessageList, 2},
		{"foo: [<a: 1>]", Options{}, ast.FieldMessage, ast.ValueMessageList, 1},
		{"foo: [1, 2, 3]", Options{}, ast.FieldScalar, ast.ValueScalarList, 3},
		{`foo: ["a" "b", c, -d, -1.5]`, Options{}, ast.FieldScalar, ast.ValueScalarList, 4},
		{"foo: []", Options{}, ast.FieldScalar, ast.ValueScalarList, 0},
		{"foo: []", Options{EmptyList: EmptyListMessage}, ast.FieldMessage, ast.ValueMessageList, 0},
		{"foo [{a: 1}, {a: 2}]", Options{}, ast.FieldMessage, ast.ValueMessageList, 2},
		{"foo []", Options{}, ast.FieldMessage, ast.ValueMessageList, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := parseSource(t, tt.input, tt.opts)
			if p.bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %+v", p.bag.Items()[0])
			}
			f := p.field(t, p.root, 0)
			if f.Kind != tt.fieldKind {
				t.Fatalf("expected field kind %v, got %v", tt.fieldKind, f.Kind)
			}
			if got := p.kind(f.Value); got != tt.valueKind {
				t.Fatalf("expected value kind %v, got %v", tt.valueKind, got)
			}
			list, _ := p.b.Values.List(f.Value)
			if len(list.Elems) != tt.elems {
				t.Fatalf("expected %d elements, got %d", tt.elems, len(list.Elems))
			}
			for _, e := range list.Elems {
				k := p.kind(e)
				if tt.valueKind == ast.ValueMessageList && k != ast.ValueMessage {
					t.Fatalf("message list holds %v", k)
				}
				if tt.valueKind == ast.ValueScalarList && !k.IsScalar() {
					t.Fatalf("scalar list holds %v", k)
				}
			}
		})
	}
}

func TestStringConcatenation(t *testing.T) {
	p := mustParse(t, `s: "ab" 'cd'
		"\x65"`)
	f := p.field(t, p.root, 0)
	s, ok := p.b.Values.Str(f.Value)
	if !ok {
		t.Fatal("expected string value")
	}
	if s.String() != "abcde" {
		t.Fatalf("expected abcde, got %q", s.String())
	}
	if len(s.Fragments) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(s.Fragments))
	}
	if s.Fragments[1].Quote != '\'' || s.Fragments[2].Raw != `"\x65"` {
		t.Fatalf("fragments not preserved: %+v", s.Fragments)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		kind     ast.NumberKind
		negative bool
		uint     uint64
		float    float64
		single   bool
	}{
		{"n: 0", ast.NumDec, false, 0, 0, false},
		{"n: 017", ast.NumOct, false, 15, 15, false},
		{"n: 0x1F", ast.NumHex, false, 31, 31, false},
		{"n: 1.5", ast.NumFloat, false, 0, 1.5, false},
		{"n: 1e10", ast.NumFloat, false, 0, 1e10, false},
		{"n: 1.5f", ast.NumFloat, false, 0, 1.5, true},
		{"n: 1f", ast.NumFloat, false, 0, 1, true},
		{"n: -5", ast.NumDec, true, 5, -5, false},
		{"n: - 5", ast.NumDec, true, 5, -5, false},
		{"n: -.5", ast.NumFloat, true, 0, -0.5, false},
		{"n: 18446744073709551615", ast.NumDec, false, 18446744073709551615, 18446744073709551615, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := mustParse(t, tt.input)
			n, ok := p.b.Values.Number(p.field(t, p.root, 0).Value)
			if !ok {
				t.Fatal("expected number")
			}
			if n.Kind != tt.kind || n.Negative != tt.negative || n.Single != tt.single {
				t.Fatalf("unexpected number %+v", n)
			}
			if n.Kind.IsInt() && n.Uint != tt.uint {
				t.Fatalf("expected magnitude %d, got %d", tt.uint, n.Uint)
			}
			if n.Float != tt.float {
				t.Fatalf("expected %v, got %v", tt.float, n.Float)
			}
		})
	}
}

func TestDecimalOverflowIsKept(t *testing.T) {
	p := mustParse(t, "n: 18446744073709551616")
	n, _ := p.b.Values.Number(p.field(t, p.root, 0).Value)
	if !n.Overflow || n.Float != 18446744073709551616 {
		t.Fatalf("expected overflow with float approximation, got %+v", n)
	}
}

func TestHexOverflowIsError(t *testing.T) {
	expectParseError(t, "n: 0x10000000000000000", diag.LexBadNumber)
}

func TestFailures(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"foo: {a: 1", diag.SynUnmatchedDelimiter},
		{"foo: {a: 1>", diag.SynUnmatchedDelimiter},
		{"foo < a: 1 }", diag.SynUnmatchedDelimiter},
		{"foo: [1, 2", diag.SynUnmatchedDelimiter},
		{"foo: [{a: 1}", diag.SynUnmatchedDelimiter},
		{"[pkg.ext", diag.SynUnmatchedDelimiter},
		{`foo: "abc`, diag.LexUnterminatedString},
		{`foo: "\q"`, diag.LexInvalidEscape},
		{"foo: 0x", diag.LexBadNumber},
		{"foo: [1, 2,]", diag.SynTrailingComma},
		{"foo: [{a: 1},]", diag.SynTrailingComma},
		{"foo:", diag.SynUnexpectedEOF},
		{"foo", diag.SynUnexpectedEOF},
		{"foo: -", diag.SynUnexpectedEOF},
		{"[", diag.SynUnexpectedEOF},
		{"foo 1", diag.SynUnexpectedToken},
		{"foo: }", diag.SynUnexpectedToken},
		{"}", diag.SynUnexpectedToken},
		{"a: 1 >", diag.SynUnexpectedToken},
		{"foo: [1 2]", diag.SynUnexpectedToken},
		{"foo: [1, {a: 1}]", diag.SynUnexpectedToken},
		{"foo [1]", diag.SynUnexpectedToken},
		{"foo: - \"x\"", diag.SynUnexpectedToken},
		{"[a..b]: 1", diag.SynUnexpectedToken},
		{"[a/b/c]: 1", diag.SynUnexpectedToken},
		{"1: 2", diag.SynUnexpectedToken},
		{"a = 1", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectParseError(t, tt.input, tt.code)
		})
	}
}

func TestUnmatchedDelimiterNotesOpener(t *testing.T) {
	d := expectParseError(t, "foo: {a: 1", diag.SynUnmatchedDelimiter)
	if len(d.Notes) != 1 {
		t.Fatalf("expected a note at the opener, got %d notes", len(d.Notes))
	}
	if d.Notes[0].Span.Start != 5 || d.Notes[0].Span.End != 6 {
		t.Fatalf("note must point at '{', got %d..%d", d.Notes[0].Span.Start, d.Notes[0].Span.End)
	}
	if d.Primary.Start != 10 {
		t.Fatalf("primary must point at end of input, got %d", d.Primary.Start)
	}
}

func TestTrailingCommaPointsAtComma(t *testing.T) {
	d := expectParseError(t, "foo: [1, 2,]", diag.SynTrailingComma)
	if d.Primary.Start != 10 || d.Primary.End != 11 {
		t.Fatalf("expected comma span 10..11, got %d..%d", d.Primary.Start, d.Primary.End)
	}
}

func TestErrorAfterValueReportedOnce(t *testing.T) {
	// переполнение hex и следом лексическая ошибка: репортится только первая
	d := expectParseError(t, "n: 0x10000000000000000 0x", diag.LexBadNumber)
	if d.Primary.Start != 3 {
		t.Fatalf("expected the overflow to be reported first, got span start %d", d.Primary.Start)
	}
}

func TestParseFromTokenStream(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("s.textproto", []byte(`a { b: [1, 2] } c: "x"`)))
	bag := diag.NewBag(10)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	b := ast.NewBuilder(ast.Hints{})
	res := ParseFile(fs, token.NewStream(toks), b, Options{Reporter: diag.BagReporter{Bag: bag}})
	if !res.Root.IsValid() || bag.HasErrors() {
		t.Fatalf("expected successful parse, diagnostics: %d", bag.Len())
	}
	if n := len(b.Messages.Get(res.Root).Fields); n != 2 {
		t.Fatalf("expected 2 fields, got %d", n)
	}
	if res.Bag != bag {
		t.Fatal("result must expose the reporter's bag")
	}
}

func TestCommentsBetweenTokens(t *testing.T) {
	p := mustParse(t, `
# header
a: # after colon
  - # between sign and number
  3
b { # open
} # close
`)
	if n := len(p.fields(p.root)); n != 2 {
		t.Fatalf("expected 2 fields, got %d", n)
	}
	a := p.field(t, p.root, 0)
	if !slices.Equal(a.Comments, []string{"# header"}) {
		t.Fatalf("unexpected comments on a: %q", a.Comments)
	}
	want := []string{"# after colon", "# between sign and number"}
	if got := p.b.Values.Get(a.Value).Comments; !slices.Equal(got, want) {
		t.Fatalf("value comments: got %q, want %q", got, want)
	}
	mv, _ := p.b.Values.Message(p.field(t, p.root, 1).Value)
	if got := p.b.Messages.Get(mv.Message).Trailing; !slices.Equal(got, []string{"# open"}) {
		t.Fatalf("unexpected trailing comments in b: %q", got)
	}
	if got := p.b.Messages.Get(p.root).Trailing; !slices.Equal(got, []string{"# close"}) {
		t.Fatalf("unexpected document trailing comments: %q", got)
	}
}

func TestCommentsInsideLists(t *testing.T) {
	p := mustParse(t, "ports: [\n  # http\n  80,\n  # https\n  443\n  # end\n]\nl: [ # first\n {}, # second\n {} ]\nn # bare\n [ # empty\n ]\n")

	ports, _ := p.b.Values.List(p.field(t, p.root, 0).Value)
	if len(ports.Elems) != 2 {
		t.Fatalf("expected 2 ports, got %d", len(ports.Elems))
	}
	for i, want := range []string{"# http", "# https"} {
		if got := p.b.Values.Get(ports.Elems[i]).Comments; !slices.Equal(got, []string{want}) {
			t.Fatalf("port %d: got comments %q, want %q", i, got, want)
		}
	}
	if !slices.Equal(ports.Trailing, []string{"# end"}) {
		t.Fatalf("unexpected list trailing comments: %q", ports.Trailing)
	}

	msgs, _ := p.b.Values.List(p.field(t, p.root, 1).Value)
	for i, want := range []string{"# first", "# second"} {
		if got := p.b.Values.Get(msgs.Elems[i]).Comments; !slices.Equal(got, []string{want}) {
			t.Fatalf("message %d: got comments %q, want %q", i, got, want)
		}
	}

	n := p.field(t, p.root, 2)
	if got := p.b.Values.Get(n.Value).Comments; !slices.Equal(got, []string{"# bare"}) {
		t.Fatalf("unexpected comments before '[': %q", got)
	}
	empty, _ := p.b.Values.List(n.Value)
	if !slices.Equal(empty.Trailing, []string{"# empty"}) {
		t.Fatalf("unexpected trailing comments in empty list: %q", empty.Trailing)
	}
}

func TestCommentsAttachToFieldsAndClosers(t *testing.T) {
	p := mustParse(t, "# top\na: 1\nm {\n  # inner\n  b: 2\n  # last\n}\n# tail\n")
	a := p.field(t, p.root, 0)
	if len(a.Comments) != 1 || a.Comments[0] != "# top" {
		t.Fatalf("unexpected comments on a: %q", a.Comments)
	}
	m := p.field(t, p.root, 1)
	mv, _ := p.b.Values.Message(m.Value)
	inner := p.b.Messages.Get(mv.Message)
	if len(inner.Trailing) != 1 || inner.Trailing[0] != "# last" {
		t.Fatalf("unexpected trailing comments in m: %q", inner.Trailing)
	}
	if b := p.field(t, mv.Message, 0); len(b.Comments) != 1 {
		t.Fatalf("expected comment on b, got %q", b.Comments)
	}
	if tail := p.b.Messages.Get(p.root).Trailing; len(tail) != 1 || tail[0] != "# tail" {
		t.Fatalf("unexpected document trailing comments: %q", tail)
	}
}
