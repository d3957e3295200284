package parser

import (
	"testing"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/lexer"
	"txtpb/internal/source"
)

type parsed struct {
	b    *ast.Builder
	root ast.MessageID
	bag  *diag.Bag
}

func parseSource(t *testing.T, input string, opts Options) parsed {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.textproto", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	opts.Reporter = diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	b := ast.NewBuilder(ast.Hints{})
	res := ParseFile(fs, lx, b, opts)
	return parsed{b: b, root: res.Root, bag: res.Bag}
}

func mustParse(t *testing.T, input string) parsed {
	t.Helper()
	p := parseSource(t, input, Options{})
	if p.bag.HasErrors() {
		t.Fatalf("input %q: unexpected diagnostics: %+v", input, p.bag.Items()[0])
	}
	if !p.root.IsValid() {
		t.Fatalf("input %q: no root", input)
	}
	return p
}

func expectParseError(t *testing.T, input string, code diag.Code) *diag.Diagnostic {
	t.Helper()
	p := parseSource(t, input, Options{})
	if p.root.IsValid() {
		t.Fatalf("input %q: expected failure, got a tree", input)
	}
	if p.bag.Len() != 1 {
		t.Fatalf("input %q: expected exactly 1 diagnostic, got %d", input, p.bag.Len())
	}
	d := p.bag.Items()[0]
	if d.Code != code {
		t.Fatalf("input %q: expected %s, got %s (%s)", input, code.ID(), d.Code.ID(), d.Message)
	}
	return d
}

func (p parsed) fields(msg ast.MessageID) []*ast.Field {
	var out []*ast.Field
	for _, id := range p.b.Messages.Get(msg).Fields {
		out = append(out, p.b.Fields.Get(id))
	}
	return out
}

func (p parsed) field(t *testing.T, msg ast.MessageID, i int) *ast.Field {
	t.Helper()
	fs := p.fields(msg)
	if i >= len(fs) {
		t.Fatalf("expected at least %d fields, got %d", i+1, len(fs))
	}
	return fs[i]
}

func (p parsed) name(f *ast.Field) string {
	return f.Name.Render(p.b.Strings)
}

func (p parsed) kind(id ast.ValueID) ast.ValueKind {
	return p.b.Values.Get(id).Kind
}
