package txtpb

import (
	"bytes"
	"fmt"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/format"
	"txtpb/internal/lexer"
	"txtpb/internal/parser"
	"txtpb/internal/source"
)

// Document is a successfully parsed textproto document.
type Document struct {
	b      *ast.Builder
	root   ast.MessageID
	file   *source.File
	policy EmptyListPolicy
}

// Parse parses one textproto document. On failure it returns a *Error
// describing the first problem found and no tree. src is taken byte for byte;
// a leading UTF-8 BOM is an unexpected character here, use ParseFile for
// files saved with one.
func Parse(src []byte, opts ...Option) (*Document, error) {
	cfg := newOptions(opts)
	fs := source.NewFileSet()
	return parseLoaded(fs, fs.Get(fs.AddVirtual(cfg.name, bytes.Clone(src))), cfg)
}

// ParseFile reads and parses the file at path the same way the txtpb
// command does: a UTF-8 BOM is stripped and CRLF line endings are
// normalized. Errors carry the path; WithName has no effect here.
func ParseFile(path string, opts ...Option) (*Document, error) {
	cfg := newOptions(opts)
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("txtpb: %w", err)
	}
	return parseLoaded(fs, fs.Get(id), cfg)
}

func parseLoaded(fs *source.FileSet, file *source.File, cfg options) (*Document, error) {
	src := file.Content
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.HintsForSize(len(src)))
	res := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), b, parser.Options{
		Reporter:  rep,
		EmptyList: cfg.emptyList,
	})
	if d := bag.FirstError(); d != nil {
		return nil, newError(file, d)
	}
	return &Document{b: b, root: res.Root, file: file, policy: cfg.emptyList}, nil
}

// Name returns the name the document was parsed under.
func (d *Document) Name() string { return d.file.Path }

// Root returns the top-level message.
func (d *Document) Root() Message {
	return Message{doc: d, id: d.root}
}

// Format renders the document in canonical form: one field per line,
// two-space indentation, double-quoted strings, comments kept.
func (d *Document) Format() []byte {
	out, err := format.FormatMessage(d.b, d.root, format.Options{})
	if err != nil {
		// дерево Document всегда валидно
		panic(err)
	}
	return out
}

// Equal reports whether two documents have the same structure and values.
// Whitespace, comments, separators and string fragmentation are ignored.
func Equal(a, b *Document) bool {
	return format.Equal(a.b, a.root, b.b, b.root)
}

func (d *Document) pos(off uint32) Pos {
	lc := d.file.Position(off)
	return Pos{Offset: int(off), Line: int(lc.Line), Column: int(lc.Col)}
}
