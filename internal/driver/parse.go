package driver

import (
	"fmt"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/lexer"
	"txtpb/internal/observ"
	"txtpb/internal/parser"
	"txtpb/internal/source"
)

// ParseOptions are shared by every command that builds a tree.
type ParseOptions struct {
	MaxDiagnostics int
	EmptyList      parser.EmptyListPolicy
	Timings        bool
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	// Root is ast.NoMessageID when Bag holds an error.
	Root   ast.MessageID
	Bag    *diag.Bag
	Timing *observ.Report
}

// OK reports whether the document parsed without errors.
func (r *ParseResult) OK() bool {
	return r.Root.IsValid() && !r.Bag.HasErrors()
}

func Parse(path string, opts ParseOptions) (*ParseResult, error) {
	timer := newTimer(opts.Timings)
	fs := source.NewFileSet()

	done := track(timer, "load")
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	done(fmt.Sprintf("%d bytes", len(file.Content)))

	return parseLoaded(fs, file, opts, timer), nil
}

// ParseSource parses in-memory bytes registered under name.
func ParseSource(name string, src []byte, opts ParseOptions) *ParseResult {
	timer := newTimer(opts.Timings)
	fs := source.NewFileSet()
	return parseLoaded(fs, fs.Get(fs.AddVirtual(name, src)), opts, timer)
}

func parseLoaded(fs *source.FileSet, file *source.File, opts ParseOptions, timer *observ.Timer) *ParseResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	done := track(timer, "parse")
	builder := ast.NewBuilder(ast.HintsForSize(len(file.Content)))
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  rep,
		EmptyList: opts.EmptyList,
	})
	done(fmt.Sprintf("%d fields", builder.Fields.Arena.Len()))

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Root:    res.Root,
		Bag:     bag,
		Timing:  report(timer),
	}
}
