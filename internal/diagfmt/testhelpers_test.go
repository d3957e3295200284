package diagfmt

import (
	"testing"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/lexer"
	"txtpb/internal/parser"
	"txtpb/internal/source"
)

func parseForTest(t *testing.T, name, input string) (*source.FileSet, *ast.Builder, ast.MessageID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(input)))
	bag := diag.NewBag(10)
	rep := diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep})
	return fs, b, res.Root, bag
}
