package format

import (
	"testing"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/lexer"
	"txtpb/internal/parser"
	"txtpb/internal/source"
)

func parseForTest(t *testing.T, input string, policy parser.EmptyListPolicy) (*ast.Builder, ast.MessageID) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.textproto", []byte(input)))
	bag := diag.NewBag(10)
	rep := diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), b, parser.Options{
		Reporter:  rep,
		EmptyList: policy,
	})
	if bag.HasErrors() {
		t.Fatalf("input %q: %s", input, bag.Items()[0].Message)
	}
	return b, res.Root
}

func formatForTest(t *testing.T, input string, opt Options) string {
	t.Helper()
	b, root := parseForTest(t, input, parser.EmptyListScalar)
	out, err := FormatMessage(b, root, opt)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	return string(out)
}
