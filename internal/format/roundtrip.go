package format

import (
	"fmt"

	"txtpb/internal/ast"
	"txtpb/internal/diag"
	"txtpb/internal/lexer"
	"txtpb/internal/parser"
	"txtpb/internal/source"
)

// CheckRoundTrip renders the tree, parses the output again with the same
// list policy and compares both trees. Unless comments are dropped on
// purpose, every comment of the input must survive in the output. It returns
// the rendered bytes even when the check fails.
func CheckRoundTrip(b *ast.Builder, root ast.MessageID, policy parser.EmptyListPolicy, opt Options) ([]byte, error) {
	out, err := FormatMessage(b, root, opt)
	if err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<formatted>", out))
	bag := diag.NewBag(1)
	rep := diag.BagReporter{Bag: bag}
	rb := ast.NewBuilder(ast.HintsForSize(len(out)))
	res := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), rb, parser.Options{
		Reporter:  rep,
		EmptyList: policy,
	})
	if d := bag.FirstError(); d != nil {
		return out, fmt.Errorf("fmt-check: formatted output does not parse: %s: %s", d.Code.ID(), d.Message)
	}
	if d := Diff(b, root, rb, res.Root); d != "" {
		return out, fmt.Errorf("fmt-check: formatted output differs: %s", d)
	}
	if !opt.DropComments {
		if want, got := countComments(b, root), countComments(rb, res.Root); want != got {
			return out, fmt.Errorf("fmt-check: formatted output keeps %d of %d comments", got, want)
		}
	}
	return out, nil
}
