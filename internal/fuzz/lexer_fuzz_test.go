package fuzztests

import (
	"testing"

	"txtpb/internal/diag"
	"txtpb/internal/lexer"
	"txtpb/internal/source"
	"txtpb/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.textproto", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		var prevEnd uint32
		// каждый токен съедает хотя бы байт, так что больше len+1 шагов быть не может
		for i, n := 0, len(input)+2; i < n; i++ {
			tok := lx.Next()
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start || int(tok.Span.End) > len(input) {
				t.Fatalf("bad span %v after %d (len %d)", tok.Span, prevEnd, len(input))
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.Invalid && !bag.HasErrors() {
				t.Fatalf("invalid token %q without a diagnostic", tok.Text)
			}
			if tok.Kind == token.EOF {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF in %d steps", len(input)+2)
	})
}
