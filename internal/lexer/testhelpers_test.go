package lexer

import (
	"testing"

	"txtpb/internal/diag"
	"txtpb/internal/source"
	"txtpb/internal/token"
)

func makeTestLexer(input string) (*Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.textproto", []byte(input))
	file := fs.Get(fileID)
	bag := diag.NewBag(100)
	return New(file, Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

func collectAllTokens(lx *Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			return toks
		}
	}
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	toks := collectAllTokens(lx)

	if len(toks) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %d: %v", input, len(expected), len(toks), kinds(toks))
	}
	for i, tok := range toks {
		if tok.Kind != expected[i] {
			t.Errorf("input %q: token %d: expected %v, got %v (%q)", input, i, expected[i], tok.Kind, tok.Text)
		}
	}
	if bag.HasErrors() {
		t.Errorf("input %q: unexpected diagnostics: %+v", input, bag.Items())
	}
}

func expectLexError(t *testing.T, input string, code diag.Code) token.Token {
	t.Helper()
	lx, bag := makeTestLexer(input)
	toks := collectAllTokens(lx)
	last := toks[len(toks)-1]
	if last.Kind != token.Invalid {
		t.Fatalf("input %q: expected Invalid token, got %v", input, kinds(toks))
	}
	if bag.Len() != 1 {
		t.Fatalf("input %q: expected 1 diagnostic, got %d", input, bag.Len())
	}
	if got := bag.Items()[0].Code; got != code {
		t.Fatalf("input %q: expected %s, got %s", input, code.ID(), got.ID())
	}
	return last
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}
