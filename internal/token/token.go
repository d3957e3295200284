package token

import (
	"txtpb/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Value   string // decoded contents, only for string kinds
	Leading []Trivia
}

// IsLiteral reports whether the token is a string or numeric literal.
func (t Token) IsLiteral() bool {
	return t.Kind.IsString() || t.Kind.IsNumber()
}

// IsPunct reports whether the token is one of the punctuation kinds.
func (t Token) IsPunct() bool {
	return t.Kind >= LBrace && t.Kind <= Minus
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
