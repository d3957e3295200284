package token

import "txtpb/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota // spaces, tabs, '\r', '\v', '\f'
	TriviaNewline
	TriviaComment // '#' до конца строки, без '\n'
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	default:
		return "Trivia(?)"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
