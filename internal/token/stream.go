package token

// Stream replays an already lexed token slice with the same Next/Peek
// contract as the lexer. Past the end it keeps returning the final token,
// which is EOF for any slice produced by lexer.Tokenize.
type Stream struct {
	toks []Token
	pos  int
}

// NewStream wraps toks; an empty slice behaves as an immediate EOF.
func NewStream(toks []Token) *Stream {
	if len(toks) == 0 {
		toks = []Token{{Kind: EOF}}
	}
	return &Stream{toks: toks}
}

func (s *Stream) Next() Token {
	tok := s.Peek()
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return tok
}

func (s *Stream) Peek() Token {
	return s.toks[s.pos]
}
