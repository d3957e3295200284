package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; the lexer reported why.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier: [A-Za-z_][A-Za-z0-9_]*.
	Ident

	// SingleString is a '...' string literal.
	SingleString
	// DoubleString is a "..." string literal.
	DoubleString

	// DecInt is 0 or [1-9][0-9]*.
	DecInt
	// OctInt is 0[0-7]+.
	OctInt
	// HexInt is 0[xX][0-9A-Fa-f]+.
	HexInt
	// Float is any floating point literal, with optional f/F suffix.
	Float

	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Lt        // <
	Gt        // >
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Slash     // /
	Dot       // .
	Minus     // -
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	SingleString: "SingleString",
	DoubleString: "DoubleString",
	DecInt:       "DecInt",
	OctInt:       "OctInt",
	HexInt:       "HexInt",
	Float:        "Float",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Lt:           "Lt",
	Gt:           "Gt",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	Slash:        "Slash",
	Dot:          "Dot",
	Minus:        "Minus",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

var kindSpelling = map[Kind]string{
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Lt:        "<",
	Gt:        ">",
	Colon:     ":",
	Semicolon: ";",
	Comma:     ",",
	Slash:     "/",
	Dot:       ".",
	Minus:     "-",
}

// Describe returns a short human name for diagnostics: "'{'", "identifier", "end of input".
func (k Kind) Describe() string {
	if s, ok := kindSpelling[k]; ok {
		return "'" + s + "'"
	}
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case SingleString, DoubleString:
		return "string"
	case DecInt, OctInt, HexInt:
		return "integer"
	case Float:
		return "float"
	default:
		return "invalid token"
	}
}

// IsEOF reports whether k is the end-of-input marker.
func (k Kind) IsEOF() bool { return k == EOF }

// IsString reports whether k is either string literal kind.
func (k Kind) IsString() bool { return k == SingleString || k == DoubleString }

// IsNumber reports whether k is a numeric literal kind.
func (k Kind) IsNumber() bool {
	switch k {
	case DecInt, OctInt, HexInt, Float:
		return true
	default:
		return false
	}
}

// IsOpen reports whether k opens a message value ('{' or '<').
func (k Kind) IsOpen() bool { return k == LBrace || k == Lt }

// IsClose reports whether k closes a message value ('}' or '>').
func (k Kind) IsClose() bool { return k == RBrace || k == Gt }

// Closer returns the closing kind matching an opener, or Invalid.
func (k Kind) Closer() Kind {
	switch k {
	case LBrace:
		return RBrace
	case Lt:
		return Gt
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}
