package ast

type NumberKind uint8

const (
	NumDec NumberKind = iota
	NumOct
	NumHex
	NumFloat
)

func (k NumberKind) String() string {
	switch k {
	case NumOct:
		return "oct"
	case NumHex:
		return "hex"
	case NumFloat:
		return "float"
	default:
		return "dec"
	}
}

// IsInt reports whether the literal was written as an integer.
func (k NumberKind) IsInt() bool { return k != NumFloat }

// Number is a decoded numeric literal. Raw keeps the literal without the
// sign. Float always holds the signed value (an approximation for large
// integers). For integers Uint holds the magnitude; a decimal literal that
// does not fit into uint64 sets Overflow. Single marks an f/F suffix.
type Number struct {
	Kind     NumberKind
	Negative bool
	Raw      string
	Uint     uint64
	Float    float64
	Single   bool
	Overflow bool
}

// Text renders the literal with its sign.
func (n Number) Text() string {
	if n.Negative {
		return "-" + n.Raw
	}
	return n.Raw
}
