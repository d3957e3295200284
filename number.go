package txtpb

import (
	"errors"
	"math"

	"txtpb/internal/ast"
)

var (
	// ErrNotInteger is returned when an integer accessor is used on a float literal.
	ErrNotInteger = errors.New("txtpb: number is not an integer literal")
	// ErrOutOfRange is returned when a literal does not fit the requested type.
	ErrOutOfRange = errors.New("txtpb: number out of range")
)

// Number is a numeric literal together with its sign.
type Number struct {
	n ast.Number
}

func (n Number) Kind() NumberKind { return n.n.Kind }

func (n Number) Negative() bool { return n.n.Negative }

// Single reports an f/F suffix.
func (n Number) Single() bool { return n.n.Single }

// String returns the literal as written, with its sign.
func (n Number) String() string { return n.n.Text() }

// Int64 returns the value of an integer literal.
func (n Number) Int64() (int64, error) {
	if !n.n.Kind.IsInt() {
		return 0, ErrNotInteger
	}
	if n.n.Overflow {
		return 0, ErrOutOfRange
	}
	if n.n.Negative {
		switch {
		case n.n.Uint > 1<<63:
			return 0, ErrOutOfRange
		case n.n.Uint == 1<<63:
			return math.MinInt64, nil
		}
		return -int64(n.n.Uint), nil
	}
	if n.n.Uint > math.MaxInt64 {
		return 0, ErrOutOfRange
	}
	return int64(n.n.Uint), nil
}

// Uint64 returns the value of a non-negative integer literal. "-0" is 0.
func (n Number) Uint64() (uint64, error) {
	if !n.n.Kind.IsInt() {
		return 0, ErrNotInteger
	}
	if n.n.Overflow || (n.n.Negative && n.n.Uint != 0) {
		return 0, ErrOutOfRange
	}
	return n.n.Uint, nil
}

// Float64 returns the value as float64; integers are converted, large
// ones approximately.
func (n Number) Float64() float64 { return n.n.Float }
