package ast

import (
	"txtpb/internal/source"
)

type FieldKind uint8

const (
	// FieldScalar holds a scalar value or a scalar list.
	FieldScalar FieldKind = iota
	// FieldMessage holds a message value or a list of message values.
	FieldMessage
)

func (k FieldKind) String() string {
	if k == FieldMessage {
		return "message"
	}
	return "scalar"
}

// Separator is the optional token that ended a field.
type Separator uint8

const (
	SepNone Separator = iota
	SepSemicolon
	SepComma
)

func (s Separator) String() string {
	switch s {
	case SepSemicolon:
		return ";"
	case SepComma:
		return ","
	default:
		return ""
	}
}

type Field struct {
	Kind     FieldKind
	Name     FieldName
	Value    ValueID
	Sep      Separator
	HasColon bool
	Span     source.Span
	// Comments are the '#' lines before the field name, inside it and before
	// the ':'.
	Comments []string
}

type Fields struct {
	Arena *Arena[Field]
}

func NewFields(capHint uint) *Fields {
	return &Fields{Arena: NewArena[Field](capHint)}
}

func (f *Fields) New(field Field) FieldID {
	return FieldID(f.Arena.Allocate(field))
}

func (f *Fields) Get(id FieldID) *Field {
	return f.Arena.Get(uint32(id))
}
