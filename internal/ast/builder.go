package ast

import (
	"txtpb/internal/source"
)

type Hints struct{ Messages, Fields, Values uint }

// Builder owns every node of one parsed document. It is not safe for
// concurrent mutation; a finished tree may be read from many goroutines.
type Builder struct {
	Messages *Messages
	Fields   *Fields
	Values   *Values
	Strings  *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Messages == 0 {
		hints.Messages = 1 << 4
	}
	if hints.Fields == 0 {
		hints.Fields = 1 << 6
	}
	if hints.Values == 0 {
		hints.Values = 1 << 6
	}
	return &Builder{
		Messages: NewMessages(hints.Messages),
		Fields:   NewFields(hints.Fields),
		Values:   NewValues(hints.Values),
		Strings:  source.NewInterner(),
	}
}

// HintsForSize estimates arena capacities from the source length.
func HintsForSize(n int) Hints {
	fields := uint(n/8) + 1
	return Hints{Messages: fields/4 + 1, Fields: fields, Values: fields}
}

func (b *Builder) NewMessage(sp source.Span) MessageID {
	return b.Messages.New(sp)
}

func (b *Builder) PushField(msg MessageID, field FieldID) {
	m := b.Messages.Get(msg)
	m.Fields = append(m.Fields, field)
}

// Ident is a shorthand for looking up an interned identifier.
func (b *Builder) Ident(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}
