package ast

import (
	"txtpb/internal/source"
)

// Message is an ordered sequence of fields. Order is source order and is
// never changed after parsing; duplicate names are kept as separate fields.
type Message struct {
	Fields []FieldID
	Span   source.Span
	// комментарии перед закрывающей скобкой (или концом документа)
	Trailing []string
}

type Messages struct {
	Arena *Arena[Message]
}

func NewMessages(capHint uint) *Messages {
	return &Messages{Arena: NewArena[Message](capHint)}
}

func (m *Messages) New(sp source.Span) MessageID {
	return MessageID(m.Arena.Allocate(Message{Span: sp}))
}

func (m *Messages) Get(id MessageID) *Message {
	return m.Arena.Get(uint32(id))
}
