package ast

type (
	MessageID uint32
	FieldID   uint32
	ValueID   uint32
	// индекс в per-kind арене значения
	PayloadID uint32
)

const (
	NoMessageID MessageID = 0
	NoFieldID   FieldID   = 0
	NoValueID   ValueID   = 0
	NoPayloadID PayloadID = 0
)

func (id MessageID) IsValid() bool { return id != NoMessageID }
func (id FieldID) IsValid() bool   { return id != NoFieldID }
func (id ValueID) IsValid() bool   { return id != NoValueID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
