package ast

import (
	"strings"

	"txtpb/internal/source"
)

type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueMessage
	ValueMessageList
	ValueString
	ValueIdent
	ValueSignedIdent
	ValueNumber
	ValueScalarList
)

var valueKindNames = [...]string{
	ValueInvalid:     "invalid",
	ValueMessage:     "message",
	ValueMessageList: "message_list",
	ValueString:      "string",
	ValueIdent:       "ident",
	ValueSignedIdent: "signed_ident",
	ValueNumber:      "number",
	ValueScalarList:  "scalar_list",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "invalid"
}

// IsScalar reports whether a value of this kind may appear inside a scalar list.
func (k ValueKind) IsScalar() bool {
	switch k {
	case ValueString, ValueIdent, ValueSignedIdent, ValueNumber:
		return true
	default:
		return false
	}
}

type Value struct {
	Kind     ValueKind
	Span     source.Span
	Payload  PayloadID
	// Comments are the '#' lines before the value and between its own tokens
	// (string fragments, '-' and its operand, a preceding list comma).
	Comments []string
}

// Delim is the bracket pair a message value was written with.
type Delim uint8

const (
	DelimCurly Delim = iota
	DelimAngle
)

func (d Delim) Open() string {
	if d == DelimAngle {
		return "<"
	}
	return "{"
}

func (d Delim) Close() string {
	if d == DelimAngle {
		return ">"
	}
	return "}"
}

type MessageValue struct {
	Delim   Delim
	Message MessageID
}

// List is shared by scalar lists and message lists.
type List struct {
	Elems    []ValueID
	Trailing []string // комментарии перед ']'
}

// StringFragment is one quoted literal of a (possibly concatenated) string.
type StringFragment struct {
	Quote   byte   // '\'' или '"'
	Raw     string // текст с кавычками как в исходнике
	Decoded string // байты после раскрытия escape-последовательностей
}

type StringValue struct {
	Fragments []StringFragment
}

// Bytes concatenates the decoded fragments.
func (s *StringValue) Bytes() []byte {
	return []byte(s.String())
}

func (s *StringValue) String() string {
	if len(s.Fragments) == 1 {
		return s.Fragments[0].Decoded
	}
	var sb strings.Builder
	for _, f := range s.Fragments {
		sb.WriteString(f.Decoded)
	}
	return sb.String()
}

// IdentValue is a bare identifier value; for ValueSignedIdent the name is
// stored without the leading '-'.
type IdentValue struct {
	Name source.StringID
}

// Values manages allocation of values.
type Values struct {
	Arena    *Arena[Value]
	Messages *Arena[MessageValue]
	Lists    *Arena[List]
	Strings  *Arena[StringValue]
	Idents   *Arena[IdentValue]
	Numbers  *Arena[Number]
}

func NewValues(capHint uint) *Values {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Values{
		Arena:    NewArena[Value](capHint),
		Messages: NewArena[MessageValue](capHint / 4),
		Lists:    NewArena[List](capHint / 8),
		Strings:  NewArena[StringValue](capHint / 2),
		Idents:   NewArena[IdentValue](capHint / 4),
		Numbers:  NewArena[Number](capHint / 2),
	}
}

func (v *Values) new(kind ValueKind, sp source.Span, payload PayloadID) ValueID {
	return ValueID(v.Arena.Allocate(Value{
		Kind:    kind,
		Span:    sp,
		Payload: payload,
	}))
}

func (v *Values) Get(id ValueID) *Value {
	return v.Arena.Get(uint32(id))
}

func (v *Values) NewMessage(sp source.Span, delim Delim, msg MessageID) ValueID {
	payload := v.Messages.Allocate(MessageValue{Delim: delim, Message: msg})
	return v.new(ValueMessage, sp, PayloadID(payload))
}

func (v *Values) NewMessageList(sp source.Span, elems []ValueID) ValueID {
	payload := v.Lists.Allocate(List{Elems: elems})
	return v.new(ValueMessageList, sp, PayloadID(payload))
}

func (v *Values) NewScalarList(sp source.Span, elems []ValueID) ValueID {
	payload := v.Lists.Allocate(List{Elems: elems})
	return v.new(ValueScalarList, sp, PayloadID(payload))
}

func (v *Values) NewString(sp source.Span, fragments []StringFragment) ValueID {
	payload := v.Strings.Allocate(StringValue{Fragments: fragments})
	return v.new(ValueString, sp, PayloadID(payload))
}

func (v *Values) NewIdent(sp source.Span, name source.StringID) ValueID {
	payload := v.Idents.Allocate(IdentValue{Name: name})
	return v.new(ValueIdent, sp, PayloadID(payload))
}

func (v *Values) NewSignedIdent(sp source.Span, name source.StringID) ValueID {
	payload := v.Idents.Allocate(IdentValue{Name: name})
	return v.new(ValueSignedIdent, sp, PayloadID(payload))
}

func (v *Values) NewNumber(sp source.Span, num Number) ValueID {
	payload := v.Numbers.Allocate(num)
	return v.new(ValueNumber, sp, PayloadID(payload))
}

// SetComments attaches comment lines to an already allocated value.
func (v *Values) SetComments(id ValueID, lines []string) {
	if val := v.Get(id); val != nil {
		val.Comments = lines
	}
}

func (v *Values) Message(id ValueID) (*MessageValue, bool) {
	val := v.Get(id)
	if val == nil || val.Kind != ValueMessage {
		return nil, false
	}
	return v.Messages.Get(uint32(val.Payload)), true
}

// List returns the elements of a scalar list or a message list.
func (v *Values) List(id ValueID) (*List, bool) {
	val := v.Get(id)
	if val == nil || (val.Kind != ValueMessageList && val.Kind != ValueScalarList) {
		return nil, false
	}
	return v.Lists.Get(uint32(val.Payload)), true
}

func (v *Values) Str(id ValueID) (*StringValue, bool) {
	val := v.Get(id)
	if val == nil || val.Kind != ValueString {
		return nil, false
	}
	return v.Strings.Get(uint32(val.Payload)), true
}

// Ident returns the identifier of a ValueIdent or ValueSignedIdent.
func (v *Values) Ident(id ValueID) (*IdentValue, bool) {
	val := v.Get(id)
	if val == nil || (val.Kind != ValueIdent && val.Kind != ValueSignedIdent) {
		return nil, false
	}
	return v.Idents.Get(uint32(val.Payload)), true
}

func (v *Values) Number(id ValueID) (*Number, bool) {
	val := v.Get(id)
	if val == nil || val.Kind != ValueNumber {
		return nil, false
	}
	return v.Numbers.Get(uint32(val.Payload)), true
}
