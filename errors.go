package txtpb

import (
	"fmt"
	"strings"

	"txtpb/internal/diag"
	"txtpb/internal/source"
)

// ErrorKind classifies parse failures. Each kind is itself an error, so
// errors.Is(err, txtpb.ErrTrailingComma) works on any error returned by Parse.
type ErrorKind uint8

const (
	ErrUnexpectedChar ErrorKind = iota + 1
	ErrUnterminatedString
	ErrInvalidEscape
	ErrInvalidNumber
	ErrUnexpectedToken
	ErrUnmatchedDelimiter
	ErrTrailingComma
	ErrUnexpectedEOF
)

var errorKindNames = [...]string{
	ErrUnexpectedChar:     "unexpected character",
	ErrUnterminatedString: "unterminated string",
	ErrInvalidEscape:      "invalid escape",
	ErrInvalidNumber:      "invalid numeric literal",
	ErrUnexpectedToken:    "unexpected token",
	ErrUnmatchedDelimiter: "unmatched delimiter",
	ErrTrailingComma:      "trailing comma not allowed",
	ErrUnexpectedEOF:      "unexpected end of input",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

func (k ErrorKind) Error() string { return "txtpb: " + k.String() }

// IsLexical reports whether the failure was found while tokenizing.
func (k ErrorKind) IsLexical() bool { return k >= ErrUnexpectedChar && k <= ErrInvalidNumber }

var kindByCode = map[diag.Code]ErrorKind{
	diag.LexUnknownChar:        ErrUnexpectedChar,
	diag.LexUnterminatedString: ErrUnterminatedString,
	diag.LexInvalidEscape:      ErrInvalidEscape,
	diag.LexBadNumber:          ErrInvalidNumber,
	diag.SynUnexpectedToken:    ErrUnexpectedToken,
	diag.SynUnmatchedDelimiter: ErrUnmatchedDelimiter,
	diag.SynTrailingComma:      ErrTrailingComma,
	diag.SynUnexpectedEOF:      ErrUnexpectedEOF,
}

// Pos is a location in the source. Line and Column are 1-based; Column
// counts bytes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Error is the error returned by Parse.
type Error struct {
	Kind ErrorKind
	Code string // e.g. "SYN2002"
	File string
	Pos  Pos
	Msg  string
	// Expected and Found are set for unexpected-token style errors.
	Expected string
	Found    string
	// OpenedAt points at the opening bracket of an unmatched delimiter.
	OpenedAt *Pos
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Is matches an ErrorKind target.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func newError(file *source.File, d *diag.Diagnostic) *Error {
	at := func(sp source.Span) Pos {
		lc := file.Position(sp.Start)
		return Pos{Offset: int(sp.Start), Line: int(lc.Line), Column: int(lc.Col)}
	}
	e := &Error{
		Kind: kindByCode[d.Code],
		Code: d.Code.ID(),
		File: file.Path,
		Pos:  at(d.Primary),
		Msg:  d.Message,
	}
	e.Expected, e.Found = splitExpectation(d.Message)
	if d.Code == diag.SynUnmatchedDelimiter && len(d.Notes) > 0 {
		p := at(d.Notes[0].Span)
		e.OpenedAt = &p
	}
	return e
}

// splitExpectation разбирает сообщения вида "expected X, found Y".
func splitExpectation(msg string) (expected, found string) {
	rest, ok := strings.CutPrefix(msg, "expected ")
	if !ok {
		if _, after, ok := strings.Cut(msg, ": expected "); ok {
			rest = after
		} else {
			return "", ""
		}
	}
	expected, found, ok = strings.Cut(rest, ", found ")
	if !ok {
		if e, _, ok := strings.Cut(rest, " before "); ok {
			return e, "end of input"
		}
		return "", ""
	}
	return expected, found
}
