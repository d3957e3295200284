package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1004
	LexInvalidEscape      Code = 1006

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnmatchedDelimiter Code = 2002
	SynTrailingComma      Code = 2003
	SynUnexpectedEOF      Code = 2004

	// IO
	IOLoadFileError Code = 4001

	// Наблюдаемость
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexBadNumber:          "Invalid numeric literal",
	LexInvalidEscape:      "Invalid escape sequence",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnmatchedDelimiter: "Unmatched delimiter",
	SynTrailingComma:      "Trailing comma not allowed",
	SynUnexpectedEOF:      "Unexpected end of input",
	IOLoadFileError:       "Failed to load file",
	ObsTimings:            "Pipeline timings",
}

// ID returns the stable short form used in output and tests, e.g. "SYN2002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether the code belongs to the lexer range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether the code belongs to the parser range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }
