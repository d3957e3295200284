// Package diag defines the diagnostic model shared by the lexer, the parser
// and the tooling around them.
//
// # Purpose
//
//   - Provide deterministic, serialisable records of what went wrong and where.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does no formatting of source context, IO or CLI work. Rendering
// lives in internal/diagfmt; the public txtpb package converts the first error
// into a *txtpb.Error.
//
// # Data model
//
// Diagnostic carries a Severity, a numeric Code (see codes.go: LEX1xxx for the
// lexer, SYN2xxx for the parser, IO4xxx for file loading, OBS6xxx for timing
// reports), a short Message, the Primary span and optional Notes. A note adds
// new context ("'{' opened here"), it never repeats the message.
//
// # Emitting diagnostics
//
// Producers hold a Reporter. ReportError/ReportWarning return a ReportBuilder
// so a note can be chained before Emit. BagReporter stores everything in a Bag,
// which keeps insertion order until Sort is called.
package diag
