// Package diagfmt renders diagnostics, token streams and syntax trees for
// the command line: pretty text (optionally coloured) and JSON.
package diagfmt
