// Package ast holds the syntax tree of a textproto document.
//
// Nodes live in per-kind arenas owned by a Builder and are addressed by
// typed 1-based IDs. Values are a Kind+Payload tagged union: the payload ID
// indexes the arena matching the kind.
package ast
