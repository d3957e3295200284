package ast

import (
	"strings"

	"txtpb/internal/source"
)

type NameKind uint8

const (
	// NameIdent: foo
	NameIdent NameKind = iota
	// NameExtension: [pkg.ext]
	NameExtension
	// NameAny: [type.googleapis.com/pkg.Msg]
	NameAny
)

func (k NameKind) String() string {
	switch k {
	case NameExtension:
		return "extension"
	case NameAny:
		return "any"
	default:
		return "ident"
	}
}

// FieldName identifies a field. Ident is set for NameIdent; Type holds the
// dotted path for NameExtension and NameAny; Domain is set only for NameAny.
type FieldName struct {
	Kind   NameKind
	Ident  source.StringID
	Domain []source.StringID
	Type   []source.StringID
	Span   source.Span
}

// Render renders the name in canonical source form.
func (n FieldName) Render(strs *source.Interner) string {
	switch n.Kind {
	case NameIdent:
		s, _ := strs.Lookup(n.Ident)
		return s
	case NameExtension:
		return "[" + joinPath(strs, n.Type) + "]"
	default:
		return "[" + joinPath(strs, n.Domain) + "/" + joinPath(strs, n.Type) + "]"
	}
}

// Path returns the parts of a dotted path as strings.
func Path(strs *source.Interner, ids []source.StringID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i], _ = strs.Lookup(id)
	}
	return out
}

func joinPath(strs *source.Interner, ids []source.StringID) string {
	return strings.Join(Path(strs, ids), ".")
}
