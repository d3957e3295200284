// Package txtpb parses the Protocol Buffers text format ("textproto") into a
// schema-agnostic syntax tree.
//
// The parser resolves the ambiguities of the grammar without a schema:
// whether `name: [...]` holds scalars or messages, optional field
// separators, adjacent string literal concatenation and the classification
// of numeric literals. Field names are never validated.
//
//	doc, err := txtpb.Parse(src)
//	if err != nil {
//		var perr *txtpb.Error
//		if errors.As(err, &perr) { ... perr.Pos.Line ... }
//	}
//	for _, f := range doc.Root().Fields() {
//		fmt.Println(f.Name(), f.Value().Kind())
//	}
//
// Parsing is synchronous and allocates a fresh tree per call, so independent
// documents can be parsed concurrently. A Document is immutable.
package txtpb
