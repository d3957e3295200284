package diag

import (
	"fmt"
	"sort"
	"strings"

	"txtpb/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics one per line:
//
//	path:line:col: SEVERITY CODE: message
//
// sorted by path, position and code. Notes follow their diagnostic indented by
// two spaces when includeNotes is set. Returns "" for an empty input.
func FormatShortDiagnostics(diags []*Diagnostic, fs *source.FileSet, includeNotes bool) string {
	type entry struct {
		head  shortDiagnostic
		notes []shortDiagnostic
	}
	entries := make([]entry, 0, len(diags))
	for _, d := range diags {
		if d == nil {
			continue
		}
		e := entry{head: toShort(fs, d.Primary, d.Severity.String(), d.Code.ID(), d.Message)}
		if includeNotes {
			for _, n := range d.Notes {
				e.notes = append(e.notes, toShort(fs, n.Span, "note", "", n.Msg))
			}
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].head, entries[j].head
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Code < b.Code
	})

	var sb strings.Builder
	for _, e := range entries {
		writeShort(&sb, e.head, "")
		for _, n := range e.notes {
			writeShort(&sb, n, "  ")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func toShort(fs *source.FileSet, sp source.Span, sev, code, msg string) shortDiagnostic {
	out := shortDiagnostic{Severity: sev, Code: code, Message: msg}
	if fs != nil && int(sp.File) < fs.Len() {
		out.Path = fs.Get(sp.File).Path
		start, _ := fs.Resolve(sp)
		out.Line, out.Column = start.Line, start.Col
	}
	return out
}

func writeShort(sb *strings.Builder, d shortDiagnostic, indent string) {
	sb.WriteString(indent)
	fmt.Fprintf(sb, "%s:%d:%d: %s", d.Path, d.Line, d.Column, d.Severity)
	if d.Code != "" {
		sb.WriteString(" " + d.Code)
	}
	sb.WriteString(": " + d.Message + "\n")
}
