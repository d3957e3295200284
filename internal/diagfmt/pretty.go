package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"txtpb/internal/diag"
	"txtpb/internal/source"
)

type palette struct {
	err, warn, info, code, caret, note, gutter *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		gutter: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.note, p.gutter} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			file.FormatPath(opts.PathMode.mode(), fs.BaseDir()),
			start.Line, start.Col,
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		)
		writeSnippet(w, fs, d.Primary, opts.Context, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s:%d:%d: %s %s\n",
				nf.FormatPath(opts.PathMode.mode(), fs.BaseDir()),
				ns.Line, ns.Col, pal.note.Sprint("note:"), n.Msg)
			writeSnippet(w, fs, n.Span, 0, pal)
		}
	}
}

// writeSnippet печатает строку(и) исходника и подчёркивание под span.
// Многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int8, pal palette) {
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	first := start.Line
	if c := uint32(max(context, 0)); first > c {
		first -= c
	} else {
		first = 1
	}
	last := min(start.Line+uint32(max(context, 0)), uint32(len(file.LineIdx)+1)) // #nosec G115
	width := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := file.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), expandTabs(text))
		if ln != start.Line {
			continue
		}

		lineLen := uint32(len(text))
		from := min(start.Col-1, lineLen)
		to := lineLen + 1 // EOF или конец строки: одна позиция после текста
		if end.Line == start.Line {
			to = max(end.Col-1, from+1)
		}
		prefix := expandTabs(text[:from])
		marker := "^" + strings.Repeat("~", int(to-from)-1)
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gutter.Sprintf("%*s |", width, ""),
			strings.Repeat(" ", len(prefix)),
			pal.caret.Sprint(marker))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
