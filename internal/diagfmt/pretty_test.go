package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"txtpb/internal/diag"
	"txtpb/internal/source"
)

func TestPrettyUnterminatedString(t *testing.T) {
	fs, _, _, bag := parseForTest(t, "test.textproto", "a: 1\nfoo: \"abc\n")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "test.textproto:2:6: ERROR LEX1002: unterminated string literal\n" +
		"2 | foo: \"abc\n" +
		"  |      ^~~~\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyNotesAndContext(t *testing.T) {
	fs, _, _, bag := parseForTest(t, "cfg.textproto", "a {\n  b: 1\n")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, Context: 1})
	out := buf.String()

	for _, want := range []string{
		"cfg.textproto:2:7: ERROR SYN2002: unclosed '{': expected '}' before end of input",
		"1 |",
		"2 |   b: 1",
		"  cfg.textproto:1:3: note: '{' opened here",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyWithoutNotes(t *testing.T) {
	fs, _, _, bag := parseForTest(t, "cfg.textproto", "a {")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes must be hidden:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs, _, _, bag := parseForTest(t, "x.textproto", "a: ]")
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes in coloured output: %q", buf.String())
	}
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/conf/app.textproto", []byte("a: \"x\n"))
	bag := diag.NewBag(10)
	bag.Add(&diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Primary:  source.Span{File: fileID, Start: 3, End: 5},
		Message:  "unterminated string literal",
	})

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/conf/app.textproto:1:4:"},
		{PathModeRelative, "conf/app.textproto:1:4:"},
		{PathModeBasename, "app.textproto:1:4:"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("mode %v: expected prefix %q, got %q", tt.mode, tt.want, buf.String())
		}
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, _, _, bag := parseForTest(t, "j.textproto", "l: [1,]")
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Count != 1 || out.Diagnostics[0].Code != "SYN2003" {
		t.Fatalf("unexpected output %+v", out)
	}
	loc := out.Diagnostics[0].Location
	if loc.File != "j.textproto" || loc.StartByte != 5 || loc.StartLine != 1 || loc.StartCol != 6 {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestJSONMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.textproto", []byte("abc"))
	bag := diag.NewBag(0)
	for i := 0; i < 3; i++ {
		bag.Add(&diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Primary: source.Span{File: id, Start: uint32(i), End: uint32(i + 1)}})
	}
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", out.Count)
	}
}
