package diag

import (
	"testing"

	"txtpb/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 3; i++ {
		d := NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x")
		added := bag.Add(&d)
		if (i < 2) != added {
			t.Fatalf("Add #%d = %v", i, added)
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d", bag.Len())
	}
}

func TestBagFirstErrorSkipsWarnings(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}
	ReportWarning(r, SynInfo, source.Span{Start: 1}, "just saying").Emit()
	ReportError(r, LexInvalidEscape, source.Span{Start: 5}, "bad escape").Emit()
	ReportError(r, SynUnexpectedToken, source.Span{Start: 2}, "later").Emit()

	first := bag.FirstError()
	if first == nil || first.Code != LexInvalidEscape {
		t.Fatalf("FirstError = %+v", first)
	}
	if !bag.HasWarnings() || !bag.HasErrors() {
		t.Fatal("expected both warnings and errors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}
	ReportError(r, SynUnexpectedToken, source.Span{Start: 9, End: 10}, "b").Emit()
	ReportError(r, SynUnexpectedToken, source.Span{Start: 1, End: 2}, "a").Emit()
	ReportError(r, SynUnexpectedToken, source.Span{Start: 1, End: 2}, "a again").Emit()

	bag.Sort()
	bag.Dedup()
	items := bag.Items()
	if len(items) != 2 || items[0].Message != "a" || items[1].Message != "b" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, SynUnmatchedDelimiter, source.Span{Start: 7}, "expected '}'").
		WithNote(source.Span{Start: 0, End: 1}, "'{' opened here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("Len = %d", bag.Len())
	}
	if notes := bag.Items()[0].Notes; len(notes) != 1 || notes[0].Msg != "'{' opened here" {
		t.Fatalf("notes = %+v", notes)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnterminatedString: "LEX1002",
		SynTrailingComma:      "SYN2003",
		IOLoadFileError:       "IO4001",
		ObsTimings:            "OBS6001",
		UnknownCode:           "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
	if Code(2999).Title() != "Unknown error" {
		t.Error("unknown code must fall back to the generic title")
	}
}
