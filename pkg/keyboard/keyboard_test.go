package keyboard

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintRowMajor(t *testing.T) {
	b := NewInlineBuilder()
	b.AddAll(MustInline("a", nil), MustInline("b", nil)).NewLine()
	b.AddAll(MustInline("c", nil), MustInline("d", nil), MustInline("e", nil)).NewLine()
	kb := b.Build()

	want := []string{
		"{ROW1}",
		MustInline("a", nil).Render(),
		MustInline("b", nil).Render(),
		"{ROW2}",
		MustInline("c", nil).Render(),
		MustInline("d", nil).Render(),
		MustInline("e", nil).Render(),
	}
	got := kb.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	var buf bytes.Buffer
	if err := kb.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.String() != strings.Join(want, "\n")+"\n" {
		t.Fatalf("Print output mismatch:\n%s", buf.String())
	}
}

func TestPrintEmptyRowOnlyHeader(t *testing.T) {
	kb := NewReplyBuilder().NewLine().Build()
	var buf bytes.Buffer
	if err := kb.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.String() != "{ROW1}\n" {
		t.Fatalf("got %q", buf.String())
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, bytes.ErrTooLarge
	}
	w.n--
	return len(p), nil
}

func TestPrintStopsOnWriteError(t *testing.T) {
	kb := NewReplyBuilder().Add(MustReply("a", nil)).NewLine().Build()
	if err := kb.Print(&failWriter{n: 1}); err != bytes.ErrTooLarge {
		t.Fatalf("err = %v", err)
	}
}

func TestRowHeader(t *testing.T) {
	if RowHeader(12) != "{ROW12}" {
		t.Fatalf("RowHeader(12) = %q", RowHeader(12))
	}
}
