package screen

import (
	"testing"

	"github.com/andyrewlee/termsync/internal/cell"
)

func TestWriteStringAdvances(t *testing.T) {
	b := newClean(10, 2)
	red := cell.Indexed(1)
	b.WriteString(1, 1, "hi", red, cell.Default())

	if got := b.String(); got != "\n hi" {
		t.Fatalf("unexpected grid %q", got)
	}
	c, _ := b.Get(2, 1)
	if c.Style.Fg != red {
		t.Fatalf("expected red foreground, got %+v", c.Style.Fg)
	}
	if b.DirtyCount() != 2 {
		t.Fatalf("expected 2 dirty cells, got %d", b.DirtyCount())
	}
}

func TestWriteStringWideGlyph(t *testing.T) {
	b := newClean(5, 1)
	b.WriteString(0, 0, "世a", cell.Default(), cell.Default())

	lead, _ := b.Get(0, 0)
	cont, _ := b.Get(1, 0)
	next, _ := b.Get(2, 0)
	if lead.Content != "世" || lead.Width() != 2 {
		t.Fatalf("unexpected lead cell %+v", lead)
	}
	if !cont.IsContinuation() {
		t.Fatalf("expected continuation at column 1, got %+v", cont)
	}
	if next.Content != "a" {
		t.Fatalf("expected a at column 2, got %+v", next)
	}
}

func TestWriteStringTruncatesAtRightEdge(t *testing.T) {
	b := newClean(4, 1)
	b.WriteString(2, 0, "abcdef", cell.Default(), cell.Default())
	if got := b.String(); got != "  ab" {
		t.Fatalf("unexpected grid %q", got)
	}

	b = newClean(3, 1)
	b.WriteString(0, 0, "ab世", cell.Default(), cell.Default())
	if got := b.String(); got != "ab" {
		t.Fatalf("wide glyph straddling the edge should be dropped, got %q", got)
	}
	if c, _ := b.Get(2, 0); c != cell.Blank() {
		t.Fatalf("last column should stay blank, got %+v", c)
	}
}

func TestWriteStringOutOfRangeRow(t *testing.T) {
	b := newClean(4, 1)
	b.WriteString(0, 3, "abc", cell.Default(), cell.Default())
	b.WriteString(0, -1, "abc", cell.Default(), cell.Default())
	if b.HasDirty() {
		t.Fatalf("writes outside the grid should be ignored")
	}
}

func TestWriteStringClipsLeft(t *testing.T) {
	b := newClean(4, 1)
	b.WriteString(-1, 0, "世ab", cell.Default(), cell.Default())
	if got := b.String(); got != " ab" {
		t.Fatalf("unexpected grid %q", got)
	}
	if c, _ := b.Get(0, 0); c.IsContinuation() {
		t.Fatalf("clipped wide glyph must not leave a continuation behind")
	}
}

func TestWriteStringGraphemeCluster(t *testing.T) {
	b := newClean(4, 1)
	b.WriteString(0, 0, "e\u0301x", cell.Default(), cell.Default())
	c, _ := b.Get(0, 0)
	if c.Content != "e\u0301" {
		t.Fatalf("expected combined grapheme in one cell, got %q", c.Content)
	}
	if c, _ := b.Get(1, 0); c.Content != "x" {
		t.Fatalf("expected x in column 1, got %q", c.Content)
	}
}

func TestWriteStringKeepsAttributes(t *testing.T) {
	b := newClean(2, 1)
	b.Set(0, 0, cell.New("a", cell.Style{Bold: cell.On}))
	b.WriteString(0, 0, "b", cell.Indexed(3), cell.Indexed(4))
	c, _ := b.Get(0, 0)
	if c.Style.Bold != cell.On {
		t.Fatalf("expected bold kept, got %v", c.Style.Bold)
	}
}

func TestOverwritingWideGlyphRepairsNeighbour(t *testing.T) {
	b := newClean(4, 1)
	b.WriteString(0, 0, "世", cell.Default(), cell.Default())
	b.ClearDirty()

	b.Set(1, 0, cell.New("x", cell.Style{}))
	lead, _ := b.Get(0, 0)
	if lead.Content != " " {
		t.Fatalf("orphaned lead should be blanked, got %+v", lead)
	}
	if !b.IsDirty(0, 0) || !b.IsDirty(1, 0) {
		t.Fatalf("both halves should be dirty")
	}

	b.WriteString(2, 0, "世", cell.Default(), cell.Default())
	b.ClearDirty()
	b.Set(2, 0, cell.New("y", cell.Style{}))
	if c, _ := b.Get(3, 0); c.IsContinuation() {
		t.Fatalf("orphaned continuation should be blanked")
	}
}
