package cell

import (
	"math"
	"testing"
)

func TestUnsetFlagDiffersFromOff(t *testing.T) {
	unset := New("x", Style{})
	off := New("x", Style{Bold: Off})
	if unset.Equal(off) {
		t.Fatalf("expected unset bold and bold=off to compare unequal")
	}
	if unset.Style.Bold.Enabled() || off.Style.Bold.Enabled() {
		t.Fatalf("neither cell should render bold")
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want int
	}{
		{"blank", Blank(), 1},
		{"empty content", Cell{}, 1},
		{"ascii", New("a", Style{}), 1},
		{"wide", New("世", Style{}), 2},
		{"continuation", ContinuationCell(), 0},
	}
	for _, tt := range tests {
		if got := tt.cell.Width(); got != tt.want {
			t.Fatalf("%s: width = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCellText(t *testing.T) {
	if got := (Cell{}).Text(); got != " " {
		t.Fatalf("empty cell should render as space, got %q", got)
	}
	if got := ContinuationCell().Text(); got != "" {
		t.Fatalf("continuation should render nothing, got %q", got)
	}
}

func TestPatchApply(t *testing.T) {
	base := New("a", Style{Fg: Indexed(1), Bold: On, Italic: On})
	p := Text("b").WithBg(RGB(1, 2, 3)).WithAttr(AttrBold, Off)
	got := p.Apply(base)

	if got.Content != "b" {
		t.Fatalf("expected content b, got %q", got.Content)
	}
	if got.Style.Fg != Indexed(1) {
		t.Fatalf("foreground should be untouched, got %+v", got.Style.Fg)
	}
	if got.Style.Bg != RGB(1, 2, 3) {
		t.Fatalf("background not applied, got %+v", got.Style.Bg)
	}
	if got.Style.Bold != Off || got.Style.Italic != On {
		t.Fatalf("unexpected flags bold=%v italic=%v", got.Style.Bold, got.Style.Italic)
	}
}

func TestPatchRevivesContinuation(t *testing.T) {
	got := Text("z").Apply(ContinuationCell())
	if got.IsContinuation() {
		t.Fatalf("content patch should produce a glyph cell")
	}
	if (Patch{}).Apply(ContinuationCell()) != ContinuationCell() {
		t.Fatalf("empty patch should leave the cell unchanged")
	}
	if !(Patch{}).Empty() {
		t.Fatalf("zero patch should be empty")
	}
}

func TestStylePatchSkipsContinuation(t *testing.T) {
	p := Patch{}.WithFg(Indexed(3)).WithBg(RGB(9, 9, 9)).WithAttr(AttrBold, On)
	if got := p.Apply(ContinuationCell()); got != ContinuationCell() {
		t.Fatalf("style-only patch should not style a continuation, got %+v", got)
	}

	got := Text("w").WithFg(Indexed(3)).Apply(ContinuationCell())
	if got.IsContinuation() || got.Style.Fg != Indexed(3) {
		t.Fatalf("content patch should style the new glyph, got %+v", got)
	}
}

func TestStyleFlagAccessors(t *testing.T) {
	var s Style
	for _, a := range Attrs {
		s = s.With(a, On)
		if s.Flag(a) != On {
			t.Fatalf("%s: expected on", a)
		}
	}
	if s.With(AttrHidden, Unset).Hidden != Unset {
		t.Fatalf("expected hidden reset to unset")
	}
}

func TestRectIntersect(t *testing.T) {
	r := Rect{X: 2, Y: 2, Width: 4, Height: 4}
	got := r.Intersect(Rect{Width: 4, Height: 3})
	want := Rect{X: 2, Y: 2, Width: 2, Height: 1}
	if got != want {
		t.Fatalf("intersect = %+v, want %+v", got, want)
	}
	if !r.Intersect(Rect{X: 10, Y: 10, Width: 1, Height: 1}).Empty() {
		t.Fatalf("disjoint rects should intersect to empty")
	}
	if !r.Contains(5, 5) || r.Contains(6, 5) {
		t.Fatalf("unexpected Contains result")
	}
}

func TestSizeClamp(t *testing.T) {
	if got := (Size{Width: 0, Height: -3}).Clamp(); got != (Size{Width: 1, Height: 1}) {
		t.Fatalf("expected 1x1, got %+v", got)
	}
	if got := (Size{Width: 200, Height: 50}).Clamp(); got != (Size{Width: 200, Height: 50}) {
		t.Fatalf("ordinary sizes should pass through, got %+v", got)
	}

	got := (Size{Width: 1 << 32, Height: 1 << 32}).Clamp()
	if got.Width != MaxDimension || got.Area() > MaxArea || got.Area() <= 0 {
		t.Fatalf("expected a bounded positive area, got %+v", got)
	}
	got = (Size{Width: math.MaxInt, Height: 2}).Clamp()
	if got != (Size{Width: MaxDimension, Height: 2}) {
		t.Fatalf("expected width clamped alone, got %+v", got)
	}
}
