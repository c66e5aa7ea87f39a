package render

import (
	"bytes"
	"testing"

	"github.com/andyrewlee/termsync/internal/cell"
	"github.com/andyrewlee/termsync/internal/screen"
	"github.com/andyrewlee/termsync/internal/vterm"
)

// assertScreenMatches checks that a terminal fed every frame shows what
// the buffer holds.
func assertScreenMatches(t *testing.T, buf *screen.Buffer, term *vterm.VTerm) {
	t.Helper()
	size := buf.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			want, _ := buf.Get(x, y)
			got := term.Cell(x, y)
			if want.IsContinuation() {
				if got.Width != 0 {
					t.Fatalf("(%d,%d): expected continuation, got %+v", x, y, got)
				}
				continue
			}
			if got.Content != want.Text() {
				t.Fatalf("(%d,%d): content %q, want %q", x, y, got.Content, want.Text())
			}
			if got.Style != vterm.StyleOf(want.Style) {
				t.Fatalf("(%d,%d): style %+v, want %+v", x, y, got.Style, vterm.StyleOf(want.Style))
			}
		}
	}
}

func TestReplayReproducesBuffer(t *testing.T) {
	const w, h = 20, 6
	term := vterm.New(w, h)
	opts := DefaultOptions()
	opts.Output = term
	r := New(cell.Size{Width: w, Height: h}, opts)

	if err := r.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !term.AltScreen || term.CursorVisible || !term.MouseEnabled() || !term.BracketedPaste() {
		t.Fatalf("terminal modes not applied: %+v", term.Modes)
	}

	buf := r.Buffer()
	buf.WriteString(0, 0, "status: ok", cell.Indexed(2), cell.Default())
	buf.WriteString(0, 1, "世界 wide", cell.RGB(200, 100, 0), cell.Indexed(4))
	buf.Apply(5, 1, cell.Patch{}.WithAttr(cell.AttrBold, cell.On).WithAttr(cell.AttrUnderline, cell.On))
	buf.Set(19, 5, cell.New("$", cell.Style{Inverse: cell.On, Dim: cell.On}))
	buf.Fill(cell.Rect{X: 5, Y: 3, Width: 4, Height: 2}, cell.New("#", cell.Style{Bg: cell.Indexed(9), Italic: cell.On}))
	if err := r.FullRedraw(); err != nil {
		t.Fatalf("FullRedraw: %v", err)
	}
	assertScreenMatches(t, buf, term)

	// Second frame: partial changes diffed against the first.
	buf.WriteString(8, 0, "FAIL", cell.Indexed(1), cell.Default())
	buf.Apply(0, 0, cell.Patch{}.WithAttr(cell.AttrBold, cell.Off))
	buf.Set(6, 3, cell.New("x", cell.Style{Strikethrough: cell.On, Hidden: cell.Off}))
	buf.Set(1, 1, cell.New("y", cell.Style{}))
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	assertScreenMatches(t, buf, term)

	// Third frame after a resize.
	r.Resize(cell.Size{Width: w, Height: h})
	buf = r.Buffer()
	buf.WriteString(2, 2, "again", cell.Default(), cell.Indexed(5))
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush after resize: %v", err)
	}
	assertScreenMatches(t, buf, term)

	if err := r.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if term.AltScreen || !term.CursorVisible || term.MouseEnabled() || term.BracketedPaste() {
		t.Fatalf("terminal modes not restored: %+v", term.Modes)
	}
	if term.CurrentStyle != (vterm.Style{}) {
		t.Fatalf("expected attributes reset, got %+v", term.CurrentStyle)
	}
}

func TestReplayAfterSplittingWideGlyphs(t *testing.T) {
	const w, h = 8, 3
	term := vterm.New(w, h)
	r := New(cell.Size{Width: w, Height: h}, Options{Output: term})
	buf := r.Buffer()

	buf.WriteString(0, 0, "世x", cell.Default(), cell.Default())
	buf.WriteString(0, 1, "世x", cell.Default(), cell.Default())
	buf.WriteString(0, 2, "abc", cell.Default(), cell.Default())
	if err := r.FullRedraw(); err != nil {
		t.Fatalf("FullRedraw: %v", err)
	}

	hash := cell.New("#", cell.Style{Bg: cell.Indexed(3)})
	buf.Fill(cell.Rect{X: 1, Y: 0, Width: 1, Height: 1}, hash)
	buf.Fill(cell.Rect{X: 0, Y: 1, Width: 1, Height: 1}, hash)
	buf.Set(1, 2, cell.ContinuationCell())
	buf.Set(3, 2, cell.New("界", cell.Style{Underline: cell.On}))
	buf.Set(7, 2, cell.New("界", cell.Style{}))
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	assertScreenMatches(t, buf, term)

	want := " #x\n# x\na c界"
	if got := term.String(); got != want {
		t.Fatalf("screen = %q, want %q", got, want)
	}
}

func TestResizeToExtremeSizeStaysUsable(t *testing.T) {
	var out bytes.Buffer
	r := New(cell.Size{Width: 10, Height: 5}, Options{Output: &out})
	r.Resize(cell.Size{Width: 1 << 32, Height: 1 << 32})
	r.Buffer().ClearDirty()

	r.Buffer().Set(5, 5, cell.New("x", cell.Style{}))
	if got, ok := r.Buffer().Get(5, 5); !ok || got.Content != "x" {
		t.Fatalf("expected x at (5,5), got %+v", got)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if want := "\x1b[6;6H" + blankSGR + "x"; out.String() != want {
		t.Fatalf("flush output = %q, want %q", out.String(), want)
	}
}
