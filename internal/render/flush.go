package render

import (
	"github.com/andyrewlee/termsync/internal/perf"
	"github.com/andyrewlee/termsync/internal/termcode"
)

// Flush writes every dirty cell to the terminal and clears the dirty set.
//
// Cells are visited in row-major order. A cursor position is sent only when
// the next cell is not where the terminal cursor already is after the last
// glyph written; continuation cells send nothing because the glyph before
// them already advanced the cursor past them. Styles are diffed against the
// last style sent, not against neighbouring cells.
//
// The frame goes to the sink in a single write. If that write fails the
// dirty set is kept so a later Flush or FullRedraw can repaint.
func (r *Renderer) Flush() error {
	dirty := r.buf.DirtyCells()
	if len(dirty) == 0 {
		return nil
	}
	defer perf.Time("render.flush")()

	width := r.buf.Size().Width
	r.frame.Reset()
	if r.opts.SynchronizedOutput {
		r.frame.WriteString(termcode.BeginSync)
	}

	// The cursor position is unknown at the start of every frame.
	curX, curY := -1, -1
	last := r.lastStyle
	cells, moves, styles := 0, 0, 0
	for _, d := range dirty {
		c := d.Cell
		if c.IsContinuation() {
			continue
		}
		if d.Y != curY || d.X != curX {
			r.frame.WriteString(termcode.MoveTo(d.X, d.Y))
			moves++
		}
		if params := styleParams(last, c.Style); len(params) > 0 {
			r.frame.WriteString(termcode.SGR(params...))
			styles++
		}
		style := c.Style
		last = &style

		r.frame.WriteString(c.Text())
		cells++
		curX, curY = d.X+c.Width(), d.Y
		if curX >= width {
			// Pending-wrap state differs between terminals.
			curX, curY = -1, -1
		}
	}

	if cells == 0 {
		// Nothing but continuation cells was dirty.
		r.buf.ClearDirty()
		return nil
	}
	if r.opts.SynchronizedOutput {
		r.frame.WriteString(termcode.EndSync)
	}
	if err := r.write("flush", r.frame.Bytes()); err != nil {
		return err
	}
	r.lastStyle = last
	r.buf.ClearDirty()

	r.stats.Flushes++
	r.stats.Cells += cells
	r.stats.CursorMoves += moves
	r.stats.StyleChanges += styles
	perf.Count("render.cells", int64(cells))
	return nil
}
