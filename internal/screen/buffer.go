// Package screen holds the virtual terminal grid and tracks which cells
// changed since the last flush.
package screen

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/andyrewlee/termsync/internal/cell"
)

// Buffer is a fixed-size grid of styled cells. It is not safe for
// concurrent use; callers confine it to one goroutine.
type Buffer struct {
	size  cell.Size
	cells []cell.Cell // row-major
	dirty *bitset.BitSet
}

// DirtyCell is a changed position and its current content.
type DirtyCell struct {
	X    int
	Y    int
	Cell cell.Cell
}

// New creates a blank buffer with nothing marked dirty.
func New(size cell.Size) *Buffer {
	b := &Buffer{}
	b.Resize(size)
	b.ClearDirty()
	return b
}

// Resize discards the grid, reallocates it blank at the new size and marks
// every cell dirty. Dimensions below 1 are clamped.
func (b *Buffer) Resize(size cell.Size) {
	size = size.Clamp()
	b.size = size
	b.cells = make([]cell.Cell, size.Area())
	for i := range b.cells {
		b.cells[i] = cell.Blank()
	}
	b.dirty = bitset.New(uint(size.Area()))
	b.MarkAllDirty()
}

// Size returns the grid dimensions.
func (b *Buffer) Size() cell.Size {
	return b.size
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.size.Width || y >= b.size.Height {
		return 0, false
	}
	return y*b.size.Width + x, true
}

// Get returns a copy of the cell at (x, y).
func (b *Buffer) Get(x, y int) (cell.Cell, bool) {
	i, ok := b.index(x, y)
	if !ok {
		return cell.Cell{}, false
	}
	return b.cells[i], true
}

// Set replaces the cell at (x, y). Out-of-range writes are ignored.
func (b *Buffer) Set(x, y int, c cell.Cell) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	b.place(i, x, c)
}

// Apply merges p into the cell at (x, y). Out-of-range writes are ignored.
func (b *Buffer) Apply(x, y int, p cell.Patch) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	b.place(i, x, p.Apply(b.cells[i]))
}

// place stores c at index i (column x) and keeps wide glyphs whole. A wide
// glyph claims x+1 as its continuation and is dropped when x is the last
// column. A continuation is only kept where the cell to its left is wide;
// anywhere else it is stored as a blank. Any glyph split by the write has
// its other half blanked.
func (b *Buffer) place(i, x int, c cell.Cell) {
	if c.IsContinuation() && (x == 0 || b.cells[i-1].Width() != 2) {
		c = cell.Blank()
	}
	wide := c.Width() == 2
	if wide && x+1 >= b.size.Width {
		return
	}

	old := b.cells[i]
	if old.IsContinuation() && !c.IsContinuation() {
		b.orphan(i - 1)
	}
	if old.Width() == 2 && !wide {
		b.orphan(i + 1)
	}
	if wide && b.cells[i+1].Width() == 2 {
		// The lead at x+1 loses its continuation at x+2.
		b.orphan(i + 2)
	}

	b.cells[i] = c
	b.dirty.Set(uint(i))
	if wide {
		b.cells[i+1] = cell.ContinuationCell()
		b.dirty.Set(uint(i + 1))
	}
}

func (b *Buffer) orphan(i int) {
	blank := cell.Blank()
	blank.Style = b.cells[i].Style
	b.cells[i] = blank
	b.dirty.Set(uint(i))
}

// Fill writes c over every in-range cell of r. A wide c is laid down in
// pairs; a column left over at the right edge of r gets a blank in c's
// style.
func (b *Buffer) Fill(r cell.Rect, c cell.Cell) {
	r = r.Intersect(b.size.Bounds())
	step := max(c.Width(), 1)
	pad := cell.Blank()
	pad.Style = c.Style
	if c.IsContinuation() {
		c, pad = cell.Blank(), cell.Blank()
	}
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x += step {
			i := y*b.size.Width + x
			if x+step > r.X+r.Width {
				b.place(i, x, pad)
				continue
			}
			b.place(i, x, c)
		}
	}
}

// Clear blanks the whole grid.
func (b *Buffer) Clear() {
	b.Fill(b.size.Bounds(), cell.Blank())
}

// Line returns a copy of row y, or nil when out of range.
func (b *Buffer) Line(y int) []cell.Cell {
	if y < 0 || y >= b.size.Height {
		return nil
	}
	start := y * b.size.Width
	line := make([]cell.Cell, b.size.Width)
	copy(line, b.cells[start:start+b.size.Width])
	return line
}

// String returns the grid as plain text, one line per row with trailing
// blanks trimmed.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.size.Height; y++ {
		var line strings.Builder
		for _, c := range b.cells[y*b.size.Width : (y+1)*b.size.Width] {
			line.WriteString(c.Text())
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < b.size.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
