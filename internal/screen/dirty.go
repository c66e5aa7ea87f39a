package screen

import "github.com/andyrewlee/termsync/internal/cell"

// MarkDirty marks every in-range cell of r as changed.
func (b *Buffer) MarkDirty(r cell.Rect) {
	r = r.Intersect(b.size.Bounds())
	for y := r.Y; y < r.Y+r.Height; y++ {
		start := uint(y*b.size.Width + r.X)
		for i := start; i < start+uint(r.Width); i++ {
			b.dirty.Set(i)
		}
	}
}

// MarkAllDirty forces a full repaint on the next flush.
func (b *Buffer) MarkAllDirty() {
	for i := 0; i < b.size.Area(); i++ {
		b.dirty.Set(uint(i))
	}
}

// ClearDirty forgets all pending changes.
func (b *Buffer) ClearDirty() {
	b.dirty.ClearAll()
}

// HasDirty reports whether any cell changed since the last ClearDirty.
func (b *Buffer) HasDirty() bool {
	return b.dirty.Any()
}

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int {
	return int(b.dirty.Count())
}

// IsDirty reports whether (x, y) is marked as changed.
func (b *Buffer) IsDirty(x, y int) bool {
	i, ok := b.index(x, y)
	return ok && b.dirty.Test(uint(i))
}

// DirtyCells returns the changed cells in row-major order, top to bottom
// and left to right.
func (b *Buffer) DirtyCells() []DirtyCell {
	out := make([]DirtyCell, 0, b.dirty.Count())
	for i, ok := b.dirty.NextSet(0); ok; i, ok = b.dirty.NextSet(i + 1) {
		idx := int(i)
		out = append(out, DirtyCell{
			X:    idx % b.size.Width,
			Y:    idx / b.size.Width,
			Cell: b.cells[idx],
		})
	}
	return out
}
